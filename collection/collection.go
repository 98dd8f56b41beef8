// Package collection keeps the set of birds a player has collected and
// persists it across sessions through gdata.
package collection

import (
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage location of the collected ID list.
const (
	storageObject   = "collection"
	storageProperty = "birddex-collection"
)

// Store is an insertion-ordered set of collected bird IDs. Every change is
// written through to storage; a nil manager keeps the set in memory only.
type Store struct {
	manager *gdata.Manager
	ids     []string
	index   map[string]struct{}
}

// NewStore opens the collection saved under manager. A failed load is not
// fatal: the store starts empty and the error is logged.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager, index: make(map[string]struct{})}
	if err := s.Load(); err != nil {
		log.Printf("[Collection] Warning: failed to load collection: %v (starting empty)", err)
	}
	return s
}

// Load replaces the in-memory set with the saved one.
func (s *Store) Load() error {
	s.reset()
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(storageObject, storageProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(storageObject, storageProperty)
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	var ids []string
	if err := yaml.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("unmarshal collection: %w", err)
	}
	for _, id := range ids {
		s.insert(id)
	}
	return nil
}

// Save writes the set to storage. It is a no-op without a manager.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := s.manager.SaveObjectProp(storageObject, storageProperty, data); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}

// Add collects id. It reports true the first time a bird is collected, which
// is when a celebration should play.
func (s *Store) Add(id string) bool {
	if !s.insert(id) {
		return false
	}
	s.persist()
	return true
}

// Remove releases id. It reports whether the bird was collected.
func (s *Store) Remove(id string) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
	s.persist()
	return true
}

// Toggle adds id if it is missing and removes it otherwise. It reports
// whether the bird is collected afterwards.
func (s *Store) Toggle(id string) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// Contains reports whether id is collected.
func (s *Store) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.reset()
	s.persist()
}

// IDs returns the collected IDs in the order they were collected.
func (s *Store) IDs() []string {
	return slices.Clone(s.ids)
}

// Count returns the number of collected IDs, including IDs unknown to any
// catalog.
func (s *Store) Count() int {
	return len(s.ids)
}

func (s *Store) insert(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *Store) reset() {
	s.ids = s.ids[:0]
	clear(s.index)
}

func (s *Store) persist() {
	if err := s.Save(); err != nil {
		log.Printf("[Collection] Warning: %v", err)
	}
}
