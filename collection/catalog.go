package collection

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Rarity grades how hard a bird is to find.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
)

// Bird is one catalog entry.
type Bird struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Ability string `yaml:"ability"`
	Rarity  Rarity `yaml:"rarity"`
	Habitat string `yaml:"habitat"`
	Image   string `yaml:"image"`
}

type catalogFile struct {
	Birds []Bird `yaml:"birds"`
}

// LoadCatalog reads a YAML catalog of the form
//
//	birds:
//	  - id: "1"
//	    name: Ruby-Crowned Kinglet
//	    rarity: common
//	    habitat: forest
func LoadCatalog(path string) ([]Bird, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog. Entries without an ID or with an
// unknown rarity are rejected.
func ParseCatalog(data []byte) ([]Bird, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(f.Birds))
	for i := range f.Birds {
		b := &f.Birds[i]
		if b.ID == "" {
			return nil, fmt.Errorf("parse catalog: entry %d has no id", i)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("parse catalog: duplicate id %q", b.ID)
		}
		seen[b.ID] = true
		switch b.Rarity {
		case "":
			b.Rarity = Common
		case Common, Rare, Legendary:
		default:
			return nil, fmt.Errorf("parse catalog: bird %q: unknown rarity %q", b.ID, b.Rarity)
		}
	}
	return f.Birds, nil
}

// Stats summarises the collected part of a catalog.
type Stats struct {
	Total     int
	Common    int
	Rare      int
	Legendary int
	Habitats  []string // distinct, sorted
}

// Stats counts the collected birds of catalog. Collected IDs missing from
// the catalog are not counted.
func (s *Store) Stats(catalog []Bird) Stats {
	var st Stats
	habitats := make(map[string]bool)
	for _, b := range catalog {
		if !s.Contains(b.ID) {
			continue
		}
		st.Total++
		switch b.Rarity {
		case Common:
			st.Common++
		case Rare:
			st.Rare++
		case Legendary:
			st.Legendary++
		}
		if b.Habitat != "" && !habitats[b.Habitat] {
			habitats[b.Habitat] = true
			st.Habitats = append(st.Habitats, b.Habitat)
		}
	}
	slices.Sort(st.Habitats)
	return st
}
