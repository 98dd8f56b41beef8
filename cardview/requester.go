package cardview

import (
	"sync"

	"github.com/phanxgames/holocard"
)

// DeferredRequester parks orientation permission requests until the
// platform answers through Resolve, which may be called from any goroutine.
// OnRequest, if set, is called once per batch of parked requests so the
// platform can show its prompt.
type DeferredRequester struct {
	OnRequest func()

	mu       sync.Mutex
	pending  []func(granted bool)
	answered bool
	granted  bool
}

var _ holocard.PermissionRequester = (*DeferredRequester)(nil)

// RequestOrientationPermission implements holocard.PermissionRequester.
// Once an answer is known later requests resolve immediately with it.
func (d *DeferredRequester) RequestOrientationPermission(resolve func(granted bool)) {
	d.mu.Lock()
	if d.answered {
		granted := d.granted
		d.mu.Unlock()
		resolve(granted)
		return
	}
	first := len(d.pending) == 0
	d.pending = append(d.pending, resolve)
	d.mu.Unlock()

	if first && d.OnRequest != nil {
		d.OnRequest()
	}
}

// Resolve answers every parked request and remembers the answer.
func (d *DeferredRequester) Resolve(granted bool) {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.answered = true
	d.granted = granted
	d.mu.Unlock()

	for _, resolve := range pending {
		resolve(granted)
	}
}

// Waiting returns the number of parked requests.
func (d *DeferredRequester) Waiting() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
