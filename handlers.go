package holocard

import "slices"

type subscriber struct {
	id uint32
	fn func(Snapshot)
}

type subscriberRegistry struct {
	subs       []subscriber
	buf        []subscriber
	nextID     uint32
	seq        uint64 // bumped on every publish
	publishing bool
}

// CallbackHandle allows removing a registered subscriber.
type CallbackHandle struct {
	id  uint32
	reg *subscriberRegistry
}

// Remove unregisters the callback so it no longer fires. Removing twice, or
// removing a zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

func (r *subscriberRegistry) add(fn func(Snapshot)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscriber{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r}
}

func (r *subscriberRegistry) remove(id uint32) {
	for i := range r.subs {
		if r.subs[i].id == id {
			copy(r.subs[i:], r.subs[i+1:])
			r.subs[len(r.subs)-1] = subscriber{}
			r.subs = r.subs[:len(r.subs)-1]
			return
		}
	}
}

// publish calls every subscriber in registration order. Subscribers may
// remove themselves, or call back into the engine, while being called. A
// snapshot published from inside a subscriber supersedes the one being
// delivered: the outer delivery stops so nobody ends on the stale state.
func (r *subscriberRegistry) publish(s Snapshot) {
	if len(r.subs) == 0 {
		return
	}
	r.seq++
	seq := r.seq

	var subs []subscriber
	if r.publishing {
		subs = slices.Clone(r.subs)
	} else {
		r.publishing = true
		r.buf = append(r.buf[:0], r.subs...)
		subs = r.buf
		defer func() {
			clear(r.buf)
			r.publishing = false
		}()
	}
	for _, sub := range subs {
		sub.fn(s)
		if r.seq != seq {
			return
		}
	}
}

func (r *subscriberRegistry) reset() {
	clear(r.subs)
	r.subs = r.subs[:0]
}

func (r *subscriberRegistry) count() int {
	return len(r.subs)
}
