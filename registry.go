package virtualclock

import "sync"

// Registry hands out one Clock per key, creating it reading zero the first
// time the key is asked for. It lets independent units of work, such as
// parallel tests or workers, keep isolated clocks without passing them
// around explicitly.
type Registry struct {
	mu     sync.RWMutex
	clocks map[string]*Clock
}

func NewRegistry() *Registry {
	return &Registry{
		clocks: make(map[string]*Clock),
	}
}

// Clock returns the Clock for key.
func (r *Registry) Clock(key string) *Clock {
	c, _ := r.ClockAt(key, 0)
	return c
}

// ClockAt returns the Clock for key. If the key is new, the Clock is created
// reading start and created is true; an existing Clock is returned as is.
func (r *Registry) ClockAt(key string, start uint64) (c *Clock, created bool) {
	r.mu.RLock()
	c, ok := r.clocks[key]
	r.mu.RUnlock()

	if ok {
		return c, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok = r.clocks[key]; ok {
		return c, false
	}

	if r.clocks == nil {
		r.clocks = make(map[string]*Clock)
	}

	c = NewClock(start)
	r.clocks[key] = c

	return c, true
}

// Forget drops the Clock for key. A later call to Clock with the same key
// starts over at zero.
func (r *Registry) Forget(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clocks, key)
}

// Len returns the number of clocks currently held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clocks)
}
