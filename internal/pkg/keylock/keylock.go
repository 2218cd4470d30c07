// Package keylock provides named exclusive locks. A Registry hands out one
// mutex per string key so that independent resources never contend while
// operations on the same resource are serialized.
//
// The registry is used to guard the check-then-write sequences of the
// delivery lifecycle: one key per delivery, and one key per
// (courier, calendar day) pair for withdrawal admission.
package keylock

import "sync"

// Registry manages a set of mutexes addressed by string keys.
// The zero value is not usable; create instances via NewRegistry.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewRegistry creates an empty lock registry.
func NewRegistry() *Registry {
	return &Registry{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the exclusive lock for key, blocking until it is available.
// It returns the function that releases the lock. The entry is dropped from
// the registry once no goroutine holds or waits on it, so the map does not
// grow with the number of distinct keys ever seen.
func (r *Registry) Lock(key string) func() {
	r.mu.Lock()
	e, ok := r.locks[key]
	if !ok {
		e = &entry{}
		r.locks[key] = e
	}
	e.refs++
	r.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			r.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(r.locks, key)
			}
			r.mu.Unlock()
		})
	}
}
