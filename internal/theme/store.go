package theme

import (
	"sort"
	"sync"
)

// Change describes one write to the VarStore
type Change struct {
	Key     string
	Old     string
	New     string
	Removed bool
}

// VarStore is the process-wide style variable table. Rendering surfaces read
// it and subscribe to changes; only the Controller writes to it.
type VarStore struct {
	mu        sync.RWMutex
	vars      map[string]string
	observers map[int]func(Change)
	nextID    int
}

// NewVarStore creates an empty store
func NewVarStore() *VarStore {
	return &VarStore{
		vars:      make(map[string]string),
		observers: make(map[int]func(Change)),
	}
}

// Get returns the value for key
func (s *VarStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

// Set writes key and notifies observers when the value changed
func (s *VarStore) Set(key, value string) {
	s.mu.Lock()
	old, existed := s.vars[key]
	if existed && old == value {
		s.mu.Unlock()
		return
	}
	s.vars[key] = value
	observers := s.observerList()
	s.mu.Unlock()

	notify(observers, Change{Key: key, Old: old, New: value})
}

// Remove deletes key and notifies observers if it was present
func (s *VarStore) Remove(key string) {
	s.mu.Lock()
	old, existed := s.vars[key]
	if !existed {
		s.mu.Unlock()
		return
	}
	delete(s.vars, key)
	observers := s.observerList()
	s.mu.Unlock()

	notify(observers, Change{Key: key, Old: old, Removed: true})
}

// Len returns the number of variables set
func (s *VarStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}

// Snapshot returns a copy of every variable
func (s *VarStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Keys returns every key in sorted order
func (s *VarStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subscribe registers fn to run after every change. Observers run
// synchronously on the writer's goroutine in registration order.
func (s *VarStore) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// observerList must be called with mu held
func (s *VarStore) observerList() []func(Change) {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(Change), len(ids))
	for i, id := range ids {
		fns[i] = s.observers[id]
	}
	return fns
}

func notify(observers []func(Change), c Change) {
	for _, fn := range observers {
		fn(c)
	}
}
