package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// Setting the value it already holds is a no-op, so a re-submitted value does
// not trigger renders or effects. No build tags; fully testable outside WASM.
type Signal[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func()
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func())}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers. It reports whether the
// value changed.
func (s *Signal[T]) Set(v T) bool {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return false
	}
	s.value = v
	subs := make([]func(), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return true
}

// Subscribe registers a callback fired when the value changes. Callbacks run
// in subscription order on the goroutine that called Set.
// Returns an unsubscribe func; call it in OnDestroy to avoid memory leaks.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
