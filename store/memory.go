package store

import "sync"

// MemStore is an in-memory Store. The zero value is not usable; call NewMemStore.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
	closed bool

	oneOffError error
}

// Compile-time assertion to ensure MemStore implements Store.
var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// NewMemStoreWith returns a MemStore seeded with values.
func NewMemStoreWith(values map[string]string) *MemStore {
	s := NewMemStore()
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// FailNext makes the next Get or Set return err instead of touching the map.
func (s *MemStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oneOffError = err
}

func (s *MemStore) error() error {
	err := s.oneOffError
	s.oneOffError = nil
	if err == nil && s.closed {
		return ErrClosed
	}
	return err
}

// Get implements Store.
func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.error(); err != nil {
		return "", false, err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.error(); err != nil {
		return err
	}
	s.values[key] = value
	return nil
}

// Close implements Store.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
