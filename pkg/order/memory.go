package order

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local development. All
// reads and writes copy the record so callers never share mutable state with
// the store, matching the refetch semantics of a real database.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*Order)}
}

// Get returns a deep copy of the stored order or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o.Clone(), nil
}

// Save stores a deep copy of the order keyed by its ID.
func (s *MemoryStore) Save(ctx context.Context, o *Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o == nil || o.ID == "" {
		return ErrInvalidOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.ID] = o.Clone()
	return nil
}

// Annotate atomically updates a single annotation on the stored order.
// Useful in tests to simulate an asynchronous upstream writer.
func (s *MemoryStore) Annotate(id, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.SetAnnotation(key, value)
	return nil
}
