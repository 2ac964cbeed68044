package cart

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

// NewMemoryStore builds an in-process cart persistence. Used by tests and
// by local runs without a Redis instance.
func NewMemoryStore() Persistence {
	return &memoryStore{carts: map[string]Cart{}}
}

func (s *memoryStore) Load(ctx context.Context, cartID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[cartID]
	if !ok {
		return nil, nil
	}
	copied := stored
	copied.Items = append([]Line{}, stored.Items...)
	return &copied, nil
}

func (s *memoryStore) Save(ctx context.Context, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *cart
	copied.Items = append([]Line{}, cart.Items...)
	if copied.UpdatedAt.IsZero() {
		copied.UpdatedAt = time.Now().UTC()
	}
	s.carts[cart.ID] = copied
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return nil
}
