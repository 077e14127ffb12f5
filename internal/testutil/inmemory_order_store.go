package testutil

import (
	"context"
	"sync"

	"github.com/vidinfra/salesdocs/internal/domain/order"
	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

// InMemoryOrderStore implements the order.Repository interface for testing.
// It hands out live references rather than clones so test scenarios can
// observe preparer side effects on order items, such as shipment locks.
type InMemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewInMemoryOrderStore creates a new in-memory order store
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		orders: make(map[string]*order.Order),
	}
}

// Create stores a new order
func (s *InMemoryOrderStore) Create(ctx context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		return ierr.NewError("order ID is required").Mark(ierr.ErrValidation)
	}
	if _, exists := s.orders[o.ID]; exists {
		return ierr.NewError("order already exists").
			WithHintf("Order with ID %s already exists", o.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.orders[o.ID] = o
	return nil
}

// Get retrieves an order by ID
func (s *InMemoryOrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.orders[id]
	if !exists {
		return nil, ierr.NewError("order not found").
			WithHintf("Order with ID %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

// Update replaces a stored order
func (s *InMemoryOrderStore) Update(ctx context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.ID]; !exists {
		return ierr.NewError("order not found").
			WithHintf("Order with ID %s not found", o.ID).
			Mark(ierr.ErrNotFound)
	}
	s.orders[o.ID] = o
	return nil
}
