package testutil

import (
	"context"
	"sync"

	"github.com/vidinfra/salesdocs/internal/domain/creditmemo"
	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

// InMemoryCreditMemoStore implements the creditmemo.Repository interface for
// testing
type InMemoryCreditMemoStore struct {
	mu    sync.RWMutex
	memos map[string]*creditmemo.CreditMemo
}

// NewInMemoryCreditMemoStore creates a new in-memory credit memo store
func NewInMemoryCreditMemoStore() *InMemoryCreditMemoStore {
	return &InMemoryCreditMemoStore{
		memos: make(map[string]*creditmemo.CreditMemo),
	}
}

// Create stores a new credit memo
func (s *InMemoryCreditMemoStore) Create(ctx context.Context, cm *creditmemo.CreditMemo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cm.ID == "" {
		return ierr.NewError("credit memo ID is required").Mark(ierr.ErrValidation)
	}
	if _, exists := s.memos[cm.ID]; exists {
		return ierr.NewError("credit memo already exists").
			WithHintf("Credit memo with ID %s already exists", cm.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.memos[cm.ID] = cm
	return nil
}

// Get retrieves a credit memo by ID
func (s *InMemoryCreditMemoStore) Get(ctx context.Context, id string) (*creditmemo.CreditMemo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cm, exists := s.memos[id]
	if !exists {
		return nil, ierr.NewError("credit memo not found").
			WithHintf("Credit memo with ID %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return cm, nil
}

// ListByOrder returns all credit memos belonging to the given order
func (s *InMemoryCreditMemoStore) ListByOrder(ctx context.Context, orderID string) ([]*creditmemo.CreditMemo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*creditmemo.CreditMemo, 0)
	for _, cm := range s.memos {
		if cm.OrderID == orderID {
			result = append(result, cm)
		}
	}
	return result, nil
}
