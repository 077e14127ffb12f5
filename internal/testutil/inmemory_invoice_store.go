package testutil

import (
	"context"
	"sync"

	"github.com/vidinfra/salesdocs/internal/domain/invoice"
	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

// InMemoryInvoiceStore implements the invoice.Repository interface for
// testing
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]*invoice.Invoice
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices: make(map[string]*invoice.Invoice),
	}
}

// Create stores a new invoice
func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inv.ID == "" {
		return ierr.NewError("invoice ID is required").Mark(ierr.ErrValidation)
	}
	if _, exists := s.invoices[inv.ID]; exists {
		return ierr.NewError("invoice already exists").
			WithHintf("Invoice with ID %s already exists", inv.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.invoices[inv.ID] = inv
	return nil
}

// Get retrieves an invoice by ID
func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, exists := s.invoices[id]
	if !exists {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return inv, nil
}

// ListByOrder returns all invoices belonging to the given order
func (s *InMemoryInvoiceStore) ListByOrder(ctx context.Context, orderID string) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*invoice.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.OrderID == orderID {
			result = append(result, inv)
		}
	}
	return result, nil
}
