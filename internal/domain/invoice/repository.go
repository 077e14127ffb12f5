package invoice

import "context"

// Repository provides access to invoices
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	ListByOrder(ctx context.Context, orderID string) ([]*Invoice, error)
}
