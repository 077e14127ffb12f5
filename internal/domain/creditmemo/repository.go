package creditmemo

import "context"

// Repository provides access to credit memos
type Repository interface {
	Create(ctx context.Context, cm *CreditMemo) error
	Get(ctx context.Context, id string) (*CreditMemo, error)
	ListByOrder(ctx context.Context, orderID string) ([]*CreditMemo, error)
}
