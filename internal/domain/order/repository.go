package order

import "context"

// Repository provides access to orders. Persistence lives outside this
// module; callers are expected to serialize concurrent preparation against
// the same order themselves.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, o *Order) error
}
