package cart

import (
	"context"
)

// Repository defines the interface for cart data access. Carts are
// always scoped to a session token, never listed globally.
type Repository interface {
	Create(ctx context.Context, item *CartItem) error
	Get(ctx context.Context, id string) (*CartItem, error)
	ListBySession(ctx context.Context, sessionID string) ([]*CartItem, error)
	Update(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id string) error
	DeleteBySession(ctx context.Context, sessionID string) error
}
