package order

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// Repository defines the interface for order data access. Orders are
// never hard-deleted; cancellation is a status change.
type Repository interface {
	// Create persists the order together with its items
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	List(ctx context.Context, filter *types.OrderFilter) ([]*Order, error)
	Count(ctx context.Context, filter *types.OrderFilter) (int, error)
	Update(ctx context.Context, order *Order) error

	// Status history
	AddStatusHistory(ctx context.Context, history *StatusHistory) error
	ListStatusHistory(ctx context.Context, orderID string) ([]*StatusHistory, error)
}
