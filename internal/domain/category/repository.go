package category

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// Repository defines the interface for category data access
type Repository interface {
	Create(ctx context.Context, category *Category) error
	Get(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
