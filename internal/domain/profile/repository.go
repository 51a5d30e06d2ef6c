package profile

import (
	"context"
)

// Repository defines the interface for profile data access
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	Get(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}
