package servicerequest

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// Repository defines the interface for service request data access.
// Requests are never hard-deleted; there is intentionally no Delete.
type Repository interface {
	Create(ctx context.Context, req *ServiceRequest) error
	Get(ctx context.Context, id string) (*ServiceRequest, error)
	GetByRequestNumber(ctx context.Context, requestNumber string) (*ServiceRequest, error)
	List(ctx context.Context, filter *types.ServiceRequestFilter) ([]*ServiceRequest, error)
	Count(ctx context.Context, filter *types.ServiceRequestFilter) (int, error)
	Update(ctx context.Context, req *ServiceRequest) error
}
