package testutil

import (
	"context"
	"strings"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// InMemoryServiceRequestStore is an in-memory implementation of servicerequest.Repository
type InMemoryServiceRequestStore struct {
	*InMemoryStore[*servicerequest.ServiceRequest]
}

func NewInMemoryServiceRequestStore() *InMemoryServiceRequestStore {
	return &InMemoryServiceRequestStore{
		InMemoryStore: NewInMemoryStore[*servicerequest.ServiceRequest](),
	}
}

func serviceRequestFilterFn(ctx context.Context, req *servicerequest.ServiceRequest, filter interface{}) bool {
	if req.Status == types.StatusDeleted {
		return false
	}

	f, ok := filter.(*types.ServiceRequestFilter)
	if !ok || f == nil {
		return true
	}

	if len(f.RequestStatuses) > 0 {
		matched := false
		for _, status := range f.RequestStatuses {
			if req.RequestStatus == status {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.ServiceType != "" && req.ServiceType != f.ServiceType {
		return false
	}

	if f.UserID != "" && (req.UserID == nil || *req.UserID != f.UserID) {
		return false
	}

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(req.ApplicantName), search) &&
			!strings.Contains(strings.ToLower(req.RequestNumber), search) {
			return false
		}
	}

	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && req.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && req.CreatedAt.After(*f.EndTime) {
			return false
		}
	}

	return true
}

func serviceRequestSortFn(i, j *servicerequest.ServiceRequest) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryServiceRequestStore) Create(ctx context.Context, req *servicerequest.ServiceRequest) error {
	if err := s.InMemoryStore.Create(ctx, req.ID, req); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create service request").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryServiceRequestStore) Get(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	req, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || req.Status == types.StatusDeleted {
		return nil, ierr.NewError("service request not found").
			WithHint("The request may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return req, nil
}

func (s *InMemoryServiceRequestStore) GetByRequestNumber(ctx context.Context, requestNumber string) (*servicerequest.ServiceRequest, error) {
	requests, _ := s.InMemoryStore.List(ctx, nil, nil, nil)
	for _, req := range requests {
		if req.RequestNumber == requestNumber && req.Status != types.StatusDeleted {
			return req, nil
		}
	}
	return nil, ierr.NewError("service request not found").
		WithHint("Check that the request number is correct").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryServiceRequestStore) List(ctx context.Context, filter *types.ServiceRequestFilter) ([]*servicerequest.ServiceRequest, error) {
	return s.InMemoryStore.List(ctx, filter, serviceRequestFilterFn, serviceRequestSortFn)
}

func (s *InMemoryServiceRequestStore) Count(ctx context.Context, filter *types.ServiceRequestFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, serviceRequestFilterFn)
}

func (s *InMemoryServiceRequestStore) Update(ctx context.Context, req *servicerequest.ServiceRequest) error {
	if err := s.InMemoryStore.Update(ctx, req.ID, req); err != nil {
		return ierr.NewError("service request not found").
			WithHint("The request may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
