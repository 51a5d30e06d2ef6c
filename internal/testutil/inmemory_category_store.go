package testutil

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/category"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// InMemoryCategoryStore is an in-memory implementation of category.Repository
type InMemoryCategoryStore struct {
	*InMemoryStore[*category.Category]
}

func NewInMemoryCategoryStore() *InMemoryCategoryStore {
	return &InMemoryCategoryStore{
		InMemoryStore: NewInMemoryStore[*category.Category](),
	}
}

func categoryFilterFn(ctx context.Context, c *category.Category, filter interface{}) bool {
	return c.Status != types.StatusDeleted
}

func categorySortFn(i, j *category.Category) bool {
	if i.DisplayOrder != j.DisplayOrder {
		return i.DisplayOrder < j.DisplayOrder
	}
	return i.Name < j.Name
}

func (s *InMemoryCategoryStore) Create(ctx context.Context, c *category.Category) error {
	if err := s.InMemoryStore.Create(ctx, c.ID, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create category").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryCategoryStore) Get(ctx context.Context, id string) (*category.Category, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || c.Status == types.StatusDeleted {
		return nil, ierr.NewError("category not found").
			WithHint("The category may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (s *InMemoryCategoryStore) List(ctx context.Context, filter *types.QueryFilter) ([]*category.Category, error) {
	return s.InMemoryStore.List(ctx, filter, categoryFilterFn, categorySortFn)
}

func (s *InMemoryCategoryStore) Update(ctx context.Context, c *category.Category) error {
	if err := s.InMemoryStore.Update(ctx, c.ID, c); err != nil {
		return ierr.NewError("category not found").
			WithHint("The category may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryCategoryStore) Delete(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	c.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, c)
}
