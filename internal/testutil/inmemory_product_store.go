package testutil

import (
	"context"
	"strings"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// InMemoryProductStore is an in-memory implementation of product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

func productFilterFn(ctx context.Context, p *product.Product, filter interface{}) bool {
	if p.Status == types.StatusDeleted {
		return false
	}

	f, ok := filter.(*types.ProductFilter)
	if !ok || f == nil {
		return true
	}

	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}

	if len(f.ProductStatuses) > 0 {
		matched := false
		for _, status := range f.ProductStatuses {
			if p.ProductStatus == status {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
	}

	return true
}

func productSortFn(i, j *product.Product) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	if err := s.InMemoryStore.Create(ctx, p.ID, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.Status == types.StatusDeleted {
		return nil, ierr.NewError("product not found").
			WithHint("The product may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryProductStore) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	return s.InMemoryStore.List(ctx, filter, productFilterFn, productSortFn)
}

func (s *InMemoryProductStore) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, productFilterFn)
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	if err := s.InMemoryStore.Update(ctx, p.ID, p); err != nil {
		return ierr.NewError("product not found").
			WithHint("The product may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	p.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, p)
}
