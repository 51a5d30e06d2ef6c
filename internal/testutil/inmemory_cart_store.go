package testutil

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// InMemoryCartStore is an in-memory implementation of cart.Repository
type InMemoryCartStore struct {
	*InMemoryStore[*cart.CartItem]
}

func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		InMemoryStore: NewInMemoryStore[*cart.CartItem](),
	}
}

func cartSortFn(i, j *cart.CartItem) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryCartStore) Create(ctx context.Context, item *cart.CartItem) error {
	if err := s.InMemoryStore.Create(ctx, item.ID, item); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to add item to cart").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryCartStore) Get(ctx context.Context, id string) (*cart.CartItem, error) {
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("cart item not found").
			WithHint("The cart item may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return item, nil
}

func (s *InMemoryCartStore) ListBySession(ctx context.Context, sessionID string) ([]*cart.CartItem, error) {
	return s.InMemoryStore.List(ctx, nil, func(ctx context.Context, item *cart.CartItem, _ interface{}) bool {
		return item.SessionID == sessionID
	}, cartSortFn)
}

func (s *InMemoryCartStore) Update(ctx context.Context, item *cart.CartItem) error {
	if err := s.InMemoryStore.Update(ctx, item.ID, item); err != nil {
		return ierr.NewError("cart item not found").
			WithHint("The cart item may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryCartStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("cart item not found").
			WithHint("The cart item may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryCartStore) DeleteBySession(ctx context.Context, sessionID string) error {
	items, err := s.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.InMemoryStore.Delete(ctx, item.ID); err != nil {
			return err
		}
	}
	return nil
}
