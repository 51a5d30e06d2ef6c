package testutil

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// InMemoryProfileStore is an in-memory implementation of profile.Repository
type InMemoryProfileStore struct {
	*InMemoryStore[*profile.Profile]
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{
		InMemoryStore: NewInMemoryStore[*profile.Profile](),
	}
}

func (s *InMemoryProfileStore) Create(ctx context.Context, p *profile.Profile) error {
	if err := s.InMemoryStore.Create(ctx, p.ID, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create profile").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryProfileStore) Get(ctx context.Context, id string) (*profile.Profile, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.Status == types.StatusDeleted {
		return nil, ierr.NewError("profile not found").
			WithHint("The account may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryProfileStore) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	profiles, _ := s.InMemoryStore.List(ctx, nil, nil, nil)
	for _, p := range profiles {
		if p.Email == email && p.Status != types.StatusDeleted {
			return p, nil
		}
	}
	return nil, ierr.NewError("profile not found").
		WithHint("No account exists for this email").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryProfileStore) Update(ctx context.Context, p *profile.Profile) error {
	if err := s.InMemoryStore.Update(ctx, p.ID, p); err != nil {
		return ierr.NewError("profile not found").
			WithHint("The account may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
