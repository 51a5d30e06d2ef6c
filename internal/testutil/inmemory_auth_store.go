package testutil

import (
	"context"
	"sync"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// InMemoryAuthRepository is an in-memory implementation of auth.Repository
type InMemoryAuthRepository struct {
	mu    sync.RWMutex
	auths map[string]*auth.Auth
}

func NewInMemoryAuthRepository() *InMemoryAuthRepository {
	return &InMemoryAuthRepository{
		auths: make(map[string]*auth.Auth),
	}
}

func (r *InMemoryAuthRepository) CreateAuth(ctx context.Context, a *auth.Auth) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auths[a.UserID]; exists {
		return ierr.NewError("auth record already exists").
			WithHint("An account already exists for this user").
			Mark(ierr.ErrAlreadyExists)
	}

	r.auths[a.UserID] = a
	return nil
}

func (r *InMemoryAuthRepository) GetAuthByUserID(ctx context.Context, userID string) (*auth.Auth, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.auths[userID]
	if !exists {
		return nil, ierr.NewError("auth record not found").
			WithHint("No credentials exist for this user").
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (r *InMemoryAuthRepository) UpdateAuth(ctx context.Context, a *auth.Auth) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auths[a.UserID]; !exists {
		return ierr.NewError("auth record not found").
			WithHint("No credentials exist for this user").
			Mark(ierr.ErrNotFound)
	}

	r.auths[a.UserID] = a
	return nil
}

// Clear removes all auth records
func (r *InMemoryAuthRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auths = make(map[string]*auth.Auth)
}
