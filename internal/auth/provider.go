package auth

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type AuthRequest struct {
	UserID   string
	Email    string
	Password string
}

type AuthResponse struct {
	ProviderToken string
	AuthToken     string
	ID            string
}

type Provider interface {
	GetProvider() types.AuthProvider
	SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	Login(ctx context.Context, req AuthRequest, userAuthInfo *auth.Auth) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	switch cfg.Auth.Provider {
	case types.AuthProviderSupabase:
		return NewSupabaseAuth(cfg)
	default:
		return NewLocalAuth(cfg)
	}
}
