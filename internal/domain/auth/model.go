package auth

import (
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// Auth holds the provider-side credential for a user. For the local
// provider the token is a bcrypt hash; for supabase it is unused since
// the hosted service keeps the credential.
type Auth struct {
	UserID    string             `db:"user_id"`
	Provider  types.AuthProvider `db:"provider"`
	Token     string             `db:"token"`
	Status    types.Status       `db:"status"`
	CreatedAt time.Time          `db:"created_at"`
	UpdatedAt time.Time          `db:"updated_at"`
}

// Claims is the validated identity extracted from an auth token.
type Claims struct {
	UserID string
	Email  string
}

func NewAuth(userID string, provider types.AuthProvider, token string) *Auth {
	now := time.Now().UTC()
	return &Auth{
		UserID:    userID,
		Provider:  provider,
		Token:     token,
		Status:    types.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
