package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// localAuth keeps credentials in our own database. Used when no hosted
// auth provider is configured.
type localAuth struct {
	AuthConfig config.AuthConfig
}

func NewLocalAuth(cfg *config.Configuration) Provider {
	return &localAuth{
		AuthConfig: cfg.Auth,
	}
}

func (l *localAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderLocal
}

func (l *localAuth) SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	if req.Password == "" {
		return nil, ierr.NewError("password is required").
			WithHint("Password is required").
			Mark(ierr.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}

	userID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER)

	authToken, err := l.generateToken(userID, req.Email)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}

	return &AuthResponse{
		ProviderToken: string(hashedPassword),
		AuthToken:     authToken,
		ID:            userID,
	}, nil
}

func (l *localAuth) Login(ctx context.Context, req AuthRequest, userAuthInfo *auth.Auth) (*AuthResponse, error) {
	if userAuthInfo == nil {
		return nil, ierr.NewError("unknown user").
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userAuthInfo.Token), []byte(req.Password)); err != nil {
		return nil, ierr.NewError("invalid password").
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	authToken, err := l.generateToken(userAuthInfo.UserID, req.Email)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}

	return &AuthResponse{
		ProviderToken: userAuthInfo.Token,
		AuthToken:     authToken,
		ID:            userAuthInfo.UserID,
	}, nil
}

func (l *localAuth) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(l.AuthConfig.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrUnauthorized)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrUnauthorized)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrUnauthorized)
	}

	email, _ := claims["email"].(string)

	return &auth.Claims{UserID: userID, Email: email}, nil
}

func (l *localAuth) generateToken(userID, email string) (string, error) {
	expiration := time.Now().Add(30 * 24 * time.Hour)

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     expiration.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(l.AuthConfig.Secret))
}
