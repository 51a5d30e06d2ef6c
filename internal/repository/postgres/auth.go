package postgres

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type authRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewAuthRepository(db *postgres.DB, logger *logger.Logger) auth.Repository {
	return &authRepository{db: db, logger: logger}
}

func (r *authRepository) CreateAuth(ctx context.Context, a *auth.Auth) error {
	query := `
		INSERT INTO auths (
			user_id, provider, token, status, created_at, updated_at
		) VALUES (
			:user_id, :provider, :token, :status, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create auth record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *authRepository) GetAuthByUserID(ctx context.Context, userID string) (*auth.Auth, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		`SELECT * FROM auths WHERE user_id = :user_id AND status = :status`,
		map[string]interface{}{"user_id": userID, "status": types.StatusPublished},
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch auth record").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("auth record not found").
			WithHintf("No auth record exists for user %s", userID).
			Mark(ierr.ErrNotFound)
	}

	var a auth.Auth
	if err := rows.StructScan(&a); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan auth record").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *authRepository) UpdateAuth(ctx context.Context, a *auth.Auth) error {
	query := `
		UPDATE auths SET
			token = :token,
			updated_at = :updated_at
		WHERE user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update auth record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "auth record")
}
