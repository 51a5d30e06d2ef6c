package postgres

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type profileRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProfileRepository(db *postgres.DB, logger *logger.Logger) profile.Repository {
	return &profileRepository{db: db, logger: logger}
}

func (r *profileRepository) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (
			id, email, full_name, phone, address, role,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :email, :full_name, :phone, :address, :role,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating profile", "profile_id", p.ID)

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return markWriteError(err, "Failed to create profile")
	}
	return nil
}

func (r *profileRepository) Get(ctx context.Context, id string) (*profile.Profile, error) {
	return r.getOne(ctx,
		`SELECT * FROM profiles WHERE id = :id AND status != :deleted`,
		map[string]interface{}{"id": id, "deleted": types.StatusDeleted},
	)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return r.getOne(ctx,
		`SELECT * FROM profiles WHERE email = :email AND status != :deleted`,
		map[string]interface{}{"email": email, "deleted": types.StatusDeleted},
	)
}

func (r *profileRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*profile.Profile, error) {
	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch profile").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("profile not found").
			WithHint("No profile matches the given reference").
			Mark(ierr.ErrNotFound)
	}

	var p profile.Profile
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan profile").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = :full_name,
			phone = :phone,
			address = :address,
			role = :role,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND status != :status`

	args := map[string]interface{}{
		"id":         p.ID,
		"full_name":  p.FullName,
		"phone":      p.Phone,
		"address":    p.Address,
		"role":       p.Role,
		"updated_at": p.UpdatedAt,
		"updated_by": p.UpdatedBy,
		"status":     types.StatusDeleted,
	}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update profile").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "profile")
}
