package postgres

import (
	"context"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/category"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type categoryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCategoryRepository(db *postgres.DB, logger *logger.Logger) category.Repository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (
			id, name, description, display_order,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :description, :display_order,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating category", "category_id", c.ID, "name", c.Name)

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create category").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (*category.Category, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		`SELECT * FROM categories WHERE id = :id AND status != :deleted`,
		map[string]interface{}{"id": id, "deleted": types.StatusDeleted},
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch category").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("category not found").
			WithHint("No category matches the given identifier").
			Mark(ierr.ErrNotFound)
	}

	var c category.Category
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan category").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*category.Category, error) {
	if filter == nil {
		filter = types.NewNoLimitQueryFilter()
	}
	query := `
		SELECT * FROM categories WHERE status != :deleted
		ORDER BY display_order ASC, name ASC`
	args := map[string]interface{}{"deleted": types.StatusDeleted}
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
		args["limit"] = filter.GetLimit()
		args["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list categories").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan category").
				Mark(ierr.ErrDatabase)
		}
		categories = append(categories, &c)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories SET
			name = :name,
			description = :description,
			display_order = :display_order,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	r.logger.Debugw("updating category", "category_id", c.ID)

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update category").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "category")
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.NamedExecContext(ctx,
		`UPDATE categories SET status = :status, updated_at = :updated_at WHERE id = :id`,
		map[string]interface{}{
			"id":         id,
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
		},
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete category").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "category")
}
