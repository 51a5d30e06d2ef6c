package postgres

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type cartRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCartRepository(db *postgres.DB, logger *logger.Logger) cart.Repository {
	return &cartRepository{db: db, logger: logger}
}

func (r *cartRepository) Create(ctx context.Context, item *cart.CartItem) error {
	query := `
		INSERT INTO cart_items (
			id, session_id, user_id, product_id, quantity,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :session_id, :user_id, :product_id, :quantity,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to add item to cart").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *cartRepository) Get(ctx context.Context, id string) (*cart.CartItem, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		`SELECT * FROM cart_items WHERE id = :id AND status = :published`,
		map[string]interface{}{"id": id, "published": types.StatusPublished},
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch cart item").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("cart item not found").
			WithHint("No cart item matches the given identifier").
			Mark(ierr.ErrNotFound)
	}

	var item cart.CartItem
	if err := rows.StructScan(&item); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan cart item").
			Mark(ierr.ErrDatabase)
	}
	return &item, nil
}

func (r *cartRepository) ListBySession(ctx context.Context, sessionID string) ([]*cart.CartItem, error) {
	return r.list(ctx,
		`SELECT * FROM cart_items WHERE session_id = :key AND status = :published ORDER BY created_at ASC`,
		sessionID,
	)
}

func (r *cartRepository) list(ctx context.Context, query string, key string) ([]*cart.CartItem, error) {
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"key":       key,
		"published": types.StatusPublished,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list cart items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*cart.CartItem
	for rows.Next() {
		var item cart.CartItem
		if err := rows.StructScan(&item); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan cart item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *cartRepository) Update(ctx context.Context, item *cart.CartItem) error {
	query := `
		UPDATE cart_items SET
			quantity = :quantity,
			user_id = :user_id,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update cart item").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "cart item")
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.NamedExecContext(ctx,
		`DELETE FROM cart_items WHERE id = :id`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to remove cart item").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "cart item")
}

func (r *cartRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	r.logger.Debugw("clearing cart", "session_id", sessionID)

	// Clearing an already-empty cart is not an error
	if _, err := r.db.NamedExecContext(ctx,
		`DELETE FROM cart_items WHERE session_id = :session_id`,
		map[string]interface{}{"session_id": sessionID},
	); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to clear cart").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
