package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type productRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, category_id, name, description, price, original_price, stock, unit,
			images, product_status, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :category_id, :name, :description, :price, :original_price, :stock, :unit,
			:images, :product_status, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating product", "product_id", p.ID, "name", p.Name)

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		`SELECT * FROM products WHERE id = :id AND status != :deleted`,
		map[string]interface{}{"id": id, "deleted": types.StatusDeleted},
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch product").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("product not found").
			WithHint("No product matches the given identifier").
			Mark(ierr.ErrNotFound)
	}

	var p product.Product
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	where, args := productWhere(filter)
	query := fmt.Sprintf(
		`SELECT * FROM products WHERE %s ORDER BY created_at DESC LIMIT :limit OFFSET :offset`,
		where,
	)
	args["limit"] = filter.GetLimit()
	args["offset"] = filter.GetOffset()

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan product").
				Mark(ierr.ErrDatabase)
		}
		products = append(products, &p)
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	where, args := productWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM products WHERE %s`, where)

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			category_id = :category_id,
			name = :name,
			description = :description,
			price = :price,
			original_price = :original_price,
			stock = :stock,
			unit = :unit,
			images = :images,
			product_status = :product_status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	r.logger.Debugw("updating product", "product_id", p.ID)

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "product")
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE products SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("deleting product", "product_id", id)

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "product")
}

func productWhere(filter *types.ProductFilter) (string, map[string]interface{}) {
	clauses := []string{"status != :deleted"}
	args := map[string]interface{}{"deleted": types.StatusDeleted}

	if filter == nil {
		return strings.Join(clauses, " AND "), args
	}

	if filter.CategoryID != "" {
		clauses = append(clauses, "category_id = :category_id")
		args["category_id"] = filter.CategoryID
	}
	if len(filter.ProductStatuses) > 0 {
		placeholders := make([]string, len(filter.ProductStatuses))
		for i, status := range filter.ProductStatuses {
			key := fmt.Sprintf("product_status_%d", i)
			placeholders[i] = ":" + key
			args[key] = status
		}
		clauses = append(clauses, fmt.Sprintf("product_status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.Search != "" {
		clauses = append(clauses, "(name ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + filter.Search + "%"
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			clauses = append(clauses, "created_at >= :start_time")
			args["start_time"] = filter.StartTime
		}
		if filter.EndTime != nil {
			clauses = append(clauses, "created_at <= :end_time")
			args["end_time"] = filter.EndTime
		}
	}

	return strings.Join(clauses, " AND "), args
}
