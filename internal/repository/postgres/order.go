package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type orderRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewOrderRepository(db *postgres.DB, logger *logger.Logger) order.Repository {
	return &orderRepository{db: db, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (
			id, order_number, session_id, user_id, customer_name, phone, address,
			order_status, payment_status, payment_method, subtotal, total, notes,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :order_number, :session_id, :user_id, :customer_name, :phone, :address,
			:order_status, :payment_status, :payment_method, :subtotal, :total, :notes,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating order",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
	)

	if _, err := r.db.NamedExecContext(ctx, query, o); err != nil {
		return markWriteError(err, "Failed to create order")
	}

	itemQuery := `
		INSERT INTO order_items (
			id, order_id, product_id, product_name, price, quantity, line_total
		) VALUES (
			:id, :order_id, :product_id, :product_name, :price, :quantity, :line_total
		)`
	for _, item := range o.Items {
		if _, err := r.db.NamedExecContext(ctx, itemQuery, item); err != nil {
			return markWriteError(err, "Failed to create order item")
		}
	}
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	return r.getOne(ctx,
		`SELECT * FROM orders WHERE id = :id AND status != :deleted`,
		map[string]interface{}{"id": id, "deleted": types.StatusDeleted},
	)
}

func (r *orderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	return r.getOne(ctx,
		`SELECT * FROM orders WHERE order_number = :order_number AND status != :deleted`,
		map[string]interface{}{"order_number": orderNumber, "deleted": types.StatusDeleted},
	)
}

func (r *orderRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*order.Order, error) {
	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch order").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("order not found").
			WithHint("No order matches the given reference").
			Mark(ierr.ErrNotFound)
	}

	var o order.Order
	if err := rows.StructScan(&o); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan order").
			Mark(ierr.ErrDatabase)
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID string) ([]*order.OrderItem, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		`SELECT * FROM order_items WHERE order_id = :order_id`,
		map[string]interface{}{"order_id": orderID},
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list order items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*order.OrderItem
	for rows.Next() {
		var item order.OrderItem
		if err := rows.StructScan(&item); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan order item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *orderRepository) List(ctx context.Context, filter *types.OrderFilter) ([]*order.Order, error) {
	where, args := orderWhere(filter)
	query := fmt.Sprintf(
		`SELECT * FROM orders WHERE %s ORDER BY created_at DESC LIMIT :limit OFFSET :offset`,
		where,
	)
	args["limit"] = filter.GetLimit()
	args["offset"] = filter.GetOffset()

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list orders").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.StructScan(&o); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan order").
				Mark(ierr.ErrDatabase)
		}
		orders = append(orders, &o)
	}
	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter *types.OrderFilter) (int, error) {
	where, args := orderWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM orders WHERE %s`, where)

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count orders").
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

func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE orders SET
			order_status = :order_status,
			payment_status = :payment_status,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	r.logger.Debugw("updating order",
		"order_id", o.ID,
		"order_status", o.OrderStatus,
	)

	result, err := r.db.NamedExecContext(ctx, query, o)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update order").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "order")
}

func (r *orderRepository) AddStatusHistory(ctx context.Context, history *order.StatusHistory) error {
	query := `
		INSERT INTO order_status_history (
			id, order_id, from_status, to_status, changed_by, note, created_at
		) VALUES (
			:id, :order_id, :from_status, :to_status, :changed_by, :note, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, history); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record order status history").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *orderRepository) ListStatusHistory(ctx context.Context, orderID string) ([]*order.StatusHistory, error) {
	rows, err := r.db.NamedQueryContext(ctx,
		`SELECT * FROM order_status_history WHERE order_id = :order_id ORDER BY created_at ASC`,
		map[string]interface{}{"order_id": orderID},
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list order status history").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var history []*order.StatusHistory
	for rows.Next() {
		var h order.StatusHistory
		if err := rows.StructScan(&h); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan order status history").
				Mark(ierr.ErrDatabase)
		}
		history = append(history, &h)
	}
	return history, nil
}

func orderWhere(filter *types.OrderFilter) (string, map[string]interface{}) {
	clauses := []string{"status != :deleted"}
	args := map[string]interface{}{"deleted": types.StatusDeleted}

	if filter == nil {
		return strings.Join(clauses, " AND "), args
	}

	if len(filter.OrderStatuses) > 0 {
		placeholders := make([]string, len(filter.OrderStatuses))
		for i, status := range filter.OrderStatuses {
			key := fmt.Sprintf("order_status_%d", i)
			placeholders[i] = ":" + key
			args[key] = status
		}
		clauses = append(clauses, fmt.Sprintf("order_status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if len(filter.PaymentStatuses) > 0 {
		placeholders := make([]string, len(filter.PaymentStatuses))
		for i, status := range filter.PaymentStatuses {
			key := fmt.Sprintf("payment_status_%d", i)
			placeholders[i] = ":" + key
			args[key] = status
		}
		clauses = append(clauses, fmt.Sprintf("payment_status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.UserID != "" {
		clauses = append(clauses, "user_id = :user_id")
		args["user_id"] = filter.UserID
	}
	if filter.SessionID != "" {
		clauses = append(clauses, "session_id = :session_id")
		args["session_id"] = filter.SessionID
	}
	if filter.Search != "" {
		clauses = append(clauses, "(customer_name ILIKE :search OR order_number ILIKE :search)")
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
