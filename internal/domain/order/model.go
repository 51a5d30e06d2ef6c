package order

import (
	"time"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Order represents a shop order placed at checkout
type Order struct {
	// ID is the unique identifier for the order
	ID string `db:"id" json:"id"`

	// OrderNumber is the human-readable reference used for tracking
	OrderNumber string `db:"order_number" json:"order_number"`

	// SessionID is the anonymous cart token the order was placed from
	SessionID string `db:"session_id" json:"session_id"`

	// UserID links the order to an account when the shopper was logged in
	UserID *string `db:"user_id" json:"user_id,omitempty"`

	// CustomerName is the recipient name
	CustomerName string `db:"customer_name" json:"customer_name"`

	// Phone is the recipient phone number
	Phone string `db:"phone" json:"phone"`

	// Address is the delivery address
	Address string `db:"address" json:"address"`

	// OrderStatus is the fulfilment status
	OrderStatus types.OrderStatus `db:"order_status" json:"order_status"`

	// PaymentStatus tracks payment separately from fulfilment
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`

	// PaymentMethod is the chosen payment channel, ex "cod", "transfer"
	PaymentMethod string `db:"payment_method" json:"payment_method"`

	// Subtotal is the sum of line totals before adjustments
	Subtotal decimal.Decimal `db:"subtotal" json:"subtotal"`

	// Total is the amount payable
	Total decimal.Decimal `db:"total" json:"total"`

	// Notes holds buyer remarks captured at checkout
	Notes string `db:"notes" json:"notes"`

	// Items are the snapshot lines; loaded separately from order_items
	Items []*OrderItem `db:"-" json:"items,omitempty"`

	types.BaseModel
}

// OrderItem is one snapshot line of an order. Product name and price are
// copied at checkout so later product edits never rewrite past orders.
type OrderItem struct {
	ID          string          `db:"id" json:"id"`
	OrderID     string          `db:"order_id" json:"order_id"`
	ProductID   string          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Quantity    int             `db:"quantity" json:"quantity"`
	LineTotal   decimal.Decimal `db:"line_total" json:"line_total"`
}

// StatusHistory is an append-only audit row for order status changes
type StatusHistory struct {
	ID         string            `db:"id" json:"id"`
	OrderID    string            `db:"order_id" json:"order_id"`
	FromStatus types.OrderStatus `db:"from_status" json:"from_status"`
	ToStatus   types.OrderStatus `db:"to_status" json:"to_status"`
	ChangedBy  string            `db:"changed_by" json:"changed_by"`
	Note       string            `db:"note" json:"note"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
}

func (o *Order) Validate() error {
	if o.CustomerName == "" {
		return ierr.NewError("customer name is required").
			WithHint("Customer name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if o.Phone == "" {
		return ierr.NewError("phone number is required").
			WithHint("A phone number is required for delivery coordination").
			Mark(ierr.ErrValidation)
	}
	if o.Address == "" {
		return ierr.NewError("address is required").
			WithHint("A delivery address is required").
			Mark(ierr.ErrValidation)
	}
	if len(o.Items) == 0 {
		return ierr.NewError("order has no items").
			WithHint("Cannot place an order with an empty cart").
			Mark(ierr.ErrValidation)
	}
	if err := o.OrderStatus.Validate(); err != nil {
		return err
	}
	return o.PaymentStatus.Validate()
}
