package cart

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// CartItem is one product line in a shopping cart. Anonymous carts are
// keyed by a client-generated session token instead of a user ID.
type CartItem struct {
	// ID is the unique identifier for the cart line
	ID string `db:"id" json:"id"`

	// SessionID is the anonymous cart token generated by the client
	SessionID string `db:"session_id" json:"session_id"`

	// UserID links the line to an account when the shopper is logged in
	UserID *string `db:"user_id" json:"user_id,omitempty"`

	// ProductID is the product in the cart
	ProductID string `db:"product_id" json:"product_id"`

	// Quantity is the number of units
	Quantity int `db:"quantity" json:"quantity"`

	types.BaseModel
}

func (i *CartItem) Validate() error {
	if i.SessionID == "" && i.UserID == nil {
		return ierr.NewError("cart item needs a session or a user").
			WithHint("A cart session token is required for guest carts").
			Mark(ierr.ErrValidation)
	}
	if i.ProductID == "" {
		return ierr.NewError("product is required").
			WithHint("Cart items must reference a product").
			Mark(ierr.ErrValidation)
	}
	if i.Quantity <= 0 {
		return ierr.NewError("quantity must be positive").
			WithHint("Quantity must be at least 1").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Line pairs a cart item with its priced product for summary math.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

// Summary is the cart footer shown before checkout.
type Summary struct {
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Summarize folds cart lines into item and amount totals.
func Summarize(lines []Line) Summary {
	summary := Summary{TotalAmount: decimal.Zero}
	for _, line := range lines {
		summary.TotalItems += line.Quantity
		summary.TotalAmount = summary.TotalAmount.Add(
			line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return summary
}
