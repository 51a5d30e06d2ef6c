package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	"github.com/shopspring/decimal"
)

type AddCartItemRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1" validate:"min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1" validate:"min=1"`
}

// CartItemResponse is a cart line joined with its product for display
type CartItemResponse struct {
	ID          string          `json:"id"`
	SessionID   string          `json:"session_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CartResponse is the full cart view with summary totals
type CartResponse struct {
	Items       []*CartItemResponse `json:"items"`
	TotalItems  int                 `json:"total_items"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
}

func ToCartItemResponse(item *cart.CartItem, p *product.Product) *CartItemResponse {
	lineTotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return &CartItemResponse{
		ID:          item.ID,
		SessionID:   item.SessionID,
		ProductID:   item.ProductID,
		ProductName: p.Name,
		Price:       p.Price,
		Unit:        p.Unit,
		Quantity:    item.Quantity,
		LineTotal:   lineTotal,
		CreatedAt:   item.CreatedAt,
	}
}

func (r *AddCartItemRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *UpdateCartItemRequest) Validate() error {
	return validator.New().Struct(r)
}
