package product

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Product represents an item in the village shop
type Product struct {
	// ID is the unique identifier for the product
	ID string `db:"id" json:"id"`

	// CategoryID links the product to its category
	CategoryID string `db:"category_id" json:"category_id"`

	// Name is the display name of the product
	Name string `db:"name" json:"name"`

	// Description is the long-form description shown on the detail view
	Description string `db:"description" json:"description"`

	// Price is the current selling price in rupiah
	Price decimal.Decimal `db:"price" json:"price"`

	// OriginalPrice is the pre-discount price when the product is on sale
	OriginalPrice *decimal.Decimal `db:"original_price" json:"original_price,omitempty"`

	// Stock is the quantity available
	Stock int `db:"stock" json:"stock"`

	// Unit is the selling unit, ex "kg", "pcs", "ikat"
	Unit string `db:"unit" json:"unit"`

	// Images are uploaded product image references
	Images types.DocumentList `db:"images" json:"images"`

	// ProductStatus is the shop visibility status
	ProductStatus types.ProductStatus `db:"product_status" json:"product_status"`

	types.BaseModel
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ierr.NewError("product name is required").
			WithHint("Product name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("product price must not be negative").
			WithHint("Price must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if p.Stock < 0 {
		return ierr.NewError("product stock must not be negative").
			WithHint("Stock must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if err := p.ProductStatus.Validate(); err != nil {
		return err
	}
	return p.Images.Validate()
}

// IsAvailable reports whether the product can be added to a cart.
func (p *Product) IsAvailable() bool {
	return p.ProductStatus == types.ProductStatusPublished && p.Stock > 0
}

// DiscountPercent returns the displayed discount badge for the product,
// 0 when the product is not on sale.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil {
		return 0
	}
	return CalculateDiscount(*p.OriginalPrice, p.Price)
}

// CalculateDiscount returns the rounded discount percentage between an
// original and a current price. The result is never negative: a current
// price at or above the original yields 0.
func CalculateDiscount(original, current decimal.Decimal) int {
	if !original.IsPositive() || current.GreaterThanOrEqual(original) {
		return 0
	}
	percent := original.Sub(current).
		Div(original).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(percent.IntPart())
}
