package dto

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the request payload for creating a product
type CreateProductRequest struct {
	CategoryID    string              `json:"category_id" binding:"required"`
	Name          string              `json:"name" binding:"required"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price" binding:"required"`
	OriginalPrice *decimal.Decimal    `json:"original_price,omitempty"`
	Stock         int                 `json:"stock"`
	Unit          string              `json:"unit"`
	Images        types.DocumentList  `json:"images"`
	ProductStatus types.ProductStatus `json:"product_status"`
}

// UpdateProductRequest represents the request payload for updating a product
type UpdateProductRequest struct {
	CategoryID    *string              `json:"category_id,omitempty"`
	Name          *string              `json:"name,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Price         *decimal.Decimal     `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal     `json:"original_price,omitempty"`
	Stock         *int                 `json:"stock,omitempty"`
	Unit          *string              `json:"unit,omitempty"`
	Images        *types.DocumentList  `json:"images,omitempty"`
	ProductStatus *types.ProductStatus `json:"product_status,omitempty"`
}

// ProductResponse represents the product response structure
type ProductResponse struct {
	ID              string              `json:"id"`
	CategoryID      string              `json:"category_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Price           decimal.Decimal     `json:"price"`
	OriginalPrice   *decimal.Decimal    `json:"original_price,omitempty"`
	DiscountPercent int                 `json:"discount_percent"`
	Stock           int                 `json:"stock"`
	Unit            string              `json:"unit"`
	Images          types.DocumentList  `json:"images,omitempty"`
	ProductStatus   types.ProductStatus `json:"product_status"`
	Available       bool                `json:"available"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type ListProductsResponse = types.ListResponse[*ProductResponse]

func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Stock:           p.Stock,
		Unit:            p.Unit,
		Images:          p.Images,
		ProductStatus:   p.ProductStatus,
		Available:       p.IsAvailable(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *CreateProductRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	status := r.ProductStatus
	if status == "" {
		status = types.ProductStatusDraft
	}
	return &product.Product{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Stock:         r.Stock,
		Unit:          r.Unit,
		Images:        r.Images,
		ProductStatus: status,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// Apply copies the set fields onto an existing product.
func (r *UpdateProductRequest) Apply(p *product.Product) {
	if r.CategoryID != nil {
		p.CategoryID = *r.CategoryID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.OriginalPrice != nil {
		p.OriginalPrice = r.OriginalPrice
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	if r.Images != nil {
		p.Images = *r.Images
	}
	if r.ProductStatus != nil {
		p.ProductStatus = *r.ProductStatus
	}
}
