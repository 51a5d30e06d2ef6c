package dto

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/category"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListCategoriesResponse = types.ListResponse[*CategoryResponse]

func ToCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *CreateCategoryRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *CreateCategoryRequest) ToCategory(ctx context.Context) *category.Category {
	return &category.Category{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATEGORY),
		Name:         r.Name,
		Description:  r.Description,
		DisplayOrder: r.DisplayOrder,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateCategoryRequest) Apply(c *category.Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.DisplayOrder != nil {
		c.DisplayOrder = *r.DisplayOrder
	}
}
