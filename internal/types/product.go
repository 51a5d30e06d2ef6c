package types

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// ProductStatus is the shop visibility status of a product.
type ProductStatus string

const (
	ProductStatusDraft      ProductStatus = "draft"
	ProductStatusPublished  ProductStatus = "published"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
	ProductStatusArchived   ProductStatus = "archived"
)

func (s ProductStatus) Validate() error {
	switch s {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusOutOfStock, ProductStatusArchived:
		return nil
	}
	return ierr.NewErrorf("invalid product status: %s", s).
		WithHint("Unknown product status").
		Mark(ierr.ErrValidation)
}

// ProductFilter filters product listings.
type ProductFilter struct {
	*QueryFilter
	*TimeRangeFilter
	CategoryID      string          `json:"category_id,omitempty" form:"category_id"`
	ProductStatuses []ProductStatus `json:"product_statuses,omitempty" form:"product_statuses"`
	Search          string          `json:"search,omitempty" form:"search"`
}

func NewProductFilter() *ProductFilter {
	return &ProductFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *ProductFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.ProductStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *ProductFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *ProductFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *ProductFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
