package category

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// Category groups products in the shop
type Category struct {
	// ID is the unique identifier for the category
	ID string `db:"id" json:"id"`

	// Name is the display name of the category
	Name string `db:"name" json:"name"`

	// Description is the optional category description
	Description string `db:"description" json:"description"`

	// DisplayOrder controls the ordering in catalogue views
	DisplayOrder int `db:"display_order" json:"display_order"`

	types.BaseModel
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return ierr.NewError("category name is required").
			WithHint("Category name must not be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
