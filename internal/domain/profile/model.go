package profile

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// Profile is the role record attached to an authenticated account.
// The ID is the auth provider's subject so lookups need no join table.
type Profile struct {
	// ID is the auth subject of the account
	ID string `db:"id" json:"id"`

	// Email mirrors the auth provider's email for display
	Email string `db:"email" json:"email"`

	// FullName is the display name
	FullName string `db:"full_name" json:"full_name"`

	// Phone is the contact number
	Phone string `db:"phone" json:"phone"`

	// Address is the home address
	Address string `db:"address" json:"address"`

	// Role drives the role gate: user, operator or admin
	Role types.UserRole `db:"role" json:"role"`

	types.BaseModel
}

func (p *Profile) Validate() error {
	if p.ID == "" {
		return ierr.NewError("profile id is required").
			WithHint("Profiles must be keyed by the auth subject").
			Mark(ierr.ErrValidation)
	}
	if !p.Role.Validate() {
		return ierr.NewErrorf("invalid role: %s", p.Role).
			WithHint("Role must be user, operator or admin").
			Mark(ierr.ErrValidation)
	}
	return nil
}
