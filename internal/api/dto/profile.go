package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type ProfileResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	FullName  string         `json:"full_name"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	Role      types.UserRole `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func ToProfileResponse(p *profile.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Address:   p.Address,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *UpdateProfileRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *UpdateProfileRequest) Apply(p *profile.Profile) {
	if r.FullName != nil {
		p.FullName = *r.FullName
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
}
