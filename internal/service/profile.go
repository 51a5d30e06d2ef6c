package service

import (
	"context"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type ProfileService interface {
	GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetRole(ctx context.Context, id string) (types.UserRole, error)
}

type profileService struct {
	ServiceParams
}

func NewProfileService(params ServiceParams) ProfileService {
	return &profileService{ServiceParams: params}
}

func (s *profileService) GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	record, err := s.ProfileRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProfileResponse(record), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.ProfileRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(record)
	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProfileRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return dto.ToProfileResponse(record), nil
}

// GetRole looks up the role for an auth subject. Missing profiles get
// the plain user role so a half-provisioned account is never elevated.
func (s *profileService) GetRole(ctx context.Context, id string) (types.UserRole, error) {
	record, err := s.ProfileRepo.Get(ctx, id)
	if err != nil {
		return types.UserRoleUser, err
	}
	return record.Role, nil
}
