package service

import (
	"context"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	authProvider "github.com/kethil/tempursarihubstore-sub000/internal/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
	authProvider authProvider.Provider
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{
		ServiceParams: params,
		authProvider:  authProvider.NewProvider(params.Config),
	}
}

// SignUp creates a new account with the auth provider and the matching
// profile record with the default user role.
func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, _ := s.ProfileRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ierr.NewError("account already exists").
			WithHint("An account with this email already exists").
			WithReportableDetails(map[string]interface{}{
				"email": req.Email,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	authResponse, err := s.authProvider.SignUp(ctx, authProvider.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	newProfile := &profile.Profile{
		ID:        authResponse.ID,
		Email:     req.Email,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Role:      types.UserRoleUser,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	newProfile.CreatedBy = authResponse.ID
	newProfile.UpdatedBy = authResponse.ID

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if s.authProvider.GetProvider() == types.AuthProviderLocal {
			record := auth.NewAuth(authResponse.ID, s.authProvider.GetProvider(), authResponse.ProviderToken)
			if err := s.AuthRepo.CreateAuth(ctx, record); err != nil {
				return err
			}
		}
		return s.ProfileRepo.Create(ctx, newProfile)
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:  authResponse.AuthToken,
		UserID: authResponse.ID,
		Role:   string(newProfile.Role),
	}, nil
}

// Login authenticates an account and returns an auth token together
// with the profile role the caller's UI gates on.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userProfile, err := s.ProfileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("invalid credentials").
				WithHint("Invalid email or password").
				Mark(ierr.ErrUnauthorized)
		}
		return nil, err
	}

	var userAuthInfo *auth.Auth
	if s.authProvider.GetProvider() == types.AuthProviderLocal {
		userAuthInfo, err = s.AuthRepo.GetAuthByUserID(ctx, userProfile.ID)
		if err != nil {
			return nil, err
		}
	}

	authResponse, err := s.authProvider.Login(ctx, authProvider.AuthRequest{
		UserID:   userProfile.ID,
		Email:    req.Email,
		Password: req.Password,
	}, userAuthInfo)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:  authResponse.AuthToken,
		UserID: userProfile.ID,
		Role:   string(userProfile.Role),
	}, nil
}
