package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/testutil"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service        AuthService
	profileService ProfileService
	profileRepo    *testutil.InMemoryProfileStore
	authRepo       *testutil.InMemoryAuthRepository
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *AuthServiceSuite) setupService() {
	stores := s.GetStores()
	s.profileRepo = stores.ProfileRepo.(*testutil.InMemoryProfileStore)
	s.authRepo = stores.AuthRepo.(*testutil.InMemoryAuthRepository)

	params := ServiceParams{
		Logger:                s.GetLogger(),
		Config:                s.GetConfig(),
		DB:                    s.GetDB(),
		AuthRepo:              stores.AuthRepo,
		ProfileRepo:           stores.ProfileRepo,
		ServiceRequestRepo:    stores.ServiceRequestRepo,
		ProductRepo:           stores.ProductRepo,
		CategoryRepo:          stores.CategoryRepo,
		CartRepo:              stores.CartRepo,
		OrderRepo:             stores.OrderRepo,
		NotificationPublisher: s.GetPublisher(),
		Client:                s.GetHTTPClient(),
	}
	s.service = NewAuthService(params)
	s.profileService = NewProfileService(params)
}

func (s *AuthServiceSuite) TestSignUp() {
	resp, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "warga@example.com",
		Password: "rahasia-sekali",
		FullName: "Siti Aminah",
		Phone:    "081234567890",
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.NotEmpty(resp.UserID)
	s.Equal(string(types.UserRoleUser), resp.Role)

	// profile persisted with default user role
	p, err := s.profileRepo.Get(s.GetContext(), resp.UserID)
	s.NoError(err)
	s.Equal("Siti Aminah", p.FullName)
	s.Equal(types.UserRoleUser, p.Role)

	// local provider stores a credential record
	a, err := s.authRepo.GetAuthByUserID(s.GetContext(), resp.UserID)
	s.NoError(err)
	s.Equal(types.AuthProviderLocal, a.Provider)
	s.NotEqual("rahasia-sekali", a.Token)
}

func (s *AuthServiceSuite) TestSignUpDuplicateEmail() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "warga@example.com",
		Password: "rahasia-sekali",
		FullName: "Siti Aminah",
	})
	s.NoError(err)

	_, err = s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "warga@example.com",
		Password: "password-lain",
		FullName: "Orang Lain",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AuthServiceSuite) TestLogin() {
	created, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "warga@example.com",
		Password: "rahasia-sekali",
		FullName: "Siti Aminah",
	})
	s.NoError(err)

	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "warga@example.com",
		Password: "rahasia-sekali",
	})
	s.NoError(err)
	s.Equal(created.UserID, resp.UserID)
	s.NotEmpty(resp.Token)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "warga@example.com",
		Password: "rahasia-sekali",
		FullName: "Siti Aminah",
	})
	s.NoError(err)

	_, err = s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "warga@example.com",
		Password: "salah-total",
	})
	s.Error(err)
}

func (s *AuthServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "tidak-ada@example.com",
		Password: "apapun-saja",
	})
	s.Error(err)
	s.True(ierr.IsUnauthorized(err))
}

func (s *AuthServiceSuite) TestGetRole() {
	created, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "operator@example.com",
		Password: "rahasia-sekali",
		FullName: "Pak Operator",
	})
	s.NoError(err)

	role, err := s.profileService.GetRole(s.GetContext(), created.UserID)
	s.NoError(err)
	s.Equal(types.UserRoleUser, role)
	s.False(role.IsStaff())

	p, err := s.profileRepo.Get(s.GetContext(), created.UserID)
	s.NoError(err)
	p.Role = types.UserRoleOperator
	s.NoError(s.profileRepo.Update(s.GetContext(), p))

	role, err = s.profileService.GetRole(s.GetContext(), created.UserID)
	s.NoError(err)
	s.True(role.IsStaff())
}
