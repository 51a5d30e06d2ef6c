package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

func testAuthConfig() *config.Configuration {
	return &config.Configuration{
		Auth: config.AuthConfig{
			Provider: types.AuthProviderLocal,
			Secret:   "test-secret",
			APIKey: config.APIKeyConfig{
				Header: "x-api-key",
				Keys: map[string]config.APIKeyDetails{
					auth.HashAPIKey("ops-key"): {UserID: "user_ops", Name: "ops"},
				},
			},
		},
	}
}

// guestRouter exposes one public route that echoes the identity the
// middleware resolved.
func guestRouter(cfg *config.Configuration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GuestAuthenticateMiddleware(cfg, logger.NewNopLogger()))
	router.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"user_id": types.GetUserID(ctx),
			"staff":   types.GetUserRole(ctx).IsStaff(),
		})
	})
	return router
}

func TestGuestMiddlewareWithoutCredentials(t *testing.T) {
	router := guestRouter(testAuthConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), types.DefaultUserID)
}

func TestGuestMiddlewareAttachesBearerIdentity(t *testing.T) {
	cfg := testAuthConfig()
	provider := auth.NewLocalAuth(cfg)
	resp, err := provider.SignUp(context.Background(), auth.AuthRequest{
		Email:    "warga@tempursari.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	router := guestRouter(cfg)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(types.HeaderAuthorization, "Bearer "+resp.AuthToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), resp.ID)
	assert.NotContains(t, w.Body.String(), types.DefaultUserID)
}

func TestGuestMiddlewareFallsBackOnBadToken(t *testing.T) {
	router := guestRouter(testAuthConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(types.HeaderAuthorization, "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	// a broken token must not block anonymous submission
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), types.DefaultUserID)
}

func TestGuestMiddlewareAttachesAPIKeyIdentity(t *testing.T) {
	router := guestRouter(testAuthConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-api-key", "ops-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_ops")
	assert.Contains(t, w.Body.String(), `"staff":true`)
}

type stubProfileService struct {
	roles map[string]types.UserRole
}

func (s *stubProfileService) GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	return nil, ierr.NewError("not implemented").Mark(ierr.ErrSystem)
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return nil, ierr.NewError("not implemented").Mark(ierr.ErrSystem)
}

func (s *stubProfileService) GetRole(ctx context.Context, id string) (types.UserRole, error) {
	role, ok := s.roles[id]
	if !ok {
		return "", ierr.NewError("profile not found").Mark(ierr.ErrNotFound)
	}
	return role, nil
}

func staffRouter(roles map[string]types.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	permission := NewPermissionMiddleware(&stubProfileService{roles: roles}, logger.NewNopLogger())

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(func(c *gin.Context) {
		if userID := c.GetHeader("x-test-user"); userID != "" {
			c.Request = c.Request.WithContext(types.SetUserID(c.Request.Context(), userID))
		}
		c.Next()
	}, permission.RequireStaff())
	admin.GET("/requests", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireStaffRefusesAnonymous(t *testing.T) {
	router := staffRouter(map[string]types.UserRole{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireStaffRefusesPlainUser(t *testing.T) {
	router := staffRouter(map[string]types.UserRole{
		"user_warga": types.UserRoleUser,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
	req.Header.Set("x-test-user", "user_warga")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireStaffAllowsOperator(t *testing.T) {
	router := staffRouter(map[string]types.UserRole{
		"user_petugas": types.UserRoleOperator,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
	req.Header.Set("x-test-user", "user_petugas")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
