package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/service"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// PermissionMiddleware gates route groups on the profile role of the
// authenticated subject.
type PermissionMiddleware struct {
	profileService service.ProfileService
	logger         *logger.Logger
}

func NewPermissionMiddleware(profileService service.ProfileService, logger *logger.Logger) *PermissionMiddleware {
	return &PermissionMiddleware{
		profileService: profileService,
		logger:         logger,
	}
}

// RequireStaff allows only operator and admin roles through. It also
// stores the resolved role in the request context.
func (pm *PermissionMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// API key callers are provisioned as admin by the auth middleware
		if role := types.GetUserRole(ctx); role.IsStaff() {
			c.Next()
			return
		}

		userID := types.GetUserID(ctx)
		if userID == "" || userID == types.DefaultUserID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		role, err := pm.profileService.GetRole(ctx, userID)
		if err != nil {
			pm.logger.Errorw("failed to resolve role", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		if !role.IsStaff() {
			pm.logger.Debugw("role gate refused request",
				"user_id", userID,
				"role", role,
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Request = c.Request.WithContext(types.SetUserRole(ctx, role))
		c.Next()
	}
}
