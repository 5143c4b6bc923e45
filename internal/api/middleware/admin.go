package middleware

import (
	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/logging"
	"leadportaal/internal/models"
	"leadportaal/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware handles admin-only authorization
type AdminMiddleware struct{}

// NewAdminMiddleware creates a new admin middleware
func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// RequireAdmin middleware ensures the authenticated user has admin role
// This should be used AFTER RequireAuth middleware
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logging.GetGlobalLogger()

		userModel, exists := c.Get(constants.ContextKeyUser)
		if !exists {
			logger.Warn("Admin access attempted without authenticated user")
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		user, ok := userModel.(*models.User)
		if !ok {
			logger.Error("Invalid user type in context during admin check")
			utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Internal server error")
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			logger.Warn("Non-admin user attempted to access admin resource: userID=%s username=%s role=%s",
				user.ID, user.Username, user.Role)
			utils.HandleAPIError(c, nil, common.ErrCodeForbidden, "Admin access required")
			c.Abort()
			return
		}

		logger.Debug("Admin access granted for user: %s", user.ID)
		c.Next()
	}
}
