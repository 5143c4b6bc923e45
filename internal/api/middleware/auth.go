package middleware

import (
	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/repository"
	"leadportaal/internal/service"
	"leadportaal/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards dashboard routes behind the session cookie
type AuthMiddleware struct {
	auth  *service.AuthService
	users repository.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(auth *service.AuthService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		auth:  auth,
		users: users,
	}
}

// RequireAuth verifies the token cookie and loads the user into the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieToken)
		if err != nil || token == "" {
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := m.auth.VerifyToken(token)
		if err != nil {
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		user, err := m.users.GetByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			// The token outlived the account, e.g. after a reseed.
			utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}
