package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eldercare-backend/pkg/utils"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
)

// Auth verifies the raw token in the Authorization header (no "Bearer "
// prefix) and attaches the caller's identity to the request context.
// Rejection happens before any handler logic runs.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			utils.APIResponse(c, http.StatusForbidden, false, "No token provided", nil)
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(secret, token)
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}
