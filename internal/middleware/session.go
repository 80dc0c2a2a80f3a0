// internal/middleware/session.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

// SessionRequired resolves the "Bearer <token>" header into a session id.
func SessionRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, i18n.T(i18n.KeySessionRequired))
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(i18n.KeySessionInvalid))
			return
		}

		sessionID, err := sessions.Resolve(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, i18n.T(i18n.KeySessionInvalid))
			return
		}

		c.Set(utils.ContextKeySessionID, sessionID)
		c.Next()
	}
}
