package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/edu-admin-api/internal/service"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
	"github.com/edupanel/edu-admin-api/pkg/response"
)

// ContextAdminKey is the gin context key storing the verified admin claims.
const ContextAdminKey = "currentAdmin"

// JWT protects routes by requiring a valid bearer token. The gate is pure:
// it either attaches verified claims or rejects with 401 before the handler
// runs.
func JWT(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "No token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "No token"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}
