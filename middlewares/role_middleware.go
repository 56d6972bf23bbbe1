package middlewares

import (
	"net/http"

	"fitbrand-backend/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the listed roles. Super admins pass
// every gate.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(Role(c))
		if role == models.RoleSuperAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
