package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"fitbrand-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserID  = "userID"
	ctxRole    = "role"
	ctxBrandID = "brandID"
	ctxBrand   = "brand"
)

// AuthMiddleware validates the bearer token and loads its claims into the
// request context. Expired tokens get their own message so clients know
// to re-login; everything else is just invalid.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		if claims.BrandID != nil {
			c.Set(ctxBrandID, *claims.BrandID)
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id. Only valid behind
// AuthMiddleware.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet(ctxUserID).(uuid.UUID)
	return id
}

func Role(c *gin.Context) string {
	return c.GetString(ctxRole)
}

// BrandID returns the tenant in effect for this request: the resolved
// brand when tenant middleware matched one, otherwise the token's brand
// claim. Nil for brand-less (super admin) requests.
func BrandID(c *gin.Context) *uuid.UUID {
	if v, ok := c.Get(ctxBrandID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return &id
		}
	}
	return nil
}
