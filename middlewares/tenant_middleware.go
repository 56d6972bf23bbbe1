package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
)

// BrandResolver is the slice of the brand service tenant resolution needs.
type BrandResolver interface {
	GetActiveBySlug(slug string) (*models.Brand, error)
}

// TenantMiddleware resolves the brand for a request from the X-Brand-Slug
// header, falling back to the first label of the Host. An explicit slug
// that matches no active brand is a hard 404; requests with no tenant
// hint pass through brand-less (super-admin login still works there, and
// registration rejects them downstream).
func TenantMiddleware(brands BrandResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.GetHeader("X-Brand-Slug"))
		explicit := slug != ""
		if slug == "" {
			slug = subdomain(c.Request.Host)
		}
		if slug == "" {
			c.Next()
			return
		}

		brand, err := brands.GetActiveBySlug(slug)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				if explicit {
					c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "brand not found"})
					return
				}
				// unrecognized subdomain (www, api, ...): not a tenant
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not resolve brand"})
			return
		}

		c.Set(ctxBrand, brand)
		c.Set(ctxBrandID, brand.ID)
		c.Next()
	}
}

// subdomain extracts the tenant label from hosts like
// "acmefit.fitbrand.app:443"; bare or two-label hosts have none.
func subdomain(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	return labels[0]
}

// Brand returns the resolved tenant, nil when the request is brand-less.
func Brand(c *gin.Context) *models.Brand {
	if v, ok := c.Get(ctxBrand); ok {
		if brand, ok := v.(*models.Brand); ok {
			return brand
		}
	}
	return nil
}
