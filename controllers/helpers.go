package controllers

import (
	"net/http"

	"fitbrand-backend/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireBrand fetches the request's tenant or answers 400. Brand-scoped
// surfaces cannot run for brand-less (super admin without tenant header)
// requests.
func requireBrand(c *gin.Context) (uuid.UUID, bool) {
	if id := middlewares.BrandID(c); id != nil {
		return *id, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "brand could not be resolved for this request"})
	return uuid.Nil, false
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
