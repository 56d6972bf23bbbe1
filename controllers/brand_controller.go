package controllers

import (
	"errors"
	"net/http"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BrandAPI interface {
	Create(in services.BrandInput) (*models.Brand, error)
	List() ([]models.Brand, error)
	GetByID(id uuid.UUID) (*models.Brand, error)
	Update(id uuid.UUID, in services.BrandInput) (*models.Brand, error)
	Deactivate(id uuid.UUID) error
}

type BrandController struct {
	svc BrandAPI
}

func NewBrandController(svc BrandAPI) *BrandController {
	return &BrandController{svc: svc}
}

type BrandCreateInput struct {
	Name           string  `json:"name" binding:"required,min=2,max=120"`
	Slug           string  `json:"slug" binding:"required,min=2,max=60"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

func (ctl *BrandController) Create(c *gin.Context) {
	var input BrandCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	brand, err := ctl.svc.Create(services.BrandInput{
		Name:           input.Name,
		Slug:           input.Slug,
		LogoURL:        input.LogoURL,
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
	})
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (ctl *BrandController) List(c *gin.Context) {
	brands, err := ctl.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (ctl *BrandController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}
	brand, err := ctl.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brand)
}

type BrandUpdateInput struct {
	Name           string  `json:"name"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

// Update never touches the slug: it is the tenant key.
func (ctl *BrandController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}
	var input BrandUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	brand, err := ctl.svc.Update(id, services.BrandInput{
		Name:           input.Name,
		LogoURL:        input.LogoURL,
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (ctl *BrandController) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}
	if err := ctl.svc.Deactivate(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
