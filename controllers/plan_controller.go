package controllers

import (
	"errors"
	"net/http"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanAPI interface {
	Create(brandID uuid.UUID, in services.PlanInput) (*models.Plan, error)
	ListByBrand(brandID uuid.UUID) ([]models.Plan, error)
	GetByID(brandID, id uuid.UUID) (*models.Plan, error)
	Update(brandID, id uuid.UUID, in services.PlanInput) (*models.Plan, error)
	Deactivate(brandID, id uuid.UUID) error
}

type PlanController struct {
	svc PlanAPI
}

func NewPlanController(svc PlanAPI) *PlanController {
	return &PlanController{svc: svc}
}

type PlanCreateInput struct {
	Name              string  `json:"name" binding:"required,min=2,max=120"`
	Price             float64 `json:"price" binding:"gte=0"`
	DurationMonths    int     `json:"duration_months" binding:"gte=1"`
	ExternalProductID *string `json:"external_product_id"`
}

func (ctl *PlanController) Create(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input PlanCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.svc.Create(brandID, services.PlanInput{
		Name:              input.Name,
		Price:             input.Price,
		DurationMonths:    input.DurationMonths,
		ExternalProductID: input.ExternalProductID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ctl *PlanController) List(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	plans, err := ctl.svc.ListByBrand(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ctl *PlanController) Get(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	plan, err := ctl.svc.GetByID(brandID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *PlanController) Update(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input PlanCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.svc.Update(brandID, id, services.PlanInput{
		Name:              input.Name,
		Price:             input.Price,
		DurationMonths:    input.DurationMonths,
		ExternalProductID: input.ExternalProductID,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *PlanController) Deactivate(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.Deactivate(brandID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
