package controllers

import (
	"errors"
	"net/http"

	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfessionalAPI interface {
	Assign(brandID, professionalID, userID uuid.UUID) (*models.ProfessionalUser, error)
	Unassign(brandID, professionalID, userID uuid.UUID) error
	ListClients(brandID, professionalID uuid.UUID) ([]models.User, error)
	ListProfessionals(brandID, userID uuid.UUID) ([]models.User, error)
}

type ProfessionalController struct {
	svc ProfessionalAPI
}

func NewProfessionalController(svc ProfessionalAPI) *ProfessionalController {
	return &ProfessionalController{svc: svc}
}

type AssignmentInput struct {
	ProfessionalID uuid.UUID `json:"professional_id" binding:"required"`
	UserID         uuid.UUID `json:"user_id" binding:"required"`
}

func (ctl *ProfessionalController) Assign(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assignment, err := ctl.svc.Assign(brandID, input.ProfessionalID, input.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAssignment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (ctl *ProfessionalController) Unassign(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.svc.Unassign(brandID, input.ProfessionalID, input.UserID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListClients serves the authenticated professional's client roster.
func (ctl *ProfessionalController) ListClients(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	clients, err := ctl.svc.ListClients(brandID, middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// ListProfessionals serves the authenticated client's assigned pros.
func (ctl *ProfessionalController) ListProfessionals(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	pros, err := ctl.svc.ListProfessionals(brandID, middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pros)
}
