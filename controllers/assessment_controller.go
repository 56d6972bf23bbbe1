package controllers

import (
	"net/http"

	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentAPI interface {
	Append(brandID, userID uuid.UUID, data datatypes.JSONMap) (*models.UserAssessment, error)
	List(brandID, userID uuid.UUID) ([]models.UserAssessment, error)
}

type AssessmentController struct {
	svc AssessmentAPI
}

func NewAssessmentController(svc AssessmentAPI) *AssessmentController {
	return &AssessmentController{svc: svc}
}

type AssessmentInput struct {
	Data datatypes.JSONMap `json:"data" binding:"required"`
}

func (ctl *AssessmentController) Create(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assessment, err := ctl.svc.Append(brandID, middlewares.UserID(c), input.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

func (ctl *AssessmentController) List(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	assessments, err := ctl.svc.List(brandID, middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assessments)
}
