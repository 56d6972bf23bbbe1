package controllers

import (
	"errors"
	"net/http"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkoutAPI interface {
	CreateTemplate(brandID uuid.UUID, title string, description *string, exercises []services.ExerciseInput) (*models.WorkoutTemplate, error)
	ListTemplates(brandID uuid.UUID) ([]models.WorkoutTemplate, error)
	GetTemplate(brandID, id uuid.UUID) (*models.WorkoutTemplate, error)
	UpdateTemplate(brandID, id uuid.UUID, title string, description *string) (*models.WorkoutTemplate, error)
	ReplaceExercises(brandID, id uuid.UUID, exercises []services.ExerciseInput) (*models.WorkoutTemplate, error)
	DeleteTemplate(brandID, id uuid.UUID) error
}

type WorkoutController struct {
	svc WorkoutAPI
}

func NewWorkoutController(svc WorkoutAPI) *WorkoutController {
	return &WorkoutController{svc: svc}
}

type TemplateInput struct {
	Title       string                   `json:"title" binding:"required,min=2,max=200"`
	Description *string                  `json:"description"`
	Exercises   []services.ExerciseInput `json:"exercises" binding:"dive"`
}

func (ctl *WorkoutController) Create(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	template, err := ctl.svc.CreateTemplate(brandID, input.Title, input.Description, input.Exercises)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (ctl *WorkoutController) List(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	templates, err := ctl.svc.ListTemplates(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (ctl *WorkoutController) Get(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	template, err := ctl.svc.GetTemplate(brandID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, template)
}

type TemplateUpdateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (ctl *WorkoutController) Update(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input TemplateUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	template, err := ctl.svc.UpdateTemplate(brandID, id, input.Title, input.Description)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, template)
}

type ExercisesInput struct {
	Exercises []services.ExerciseInput `json:"exercises" binding:"required,dive"`
}

// ReplaceExercises swaps the full exercise list, renumbering sort order.
func (ctl *WorkoutController) ReplaceExercises(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input ExercisesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	template, err := ctl.svc.ReplaceExercises(brandID, id, input.Exercises)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, template)
}

func (ctl *WorkoutController) Delete(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.DeleteTemplate(brandID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
