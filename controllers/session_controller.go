package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionAPI interface {
	Start(brandID, userID, templateID uuid.UUID, date time.Time) (*models.WorkoutSession, error)
	SetItemDone(userID, sessionID, itemID uuid.UUID, done bool) error
	Complete(userID, sessionID uuid.UUID) error
	Get(userID, sessionID uuid.UUID) (*models.WorkoutSession, error)
	History(userID uuid.UUID, limit int) ([]models.WorkoutSession, error)
}

type SessionController struct {
	svc SessionAPI
}

func NewSessionController(svc SessionAPI) *SessionController {
	return &SessionController{svc: svc}
}

type SessionStartInput struct {
	WorkoutTemplateID uuid.UUID  `json:"workout_template_id" binding:"required"`
	Date              *time.Time `json:"date"` // defaults to today
}

func (ctl *SessionController) Start(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input SessionStartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	session, err := ctl.svc.Start(brandID, middlewares.UserID(c), input.WorkoutTemplateID, date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workout template not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

type ItemDoneInput struct {
	IsDone *bool `json:"is_done" binding:"required"`
}

func (ctl *SessionController) SetItemDone(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	var input ItemDoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.svc.SetItemDone(middlewares.UserID(c), sessionID, itemID, *input.IsDone); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *SessionController) Complete(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.Complete(middlewares.UserID(c), sessionID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *SessionController) Get(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	session, err := ctl.svc.Get(middlewares.UserID(c), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (ctl *SessionController) History(c *gin.Context) {
	// invalid limits fall back to the service default
	limit, _ := strconv.Atoi(c.Query("limit"))
	sessions, err := ctl.svc.History(middlewares.UserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
