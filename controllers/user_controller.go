package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserAPI interface {
	GetByID(id uuid.UUID) (*models.User, error)
	List(brandID *uuid.UUID, role models.UserRole) ([]models.User, error)
	Deactivate(id uuid.UUID) error
	UpdateSubscription(id uuid.UUID, planID *uuid.UUID, status models.SubscriptionStatus, validUntil *time.Time) error
	StartChallenge(id uuid.UUID) error
}

type UserController struct {
	svc UserAPI
}

func NewUserController(svc UserAPI) *UserController {
	return &UserController{svc: svc}
}

// GetProfile serves GET /user/profile for the authenticated user.
func (ctl *UserController) GetProfile(c *gin.Context) {
	user, err := ctl.svc.GetByID(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// StartChallenge stamps the challenge funnel start for the current user.
func (ctl *UserController) StartChallenge(c *gin.Context) {
	if err := ctl.svc.StartChallenge(middlewares.UserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers is the admin listing, filtered by the request's brand and an
// optional ?role= query.
func (ctl *UserController) ListUsers(c *gin.Context) {
	role := models.UserRole(c.Query("role"))
	users, err := ctl.svc.List(middlewares.BrandID(c), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) DeactivateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
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

type SubscriptionInput struct {
	PlanID         *uuid.UUID                `json:"plan_id"`
	Status         models.SubscriptionStatus `json:"status" binding:"required,oneof=free active canceled past_due expired"`
	PlanValidUntil *time.Time                `json:"plan_valid_until"`
}

// UpdateSubscription lets an admin override what the webhook processor
// normally drives.
func (ctl *UserController) UpdateSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var input SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.svc.UpdateSubscription(id, input.PlanID, input.Status, input.PlanValidUntil); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
