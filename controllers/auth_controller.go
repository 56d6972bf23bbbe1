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

// AuthAPI is what the auth endpoints need from the auth service.
type AuthAPI interface {
	Register(brandID *uuid.UUID, name, email, phone, password string) (*models.User, error)
	Login(brandID *uuid.UUID, email, password string) (string, error)
}

type AuthController struct {
	svc AuthAPI
}

func NewAuthController(svc AuthAPI) *AuthController {
	return &AuthController{svc: svc}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.svc.Register(middlewares.BrandID(c), input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail), errors.Is(err, services.ErrDuplicatePhone),
			errors.Is(err, services.ErrBrandRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.svc.Login(middlewares.BrandID(c), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
