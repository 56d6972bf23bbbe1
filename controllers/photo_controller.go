package controllers

import (
	"net/http"

	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PhotoAPI interface {
	Upload(brandID, userID uuid.UUID, photoType models.PhotoType, base64Data string) (*models.UserPhoto, error)
	List(brandID, userID uuid.UUID, photoType models.PhotoType) ([]models.UserPhoto, error)
}

type PhotoController struct {
	svc PhotoAPI
}

func NewPhotoController(svc PhotoAPI) *PhotoController {
	return &PhotoController{svc: svc}
}

type PhotoInput struct {
	PhotoType models.PhotoType `json:"photo_type" binding:"required,oneof=front back side_left side_right"`
	Image     string           `json:"image" binding:"required"` // data-URI base64
}

func (ctl *PhotoController) Upload(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input PhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	photo, err := ctl.svc.Upload(brandID, middlewares.UserID(c), input.PhotoType, input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (ctl *PhotoController) List(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	photos, err := ctl.svc.List(brandID, middlewares.UserID(c), models.PhotoType(c.Query("type")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, photos)
}
