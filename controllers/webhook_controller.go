package controllers

import (
	"net/http"
	"strconv"

	"fitbrand-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WebhookAPI interface {
	Ingest(brandID uuid.UUID, provider string, payload datatypes.JSONMap) (*models.PaymentWebhookEvent, error)
	ListEvents(brandID uuid.UUID, limit int) ([]models.PaymentWebhookEvent, error)
}

type WebhookController struct {
	svc WebhookAPI
}

func NewWebhookController(svc WebhookAPI) *WebhookController {
	return &WebhookController{svc: svc}
}

// Receive ingests POST /webhooks/:provider. The raw payload is always
// audited; recognized events additionally move the addressed user's
// subscription. 202 because processing is best-effort.
func (ctl *WebhookController) Receive(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var payload datatypes.JSONMap
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload must be a JSON object"})
		return
	}
	event, err := ctl.svc.Ingest(brandID, c.Param("provider"), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event could not be stored"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": event.ID})
}

// ListEvents is the admin audit view.
func (ctl *WebhookController) ListEvents(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := ctl.svc.ListEvents(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}
