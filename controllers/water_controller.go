package controllers

import (
	"net/http"
	"time"

	"fitbrand-backend/middlewares"
	"fitbrand-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaterAPI interface {
	Add(brandID, userID uuid.UUID, ml int, at time.Time) (*models.WaterLog, error)
	Today(userID uuid.UUID, at time.Time) (int, error)
	History(userID uuid.UUID, from, to time.Time) ([]models.WaterLog, error)
}

type WaterController struct {
	svc WaterAPI
}

func NewWaterController(svc WaterAPI) *WaterController {
	return &WaterController{svc: svc}
}

type WaterInput struct {
	Ml int `json:"ml" binding:"required,gt=0"`
}

// Add logs intake for today; repeated calls accumulate into the same row.
func (ctl *WaterController) Add(c *gin.Context) {
	brandID, ok := requireBrand(c)
	if !ok {
		return
	}
	var input WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ctl.svc.Add(brandID, middlewares.UserID(c), input.Ml, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"log_date": row.LogDate.Format("2006-01-02"), "ml": row.Ml})
}

func (ctl *WaterController) Today(c *gin.Context) {
	ml, err := ctl.svc.Today(middlewares.UserID(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ml": ml})
}

// History serves ?from=YYYY-MM-DD&to=YYYY-MM-DD, defaulting to the last
// 30 days.
func (ctl *WaterController) History(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if raw := c.Query("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			from = t
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			to = t
		}
	}
	rows, err := ctl.svc.History(middlewares.UserID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
