package controllers

import (
	"net/http"
	"testing"
	"time"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type mockSessions struct {
	started map[string]bool // (user, template, date)
}

func (m *mockSessions) Start(brandID, userID, templateID uuid.UUID, date time.Time) (*models.WorkoutSession, error) {
	if m.started == nil {
		m.started = map[string]bool{}
	}
	k := userID.String() + templateID.String() + services.DayStart(date).Format("2006-01-02")
	if m.started[k] {
		return nil, services.ErrSessionExists
	}
	m.started[k] = true
	return &models.WorkoutSession{
		ID:                uuid.New(),
		BrandID:           brandID,
		UserID:            userID,
		WorkoutTemplateID: templateID,
		SessionDate:       services.DayStart(date),
	}, nil
}

func (m *mockSessions) SetItemDone(userID, sessionID, itemID uuid.UUID, done bool) error { return nil }
func (m *mockSessions) Complete(userID, sessionID uuid.UUID) error                       { return nil }
func (m *mockSessions) Get(userID, sessionID uuid.UUID) (*models.WorkoutSession, error) {
	return nil, services.ErrNotFound
}
func (m *mockSessions) History(userID uuid.UUID, limit int) ([]models.WorkoutSession, error) {
	return nil, nil
}

func sessionRouter(m *mockSessions, brandID, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("brandID", brandID)
		c.Set("userID", userID)
		c.Next()
	})
	ctl := NewSessionController(m)
	r.POST("/user/sessions", ctl.Start)
	return r
}

func TestSessionStart_sameDayConflicts(t *testing.T) {
	m := &mockSessions{}
	r := sessionRouter(m, uuid.New(), uuid.New())
	templateID := uuid.New()

	body := map[string]any{"workout_template_id": templateID}

	if w := postJSON(t, r, "/user/sessions", body); w.Code != http.StatusCreated {
		t.Fatalf("first start: status = %d: %s", w.Code, w.Body.String())
	}
	if w := postJSON(t, r, "/user/sessions", body); w.Code != http.StatusConflict {
		t.Fatalf("second start: status = %d, want 409", w.Code)
	}
}
