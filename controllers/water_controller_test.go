package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mockWater keeps one accumulating row per day like the real service.
type mockWater struct {
	rows map[string]*models.WaterLog
}

func newMockWater() *mockWater {
	return &mockWater{rows: map[string]*models.WaterLog{}}
}

func (m *mockWater) key(userID uuid.UUID, at time.Time) string {
	return userID.String() + services.DayStart(at).Format("2006-01-02")
}

func (m *mockWater) Add(brandID, userID uuid.UUID, ml int, at time.Time) (*models.WaterLog, error) {
	k := m.key(userID, at)
	if row, ok := m.rows[k]; ok {
		row.Ml += ml
		return row, nil
	}
	row := &models.WaterLog{BrandID: brandID, UserID: userID, LogDate: services.DayStart(at), Ml: ml}
	m.rows[k] = row
	return row, nil
}

func (m *mockWater) Today(userID uuid.UUID, at time.Time) (int, error) {
	if row, ok := m.rows[m.key(userID, at)]; ok {
		return row.Ml, nil
	}
	return 0, nil
}

func (m *mockWater) History(userID uuid.UUID, from, to time.Time) ([]models.WaterLog, error) {
	var out []models.WaterLog
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func waterRouter(m *mockWater, brandID, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("brandID", brandID)
		c.Set("userID", userID)
		c.Next()
	})
	ctl := NewWaterController(m)
	r.POST("/user/water", ctl.Add)
	r.GET("/user/water", ctl.Today)
	return r
}

func TestWaterAdd_accumulatesSameDay(t *testing.T) {
	m := newMockWater()
	r := waterRouter(m, uuid.New(), uuid.New())

	for i := 0; i < 2; i++ {
		if w := postJSON(t, r, "/user/water", map[string]int{"ml": 300}); w.Code != http.StatusOK {
			t.Fatalf("post %d: status = %d: %s", i, w.Code, w.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/user/water", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Ml int `json:"ml"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Ml != 600 {
		t.Errorf("ml = %d, want 600 (single accumulated row)", resp.Ml)
	}
	if len(m.rows) != 1 {
		t.Errorf("rows = %d, want 1", len(m.rows))
	}
}

func TestWaterAdd_rejectsNonPositive(t *testing.T) {
	m := newMockWater()
	r := waterRouter(m, uuid.New(), uuid.New())

	if w := postJSON(t, r, "/user/water", map[string]int{"ml": 0}); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if w := postJSON(t, r, "/user/water", map[string]int{"ml": -50}); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(m.rows) != 0 {
		t.Error("service reached for invalid ml")
	}
}
