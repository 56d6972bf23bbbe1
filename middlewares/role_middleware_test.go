package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitbrand-backend/models"

	"github.com/gin-gonic/gin"
)

func roleRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	})
	r.GET("/plans", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"super_admin", http.StatusOK}, // super admin passes every gate
		{"pro", http.StatusForbidden},
		{"user", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/plans", nil)
		w := httptest.NewRecorder()
		roleRouter(tc.role).ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("role %q: status = %d, want %d", tc.role, w.Code, tc.want)
		}
	}
}
