package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type mockBrands struct {
	brands map[string]*models.Brand
}

func (m *mockBrands) GetActiveBySlug(slug string) (*models.Brand, error) {
	if brand, ok := m.brands[slug]; ok {
		return brand, nil
	}
	return nil, services.ErrNotFound
}

func tenantRouter(m *mockBrands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", TenantMiddleware(m), func(c *gin.Context) {
		if brand := Brand(c); brand != nil {
			c.JSON(http.StatusOK, gin.H{"brand": brand.Slug})
			return
		}
		c.JSON(http.StatusOK, gin.H{"brand": nil})
	})
	return r
}

func TestTenantMiddleware_headerSlug(t *testing.T) {
	acme := &models.Brand{ID: uuid.New(), Slug: "acmefit", IsActive: true}
	r := tenantRouter(&mockBrands{brands: map[string]*models.Brand{"acmefit": acme}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Brand-Slug", "acmefit")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"brand":"acmefit"}` {
		t.Errorf("body = %s", body)
	}
}

func TestTenantMiddleware_unknownHeaderSlug(t *testing.T) {
	r := tenantRouter(&mockBrands{brands: map[string]*models.Brand{}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Brand-Slug", "nope")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestTenantMiddleware_subdomainFallback(t *testing.T) {
	acme := &models.Brand{ID: uuid.New(), Slug: "acmefit", IsActive: true}
	r := tenantRouter(&mockBrands{brands: map[string]*models.Brand{"acmefit": acme}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = "acmefit.fitbrand.app"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"brand":"acmefit"}` {
		t.Errorf("body = %s", body)
	}
}

func TestTenantMiddleware_noTenantHint(t *testing.T) {
	r := tenantRouter(&mockBrands{brands: map[string]*models.Brand{}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = "fitbrand.app"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"brand":null}` {
		t.Errorf("body = %s", body)
	}
}

func TestSubdomain(t *testing.T) {
	cases := []struct{ host, want string }{
		{"acmefit.fitbrand.app", "acmefit"},
		{"acmefit.fitbrand.app:8080", "acmefit"},
		{"fitbrand.app", ""},
		{"localhost:8080", ""},
	}
	for _, tc := range cases {
		if got := subdomain(tc.host); got != tc.want {
			t.Errorf("subdomain(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}
