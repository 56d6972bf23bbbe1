package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitbrand-backend/models"
	"fitbrand-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type mockAuth struct {
	registerErr  error
	loginErr     error
	token        string
	lastEmail    string
	lastBrandID  *uuid.UUID
	registerCall int
	loginCall    int
}

func (m *mockAuth) Register(brandID *uuid.UUID, name, email, phone, password string) (*models.User, error) {
	m.registerCall++
	m.lastBrandID = brandID
	m.lastEmail = email
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &models.User{ID: uuid.New(), Email: services.NormalizeEmail(email)}, nil
}

func (m *mockAuth) Login(brandID *uuid.UUID, email, password string) (string, error) {
	m.loginCall++
	m.lastBrandID = brandID
	m.lastEmail = email
	if m.loginErr != nil {
		return "", m.loginErr
	}
	return m.token, nil
}

// withBrand injects the tenant the way the tenant middleware would.
func withBrand(brandID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("brandID", brandID)
		c.Next()
	}
}

func authRouter(m *mockAuth, brandID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewAuthController(m)
	group := r.Group("/auth")
	if brandID != nil {
		group.Use(withBrand(*brandID))
	}
	group.POST("/register", ctl.Register)
	group.POST("/login", ctl.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_created(t *testing.T) {
	brandID := uuid.New()
	m := &mockAuth{}
	r := authRouter(m, &brandID)

	w := postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Ana Silva",
		"email":    "ana@x.com",
		"phone":    "+5511999990000",
		"password": "segredo1",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Error("missing id")
	}
	if resp.Email != "ana@x.com" {
		t.Errorf("email = %q", resp.Email)
	}
	if m.lastBrandID == nil || *m.lastBrandID != brandID {
		t.Error("brand not taken from request context")
	}
}

func TestRegister_duplicateEmail(t *testing.T) {
	brandID := uuid.New()
	m := &mockAuth{registerErr: services.ErrDuplicateEmail}
	r := authRouter(m, &brandID)

	w := postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Ana Silva",
		"email":    "ana@x.com",
		"phone":    "+5511888880000",
		"password": "segredo1",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRegister_shapeRejectedBeforeService(t *testing.T) {
	brandID := uuid.New()
	m := &mockAuth{}
	r := authRouter(m, &brandID)

	cases := []map[string]string{
		{"name": "A", "email": "ana@x.com", "phone": "+55", "password": "segredo1"},      // name too short
		{"name": "Ana", "email": "not-an-email", "phone": "+55", "password": "segredo1"}, // bad email
		{"name": "Ana", "email": "ana@x.com", "phone": "+55", "password": "short"},       // password too short
		{"name": "Ana", "email": "ana@x.com", "password": "segredo1"},                    // phone missing
	}
	for i, body := range cases {
		if w := postJSON(t, r, "/auth/register", body); w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, w.Code)
		}
	}
	if m.registerCall != 0 {
		t.Errorf("service reached %d times for invalid input", m.registerCall)
	}
}

func TestLogin_ok(t *testing.T) {
	brandID := uuid.New()
	m := &mockAuth{token: "signed.jwt.token"}
	r := authRouter(m, &brandID)

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "ANA@X.com",
		"password": "segredo1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "signed.jwt.token" {
		t.Errorf("access_token = %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", resp.TokenType)
	}
}

func TestLogin_invalidCredentials(t *testing.T) {
	brandID := uuid.New()
	m := &mockAuth{loginErr: services.ErrInvalidCredentials}
	r := authRouter(m, &brandID)

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "ana@x.com",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
