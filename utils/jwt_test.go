package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	brandID := uuid.New()

	token, err := GenerateJWT(userID, "pro", &brandID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("sub = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "pro" {
		t.Errorf("role = %q, want %q", claims.Role, "pro")
	}
	if claims.BrandID == nil || *claims.BrandID != brandID {
		t.Errorf("brand_id = %v, want %s", claims.BrandID, brandID)
	}
}

func TestParseJWTBrandless(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(uuid.New(), "super_admin", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.BrandID != nil {
		t.Errorf("brand_id = %v, want nil", claims.BrandID)
	}
}

func TestParseJWTExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestParseJWTTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(uuid.New(), "user", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	last := token[len(token)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := token[:len(token)-1] + string(flip)

	if _, err := ParseJWT(tampered); !errors.Is(err, ErrTokenSignature) {
		t.Errorf("err = %v, want ErrTokenSignature", err)
	}
}

func TestParseJWTMalformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseJWT("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("err = %v, want ErrTokenMalformed", err)
	}
}

func TestTokenTTLDefault(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_MINUTES", "")
	if got := TokenTTL(); got != 60*time.Minute {
		t.Errorf("default TTL = %v, want 60m", got)
	}
	t.Setenv("ACCESS_TOKEN_MINUTES", "15")
	if got := TokenTTL(); got != 15*time.Minute {
		t.Errorf("TTL = %v, want 15m", got)
	}
}
