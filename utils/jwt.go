package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token failures are surfaced as distinct errors so callers can tell an
// expired token (re-login) from a tampered or garbled one (reject).
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
)

// TokenClaims is the decoded claim set carried by an access token.
type TokenClaims struct {
	UserID  uuid.UUID
	Role    string
	BrandID *uuid.UUID
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// TokenTTL reads ACCESS_TOKEN_MINUTES, defaulting to 60.
func TokenTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return 60 * time.Minute
}

// GenerateJWT issues an HS256 access token with sub, role and, for
// brand-scoped users, brand_id.
func GenerateJWT(userID uuid.UUID, role string, brandID *uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL()).Unix(),
	}
	if brandID != nil {
		claims["brand_id"] = brandID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseJWT validates signature and expiry and decodes the claim set.
// Only HMAC signing methods are accepted.
func ParseJWT(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return jwtSecret(), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignature):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	out := &TokenClaims{UserID: userID}
	out.Role, _ = claims["role"].(string)
	if raw, ok := claims["brand_id"].(string); ok {
		if brandID, err := uuid.Parse(raw); err == nil {
			out.BrandID = &brandID
		}
	}
	return out, nil
}
