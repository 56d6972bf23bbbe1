package services

import (
	"errors"
	"strings"

	"fitbrand-backend/models"
	"fitbrand-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuthService(db *gorm.DB, log *zap.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

// NormalizeEmail trims surrounding whitespace and lowercases, so
// " Ana@X.com " and "ana@x.com" address the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// scopeBrand restricts a query to one brand, or to brand-less rows
// (super admins) when no tenant was resolved.
func scopeBrand(q *gorm.DB, brandID *uuid.UUID) *gorm.DB {
	if brandID != nil {
		return q.Where("brand_id = ?", *brandID)
	}
	return q.Where("brand_id IS NULL")
}

// Register creates an end user under the resolved brand. The brand comes
// from the tenant middleware, never from caller input. No token is issued;
// the caller logs in separately.
func (s *AuthService) Register(brandID *uuid.UUID, name, email, phone, password string) (*models.User, error) {
	if brandID == nil {
		return nil, ErrBrandRequired
	}
	email = NormalizeEmail(email)
	phone = strings.TrimSpace(phone)

	var count int64
	if err := scopeBrand(s.db.Model(&models.User{}).Where("email = ?", email), brandID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}
	if err := scopeBrand(s.db.Model(&models.User{}).Where("phone = ?", phone), brandID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicatePhone
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		BrandID:            brandID,
		Name:               strings.TrimSpace(name),
		Email:              email,
		Phone:              phone,
		PasswordHash:       hash,
		Role:               models.RoleUser,
		IsActive:           true,
		SubscriptionStatus: models.SubscriptionFree,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// concurrent registration race: the constraint decides, we translate
		return nil, translateDuplicate(err)
	}

	s.log.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("brand_id", brandID.String()),
	)
	return &user, nil
}

// Login authenticates by (brand, email) and returns a bearer token.
// Unknown email, inactive account and wrong password all fail with
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(brandID *uuid.UUID, email, password string) (string, error) {
	email = NormalizeEmail(email)

	var user models.User
	err := scopeBrand(s.db.Where("email = ?", email), brandID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Info("login failed", zap.String("user_id", user.ID.String()))
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, string(user.Role), user.BrandID)
}
