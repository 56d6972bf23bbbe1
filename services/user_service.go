package services

import (
	"errors"
	"time"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log}
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns users filtered by brand and/or role. A nil brandID with an
// empty role lists everything (super-admin surface).
func (s *UserService) List(brandID *uuid.UUID, role models.UserRole) ([]models.User, error) {
	q := s.db.Model(&models.User{}).Order("created_at")
	if brandID != nil {
		q = q.Where("brand_id = ?", *brandID)
	}
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Deactivate soft-disables the account. Rows are never deleted so audit
// history and foreign keys stay intact.
func (s *UserService) Deactivate(id uuid.UUID) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.log.Info("user deactivated", zap.String("user_id", id.String()))
	return nil
}

// UpdateSubscription is the admin override for the fields the webhook
// processor normally drives.
func (s *UserService) UpdateSubscription(id uuid.UUID, planID *uuid.UUID, status models.SubscriptionStatus, validUntil *time.Time) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"plan_id":             planID,
		"subscription_status": status,
		"plan_valid_until":    validUntil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StartChallenge stamps the challenge funnel start for a user, once.
func (s *UserService) StartChallenge(id uuid.UUID) error {
	now := time.Now()
	res := s.db.Model(&models.User{}).
		Where("id = ? AND challenge_started_at IS NULL", id).
		Update("challenge_started_at", now)
	return res.Error
}
