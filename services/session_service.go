package services

import (
	"errors"
	"time"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SessionService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSessionService(db *gorm.DB, log *zap.Logger) *SessionService {
	return &SessionService{db: db, log: log}
}

// DayStart truncates a timestamp to its calendar date (UTC midnight),
// the granularity sessions and water logs are keyed on.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Start creates the session for (user, template, date) and seeds one
// unchecked item per template exercise. A second session for the same day
// loses the uq_session_unique_day race and maps to ErrSessionExists.
func (s *SessionService) Start(brandID, userID, templateID uuid.UUID, date time.Time) (*models.WorkoutSession, error) {
	var template models.WorkoutTemplate
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Where("id = ? AND brand_id = ?", templateID, brandID).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	session := models.WorkoutSession{
		BrandID:           brandID,
		UserID:            userID,
		WorkoutTemplateID: templateID,
		SessionDate:       DayStart(date),
	}
	for _, exercise := range template.Exercises {
		session.Items = append(session.Items, models.WorkoutSessionItem{ExerciseID: exercise.ID})
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, translateDuplicate(err)
	}

	s.log.Info("workout session started",
		zap.String("session_id", session.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return &session, nil
}

// SetItemDone flips one exercise's completion flag. Ownership is checked
// through the parent session.
func (s *SessionService) SetItemDone(userID, sessionID, itemID uuid.UUID, done bool) error {
	var session models.WorkoutSession
	if err := s.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	res := s.db.Model(&models.WorkoutSessionItem{}).
		Where("id = ? AND session_id = ?", itemID, sessionID).
		Update("is_done", done)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete marks the session finished regardless of item state.
func (s *SessionService) Complete(userID, sessionID uuid.UUID) error {
	res := s.db.Model(&models.WorkoutSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Update("is_completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SessionService) Get(userID, sessionID uuid.UUID) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := s.db.Preload("Items").Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// History lists a user's sessions, most recent first.
func (s *SessionService) History(userID uuid.UUID, limit int) ([]models.WorkoutSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var sessions []models.WorkoutSession
	err := s.db.Where("user_id = ?", userID).
		Order("session_date DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
