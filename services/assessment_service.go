package services

import (
	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssessmentService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAssessmentService(db *gorm.DB, log *zap.Logger) *AssessmentService {
	return &AssessmentService{db: db, log: log}
}

// Append stores a new assessment document. Earlier submissions are kept,
// so the intake history is an append-only series per user.
func (s *AssessmentService) Append(brandID, userID uuid.UUID, data datatypes.JSONMap) (*models.UserAssessment, error) {
	if data == nil {
		data = datatypes.JSONMap{}
	}
	assessment := models.UserAssessment{
		BrandID: brandID,
		UserID:  userID,
		Data:    data,
	}
	if err := s.db.Create(&assessment).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (s *AssessmentService) List(brandID, userID uuid.UUID) ([]models.UserAssessment, error) {
	var assessments []models.UserAssessment
	err := s.db.Where("brand_id = ? AND user_id = ?", brandID, userID).
		Order("created_at DESC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
