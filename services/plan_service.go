package services

import (
	"errors"
	"strings"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlanService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPlanService(db *gorm.DB, log *zap.Logger) *PlanService {
	return &PlanService{db: db, log: log}
}

type PlanInput struct {
	Name              string
	Price             float64
	DurationMonths    int
	ExternalProductID *string
}

func (s *PlanService) Create(brandID uuid.UUID, in PlanInput) (*models.Plan, error) {
	plan := models.Plan{
		BrandID:           brandID,
		Name:              strings.TrimSpace(in.Name),
		Price:             in.Price,
		DurationMonths:    in.DurationMonths,
		ExternalProductID: in.ExternalProductID,
		IsActive:          true,
	}
	if plan.DurationMonths <= 0 {
		plan.DurationMonths = 1
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	s.log.Info("plan created", zap.String("plan_id", plan.ID.String()), zap.String("brand_id", brandID.String()))
	return &plan, nil
}

func (s *PlanService) ListByBrand(brandID uuid.UUID) ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Where("brand_id = ?", brandID).Order("created_at").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *PlanService) GetByID(brandID, id uuid.UUID) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.Where("id = ? AND brand_id = ?", id, brandID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Update(brandID, id uuid.UUID, in PlanInput) (*models.Plan, error) {
	plan, err := s.GetByID(brandID, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		plan.Name = name
	}
	if in.Price >= 0 {
		plan.Price = in.Price
	}
	if in.DurationMonths > 0 {
		plan.DurationMonths = in.DurationMonths
	}
	if in.ExternalProductID != nil {
		plan.ExternalProductID = in.ExternalProductID
	}
	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) Deactivate(brandID, id uuid.UUID) error {
	res := s.db.Model(&models.Plan{}).Where("id = ? AND brand_id = ?", id, brandID).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
