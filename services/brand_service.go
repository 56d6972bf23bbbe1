package services

import (
	"errors"
	"strings"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BrandService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBrandService(db *gorm.DB, log *zap.Logger) *BrandService {
	return &BrandService{db: db, log: log}
}

type BrandInput struct {
	Name           string
	Slug           string
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string
}

func (s *BrandService) Create(in BrandInput) (*models.Brand, error) {
	brand := models.Brand{
		Name:           strings.TrimSpace(in.Name),
		Slug:           strings.ToLower(strings.TrimSpace(in.Slug)),
		LogoURL:        in.LogoURL,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		IsActive:       true,
	}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, translateDuplicate(err)
	}
	s.log.Info("brand created", zap.String("brand_id", brand.ID.String()), zap.String("slug", brand.Slug))
	return &brand, nil
}

func (s *BrandService) List() ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.db.Order("created_at").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *BrandService) GetByID(id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// GetActiveBySlug is what tenant resolution calls on every scoped request.
func (s *BrandService) GetActiveBySlug(slug string) (*models.Brand, error) {
	var brand models.Brand
	err := s.db.Where("slug = ? AND is_active = ?", strings.ToLower(slug), true).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// Update changes display fields only. The slug is immutable after
// creation: tenant resolution depends on it.
func (s *BrandService) Update(id uuid.UUID, in BrandInput) (*models.Brand, error) {
	brand, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		brand.Name = name
	}
	if in.LogoURL != nil {
		brand.LogoURL = in.LogoURL
	}
	if in.PrimaryColor != nil {
		brand.PrimaryColor = in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		brand.SecondaryColor = in.SecondaryColor
	}
	if err := s.db.Save(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Deactivate(id uuid.UUID) error {
	res := s.db.Model(&models.Brand{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.log.Info("brand deactivated", zap.String("brand_id", id.String()))
	return nil
}
