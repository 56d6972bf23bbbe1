package services

import (
	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProfessionalService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProfessionalService(db *gorm.DB, log *zap.Logger) *ProfessionalService {
	return &ProfessionalService{db: db, log: log}
}

// Assign links a client to a professional. The schema does not enforce
// roles on the two user references, so the invariant — professional must
// be role pro, client role user, both in the assignment's brand — is
// checked here.
func (s *ProfessionalService) Assign(brandID, professionalID, userID uuid.UUID) (*models.ProfessionalUser, error) {
	var pro, client models.User
	if err := s.db.First(&pro, "id = ?", professionalID).Error; err != nil {
		return nil, ErrInvalidAssignment
	}
	if err := s.db.First(&client, "id = ?", userID).Error; err != nil {
		return nil, ErrInvalidAssignment
	}
	if pro.Role != models.RolePro || client.Role != models.RoleUser {
		return nil, ErrInvalidAssignment
	}
	if pro.BrandID == nil || client.BrandID == nil || *pro.BrandID != brandID || *client.BrandID != brandID {
		return nil, ErrInvalidAssignment
	}

	assignment := models.ProfessionalUser{
		BrandID:        brandID,
		ProfessionalID: professionalID,
		UserID:         userID,
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, translateDuplicate(err)
	}

	s.log.Info("client assigned",
		zap.String("professional_id", professionalID.String()),
		zap.String("user_id", userID.String()),
	)
	return &assignment, nil
}

func (s *ProfessionalService) Unassign(brandID, professionalID, userID uuid.UUID) error {
	res := s.db.Where("brand_id = ? AND professional_id = ? AND user_id = ?", brandID, professionalID, userID).
		Delete(&models.ProfessionalUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListClients returns the users assigned to a professional.
func (s *ProfessionalService) ListClients(brandID, professionalID uuid.UUID) ([]models.User, error) {
	var clients []models.User
	err := s.db.
		Joins("JOIN professional_user pu ON pu.user_id = users.id").
		Where("pu.brand_id = ? AND pu.professional_id = ?", brandID, professionalID).
		Order("users.name").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// ListProfessionals returns the professionals assigned to a client.
func (s *ProfessionalService) ListProfessionals(brandID, userID uuid.UUID) ([]models.User, error) {
	var pros []models.User
	err := s.db.
		Joins("JOIN professional_user pu ON pu.professional_id = users.id").
		Where("pu.brand_id = ? AND pu.user_id = ?", brandID, userID).
		Order("users.name").
		Find(&pros).Error
	if err != nil {
		return nil, err
	}
	return pros, nil
}
