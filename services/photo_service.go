package services

import (
	"fmt"

	"fitbrand-backend/models"
	"fitbrand-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PhotoService struct {
	db  *gorm.DB
	log *zap.Logger
	// upload is swappable in tests; defaults to the S3 uploader
	upload func(base64Data, keyPrefix string) (string, error)
}

func NewPhotoService(db *gorm.DB, log *zap.Logger) *PhotoService {
	return &PhotoService{db: db, log: log, upload: utils.UploadBase64Image}
}

// Upload pushes the image to object storage and records only the URL.
func (s *PhotoService) Upload(brandID, userID uuid.UUID, photoType models.PhotoType, base64Data string) (*models.UserPhoto, error) {
	prefix := fmt.Sprintf("progress-photos/%s/%s", brandID, userID)
	url, err := s.upload(base64Data, prefix)
	if err != nil {
		return nil, err
	}

	photo := models.UserPhoto{
		BrandID:   brandID,
		UserID:    userID,
		PhotoType: photoType,
		URL:       url,
	}
	if err := s.db.Create(&photo).Error; err != nil {
		return nil, err
	}

	s.log.Info("progress photo stored",
		zap.String("user_id", userID.String()),
		zap.String("photo_type", string(photoType)),
	)
	return &photo, nil
}

// List returns a user's photos, optionally filtered by type, newest first.
func (s *PhotoService) List(brandID, userID uuid.UUID, photoType models.PhotoType) ([]models.UserPhoto, error) {
	q := s.db.Where("brand_id = ? AND user_id = ?", brandID, userID)
	if photoType != "" {
		q = q.Where("photo_type = ?", photoType)
	}
	var photos []models.UserPhoto
	if err := q.Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
