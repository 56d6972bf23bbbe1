package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoType string

const (
	PhotoFront     PhotoType = "front"
	PhotoBack      PhotoType = "back"
	PhotoSideLeft  PhotoType = "side_left"
	PhotoSideRight PhotoType = "side_right"
)

// UserPhoto points at a progress photo in object storage. Only the URL is
// kept here, never the image bytes.
type UserPhoto struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_photos_brand_user" json:"brand_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:ix_photos_brand_user;index:ix_photos_user_type" json:"user_id"`

	PhotoType PhotoType `gorm:"size:20;not null;index:ix_photos_user_type" json:"photo_type"`
	URL       string    `gorm:"size:800;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserPhoto) TableName() string { return "user_photos" }

func (p *UserPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
