package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is the tenant root. Every per-user record hangs off exactly one
// brand; the slug is what subdomain/header tenant resolution matches on
// and must never change after creation.
type Brand struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:120;not null" json:"name"`
	Slug    string    `gorm:"size:60;not null;uniqueIndex:uq_brands_slug" json:"slug"`
	LogoURL *string   `gorm:"size:500" json:"logo_url,omitempty"`

	// white-label theming
	PrimaryColor   *string `gorm:"size:20" json:"primary_color,omitempty"`
	SecondaryColor *string `gorm:"size:20" json:"secondary_color,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Users []User `gorm:"foreignKey:BrandID" json:"-"`
	Plans []Plan `gorm:"foreignKey:BrandID" json:"-"`
}

func (Brand) TableName() string { return "brands" }

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
