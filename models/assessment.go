package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserAssessment holds one anamnesis/questionnaire submission. Rows are
// append-only per user so the intake history is preserved; Data is an open
// string-keyed JSON document.
type UserAssessment struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_assess_brand_user" json:"brand_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:ix_assess_brand_user" json:"user_id"`

	Data datatypes.JSONMap `gorm:"not null" json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserAssessment) TableName() string { return "user_assessments" }

func (a *UserAssessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
