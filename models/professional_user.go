package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionalUser assigns a client to a professional inside a brand.
// Both sides are users rows; the role requirement (pro on one side, user
// on the other) is checked by the professional service, not the schema.
type ProfessionalUser struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_prof_user_brand" json:"brand_id"`

	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index:ix_prof_user_professional;uniqueIndex:uq_prof_user_pair" json:"professional_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:ix_prof_user_user;uniqueIndex:uq_prof_user_pair" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`

	Professional User `gorm:"foreignKey:ProfessionalID" json:"-"`
	User         User `gorm:"foreignKey:UserID" json:"-"`
}

func (ProfessionalUser) TableName() string { return "professional_user" }

func (p *ProfessionalUser) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
