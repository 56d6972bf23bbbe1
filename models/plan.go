package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is a subscription product sold under a single brand.
// ExternalProductID links it to the payment provider's catalog so webhook
// events can be matched back to a plan.
type Plan struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_plans_brand" json:"brand_id"`

	Name           string  `gorm:"size:120;not null" json:"name"`
	Price          float64 `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	DurationMonths int     `gorm:"not null;default:1" json:"duration_months"`

	ExternalProductID *string `gorm:"size:120" json:"external_product_id,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Brand Brand `gorm:"foreignKey:BrandID" json:"-"`
}

func (Plan) TableName() string { return "plans" }

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
