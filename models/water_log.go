package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaterLog accumulates a user's water intake for one calendar day.
// uq_water_user_day guarantees a single row per (user, date); repeated
// logs on the same day add into Ml instead of inserting new rows.
type WaterLog struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_water_brand_user_date" json:"brand_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:ix_water_brand_user_date;uniqueIndex:uq_water_user_day" json:"user_id"`

	LogDate time.Time `gorm:"type:date;not null;index:ix_water_brand_user_date;uniqueIndex:uq_water_user_day" json:"log_date"`
	Ml      int       `gorm:"not null;default:0" json:"ml"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WaterLog) TableName() string { return "water_logs" }

func (w *WaterLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
