package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutSession is one user's execution of a template on a calendar day.
// uq_session_unique_day keeps a user from logging the same template twice
// on the same date.
type WorkoutSession struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_sessions_brand_user_date" json:"brand_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:ix_sessions_brand_user_date;uniqueIndex:uq_session_unique_day" json:"user_id"`

	WorkoutTemplateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_session_unique_day" json:"workout_template_id"`

	SessionDate time.Time `gorm:"type:date;not null;index:ix_sessions_brand_user_date;uniqueIndex:uq_session_unique_day" json:"session_date"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User                 `gorm:"foreignKey:UserID" json:"-"`
	Items []WorkoutSessionItem `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (WorkoutSession) TableName() string { return "workout_sessions" }

func (s *WorkoutSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// WorkoutSessionItem tracks completion of a single exercise within a
// session, one row per (session, exercise).
type WorkoutSessionItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index:ix_session_items_session;uniqueIndex:uq_session_exercise" json:"session_id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_session_exercise" json:"exercise_id"`

	IsDone bool `gorm:"not null;default:false" json:"is_done"`
}

func (WorkoutSessionItem) TableName() string { return "workout_session_items" }

func (i *WorkoutSessionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
