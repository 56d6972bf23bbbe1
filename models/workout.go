package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutTemplate is authored coaching content: a named workout with an
// ordered list of exercises, shared by all users of a brand.
type WorkoutTemplate struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_workout_templates_brand" json:"brand_id"`

	Title       string  `gorm:"size:200;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Exercises []WorkoutExercise `gorm:"foreignKey:WorkoutTemplateID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

func (WorkoutTemplate) TableName() string { return "workout_templates" }

func (t *WorkoutTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// WorkoutExercise is one line of a template. Reps and load are free-form
// strings so coaches can write ranges ("10-12") or qualitative loads
// ("moderado").
type WorkoutExercise struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkoutTemplateID uuid.UUID `gorm:"type:uuid;not null;index:ix_workout_exercises_template" json:"workout_template_id"`

	Name        string  `gorm:"size:200;not null" json:"name"`
	Sets        *int    `json:"sets,omitempty"`
	Reps        *string `gorm:"size:50" json:"reps,omitempty"`
	Load        *string `gorm:"size:50" json:"load,omitempty"`
	RestSeconds *int    `json:"rest_seconds,omitempty"`
	YoutubeURL  *string `gorm:"size:500" json:"youtube_url,omitempty"`

	SortOrder int `gorm:"not null;default:0" json:"sort_order"`
}

func (WorkoutExercise) TableName() string { return "workout_exercises" }

func (e *WorkoutExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
