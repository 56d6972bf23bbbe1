package services

import (
	"errors"
	"strings"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WorkoutService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewWorkoutService(db *gorm.DB, log *zap.Logger) *WorkoutService {
	return &WorkoutService{db: db, log: log}
}

type ExerciseInput struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Sets        *int    `json:"sets"`
	Reps        *string `json:"reps"`
	Load        *string `json:"load"`
	RestSeconds *int    `json:"rest_seconds"`
	YoutubeURL  *string `json:"youtube_url"`
}

// CreateTemplate stores the template and its exercises in one transaction,
// numbering sort_order by input position.
func (s *WorkoutService) CreateTemplate(brandID uuid.UUID, title string, description *string, exercises []ExerciseInput) (*models.WorkoutTemplate, error) {
	template := models.WorkoutTemplate{
		BrandID:     brandID,
		Title:       strings.TrimSpace(title),
		Description: description,
	}
	for i, in := range exercises {
		template.Exercises = append(template.Exercises, models.WorkoutExercise{
			Name:        strings.TrimSpace(in.Name),
			Sets:        in.Sets,
			Reps:        in.Reps,
			Load:        in.Load,
			RestSeconds: in.RestSeconds,
			YoutubeURL:  in.YoutubeURL,
			SortOrder:   i,
		})
	}
	if err := s.db.Create(&template).Error; err != nil {
		return nil, err
	}
	s.log.Info("workout template created",
		zap.String("template_id", template.ID.String()),
		zap.Int("exercises", len(template.Exercises)),
	)
	return &template, nil
}

func (s *WorkoutService) ListTemplates(brandID uuid.UUID) ([]models.WorkoutTemplate, error) {
	var templates []models.WorkoutTemplate
	err := s.db.Where("brand_id = ?", brandID).Order("created_at").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *WorkoutService) GetTemplate(brandID, id uuid.UUID) (*models.WorkoutTemplate, error) {
	var template models.WorkoutTemplate
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Where("id = ? AND brand_id = ?", id, brandID).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// ReplaceExercises swaps the full exercise list of a template. Sessions
// keep referencing old exercise rows only through their items, so the
// swap runs in a transaction.
func (s *WorkoutService) ReplaceExercises(brandID, id uuid.UUID, exercises []ExerciseInput) (*models.WorkoutTemplate, error) {
	template, err := s.GetTemplate(brandID, id)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_template_id = ?", template.ID).Delete(&models.WorkoutExercise{}).Error; err != nil {
			return err
		}
		for i, in := range exercises {
			exercise := models.WorkoutExercise{
				WorkoutTemplateID: template.ID,
				Name:              strings.TrimSpace(in.Name),
				Sets:              in.Sets,
				Reps:              in.Reps,
				Load:              in.Load,
				RestSeconds:       in.RestSeconds,
				YoutubeURL:        in.YoutubeURL,
				SortOrder:         i,
			}
			if err := tx.Create(&exercise).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetTemplate(brandID, id)
}

func (s *WorkoutService) UpdateTemplate(brandID, id uuid.UUID, title string, description *string) (*models.WorkoutTemplate, error) {
	template, err := s.GetTemplate(brandID, id)
	if err != nil {
		return nil, err
	}
	if t := strings.TrimSpace(title); t != "" {
		template.Title = t
	}
	if description != nil {
		template.Description = description
	}
	if err := s.db.Save(template).Error; err != nil {
		return nil, err
	}
	return template, nil
}

func (s *WorkoutService) DeleteTemplate(brandID, id uuid.UUID) error {
	res := s.db.Where("id = ? AND brand_id = ?", id, brandID).Delete(&models.WorkoutTemplate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
