package services

import (
	"errors"
	"time"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaterService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewWaterService(db *gorm.DB, log *zap.Logger) *WaterService {
	return &WaterService{db: db, log: log}
}

// Add accumulates ml into the single row for (user, today). The additive
// upsert rides on uq_water_user_day: logging 300ml twice yields one row
// holding 600, never two rows.
func (s *WaterService) Add(brandID, userID uuid.UUID, ml int, at time.Time) (*models.WaterLog, error) {
	day := DayStart(at)

	entry := models.WaterLog{
		BrandID: brandID,
		UserID:  userID,
		LogDate: day,
		Ml:      ml,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"ml":         gorm.Expr("water_logs.ml + EXCLUDED.ml"),
			"updated_at": time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	// re-read: on conflict the in-memory struct does not carry the sum
	var row models.WaterLog
	if err := s.db.Where("user_id = ? AND log_date = ?", userID, day).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Today returns the accumulated ml for the current date, zero when the
// user has not logged yet.
func (s *WaterService) Today(userID uuid.UUID, at time.Time) (int, error) {
	var row models.WaterLog
	err := s.db.Where("user_id = ? AND log_date = ?", userID, DayStart(at)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.Ml, nil
}

func (s *WaterService) History(userID uuid.UUID, from, to time.Time) ([]models.WaterLog, error) {
	var rows []models.WaterLog
	err := s.db.Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, DayStart(from), DayStart(to)).
		Order("log_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
