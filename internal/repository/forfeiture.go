package repository

import (
	"time"

	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForfeitureRepository handles database operations for forfeitures
type ForfeitureRepository struct {
	db *gorm.DB
}

// NewForfeitureRepository creates a new forfeiture repository
func NewForfeitureRepository(db *gorm.DB) *ForfeitureRepository {
	return &ForfeitureRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ForfeitureRepository) WithTx(tx *gorm.DB) *ForfeitureRepository {
	return &ForfeitureRepository{db: tx}
}

// Create creates a new forfeiture
func (r *ForfeitureRepository) Create(forfeiture *models.Forfeiture) error {
	return r.db.Create(forfeiture).Error
}

// ExistsForPeriod reports whether the participant already lost the turn for
// the period starting at periodStart
func (r *ForfeitureRepository) ExistsForPeriod(participantID uuid.UUID, periodStart time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Forfeiture{}).
		Where("participant_id = ? AND period_start = ?", participantID, periodStart).
		Count(&count).Error
	return count > 0, err
}

// GetByParticipant retrieves a participant's forfeitures, newest first
func (r *ForfeitureRepository) GetByParticipant(participantID uuid.UUID) ([]models.Forfeiture, error) {
	var forfeitures []models.Forfeiture
	err := r.db.Where("participant_id = ?", participantID).
		Order("period_start DESC").Find(&forfeitures).Error
	return forfeitures, err
}
