package repository

import (
	"time"

	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueuePositionRepository handles database operations for queue positions
type QueuePositionRepository struct {
	db *gorm.DB
}

// NewQueuePositionRepository creates a new queue position repository
func NewQueuePositionRepository(db *gorm.DB) *QueuePositionRepository {
	return &QueuePositionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *QueuePositionRepository) WithTx(tx *gorm.DB) *QueuePositionRepository {
	return &QueuePositionRepository{db: tx}
}

// Create creates a new queue position
func (r *QueuePositionRepository) Create(position *models.QueuePosition) error {
	return r.db.Create(position).Error
}

// GetByGroupAndParticipant retrieves the queue position of a participant in a group
func (r *QueuePositionRepository) GetByGroupAndParticipant(groupID, participantID uuid.UUID) (*models.QueuePosition, error) {
	var position models.QueuePosition
	err := r.db.First(&position, "group_id = ? AND participant_id = ?", groupID, participantID).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetOrderedByGroup retrieves a group's queue ordered by position ascending
func (r *QueuePositionRepository) GetOrderedByGroup(groupID uuid.UUID) ([]models.QueuePosition, error) {
	var positions []models.QueuePosition
	err := r.db.Where("group_id = ?", groupID).Order("position ASC").Find(&positions).Error
	return positions, err
}

// GetOrderedByGroupForUpdate retrieves a group's queue ordered by position with
// row-level locks, serializing concurrent mutations of the same group.
func (r *QueuePositionRepository) GetOrderedByGroupForUpdate(groupID uuid.UUID) ([]models.QueuePosition, error) {
	var positions []models.QueuePosition
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("group_id = ?", groupID).Order("position ASC").Find(&positions).Error
	return positions, err
}

// CountByGroup returns the number of queue positions in a group
func (r *QueuePositionRepository) CountByGroup(groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.QueuePosition{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// MaxPosition returns the highest position in a group, or -1 when the queue is empty
func (r *QueuePositionRepository) MaxPosition(groupID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.QueuePosition{}).Where("group_id = ?", groupID).
		Select("MAX(position)").Scan(&max).Error
	if err != nil {
		return -1, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// ShiftDownAbove decrements every position greater than the given one,
// closing the gap left by a removal or a move-to-back.
func (r *QueuePositionRepository) ShiftDownAbove(groupID uuid.UUID, position int) error {
	return r.db.Model(&models.QueuePosition{}).
		Where("group_id = ? AND position > ?", groupID, position).
		Update("position", gorm.Expr("position - 1")).Error
}

// SetPosition moves one queue entry to an explicit position
func (r *QueuePositionRepository) SetPosition(id uuid.UUID, position int) error {
	return r.db.Model(&models.QueuePosition{}).Where("id = ?", id).Update("position", position).Error
}

// RecordAssignment bumps the assignment counters of one queue entry
func (r *QueuePositionRepository) RecordAssignment(id uuid.UUID, date time.Time) error {
	return r.db.Model(&models.QueuePosition{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_assigned_at": date,
		"times_assigned":   gorm.Expr("times_assigned + 1"),
	}).Error
}

// Delete removes a queue position. The caller closes the resulting gap.
func (r *QueuePositionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.QueuePosition{}, "id = ?", id).Error
}
