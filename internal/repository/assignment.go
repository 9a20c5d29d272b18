package repository

import (
	"time"

	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AssignmentRepository) WithTx(tx *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: tx}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByNaturalKey retrieves an assignment by its idempotency key
func (r *AssignmentRepository) GetByNaturalKey(groupID, participantID uuid.UUID, date time.Time, shift models.Shift) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment,
		"group_id = ? AND participant_id = ? AND date = ? AND shift = ?",
		groupID, participantID, date, shift).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByGroupAndPeriod retrieves a group's assignments within [from, to]
func (r *AssignmentRepository) GetByGroupAndPeriod(groupID uuid.UUID, from, to time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("group_id = ? AND date >= ? AND date <= ?", groupID, from, to).
		Order("date ASC").Find(&assignments).Error
	return assignments, err
}

// GetByParticipantAndPeriod retrieves a participant's assignments within [from, to]
func (r *AssignmentRepository) GetByParticipantAndPeriod(participantID uuid.UUID, from, to time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("participant_id = ? AND date >= ? AND date <= ?", participantID, from, to).
		Order("date ASC").Find(&assignments).Error
	return assignments, err
}

// GetByParticipantsAndDate retrieves assignments of any of the given
// participants on one date, across all groups
func (r *AssignmentRepository) GetByParticipantsAndDate(participantIDs []uuid.UUID, date time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("participant_id IN ? AND date = ?", participantIDs, date).Find(&assignments).Error
	return assignments, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}
