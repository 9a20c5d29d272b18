package repository

import (
	"time"

	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VacationAllocationRepository handles database operations for vacation allocations
type VacationAllocationRepository struct {
	db *gorm.DB
}

// NewVacationAllocationRepository creates a new vacation allocation repository
func NewVacationAllocationRepository(db *gorm.DB) *VacationAllocationRepository {
	return &VacationAllocationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *VacationAllocationRepository) WithTx(tx *gorm.DB) *VacationAllocationRepository {
	return &VacationAllocationRepository{db: tx}
}

// Create creates a new vacation allocation
func (r *VacationAllocationRepository) Create(allocation *models.VacationAllocation) error {
	return r.db.Create(allocation).Error
}

// GetByID retrieves a vacation allocation by ID
func (r *VacationAllocationRepository) GetByID(id uuid.UUID) (*models.VacationAllocation, error) {
	var allocation models.VacationAllocation
	err := r.db.First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetByParticipant retrieves a participant's allocations, newest first
func (r *VacationAllocationRepository) GetByParticipant(participantID uuid.UUID) ([]models.VacationAllocation, error) {
	var allocations []models.VacationAllocation
	err := r.db.Where("participant_id = ?", participantID).
		Order("start_date DESC").Find(&allocations).Error
	return allocations, err
}

// GetOverlapping retrieves a participant's non-cancelled allocations
// overlapping [from, to]
func (r *VacationAllocationRepository) GetOverlapping(participantID uuid.UUID, from, to time.Time) ([]models.VacationAllocation, error) {
	var allocations []models.VacationAllocation
	err := r.db.Where(
		"participant_id = ? AND status <> ? AND start_date <= ? AND end_date >= ?",
		participantID, models.VacationStatusCancelled, to, from,
	).Find(&allocations).Error
	return allocations, err
}

// Update updates a vacation allocation
func (r *VacationAllocationRepository) Update(allocation *models.VacationAllocation) error {
	return r.db.Save(allocation).Error
}
