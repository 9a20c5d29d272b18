package repository

import (
	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ParticipantRepository) WithTx(tx *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: tx}
}

// Create creates a new participant
func (r *ParticipantRepository) Create(participant *models.Participant) error {
	return r.db.Create(participant).Error
}

// GetByID retrieves a participant by ID
func (r *ParticipantRepository) GetByID(id uuid.UUID) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.First(&participant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetByEmail retrieves an active participant by email
func (r *ParticipantRepository) GetByEmail(email string) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.First(&participant, "email = ? AND is_active = ?", email, true).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetByIDs retrieves participants for a set of ids
func (r *ParticipantRepository) GetByIDs(ids []uuid.UUID) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Where("id IN ?", ids).Find(&participants).Error
	return participants, err
}

// GetAll retrieves participants with pagination
func (r *ParticipantRepository) GetAll(limit, offset int) ([]models.Participant, int64, error) {
	var participants []models.Participant
	var total int64

	if err := r.db.Model(&models.Participant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&participants).Error
	return participants, total, err
}

// GetLeadersByUnit retrieves active leaders belonging to a unit
func (r *ParticipantRepository) GetLeadersByUnit(unitID uuid.UUID) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Where("unit_id = ? AND is_leader = ? AND is_active = ?", unitID, true, true).Find(&participants).Error
	return participants, err
}

// Update updates a participant
func (r *ParticipantRepository) Update(participant *models.Participant) error {
	return r.db.Save(participant).Error
}

// Deactivate marks a participant inactive
func (r *ParticipantRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Participant{}).Where("id = ?", id).Update("is_active", false).Error
}
