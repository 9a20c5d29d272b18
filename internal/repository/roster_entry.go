package repository

import (
	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterEntryRepository handles database operations for roster entries
type RosterEntryRepository struct {
	db *gorm.DB
}

// NewRosterEntryRepository creates a new roster entry repository
func NewRosterEntryRepository(db *gorm.DB) *RosterEntryRepository {
	return &RosterEntryRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RosterEntryRepository) WithTx(tx *gorm.DB) *RosterEntryRepository {
	return &RosterEntryRepository{db: tx}
}

// Create creates a new roster entry
func (r *RosterEntryRepository) Create(entry *models.RosterEntry) error {
	return r.db.Create(entry).Error
}

// GetActive retrieves the active roster entry of a participant in a group
func (r *RosterEntryRepository) GetActive(groupID, participantID uuid.UUID) (*models.RosterEntry, error) {
	var entry models.RosterEntry
	err := r.db.First(&entry, "group_id = ? AND participant_id = ? AND active = ?", groupID, participantID, true).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetActiveByGroup retrieves all active roster entries of a group
func (r *RosterEntryRepository) GetActiveByGroup(groupID uuid.UUID) ([]models.RosterEntry, error) {
	var entries []models.RosterEntry
	err := r.db.Where("group_id = ? AND active = ?", groupID, true).Find(&entries).Error
	return entries, err
}

// Deactivate marks a roster entry inactive, preserving it for history
func (r *RosterEntryRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.RosterEntry{}).Where("id = ?", id).Update("active", false).Error
}
