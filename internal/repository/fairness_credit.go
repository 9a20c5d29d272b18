package repository

import (
	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FairnessCreditRepository handles database operations for fairness credits
type FairnessCreditRepository struct {
	db *gorm.DB
}

// NewFairnessCreditRepository creates a new fairness credit repository
func NewFairnessCreditRepository(db *gorm.DB) *FairnessCreditRepository {
	return &FairnessCreditRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *FairnessCreditRepository) WithTx(tx *gorm.DB) *FairnessCreditRepository {
	return &FairnessCreditRepository{db: tx}
}

// Create creates a new fairness credit
func (r *FairnessCreditRepository) Create(credit *models.FairnessCredit) error {
	return r.db.Create(credit).Error
}

// GetByID retrieves a fairness credit by ID
func (r *FairnessCreditRepository) GetByID(id uuid.UUID) (*models.FairnessCredit, error) {
	var credit models.FairnessCredit
	err := r.db.First(&credit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &credit, nil
}

// GetByParticipant retrieves a participant's credits, newest first
func (r *FairnessCreditRepository) GetByParticipant(participantID uuid.UUID) ([]models.FairnessCredit, error) {
	var credits []models.FairnessCredit
	err := r.db.Where("participant_id = ?", participantID).Order("created_at DESC").Find(&credits).Error
	return credits, err
}

// GetAvailableByParticipant retrieves a participant's unused credits,
// oldest first so consumption drains the earliest debt
func (r *FairnessCreditRepository) GetAvailableByParticipant(participantID uuid.UUID) ([]models.FairnessCredit, error) {
	var credits []models.FairnessCredit
	err := r.db.Where("participant_id = ? AND status = ?", participantID, models.CreditStatusAvailable).
		Order("origin_date ASC").Find(&credits).Error
	return credits, err
}

// MarkUsed consumes a credit
func (r *FairnessCreditRepository) MarkUsed(id uuid.UUID) error {
	return r.db.Model(&models.FairnessCredit{}).Where("id = ?", id).
		Update("status", models.CreditStatusUsed).Error
}
