package repository

import (
	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRepository appends and reads the immutable audit log. There is no
// update or delete path on purpose.
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AuditRepository) WithTx(tx *gorm.DB) *AuditRepository {
	return &AuditRepository{db: tx}
}

// Append appends an audit record
func (r *AuditRepository) Append(record *models.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.Create(record).Error
}

// GetByEntity retrieves audit records of one entity, newest first
func (r *AuditRepository) GetByEntity(entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditRecord, int64, error) {
	var records []models.AuditRecord
	var total int64

	query := r.db.Model(&models.AuditRecord{}).Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

// GetAll retrieves audit records, newest first
func (r *AuditRepository) GetAll(limit, offset int) ([]models.AuditRecord, int64, error) {
	var records []models.AuditRecord
	var total int64

	if err := r.db.Model(&models.AuditRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}
