package repository

import (
	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RotationGroupRepository handles database operations for rotation groups
type RotationGroupRepository struct {
	db *gorm.DB
}

// NewRotationGroupRepository creates a new rotation group repository
func NewRotationGroupRepository(db *gorm.DB) *RotationGroupRepository {
	return &RotationGroupRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RotationGroupRepository) WithTx(tx *gorm.DB) *RotationGroupRepository {
	return &RotationGroupRepository{db: tx}
}

// Create creates a new rotation group
func (r *RotationGroupRepository) Create(group *models.RotationGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a rotation group by ID
func (r *RotationGroupRepository) GetByID(id uuid.UUID) (*models.RotationGroup, error) {
	var group models.RotationGroup
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a rotation group by its unique name
func (r *RotationGroupRepository) GetByName(name string) (*models.RotationGroup, error) {
	var group models.RotationGroup
	err := r.db.First(&group, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves rotation groups with pagination
func (r *RotationGroupRepository) GetAll(limit, offset int) ([]models.RotationGroup, int64, error) {
	var groups []models.RotationGroup
	var total int64

	if err := r.db.Model(&models.RotationGroup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&groups).Error
	return groups, total, err
}

// GetByKind retrieves rotation groups of one kind
func (r *RotationGroupRepository) GetByKind(kind models.GroupKind, limit, offset int) ([]models.RotationGroup, int64, error) {
	var groups []models.RotationGroup
	var total int64

	if err := r.db.Model(&models.RotationGroup{}).Where("group_kind = ?", kind).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("group_kind = ?", kind).Order("name ASC").Limit(limit).Offset(offset).Find(&groups).Error
	return groups, total, err
}

// Update updates a rotation group
func (r *RotationGroupRepository) Update(group *models.RotationGroup) error {
	return r.db.Save(group).Error
}

// Deactivate marks a rotation group inactive. Roster entries and queue
// positions are retained for history.
func (r *RotationGroupRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.RotationGroup{}).Where("id = ?", id).Update("active", false).Error
}
