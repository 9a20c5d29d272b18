package repository

import (
	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RotationGroupRepositoryInterface defines the interface for rotation group repository operations
type RotationGroupRepositoryInterface interface {
	Create(group *models.RotationGroup) error
	GetByID(id uuid.UUID) (*models.RotationGroup, error)
	GetByName(name string) (*models.RotationGroup, error)
	GetAll(limit, offset int) ([]models.RotationGroup, int64, error)
	GetByKind(kind models.GroupKind, limit, offset int) ([]models.RotationGroup, int64, error)
	Update(group *models.RotationGroup) error
	Deactivate(id uuid.UUID) error
}
