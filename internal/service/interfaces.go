package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RotationGroupServiceInterface defines the interface for rotation group service
type RotationGroupServiceInterface interface {
	Create(req *CreateRotationGroupRequest) (*RotationGroupResponse, error)
	GetByID(id uuid.UUID) (*RotationGroupResponse, error)
	List(limit, offset int) (*RotationGroupListResponse, error)
	Update(id uuid.UUID, req *UpdateRotationGroupRequest) (*RotationGroupResponse, error)
	Deactivate(id uuid.UUID) error
}
