package service

import (
	"errors"
	"fmt"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RotationGroupService handles business logic for rotation groups
type RotationGroupService struct {
	repo      repository.RotationGroupRepositoryInterface
	validator *validator.Validate
}

// NewRotationGroupService creates a new rotation group service
func NewRotationGroupService(repo repository.RotationGroupRepositoryInterface, validator *validator.Validate) *RotationGroupService {
	return &RotationGroupService{repo: repo, validator: validator}
}

// CreateRotationGroupRequest represents the request to create a rotation group
type CreateRotationGroupRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=100"`
	GroupKind models.GroupKind `json:"group_kind" validate:"required"`
}

// UpdateRotationGroupRequest represents the request to update a rotation group
type UpdateRotationGroupRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// RotationGroupResponse represents the response for rotation group operations
type RotationGroupResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	GroupKind models.GroupKind `json:"group_kind"`
	Active    bool             `json:"active"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// RotationGroupListResponse represents a paginated list of rotation groups
type RotationGroupListResponse struct {
	RotationGroups []RotationGroupResponse `json:"rotation_groups"`
	Total          int64                   `json:"total"`
	Limit          int                     `json:"limit"`
	Offset         int                     `json:"offset"`
}

// Create creates a new rotation group
func (s *RotationGroupService) Create(req *CreateRotationGroupRequest) (*RotationGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.GroupKind.IsValid() {
		return nil, apperrors.ErrInvalidGroupKind
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrRotationGroupExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check rotation group name: %w", err)
	}

	group := &models.RotationGroup{
		Name:      req.Name,
		GroupKind: req.GroupKind,
		Active:    true,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create rotation group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetByID retrieves a rotation group by ID
func (s *RotationGroupService) GetByID(id uuid.UUID) (*RotationGroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get rotation group: %w", err)
	}
	return s.toResponse(group), nil
}

// List retrieves rotation groups with pagination
func (s *RotationGroupService) List(limit, offset int) (*RotationGroupListResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	groups, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rotation groups: %w", err)
	}

	responses := make([]RotationGroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = *s.toResponse(&group)
	}

	return &RotationGroupListResponse{
		RotationGroups: responses,
		Total:          total,
		Limit:          limit,
		Offset:         offset,
	}, nil
}

// Update updates a rotation group
func (s *RotationGroupService) Update(id uuid.UUID, req *UpdateRotationGroupRequest) (*RotationGroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get rotation group: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		group.Name = *req.Name
	}
	if req.Active != nil {
		group.Active = *req.Active
	}

	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update rotation group: %w", err)
	}

	return s.toResponse(group), nil
}

// Deactivate marks a rotation group inactive, preserving queue history
func (s *RotationGroupService) Deactivate(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRotationGroupNotFound
		}
		return fmt.Errorf("failed to get rotation group: %w", err)
	}
	return s.repo.Deactivate(id)
}

// toResponse converts a rotation group model to response
func (s *RotationGroupService) toResponse(group *models.RotationGroup) *RotationGroupResponse {
	return &RotationGroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		GroupKind: group.GroupKind,
		Active:    group.Active,
		CreatedAt: group.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: group.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
