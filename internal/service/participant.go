package service

import (
	"errors"
	"fmt"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantService handles business logic for participants and their
// fairness history (credits, forfeitures, vacations)
type ParticipantService struct {
	repo           *repository.ParticipantRepository
	creditRepo     *repository.FairnessCreditRepository
	forfeitureRepo *repository.ForfeitureRepository
	vacationRepo   *repository.VacationAllocationRepository
	validator      *validator.Validate
}

// NewParticipantService creates a new participant service
func NewParticipantService(
	repo *repository.ParticipantRepository,
	creditRepo *repository.FairnessCreditRepository,
	forfeitureRepo *repository.ForfeitureRepository,
	vacationRepo *repository.VacationAllocationRepository,
	validator *validator.Validate,
) *ParticipantService {
	return &ParticipantService{
		repo:           repo,
		creditRepo:     creditRepo,
		forfeitureRepo: forfeitureRepo,
		vacationRepo:   vacationRepo,
		validator:      validator,
	}
}

// CreateParticipantRequest represents the request to create a participant
type CreateParticipantRequest struct {
	FullName            string     `json:"full_name" validate:"required,max=200"`
	Email               string     `json:"email" validate:"required,email,max=255"`
	HiredAt             time.Time  `json:"hired_at" validate:"required"`
	UnitID              *uuid.UUID `json:"unit_id,omitempty"`
	IsLeader            *bool      `json:"is_leader,omitempty"`
	LinkedParticipantID *uuid.UUID `json:"linked_participant_id,omitempty"`
}

// UpdateParticipantRequest represents the request to update a participant
type UpdateParticipantRequest struct {
	FullName            *string    `json:"full_name,omitempty"`
	UnitID              *uuid.UUID `json:"unit_id,omitempty"`
	IsLeader            *bool      `json:"is_leader,omitempty"`
	LinkedParticipantID *uuid.UUID `json:"linked_participant_id,omitempty"`
	IsActive            *bool      `json:"is_active,omitempty"`
}

// CreateForfeitureRequest records the loss of a participant's turn
type CreateForfeitureRequest struct {
	PeriodStart time.Time               `json:"period_start" validate:"required"`
	Reason      models.ForfeitureReason `json:"reason" validate:"required"`
	Notes       string                  `json:"notes,omitempty" validate:"max=500"`
	Actor       string                  `json:"-"`
}

// CreateVacationAllocationRequest schedules a vacation period
type CreateVacationAllocationRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Actor     string    `json:"-"`
}

// ParticipantResponse represents the response for participant operations
type ParticipantResponse struct {
	ID                  uuid.UUID  `json:"id"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	HiredAt             string     `json:"hired_at"`
	UnitID              *uuid.UUID `json:"unit_id,omitempty"`
	IsLeader            bool       `json:"is_leader"`
	LinkedParticipantID *uuid.UUID `json:"linked_participant_id,omitempty"`
	IsActive            bool       `json:"is_active"`
}

// ParticipantListResponse represents a paginated list of participants
type ParticipantListResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// Create creates a new participant
func (s *ParticipantService) Create(req *CreateParticipantRequest) (*ParticipantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrParticipantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check participant email: %w", err)
	}

	if req.LinkedParticipantID != nil {
		if _, err := s.repo.GetByID(*req.LinkedParticipantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParticipantNotFound
			}
			return nil, fmt.Errorf("failed to verify linked participant: %w", err)
		}
	}

	isLeader := false
	if req.IsLeader != nil {
		isLeader = *req.IsLeader
	}

	participant := &models.Participant{
		FullName:            req.FullName,
		Email:               req.Email,
		HiredAt:             req.HiredAt,
		UnitID:              req.UnitID,
		IsLeader:            isLeader,
		LinkedParticipantID: req.LinkedParticipantID,
		IsActive:            true,
	}
	if err := s.repo.Create(participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return s.toResponse(participant), nil
}

// GetByID retrieves a participant by ID
func (s *ParticipantService) GetByID(id uuid.UUID) (*ParticipantResponse, error) {
	participant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return s.toResponse(participant), nil
}

// List retrieves participants with pagination
func (s *ParticipantService) List(limit, offset int) (*ParticipantListResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	participants, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	responses := make([]ParticipantResponse, len(participants))
	for i, participant := range participants {
		responses[i] = *s.toResponse(&participant)
	}

	return &ParticipantListResponse{
		Participants: responses,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// Update updates a participant
func (s *ParticipantService) Update(id uuid.UUID, req *UpdateParticipantRequest) (*ParticipantResponse, error) {
	participant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	if req.FullName != nil {
		participant.FullName = *req.FullName
	}
	if req.UnitID != nil {
		participant.UnitID = req.UnitID
	}
	if req.IsLeader != nil {
		participant.IsLeader = *req.IsLeader
	}
	if req.LinkedParticipantID != nil {
		if _, err := s.repo.GetByID(*req.LinkedParticipantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParticipantNotFound
			}
			return nil, fmt.Errorf("failed to verify linked participant: %w", err)
		}
		participant.LinkedParticipantID = req.LinkedParticipantID
	}
	if req.IsActive != nil {
		participant.IsActive = *req.IsActive
	}

	if err := s.repo.Update(participant); err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return s.toResponse(participant), nil
}

// GetCredits retrieves a participant's fairness credits
func (s *ParticipantService) GetCredits(id uuid.UUID) ([]models.FairnessCredit, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return s.creditRepo.GetByParticipant(id)
}

// GetForfeitures retrieves a participant's forfeitures
func (s *ParticipantService) GetForfeitures(id uuid.UUID) ([]models.Forfeiture, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return s.forfeitureRepo.GetByParticipant(id)
}

// CreateForfeiture records the loss of a participant's turn for a period
func (s *ParticipantService) CreateForfeiture(id uuid.UUID, req *CreateForfeitureRequest) (*models.Forfeiture, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Reason.IsValid() {
		return nil, apperrors.ErrInvalidReasonCode
	}
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	forfeiture := &models.Forfeiture{
		ParticipantID: id,
		PeriodStart:   PeriodStart(req.PeriodStart),
		Reason:        req.Reason,
		Notes:         req.Notes,
	}
	forfeiture.CreatedBy = req.Actor
	if err := s.forfeitureRepo.Create(forfeiture); err != nil {
		return nil, fmt.Errorf("failed to create forfeiture: %w", err)
	}
	return forfeiture, nil
}

// CreateVacationAllocation schedules a vacation period for a participant
func (s *ParticipantService) CreateVacationAllocation(id uuid.UUID, req *CreateVacationAllocationRequest) (*models.VacationAllocation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	allocation := &models.VacationAllocation{
		ParticipantID: id,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        models.VacationStatusScheduled,
	}
	allocation.CreatedBy = req.Actor
	if err := s.vacationRepo.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to create vacation allocation: %w", err)
	}
	return allocation, nil
}

// toResponse converts a participant model to response
func (s *ParticipantService) toResponse(participant *models.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:                  participant.ID,
		FullName:            participant.FullName,
		Email:               participant.Email,
		HiredAt:             participant.HiredAt.Format(models.DateOnly),
		UnitID:              participant.UnitID,
		IsLeader:            participant.IsLeader,
		LinkedParticipantID: participant.LinkedParticipantID,
		IsActive:            participant.IsActive,
	}
}
