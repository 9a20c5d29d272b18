package service

import (
	"errors"
	"fmt"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/logger"
	"brokerage-rotation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExceptionService applies manual overrides: moves, swaps, removals and
// reductions. Overridden assignments are flagged as exceptions with a
// justification, and every mutation appends an immutable audit record. The
// base rotation order is never touched here.
type ExceptionService struct {
	db              *gorm.DB
	assignRepo      *repository.AssignmentRepository
	participantRepo *repository.ParticipantRepository
	creditRepo      *repository.FairnessCreditRepository
	vacationRepo    *repository.VacationAllocationRepository
	auditRepo       *repository.AuditRepository
	fairness        *FairnessService
	validator       *validator.Validate
}

// NewExceptionService creates a new exception service
func NewExceptionService(
	db *gorm.DB,
	assignRepo *repository.AssignmentRepository,
	participantRepo *repository.ParticipantRepository,
	creditRepo *repository.FairnessCreditRepository,
	vacationRepo *repository.VacationAllocationRepository,
	auditRepo *repository.AuditRepository,
	fairness *FairnessService,
	validator *validator.Validate,
) *ExceptionService {
	return &ExceptionService{
		db:              db,
		assignRepo:      assignRepo,
		participantRepo: participantRepo,
		creditRepo:      creditRepo,
		vacationRepo:    vacationRepo,
		auditRepo:       auditRepo,
		fairness:        fairness,
		validator:       validator,
	}
}

// MoveAssignmentRequest moves an assignment to a new date
type MoveAssignmentRequest struct {
	NewDate time.Time `json:"new_date" validate:"required"`
	Reason  string    `json:"reason" validate:"required,max=500"`
	Actor   string    `json:"-"`
}

// RemoveAssignmentRequest deletes an assignment, optionally compensating the
// participant with a one-day credit
type RemoveAssignmentRequest struct {
	Justification string `json:"justification" validate:"required,max=500"`
	GrantCredit   bool   `json:"grant_credit"`
	Actor         string `json:"-"`
}

// ReduceAllocationRequest shortens a vacation allocation and credits the days
type ReduceAllocationRequest struct {
	DaysToRemove  int    `json:"days_to_remove" validate:"required"`
	Justification string `json:"justification" validate:"required,max=500"`
	Actor         string `json:"-"`
}

// MoveAssignment updates the assignment's date in place and flags it as an
// exception. When the participant has a paired relative with an assignment in
// the same period, that assignment moves to the same date as a linked
// side-effect; leaving it behind would break the pairing invariant.
func (s *ExceptionService) MoveAssignment(assignmentID uuid.UUID, req *MoveAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var response *AssignmentResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		assignRepo := s.assignRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		assignment, err := assignRepo.GetByID(assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		newDate := truncateToDate(req.NewDate)

		paired, err := s.pairedAssignmentInPeriod(tx, assignment)
		if err != nil {
			return err
		}

		if err := s.moveOne(assignRepo, auditRepo, assignment, newDate, req.Reason, req.Actor); err != nil {
			return err
		}
		if paired != nil {
			if err := s.moveOne(assignRepo, auditRepo, paired, newDate, req.Reason, req.Actor); err != nil {
				return err
			}
		}

		response = toAssignmentResponse(assignment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithField("assignment_id", assignmentID).Info("assignment moved")
	return response, nil
}

// moveOne applies the date change and exception flags to one assignment and
// appends its audit record
func (s *ExceptionService) moveOne(assignRepo *repository.AssignmentRepository, auditRepo *repository.AuditRepository, assignment *models.Assignment, newDate time.Time, reason, actor string) error {
	before, err := marshalState(assignment)
	if err != nil {
		return err
	}

	assignment.Date = newDate
	assignment.IsException = true
	assignment.ExceptionReason = reason
	assignment.UpdatedBy = actor

	if err := assignRepo.Update(assignment); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateAssignment
		}
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	after, err := marshalState(assignment)
	if err != nil {
		return err
	}
	return auditRepo.Append(&models.AuditRecord{
		Actor:       actor,
		Action:      models.AuditActionMoveAssignment,
		EntityType:  "assignment",
		EntityID:    assignment.ID,
		BeforeState: before,
		AfterState:  after,
	})
}

// SwapAssignments exchanges the dates of two assignments. When exactly one of
// the two participants has a paired relative with an assignment in the
// period, the swap would silently break that pairing and is rejected. When
// both have paired assignments, those are swapped too, all in one
// transaction.
func (s *ExceptionService) SwapAssignments(assignmentIDA, assignmentIDB uuid.UUID, actor string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		assignRepo := s.assignRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		a, err := assignRepo.GetByID(assignmentIDA)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		b, err := assignRepo.GetByID(assignmentIDB)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		pairedA, err := s.pairedAssignmentInPeriod(tx, a)
		if err != nil {
			return err
		}
		pairedB, err := s.pairedAssignmentInPeriod(tx, b)
		if err != nil {
			return err
		}

		if (pairedA == nil) != (pairedB == nil) {
			return apperrors.ErrPairingInconsistency
		}

		dateA, dateB := a.Date, b.Date
		reason := fmt.Sprintf("swapped with assignment %s", b.ID)
		if err := s.moveOne(assignRepo, auditRepo, a, dateB, reason, actor); err != nil {
			return err
		}
		reason = fmt.Sprintf("swapped with assignment %s", a.ID)
		if err := s.moveOne(assignRepo, auditRepo, b, dateA, reason, actor); err != nil {
			return err
		}

		if pairedA != nil && pairedB != nil {
			reason = fmt.Sprintf("paired swap with assignment %s", pairedB.ID)
			if err := s.moveOne(assignRepo, auditRepo, pairedA, dateB, reason, actor); err != nil {
				return err
			}
			reason = fmt.Sprintf("paired swap with assignment %s", pairedA.ID)
			if err := s.moveOne(assignRepo, auditRepo, pairedB, dateA, reason, actor); err != nil {
				return err
			}
		}

		return auditRepo.Append(&models.AuditRecord{
			Actor:      actor,
			Action:     models.AuditActionSwapAssignments,
			EntityType: "assignment",
			EntityID:   a.ID,
		})
	})
	if err != nil {
		return err
	}

	logger.New().WithFields(map[string]interface{}{
		"assignment_a": assignmentIDA,
		"assignment_b": assignmentIDB,
	}).Info("assignments swapped")
	return nil
}

// RemoveAssignment deletes the assignment; with grantCredit, a one-day
// fairness credit tied to the removed date compensates the participant.
func (s *ExceptionService) RemoveAssignment(assignmentID uuid.UUID, req *RemoveAssignmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		assignRepo := s.assignRepo.WithTx(tx)
		creditRepo := s.creditRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		assignment, err := assignRepo.GetByID(assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		before, err := marshalState(assignment)
		if err != nil {
			return err
		}

		if err := assignRepo.Delete(assignment.ID); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}

		if err := auditRepo.Append(&models.AuditRecord{
			Actor:       req.Actor,
			Action:      models.AuditActionRemoveAssignment,
			EntityType:  "assignment",
			EntityID:    assignment.ID,
			BeforeState: before,
		}); err != nil {
			return fmt.Errorf("failed to append audit record: %w", err)
		}

		if !req.GrantCredit {
			return nil
		}

		credit := &models.FairnessCredit{
			ParticipantID: assignment.ParticipantID,
			OriginDate:    assignment.Date,
			Days:          1,
			Justification: req.Justification,
			Status:        models.CreditStatusAvailable,
		}
		credit.CreatedBy = req.Actor
		if err := creditRepo.Create(credit); err != nil {
			return fmt.Errorf("failed to create fairness credit: %w", err)
		}

		after, err := marshalState(credit)
		if err != nil {
			return err
		}
		return auditRepo.Append(&models.AuditRecord{
			Actor:      req.Actor,
			Action:     models.AuditActionGrantCredit,
			EntityType: "fairness_credit",
			EntityID:   credit.ID,
			AfterState: after,
		})
	})
}

// ReduceAllocation shortens a vacation allocation's end date by daysToRemove
// and grants a matching fairness credit. The reduction must leave at least
// one day.
func (s *ExceptionService) ReduceAllocation(allocationID uuid.UUID, req *ReduceAllocationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		vacationRepo := s.vacationRepo.WithTx(tx)
		creditRepo := s.creditRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		allocation, err := vacationRepo.GetByID(allocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrVacationAllocationNotFound
			}
			return fmt.Errorf("failed to get vacation allocation: %w", err)
		}

		if req.DaysToRemove < 1 || req.DaysToRemove >= allocation.Days() {
			return apperrors.ErrInvalidReduction
		}

		before, err := marshalState(allocation)
		if err != nil {
			return err
		}

		allocation.EndDate = allocation.EndDate.AddDate(0, 0, -req.DaysToRemove)
		allocation.UpdatedBy = req.Actor
		if err := vacationRepo.Update(allocation); err != nil {
			return fmt.Errorf("failed to update vacation allocation: %w", err)
		}

		after, err := marshalState(allocation)
		if err != nil {
			return err
		}
		if err := auditRepo.Append(&models.AuditRecord{
			Actor:       req.Actor,
			Action:      models.AuditActionReduceAllocation,
			EntityType:  "vacation_allocation",
			EntityID:    allocation.ID,
			BeforeState: before,
			AfterState:  after,
		}); err != nil {
			return fmt.Errorf("failed to append audit record: %w", err)
		}

		credit := &models.FairnessCredit{
			ParticipantID: allocation.ParticipantID,
			OriginDate:    allocation.EndDate.AddDate(0, 0, 1),
			Days:          req.DaysToRemove,
			Justification: req.Justification,
			Status:        models.CreditStatusAvailable,
		}
		credit.CreatedBy = req.Actor
		if err := creditRepo.Create(credit); err != nil {
			return fmt.Errorf("failed to create fairness credit: %w", err)
		}

		creditState, err := marshalState(credit)
		if err != nil {
			return err
		}
		return auditRepo.Append(&models.AuditRecord{
			Actor:      req.Actor,
			Action:     models.AuditActionGrantCredit,
			EntityType: "fairness_credit",
			EntityID:   credit.ID,
			AfterState: creditState,
		})
	})
}

// pairedAssignmentInPeriod finds the assignment of the participant's linked
// relative within the month of the given assignment, when the pairing rule is
// on. Returns nil when no pairing applies.
func (s *ExceptionService) pairedAssignmentInPeriod(tx *gorm.DB, assignment *models.Assignment) (*models.Assignment, error) {
	if !s.fairness.Rules().PrioritizeRelatives {
		return nil, nil
	}

	participantRepo := s.participantRepo.WithTx(tx)
	assignRepo := s.assignRepo.WithTx(tx)

	participant, err := participantRepo.GetByID(assignment.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	if participant.LinkedParticipantID == nil {
		return nil, nil
	}

	from := PeriodStart(assignment.Date)
	to := PeriodEnd(assignment.Date)
	assignments, err := assignRepo.GetByParticipantAndPeriod(*participant.LinkedParticipantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get paired assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, nil
	}
	return &assignments[0], nil
}
