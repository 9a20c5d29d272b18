package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/logger"
	"brokerage-rotation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// QueueService is the rotation engine. It picks the next eligible participant
// by queue order and advances the assignee to the back of the queue, which is
// what guarantees nobody is picked twice before every other active eligible
// member has had a turn.
type QueueService struct {
	db         *gorm.DB
	groupRepo  *repository.RotationGroupRepository
	queueRepo  *repository.QueuePositionRepository
	assignRepo *repository.AssignmentRepository
	creditRepo *repository.FairnessCreditRepository
	auditRepo  *repository.AuditRepository
	fairness   *FairnessService
	locks      *GroupLocks
	validator  *validator.Validate
}

// NewQueueService creates a new queue service. The lock registry must be the
// one shared with the roster and reconciler services.
func NewQueueService(
	db *gorm.DB,
	groupRepo *repository.RotationGroupRepository,
	queueRepo *repository.QueuePositionRepository,
	assignRepo *repository.AssignmentRepository,
	creditRepo *repository.FairnessCreditRepository,
	auditRepo *repository.AuditRepository,
	fairness *FairnessService,
	locks *GroupLocks,
	validator *validator.Validate,
) *QueueService {
	return &QueueService{
		db:         db,
		groupRepo:  groupRepo,
		queueRepo:  queueRepo,
		assignRepo: assignRepo,
		creditRepo: creditRepo,
		auditRepo:  auditRepo,
		fairness:   fairness,
		locks:      locks,
		validator:  validator,
	}
}

// QueueEntryResponse is one row of a group's queue snapshot
type QueueEntryResponse struct {
	ParticipantID  uuid.UUID `json:"participant_id"`
	Position       int       `json:"position"`
	LastAssignedAt *string   `json:"last_assigned_at,omitempty"`
	TimesAssigned  int       `json:"times_assigned"`
}

// QueueResponse is a group's queue snapshot ordered by position
type QueueResponse struct {
	GroupID uuid.UUID            `json:"group_id"`
	Entries []QueueEntryResponse `json:"entries"`
}

// NextEligibleResult reports the rotation engine's pick for a group and date
type NextEligibleResult struct {
	ParticipantID       uuid.UUID  `json:"participant_id"`
	Position            int        `json:"position"`
	PairedParticipantID *uuid.UUID `json:"paired_participant_id,omitempty"`
	CreditID            *uuid.UUID `json:"credit_id,omitempty"`
}

// RecordAssignmentRequest creates one assignment
type RecordAssignmentRequest struct {
	GroupID         uuid.UUID    `json:"group_id" validate:"required"`
	ParticipantID   uuid.UUID    `json:"participant_id" validate:"required"`
	Date            time.Time    `json:"date" validate:"required"`
	Shift           models.Shift `json:"shift" validate:"required"`
	ConsumeCreditID *uuid.UUID   `json:"consume_credit_id,omitempty"`
	Actor           string       `json:"-"`
}

// AssignmentResponse represents an assignment on the wire
type AssignmentResponse struct {
	ID              uuid.UUID    `json:"id"`
	GroupID         uuid.UUID    `json:"group_id"`
	ParticipantID   uuid.UUID    `json:"participant_id"`
	Date            string       `json:"date"`
	Shift           models.Shift `json:"shift"`
	IsException     bool         `json:"is_exception"`
	ExceptionReason string       `json:"exception_reason,omitempty"`
	AlreadyApplied  bool         `json:"already_applied,omitempty"`
}

// BulkAssignmentItem is one entry of a bulk assignment call
type BulkAssignmentItem struct {
	GroupID       uuid.UUID    `json:"group_id" validate:"required"`
	ParticipantID uuid.UUID    `json:"participant_id" validate:"required"`
	Date          time.Time    `json:"date" validate:"required"`
	Shift         models.Shift `json:"shift" validate:"required"`
}

// BulkAssignmentResult reports per-group outcomes of a bulk call
type BulkAssignmentResult struct {
	Updated      int         `json:"updated"`
	FailedGroups []uuid.UUID `json:"failed_groups,omitempty"`
}

// GetQueue returns the ordered queue snapshot of a group
func (s *QueueService) GetQueue(groupID uuid.UUID) (*QueueResponse, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get rotation group: %w", err)
	}

	positions, err := s.queueRepo.GetOrderedByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue positions: %w", err)
	}

	response := &QueueResponse{GroupID: groupID, Entries: make([]QueueEntryResponse, len(positions))}
	for i, position := range positions {
		entry := QueueEntryResponse{
			ParticipantID: position.ParticipantID,
			Position:      position.Position,
			TimesAssigned: position.TimesAssigned,
		}
		if position.LastAssignedAt != nil {
			formatted := position.LastAssignedAt.Format(models.DateOnly)
			entry.LastAssignedAt = &formatted
		}
		response.Entries[i] = entry
	}
	return response, nil
}

// NextEligible scans the queue from the lowest position, skipping excluded or
// ineligible members, and returns the first match. A credit holder among the
// eligible candidates is picked first, redeeming the owed turn; the credit id
// is returned so the caller can pass it to RecordAssignment. With the fair
// distribution rule off the queue order is ignored and the scan runs in
// roster join order.
func (s *QueueService) NextEligible(groupID uuid.UUID, excludeIDs map[uuid.UUID]bool, date time.Time) (*NextEligibleResult, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get rotation group: %w", err)
	}
	if !group.Active {
		return nil, apperrors.ErrGroupInactive
	}

	positions, err := s.queueRepo.GetOrderedByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue positions: %w", err)
	}

	if !s.fairness.Rules().FairDistribution {
		// Rotation order is off: scan in roster join order instead, so the
		// same member may be picked again before the others have had a turn.
		sort.SliceStable(positions, func(i, j int) bool {
			return positions[i].CreatedAt.Before(positions[j].CreatedAt)
		})
	}

	periodStart := PeriodStart(date)
	var fallback *NextEligibleResult

	for _, position := range positions {
		if excludeIDs[position.ParticipantID] {
			continue
		}

		result, err := s.fairness.IsEligible(position.ParticipantID, periodStart)
		if err != nil {
			return nil, err
		}
		if !result.Eligible {
			continue
		}

		conflict, err := s.fairness.LeadershipConflict(position.ParticipantID, date)
		if err != nil {
			return nil, err
		}
		if conflict {
			continue
		}

		candidate := &NextEligibleResult{
			ParticipantID: position.ParticipantID,
			Position:      position.Position,
		}

		paired, err := s.fairness.PairedCandidate(position.ParticipantID, periodStart)
		if err != nil {
			return nil, err
		}
		candidate.PairedParticipantID = paired

		credits, err := s.creditRepo.GetAvailableByParticipant(position.ParticipantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get fairness credits: %w", err)
		}
		if len(credits) > 0 {
			// Owed a turn: jumps ahead of the regular order.
			candidate.CreditID = &credits[0].ID
			return candidate, nil
		}

		if fallback == nil {
			fallback = candidate
		}
	}

	if fallback == nil {
		return nil, apperrors.ErrNoEligibleCandidate
	}
	return fallback, nil
}

// RecordAssignment creates the assignment, bumps the assignee's counters and
// moves it to the back of the queue, renumbering so positions stay dense. A
// retry that hits the natural-key constraint is reported as already applied
// without advancing the queue a second time.
func (s *QueueService) RecordAssignment(req *RecordAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Shift.IsValid() {
		return nil, apperrors.ErrInvalidShift
	}

	group, err := s.groupRepo.GetByID(req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get rotation group: %w", err)
	}
	if !group.Active {
		return nil, apperrors.ErrGroupInactive
	}

	s.locks.Lock(req.GroupID)
	defer s.locks.Unlock(req.GroupID)

	var response *AssignmentResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		response, txErr = s.recordAssignmentTx(tx, req)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithGroup(req.GroupID).WithFields(map[string]interface{}{
		"participant_id": req.ParticipantID,
		"date":           req.Date.Format(models.DateOnly),
		"shift":          req.Shift,
	}).Info("assignment recorded")

	return response, nil
}

// recordAssignmentTx applies one assignment inside the caller's transaction
func (s *QueueService) recordAssignmentTx(tx *gorm.DB, req *RecordAssignmentRequest) (*AssignmentResponse, error) {
	queueRepo := s.queueRepo.WithTx(tx)
	assignRepo := s.assignRepo.WithTx(tx)
	creditRepo := s.creditRepo.WithTx(tx)
	auditRepo := s.auditRepo.WithTx(tx)

	date := truncateToDate(req.Date)

	positions, err := queueRepo.GetOrderedByGroupForUpdate(req.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock queue positions: %w", err)
	}

	var current *models.QueuePosition
	for i := range positions {
		if positions[i].ParticipantID == req.ParticipantID {
			current = &positions[i]
			break
		}
	}
	if current == nil {
		return nil, apperrors.ErrNotAMember
	}

	// Retry after an ambiguous failure: the row exists, the queue was already
	// advanced. Report as applied, do not advance again. The check must run
	// before the insert; a failed insert would abort the whole transaction on
	// Postgres and poison every later statement in it. The position row locks
	// held above keep the check race-free against other writers.
	existing, err := assignRepo.GetByNaturalKey(req.GroupID, req.ParticipantID, date, req.Shift)
	if err == nil {
		response := toAssignmentResponse(existing)
		response.AlreadyApplied = true
		return response, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}

	assignment := &models.Assignment{
		GroupID:       req.GroupID,
		ParticipantID: req.ParticipantID,
		Date:          date,
		Shift:         req.Shift,
	}
	assignment.CreatedBy = req.Actor

	if err := assignRepo.Create(assignment); err != nil {
		if isUniqueViolation(err) {
			// Unreachable while every writer locks the position rows first,
			// but a raced insert from outside the engine still maps to a
			// conflict instead of aborting with a raw constraint error.
			return nil, apperrors.ErrDuplicateAssignment
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	// Move to back: close the gap above the old slot, land on the last slot.
	if err := queueRepo.ShiftDownAbove(req.GroupID, current.Position); err != nil {
		return nil, fmt.Errorf("failed to shift queue positions: %w", err)
	}
	if err := queueRepo.SetPosition(current.ID, len(positions)-1); err != nil {
		return nil, fmt.Errorf("failed to move participant to back: %w", err)
	}
	if err := queueRepo.RecordAssignment(current.ID, date); err != nil {
		return nil, fmt.Errorf("failed to update assignment counters: %w", err)
	}

	if req.ConsumeCreditID != nil {
		credit, err := creditRepo.GetByID(*req.ConsumeCreditID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrFairnessCreditNotFound
			}
			return nil, fmt.Errorf("failed to get fairness credit: %w", err)
		}
		if credit.Status != models.CreditStatusAvailable {
			return nil, apperrors.ErrCreditAlreadyUsed
		}
		if err := creditRepo.MarkUsed(credit.ID); err != nil {
			return nil, fmt.Errorf("failed to consume fairness credit: %w", err)
		}
	}

	after, err := marshalState(assignment)
	if err != nil {
		return nil, err
	}
	record := &models.AuditRecord{
		Actor:      req.Actor,
		Action:     models.AuditActionAssign,
		EntityType: "assignment",
		EntityID:   assignment.ID,
		AfterState: after,
	}
	if err := auditRepo.Append(record); err != nil {
		return nil, fmt.Errorf("failed to append audit record: %w", err)
	}

	return toAssignmentResponse(assignment), nil
}

// RecordBulkAssignments applies a batch of assignments atomically per group.
// A failure rolls back only that group's batch; other groups proceed. Locks
// are taken in sorted group order to avoid deadlock between concurrent calls.
func (s *QueueService) RecordBulkAssignments(items []BulkAssignmentItem, actor string) (*BulkAssignmentResult, error) {
	byGroup := make(map[uuid.UUID][]BulkAssignmentItem)
	for _, item := range items {
		if err := s.validator.Struct(&item); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
		if !item.Shift.IsValid() {
			return nil, apperrors.ErrInvalidShift
		}
		byGroup[item.GroupID] = append(byGroup[item.GroupID], item)
	}

	groupIDs := make([]uuid.UUID, 0, len(byGroup))
	for groupID := range byGroup {
		groupIDs = append(groupIDs, groupID)
	}
	ordered := s.locks.LockAll(groupIDs)
	defer s.locks.UnlockAll(ordered)

	result := &BulkAssignmentResult{}
	// Deterministic processing order matches the lock order.
	sort.Slice(groupIDs, func(i, j int) bool {
		return groupIDs[i].String() < groupIDs[j].String()
	})

	for _, groupID := range groupIDs {
		batch := byGroup[groupID]
		err := s.db.Transaction(func(tx *gorm.DB) error {
			for _, item := range batch {
				req := &RecordAssignmentRequest{
					GroupID:       item.GroupID,
					ParticipantID: item.ParticipantID,
					Date:          item.Date,
					Shift:         item.Shift,
					Actor:         actor,
				}
				if _, err := s.recordAssignmentTx(tx, req); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logger.New().WithGroup(groupID).Warnf("bulk assignment batch rejected: %v", err)
			result.FailedGroups = append(result.FailedGroups, groupID)
			continue
		}
		result.Updated += len(batch)
	}

	return result, nil
}

// ListAssignments returns a group's assignments within [from, to], date order
func (s *QueueService) ListAssignments(groupID uuid.UUID, from, to time.Time) ([]AssignmentResponse, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationGroupNotFound
		}
		return nil, fmt.Errorf("failed to get rotation group: %w", err)
	}

	assignments, err := s.assignRepo.GetByGroupAndPeriod(groupID, truncateToDate(from), truncateToDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// isUniqueViolation reports a Postgres unique-constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// truncateToDate drops any time-of-day component
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// toAssignmentResponse converts an assignment model to response
func toAssignmentResponse(assignment *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:              assignment.ID,
		GroupID:         assignment.GroupID,
		ParticipantID:   assignment.ParticipantID,
		Date:            assignment.Date.Format(models.DateOnly),
		Shift:           assignment.Shift,
		IsException:     assignment.IsException,
		ExceptionReason: assignment.ExceptionReason,
	}
}
