package service

import (
	"errors"
	"fmt"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService maintains group membership and the queue positions attached
// to it. New members are appended at the back of the queue; removals close the
// position gap without reshuffling the relative order of the rest.
type RosterService struct {
	db              *gorm.DB
	groupRepo       *repository.RotationGroupRepository
	participantRepo *repository.ParticipantRepository
	rosterRepo      *repository.RosterEntryRepository
	queueRepo       *repository.QueuePositionRepository
	locks           *GroupLocks
}

// NewRosterService creates a new roster service. The lock registry must be
// the one shared with the queue and reconciler services.
func NewRosterService(
	db *gorm.DB,
	groupRepo *repository.RotationGroupRepository,
	participantRepo *repository.ParticipantRepository,
	rosterRepo *repository.RosterEntryRepository,
	queueRepo *repository.QueuePositionRepository,
	locks *GroupLocks,
) *RosterService {
	return &RosterService{
		db:              db,
		groupRepo:       groupRepo,
		participantRepo: participantRepo,
		rosterRepo:      rosterRepo,
		queueRepo:       queueRepo,
		locks:           locks,
	}
}

// AddMember links a participant to a group and appends a queue position at
// max(position)+1. Fails with ErrAlreadyMember when an active entry exists.
func (s *RosterService) AddMember(groupID, participantID uuid.UUID) error {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRotationGroupNotFound
		}
		return fmt.Errorf("failed to get rotation group: %w", err)
	}
	if !group.Active {
		return apperrors.ErrGroupInactive
	}

	if _, err := s.participantRepo.GetByID(participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrParticipantNotFound
		}
		return fmt.Errorf("failed to get participant: %w", err)
	}

	s.locks.Lock(groupID)
	defer s.locks.Unlock(groupID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.addMemberTx(tx, groupID, participantID)
	})
}

// addMemberTx is the transactional body of AddMember, shared with the
// reconciler. Callers hold the group lock.
func (s *RosterService) addMemberTx(tx *gorm.DB, groupID, participantID uuid.UUID) error {
	rosterRepo := s.rosterRepo.WithTx(tx)
	queueRepo := s.queueRepo.WithTx(tx)

	if _, err := rosterRepo.GetActive(groupID, participantID); err == nil {
		return apperrors.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check roster entry: %w", err)
	}

	entry := &models.RosterEntry{
		GroupID:       groupID,
		ParticipantID: participantID,
		JoinedAt:      time.Now().UTC(),
		Active:        true,
	}
	if err := rosterRepo.Create(entry); err != nil {
		return fmt.Errorf("failed to create roster entry: %w", err)
	}

	// Lock the group's position rows so a concurrent writer cannot hand out
	// the same slot or renumber under us.
	positions, err := queueRepo.GetOrderedByGroupForUpdate(groupID)
	if err != nil {
		return fmt.Errorf("failed to lock queue positions: %w", err)
	}
	next := 0
	if len(positions) > 0 {
		next = positions[len(positions)-1].Position + 1
	}

	position := &models.QueuePosition{
		GroupID:       groupID,
		ParticipantID: participantID,
		Position:      next,
	}
	if err := queueRepo.Create(position); err != nil {
		return fmt.Errorf("failed to create queue position: %w", err)
	}

	return nil
}

// RemoveMember unlinks a participant from a group, deletes its queue position
// and closes the gap by decrementing every higher position. Fails with
// ErrNotAMember when no active entry exists.
func (s *RosterService) RemoveMember(groupID, participantID uuid.UUID) error {
	s.locks.Lock(groupID)
	defer s.locks.Unlock(groupID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.removeMemberTx(tx, groupID, participantID)
	})
}

// removeMemberTx is the transactional body of RemoveMember, shared with the
// reconciler. Callers hold the group lock.
func (s *RosterService) removeMemberTx(tx *gorm.DB, groupID, participantID uuid.UUID) error {
	rosterRepo := s.rosterRepo.WithTx(tx)
	queueRepo := s.queueRepo.WithTx(tx)

	entry, err := rosterRepo.GetActive(groupID, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotAMember
		}
		return fmt.Errorf("failed to get roster entry: %w", err)
	}

	if err := rosterRepo.Deactivate(entry.ID); err != nil {
		return fmt.Errorf("failed to deactivate roster entry: %w", err)
	}

	// Lock the group's position rows so the slot we read stays the slot we
	// delete, and the gap we close is the right one.
	positions, err := queueRepo.GetOrderedByGroupForUpdate(groupID)
	if err != nil {
		return fmt.Errorf("failed to lock queue positions: %w", err)
	}
	var position *models.QueuePosition
	for i := range positions {
		if positions[i].ParticipantID == participantID {
			position = &positions[i]
			break
		}
	}
	if position == nil {
		return nil
	}

	if err := queueRepo.Delete(position.ID); err != nil {
		return fmt.Errorf("failed to delete queue position: %w", err)
	}
	if err := queueRepo.ShiftDownAbove(groupID, position.Position); err != nil {
		return fmt.Errorf("failed to close queue position gap: %w", err)
	}

	return nil
}

// ListActiveMembers returns the group's active participant ids ordered by
// queue position, lowest (due soonest) first
func (s *RosterService) ListActiveMembers(groupID uuid.UUID) ([]uuid.UUID, error) {
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

	ids := make([]uuid.UUID, len(positions))
	for i, position := range positions {
		ids[i] = position.ParticipantID
	}
	return ids, nil
}
