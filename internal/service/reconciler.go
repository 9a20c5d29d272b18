package service

import (
	"errors"
	"fmt"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/logger"
	"brokerage-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReconcilerService aligns a group's roster with external membership (brokers
// linked to or removed from a location). Incumbents keep their positions; new
// members join at the back; departures free their slot. Running it twice with
// the same set is a no-op the second time.
type ReconcilerService struct {
	db        *gorm.DB
	groupRepo *repository.RotationGroupRepository
	roster    *RosterService
	auditRepo *repository.AuditRepository
	locks     *GroupLocks
}

// NewReconcilerService creates a new reconciler service. The lock registry
// must be the one shared with the queue and roster services.
func NewReconcilerService(
	db *gorm.DB,
	groupRepo *repository.RotationGroupRepository,
	roster *RosterService,
	auditRepo *repository.AuditRepository,
	locks *GroupLocks,
) *ReconcilerService {
	return &ReconcilerService{
		db:        db,
		groupRepo: groupRepo,
		roster:    roster,
		auditRepo: auditRepo,
		locks:     locks,
	}
}

// ReconcileResult reports the roster changes applied by one reconciliation
type ReconcileResult struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Reconcile compares the current external membership against the active
// roster and applies the difference.
func (s *ReconcilerService) Reconcile(groupID uuid.UUID, externalMembers []uuid.UUID, actor string) (*ReconcileResult, error) {
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

	s.locks.Lock(groupID)
	defer s.locks.Unlock(groupID)

	external := make(map[uuid.UUID]bool, len(externalMembers))
	for _, id := range externalMembers {
		external[id] = true
	}

	current, err := s.roster.ListActiveMembers(groupID)
	if err != nil {
		return nil, err
	}
	currentSet := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}

	result := &ReconcileResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Removals first so freed positions compact before appends.
		for _, id := range current {
			if !external[id] {
				if err := s.roster.removeMemberTx(tx, groupID, id); err != nil {
					return err
				}
				result.Removed++
			}
		}
		for _, id := range externalMembers {
			if !currentSet[id] {
				if err := s.roster.addMemberTx(tx, groupID, id); err != nil {
					return err
				}
				result.Added++
			}
		}

		if result.Added == 0 && result.Removed == 0 {
			return nil
		}

		after, err := marshalState(result)
		if err != nil {
			return err
		}
		return s.auditRepo.WithTx(tx).Append(&models.AuditRecord{
			Actor:      actor,
			Action:     models.AuditActionReconcile,
			EntityType: "rotation_group",
			EntityID:   groupID,
			AfterState: after,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithGroup(groupID).WithFields(map[string]interface{}{
		"added":   result.Added,
		"removed": result.Removed,
	}).Info("roster reconciled")

	return result, nil
}
