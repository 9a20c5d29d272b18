package service

import (
	"errors"
	"fmt"
	"time"

	"brokerage-rotation-backend/internal/config"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FairnessService decides who may enter a period's draw. All policy comes
// from the tenant's FairnessRules; nothing here is hard-coded.
type FairnessService struct {
	participantRepo *repository.ParticipantRepository
	vacationRepo    *repository.VacationAllocationRepository
	forfeitureRepo  *repository.ForfeitureRepository
	assignmentRepo  *repository.AssignmentRepository
	rules           *config.FairnessRules
}

// NewFairnessService creates a new fairness service
func NewFairnessService(
	participantRepo *repository.ParticipantRepository,
	vacationRepo *repository.VacationAllocationRepository,
	forfeitureRepo *repository.ForfeitureRepository,
	assignmentRepo *repository.AssignmentRepository,
	rules *config.FairnessRules,
) *FairnessService {
	return &FairnessService{
		participantRepo: participantRepo,
		vacationRepo:    vacationRepo,
		forfeitureRepo:  forfeitureRepo,
		assignmentRepo:  assignmentRepo,
		rules:           rules,
	}
}

// Rules exposes the active rule set
func (s *FairnessService) Rules() *config.FairnessRules {
	return s.rules
}

// EligibilityResult reports an eligibility decision and, when ineligible, why
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// IsEligible checks whether a participant may enter the draw for the period
// starting at periodStart. Ineligibility is a result, not an error.
func (s *FairnessService) IsEligible(participantID uuid.UUID, periodStart time.Time) (*EligibilityResult, error) {
	participant, err := s.participantRepo.GetByID(participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	if !participant.IsActive {
		return &EligibilityResult{Eligible: false, Reason: "participant is inactive"}, nil
	}

	if participant.TenureDaysAt(periodStart) < s.rules.MinTenureDays {
		return &EligibilityResult{
			Eligible: false,
			Reason:   fmt.Sprintf("tenure below the minimum of %d days", s.rules.MinTenureDays),
		}, nil
	}

	if s.rules.BlockSameMonthAsVacation {
		blocked, err := s.vacationBlocks(participantID, periodStart)
		if err != nil {
			return nil, err
		}
		if blocked {
			return &EligibilityResult{Eligible: false, Reason: "vacation overlaps the target month"}, nil
		}
	}

	forfeited, err := s.forfeitureRepo.ExistsForPeriod(participantID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to check forfeitures: %w", err)
	}
	if forfeited {
		return &EligibilityResult{Eligible: false, Reason: "turn forfeited for this period"}, nil
	}

	return &EligibilityResult{Eligible: true}, nil
}

// vacationBlocks applies the same-month vacation rule. With the split rule
// on, a vacation spanning two months only blocks the month holding the
// majority of its days.
func (s *FairnessService) vacationBlocks(participantID uuid.UUID, periodStart time.Time) (bool, error) {
	monthStart := time.Date(periodStart.Year(), periodStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	allocations, err := s.vacationRepo.GetOverlapping(participantID, monthStart, monthEnd)
	if err != nil {
		return false, fmt.Errorf("failed to check vacation allocations: %w", err)
	}

	for _, allocation := range allocations {
		if !s.rules.SplitVacationFairnessRule {
			return true, nil
		}
		inMonth := allocation.DaysInMonth(monthStart)
		if inMonth*2 > allocation.Days() {
			return true, nil
		}
		// Minority share: the day-off belongs to this month, no block.
	}

	return false, nil
}

// PairedCandidate returns the linked relative when the pairing rule is on and
// the relative is also eligible for the period. A nil result means no pairing
// applies.
func (s *FairnessService) PairedCandidate(participantID uuid.UUID, periodStart time.Time) (*uuid.UUID, error) {
	if !s.rules.PrioritizeRelatives {
		return nil, nil
	}

	participant, err := s.participantRepo.GetByID(participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	if participant.LinkedParticipantID == nil {
		return nil, nil
	}

	result, err := s.IsEligible(*participant.LinkedParticipantID, periodStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !result.Eligible {
		return nil, nil
	}

	linked := *participant.LinkedParticipantID
	return &linked, nil
}

// LeadershipConflict reports whether assigning the participant on the date
// would put two leaders of the same unit on duty the same day.
func (s *FairnessService) LeadershipConflict(participantID uuid.UUID, date time.Time) (bool, error) {
	if !s.rules.BlockSameUnitLeaders {
		return false, nil
	}

	participant, err := s.participantRepo.GetByID(participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrParticipantNotFound
		}
		return false, fmt.Errorf("failed to get participant: %w", err)
	}
	if !participant.IsLeader || participant.UnitID == nil {
		return false, nil
	}

	leaders, err := s.participantRepo.GetLeadersByUnit(*participant.UnitID)
	if err != nil {
		return false, fmt.Errorf("failed to get unit leaders: %w", err)
	}

	var otherIDs []uuid.UUID
	for _, leader := range leaders {
		if leader.ID != participantID {
			otherIDs = append(otherIDs, leader.ID)
		}
	}
	if len(otherIDs) == 0 {
		return false, nil
	}

	assignments, err := s.assignmentRepo.GetByParticipantsAndDate(otherIDs, date)
	if err != nil {
		return false, fmt.Errorf("failed to check leader assignments: %w", err)
	}

	return len(assignments) > 0, nil
}

// PeriodStart normalizes a date to the first day of its month, the period
// boundary used by the monthly day-off draw.
func PeriodStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the last day of the month containing date
func PeriodEnd(date time.Time) time.Time {
	return PeriodStart(date).AddDate(0, 1, -1)
}
