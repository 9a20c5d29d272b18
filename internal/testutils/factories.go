package testutils

import (
	"fmt"
	"time"

	"brokerage-rotation-backend/internal/database/models"

	"github.com/google/uuid"
)

// ParticipantFactory provides methods to create test Participant data
type ParticipantFactory struct{}

// NewParticipantFactory creates a new ParticipantFactory
func NewParticipantFactory() *ParticipantFactory {
	return &ParticipantFactory{}
}

// Create creates a test Participant with default values. Emails carry part of
// the UUID so the partial unique index never collides across tests.
func (f *ParticipantFactory) Create() *models.Participant {
	id := uuid.New()
	return &models.Participant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Dana Broker",
		Email:    fmt.Sprintf("dana.%s@brokerage.test", id.String()[:8]),
		HiredAt:  time.Now().AddDate(-1, 0, 0),
		IsActive: true,
	}
}

// WithHiredAt sets a custom hire date
func (f *ParticipantFactory) WithHiredAt(hiredAt time.Time) *models.Participant {
	participant := f.Create()
	participant.HiredAt = hiredAt
	return participant
}

// WithTenureDays sets the hire date the given number of days in the past
func (f *ParticipantFactory) WithTenureDays(days int) *models.Participant {
	participant := f.Create()
	participant.HiredAt = time.Now().AddDate(0, 0, -days)
	return participant
}

// WithUnit sets the unit and leader flag
func (f *ParticipantFactory) WithUnit(unitID uuid.UUID, isLeader bool) *models.Participant {
	participant := f.Create()
	participant.UnitID = &unitID
	participant.IsLeader = isLeader
	return participant
}

// WithLinkedParticipant links the participant to a relative
func (f *ParticipantFactory) WithLinkedParticipant(linkedID uuid.UUID) *models.Participant {
	participant := f.Create()
	participant.LinkedParticipantID = &linkedID
	return participant
}

// RotationGroupFactory provides methods to create test RotationGroup data
type RotationGroupFactory struct{}

// NewRotationGroupFactory creates a new RotationGroupFactory
func NewRotationGroupFactory() *RotationGroupFactory {
	return &RotationGroupFactory{}
}

// Create creates a test RotationGroup with default values
func (f *RotationGroupFactory) Create() *models.RotationGroup {
	id := uuid.New()
	return &models.RotationGroup{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "branch-" + id.String()[:8],
		GroupKind: models.GroupKindLocation,
		Active:    true,
	}
}

// WithName sets a custom name for the group
func (f *RotationGroupFactory) WithName(name string) *models.RotationGroup {
	group := f.Create()
	group.Name = name
	return group
}

// WithKind sets a custom group kind
func (f *RotationGroupFactory) WithKind(kind models.GroupKind) *models.RotationGroup {
	group := f.Create()
	group.GroupKind = kind
	return group
}

// Inactive creates a deactivated group
func (f *RotationGroupFactory) Inactive() *models.RotationGroup {
	group := f.Create()
	group.Active = false
	return group
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values
func (f *AssignmentFactory) Create(groupID, participantID uuid.UUID, date time.Time) *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:       groupID,
		ParticipantID: participantID,
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Shift:         models.ShiftFullDay,
	}
}

// FairnessCreditFactory provides methods to create test FairnessCredit data
type FairnessCreditFactory struct{}

// NewFairnessCreditFactory creates a new FairnessCreditFactory
func NewFairnessCreditFactory() *FairnessCreditFactory {
	return &FairnessCreditFactory{}
}

// Create creates an available one-day credit for the participant
func (f *FairnessCreditFactory) Create(participantID uuid.UUID, originDate time.Time) *models.FairnessCredit {
	return &models.FairnessCredit{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ParticipantID: participantID,
		OriginDate:    originDate,
		Days:          1,
		Justification: "test credit",
		Status:        models.CreditStatusAvailable,
	}
}

// VacationAllocationFactory provides methods to create test VacationAllocation data
type VacationAllocationFactory struct{}

// NewVacationAllocationFactory creates a new VacationAllocationFactory
func NewVacationAllocationFactory() *VacationAllocationFactory {
	return &VacationAllocationFactory{}
}

// Create creates a scheduled vacation for the participant
func (f *VacationAllocationFactory) Create(participantID uuid.UUID, start, end time.Time) *models.VacationAllocation {
	return &models.VacationAllocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ParticipantID: participantID,
		StartDate:     start,
		EndDate:       end,
		Status:        models.VacationStatusScheduled,
	}
}

// ForfeitureFactory provides methods to create test Forfeiture data
type ForfeitureFactory struct{}

// NewForfeitureFactory creates a new ForfeitureFactory
func NewForfeitureFactory() *ForfeitureFactory {
	return &ForfeitureFactory{}
}

// Create creates a forfeiture for the participant and period
func (f *ForfeitureFactory) Create(participantID uuid.UUID, periodStart time.Time) *models.Forfeiture {
	return &models.Forfeiture{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ParticipantID: participantID,
		PeriodStart:   periodStart,
		Reason:        models.ForfeitureReasonUnexcusedAbsence,
		Notes:         "test forfeiture",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Participant        *ParticipantFactory
	RotationGroup      *RotationGroupFactory
	Assignment         *AssignmentFactory
	FairnessCredit     *FairnessCreditFactory
	VacationAllocation *VacationAllocationFactory
	Forfeiture         *ForfeitureFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Participant:        NewParticipantFactory(),
		RotationGroup:      NewRotationGroupFactory(),
		Assignment:         NewAssignmentFactory(),
		FairnessCredit:     NewFairnessCreditFactory(),
		VacationAllocation: NewVacationAllocationFactory(),
		Forfeiture:         NewForfeitureFactory(),
	}
}
