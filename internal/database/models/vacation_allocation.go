package models

import (
	"time"

	"github.com/google/uuid"
)

// VacationAllocation represents a participant's vacation period. It feeds the
// same-month vacation block in the fairness evaluator and is the target of
// the reduce operation, which shortens the end date and emits a credit.
type VacationAllocation struct {
	BaseModel
	ParticipantID uuid.UUID      `json:"participant_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate     time.Time      `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate       time.Time      `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Status        VacationStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`

	// Relationships
	Participant Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for VacationAllocation
func (VacationAllocation) TableName() string {
	return "vacation_allocations"
}

// Days returns the allocation length in calendar days, both ends inclusive
func (v *VacationAllocation) Days() int {
	return int(v.EndDate.Sub(v.StartDate).Hours()/24) + 1
}

// OverlapsMonth reports whether any day of the allocation falls in the month
// containing ref
func (v *VacationAllocation) OverlapsMonth(ref time.Time) bool {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	return !v.StartDate.After(monthEnd) && !v.EndDate.Before(monthStart)
}

// DaysInMonth returns how many days of the allocation fall in the month
// containing ref
func (v *VacationAllocation) DaysInMonth(ref time.Time) int {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	start := v.StartDate
	if start.Before(monthStart) {
		start = monthStart
	}
	end := v.EndDate
	if end.After(monthEnd) {
		end = monthEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
