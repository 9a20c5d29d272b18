package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment represents one concrete duty occurrence. The composite unique
// index on (group, participant, date, shift) is the idempotency key: a retry
// after an ambiguous failure hits the constraint instead of double-advancing
// the queue. Assignments only change through the exception layer, which flags
// them with IsException and a reason.
type Assignment struct {
	BaseModel
	GroupID         uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_natural_key" validate:"required"`
	ParticipantID   uuid.UUID `json:"participant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_natural_key" validate:"required"`
	Date            time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_assignments_natural_key" validate:"required"`
	Shift           Shift     `json:"shift" gorm:"type:varchar(20);not null;uniqueIndex:idx_assignments_natural_key" validate:"required"`
	IsException     bool      `json:"is_exception" gorm:"default:false"`
	ExceptionReason string    `json:"exception_reason,omitempty" gorm:"size:500"`

	// Relationships (weak reference to the participant: no cascade)
	Group       RotationGroup `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Participant Participant   `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
