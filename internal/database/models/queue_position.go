package models

import (
	"time"

	"github.com/google/uuid"
)

// QueuePosition holds a participant's rank in a group's fairness ordering.
// Positions are dense and unique within an active group; lower means due
// sooner. Assignments move the assignee to the back, reconciliation closes
// gaps left by removals.
type QueuePosition struct {
	BaseModel
	GroupID        uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_queue_group_participant" validate:"required"`
	ParticipantID  uuid.UUID  `json:"participant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_queue_group_participant" validate:"required"`
	Position       int        `json:"position" gorm:"not null"`
	LastAssignedAt *time.Time `json:"last_assigned_at,omitempty" gorm:"type:date"`
	TimesAssigned  int        `json:"times_assigned" gorm:"not null;default:0"`

	// Relationships
	Group       RotationGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Participant Participant   `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for QueuePosition
func (QueuePosition) TableName() string {
	return "queue_positions"
}
