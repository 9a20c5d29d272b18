package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterEntry represents the membership of one participant in one rotation
// group. A participant appears at most once per group while active; removal
// deactivates the entry instead of deleting it.
type RosterEntry struct {
	BaseModel
	GroupID       uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_roster_group_participant_active,where:active" validate:"required"`
	ParticipantID uuid.UUID `json:"participant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_roster_group_participant_active,where:active" validate:"required"`
	JoinedAt      time.Time `json:"joined_at" gorm:"not null"`
	Active        bool      `json:"active" gorm:"default:true"`

	// Relationships
	Group       RotationGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Participant Participant   `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for RosterEntry
func (RosterEntry) TableName() string {
	return "roster_entries"
}
