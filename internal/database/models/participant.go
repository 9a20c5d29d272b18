package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant represents a broker or collaborator taking part in rotations.
// LinkedParticipantID and UnitID carry the metadata the fairness evaluator
// reads for the pairing and leadership-exclusivity rules.
type Participant struct {
	BaseModel
	FullName            string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email               string     `json:"email" gorm:"uniqueIndex:idx_participants_email_active,where:is_active;not null;size:255" validate:"required,email,max=255"`
	HiredAt             time.Time  `json:"hired_at" gorm:"type:date;not null" validate:"required"`
	UnitID              *uuid.UUID `json:"unit_id,omitempty" gorm:"type:uuid;index"`
	IsLeader            bool       `json:"is_leader" gorm:"default:false"`
	LinkedParticipantID *uuid.UUID `json:"linked_participant_id,omitempty" gorm:"type:uuid;index"`
	IsActive            bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	LinkedParticipant *Participant  `json:"linked_participant,omitempty" gorm:"foreignKey:LinkedParticipantID"`
	RosterEntries     []RosterEntry `json:"roster_entries,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// TenureDaysAt returns the participant's tenure in whole days at the given date
func (p *Participant) TenureDaysAt(at time.Time) int {
	return int(at.Sub(p.HiredAt).Hours() / 24)
}
