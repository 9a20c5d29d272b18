package models

import (
	"time"

	"github.com/google/uuid"
)

// Forfeiture records the loss of a participant's turn for a period. The
// fairness evaluator treats a participant with a forfeiture in the target
// period as ineligible for that period's draw.
type Forfeiture struct {
	BaseModel
	ParticipantID uuid.UUID        `json:"participant_id" gorm:"type:uuid;not null;index" validate:"required"`
	PeriodStart   time.Time        `json:"period_start" gorm:"type:date;not null;index" validate:"required"`
	Reason        ForfeitureReason `json:"reason" gorm:"type:varchar(40);not null" validate:"required"`
	Notes         string           `json:"notes,omitempty" gorm:"size:500"`

	// Relationships
	Participant Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for Forfeiture
func (Forfeiture) TableName() string {
	return "forfeitures"
}
