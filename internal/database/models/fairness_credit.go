package models

import (
	"time"

	"github.com/google/uuid"
)

// FairnessCredit records compensation owed to a participant for a removed or
// shortened turn. An available credit lets a future allocation grant an extra
// turn without violating the no-repeat-before-exhaustion rule.
type FairnessCredit struct {
	BaseModel
	ParticipantID uuid.UUID    `json:"participant_id" gorm:"type:uuid;not null;index" validate:"required"`
	OriginDate    time.Time    `json:"origin_date" gorm:"type:date;not null" validate:"required"`
	Days          int          `json:"days" gorm:"not null" validate:"required,min=1"`
	Justification string       `json:"justification" gorm:"not null;size:500" validate:"required,max=500"`
	Status        CreditStatus `json:"status" gorm:"type:varchar(20);not null;default:'available'"`

	// Relationships
	Participant Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for FairnessCredit
func (FairnessCredit) TableName() string {
	return "fairness_credits"
}
