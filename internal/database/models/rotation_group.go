package models

// RotationGroup represents a pool of participants taking turns at a recurring
// duty: one external location, or one organizational sector for monthly
// day-offs. Groups are deactivated rather than deleted so queue history is
// retained.
type RotationGroup struct {
	BaseModel
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	GroupKind GroupKind `json:"group_kind" gorm:"type:varchar(20);not null" validate:"required"`
	Active    bool      `json:"active" gorm:"default:true"`

	// Relationships
	RosterEntries  []RosterEntry   `json:"roster_entries,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	QueuePositions []QueuePosition `json:"queue_positions,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RotationGroup
func (RotationGroup) TableName() string {
	return "rotation_groups"
}
