package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an immutable log entry appended for every mutation made
// through the exception layer. Records are never updated or deleted.
type AuditRecord struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Actor       string          `json:"actor" gorm:"not null;size:100"`
	Action      AuditAction     `json:"action" gorm:"type:varchar(40);not null;index"`
	EntityType  string          `json:"entity_type" gorm:"not null;size:60;index"`
	EntityID    uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	BeforeState json.RawMessage `json:"before_state,omitempty" gorm:"type:jsonb"`
	AfterState  json.RawMessage `json:"after_state,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName returns the table name for AuditRecord
func (AuditRecord) TableName() string {
	return "audit_log"
}
