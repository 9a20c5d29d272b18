package service

import (
	"encoding/json"
	"fmt"

	"brokerage-rotation-backend/internal/database/models"
	"brokerage-rotation-backend/internal/repository"

	"github.com/google/uuid"
)

// AuditService exposes read access to the audit log
type AuditService struct {
	repo *repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo *repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// AuditRecordResponse represents one audit record on the wire
type AuditRecordResponse struct {
	ID          uuid.UUID          `json:"id"`
	Actor       string             `json:"actor"`
	Action      models.AuditAction `json:"action"`
	EntityType  string             `json:"entity_type"`
	EntityID    uuid.UUID          `json:"entity_id"`
	BeforeState json.RawMessage    `json:"before_state,omitempty"`
	AfterState  json.RawMessage    `json:"after_state,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

// AuditListResponse represents a paginated slice of the audit log
type AuditListResponse struct {
	Records []AuditRecordResponse `json:"records"`
	Total   int64                 `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// List retrieves audit records, newest first. With entityType and entityID
// set, the listing is scoped to one entity's history.
func (s *AuditService) List(entityType string, entityID *uuid.UUID, limit, offset int) (*AuditListResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var (
		records []models.AuditRecord
		total   int64
		err     error
	)
	if entityType != "" && entityID != nil {
		records, total, err = s.repo.GetByEntity(entityType, *entityID, limit, offset)
	} else {
		records, total, err = s.repo.GetAll(limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}

	responses := make([]AuditRecordResponse, len(records))
	for i, record := range records {
		responses[i] = AuditRecordResponse{
			ID:          record.ID,
			Actor:       record.Actor,
			Action:      record.Action,
			EntityType:  record.EntityType,
			EntityID:    record.EntityID,
			BeforeState: record.BeforeState,
			AfterState:  record.AfterState,
			CreatedAt:   record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return &AuditListResponse{
		Records: responses,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
