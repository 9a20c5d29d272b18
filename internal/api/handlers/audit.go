package handlers

import (
	"net/http"
	"strconv"

	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler handles HTTP requests for the audit log
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// ListAuditRecords lists audit records
// @Summary List audit records
// @Description Audit log entries, newest first. With entity_type and entity_id, the listing is scoped to one entity's history.
// @Tags audit
// @Accept json
// @Produce json
// @Param entity_type query string false "Entity type filter (e.g. assignment)"
// @Param entity_id query string false "Entity ID filter (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.AuditListResponse "Successfully retrieved audit records"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /audit-log [get]
func (h *AuditHandler) ListAuditRecords(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entityType := c.Query("entity_type")
	var entityID *uuid.UUID
	if raw := c.Query("entity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity_id"})
			return
		}
		entityID = &id
	}

	records, err := h.auditService.List(entityType, entityID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
