package handlers

import (
	"net/http"
	"strings"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QueueHandler handles HTTP requests for queues, rosters and assignments
type QueueHandler struct {
	queueService      *service.QueueService
	rosterService     *service.RosterService
	reconcilerService *service.ReconcilerService
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(
	queueService *service.QueueService,
	rosterService *service.RosterService,
	reconcilerService *service.ReconcilerService,
) *QueueHandler {
	return &QueueHandler{
		queueService:      queueService,
		rosterService:     rosterService,
		reconcilerService: reconcilerService,
	}
}

// AddMemberRequest links a participant to a rotation group
type AddMemberRequest struct {
	ParticipantID uuid.UUID `json:"participant_id" binding:"required"`
}

// SyncRosterRequest carries the current external membership of a group
type SyncRosterRequest struct {
	MemberIDs []uuid.UUID `json:"member_ids"`
}

// CreateAssignmentRequest creates one assignment
type CreateAssignmentRequest struct {
	GroupID         uuid.UUID  `json:"group_id" binding:"required"`
	ParticipantID   uuid.UUID  `json:"participant_id" binding:"required"`
	Date            string     `json:"date" binding:"required" example:"2026-09-15"`
	Shift           string     `json:"shift" binding:"required" example:"morning"`
	ConsumeCreditID *uuid.UUID `json:"consume_credit_id,omitempty"`
}

// BulkAssignmentRequest carries a batch of assignments, grouped and applied
// atomically per rotation group
type BulkAssignmentRequest struct {
	Items []CreateAssignmentRequest `json:"items" binding:"required,min=1"`
}

// GetQueue returns a group's queue snapshot
// @Summary Get a group's rotation queue
// @Description Ordered queue snapshot, lowest position (due soonest) first
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Success 200 {object} service.QueueResponse "Successfully retrieved queue"
// @Failure 400 {object} ErrorResponse "Invalid rotation group ID"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Router /rotation-groups/{id}/queue [get]
func (h *QueueHandler) GetQueue(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	queue, err := h.queueService.GetQueue(groupID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, queue)
}

// AddMember adds a participant to a group's roster
// @Summary Add a member to a rotation group
// @Description Appends the participant at the back of the group's queue
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Param member body AddMemberRequest true "Participant to add"
// @Success 201 {object} map[string]string "Member added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rotation group or participant not found"
// @Failure 409 {object} ErrorResponse "Participant is already a member"
// @Router /rotation-groups/{id}/members [post]
func (h *QueueHandler) AddMember(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rosterService.AddMember(groupID, req.ParticipantID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveMember removes a participant from a group's roster
// @Summary Remove a member from a rotation group
// @Description Frees the participant's queue slot and closes the position gap
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Param participantId path string true "Participant ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 422 {object} ErrorResponse "Participant is not a member"
// @Router /rotation-groups/{id}/members/{participantId} [delete]
func (h *QueueHandler) RemoveMember(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}
	participantID, err := uuid.Parse(c.Param("participantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	if err := h.rosterService.RemoveMember(groupID, participantID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SyncRoster reconciles a group's roster with external membership
// @Summary Reconcile a group's roster
// @Description Aligns the roster with the given membership set. Incumbents keep their positions, new members join at the back, departures free their slot. Idempotent.
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Param roster body SyncRosterRequest true "Current external membership"
// @Success 200 {object} service.ReconcileResult "Roster changes applied"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Router /rotation-groups/{id}/sync [post]
func (h *QueueHandler) SyncRoster(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	var req SyncRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reconcilerService.Reconcile(groupID, req.MemberIDs, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// NextEligible returns the rotation engine's pick for a group and date
// @Summary Get the next eligible participant
// @Description Scans the queue from the lowest position, skipping ineligible members. Credit holders jump ahead of the regular order.
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Param date query string true "Assignment date (YYYY-MM-DD)"
// @Param exclude query string false "Comma-separated participant IDs to skip"
// @Success 200 {object} service.NextEligibleResult "Successfully picked a candidate"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Failure 409 {object} ErrorResponse "No eligible candidate"
// @Router /rotation-groups/{id}/next [get]
func (h *QueueHandler) NextEligible(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	date, err := time.Parse(models.DateOnly, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	excludeIDs := make(map[uuid.UUID]bool)
	if raw := c.Query("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude list"})
				return
			}
			excludeIDs[id] = true
		}
	}

	result, err := h.queueService.NextEligible(groupID, excludeIDs, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAssignments lists a group's assignments within a period
// @Summary List a group's assignments
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Router /rotation-groups/{id}/assignments [get]
func (h *QueueHandler) ListAssignments(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	from, err := time.Parse(models.DateOnly, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(models.DateOnly, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	assignments, err := h.queueService.ListAssignments(groupID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment records one assignment
// @Summary Record an assignment
// @Description Creates the assignment and moves the participant to the back of the queue. Retries of the same (group, participant, date, shift) are reported as already applied.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Assignment recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Failure 422 {object} ErrorResponse "Participant is not a member or group is inactive"
// @Router /assignments [post]
func (h *QueueHandler) CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(models.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	assignment, err := h.queueService.RecordAssignment(&service.RecordAssignmentRequest{
		GroupID:         req.GroupID,
		ParticipantID:   req.ParticipantID,
		Date:            date,
		Shift:           models.Shift(req.Shift),
		ConsumeCreditID: req.ConsumeCreditID,
		Actor:           actorFrom(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if assignment.AlreadyApplied {
		status = http.StatusOK
	}
	c.JSON(status, assignment)
}

// CreateBulkAssignments records a batch of assignments
// @Summary Record assignments in bulk
// @Description Applies the batch atomically per rotation group. A failing group's batch rolls back without affecting the others.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignments body BulkAssignmentRequest true "Assignment batch"
// @Success 200 {object} service.BulkAssignmentResult "Per-group outcomes"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /assignments/bulk [post]
func (h *QueueHandler) CreateBulkAssignments(c *gin.Context) {
	var req BulkAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]service.BulkAssignmentItem, len(req.Items))
	for i, item := range req.Items {
		date, err := time.Parse(models.DateOnly, item.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		items[i] = service.BulkAssignmentItem{
			GroupID:       item.GroupID,
			ParticipantID: item.ParticipantID,
			Date:          date,
			Shift:         models.Shift(item.Shift),
		}
	}

	result, err := h.queueService.RecordBulkAssignments(items, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
