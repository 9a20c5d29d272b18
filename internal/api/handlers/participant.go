package handlers

import (
	"net/http"
	"strconv"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParticipantHandler handles HTTP requests for participants
type ParticipantHandler struct {
	participantService *service.ParticipantService
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(participantService *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// CreateParticipantBody creates a participant
type CreateParticipantBody struct {
	FullName            string     `json:"full_name" binding:"required"`
	Email               string     `json:"email" binding:"required,email"`
	HiredAt             string     `json:"hired_at" binding:"required" example:"2024-03-01"`
	UnitID              *uuid.UUID `json:"unit_id,omitempty"`
	IsLeader            *bool      `json:"is_leader,omitempty"`
	LinkedParticipantID *uuid.UUID `json:"linked_participant_id,omitempty"`
}

// CreateForfeitureBody records the loss of a participant's turn
type CreateForfeitureBody struct {
	PeriodStart string `json:"period_start" binding:"required" example:"2026-09-01"`
	Reason      string `json:"reason" binding:"required" example:"unexcused_absence"`
	Notes       string `json:"notes,omitempty"`
}

// CreateVacationAllocationBody schedules a vacation period
type CreateVacationAllocationBody struct {
	StartDate string `json:"start_date" binding:"required" example:"2026-08-10"`
	EndDate   string `json:"end_date" binding:"required" example:"2026-08-21"`
}

// CreateParticipant creates a new participant
// @Summary Create a new participant
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body CreateParticipantBody true "Participant data"
// @Success 201 {object} service.ParticipantResponse "Successfully created participant"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Participant already exists"
// @Router /participants [post]
func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	var body CreateParticipantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hiredAt, err := time.Parse(models.DateOnly, body.HiredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hired_at, expected YYYY-MM-DD"})
		return
	}

	participant, err := h.participantService.Create(&service.CreateParticipantRequest{
		FullName:            body.FullName,
		Email:               body.Email,
		HiredAt:             hiredAt,
		UnitID:              body.UnitID,
		IsLeader:            body.IsLeader,
		LinkedParticipantID: body.LinkedParticipantID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// GetParticipant retrieves a participant by ID
// @Summary Get participant by ID
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Success 200 {object} service.ParticipantResponse "Successfully retrieved participant"
// @Failure 400 {object} ErrorResponse "Invalid participant ID"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Router /participants/{id} [get]
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	participant, err := h.participantService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

// ListParticipants lists participants
// @Summary List participants
// @Tags participants
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ParticipantListResponse "Successfully retrieved participants"
// @Router /participants [get]
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	participants, err := h.participantService.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// UpdateParticipant updates a participant
// @Summary Update participant
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Param participant body service.UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} service.ParticipantResponse "Successfully updated participant"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Router /participants/{id} [put]
func (h *ParticipantHandler) UpdateParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	var req service.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.participantService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

// GetCredits retrieves a participant's fairness credits
// @Summary Get a participant's fairness credits
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Success 200 {array} models.FairnessCredit "Successfully retrieved credits"
// @Failure 400 {object} ErrorResponse "Invalid participant ID"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Router /participants/{id}/credits [get]
func (h *ParticipantHandler) GetCredits(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	credits, err := h.participantService.GetCredits(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, credits)
}

// GetForfeitures retrieves a participant's forfeitures
// @Summary Get a participant's forfeitures
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Success 200 {array} models.Forfeiture "Successfully retrieved forfeitures"
// @Failure 400 {object} ErrorResponse "Invalid participant ID"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Router /participants/{id}/forfeitures [get]
func (h *ParticipantHandler) GetForfeitures(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	forfeitures, err := h.participantService.GetForfeitures(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, forfeitures)
}

// CreateForfeiture records the loss of a participant's turn
// @Summary Record a forfeiture
// @Description Records that the participant lost a turn for the given period. The reason must be one of the known codes.
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Param forfeiture body CreateForfeitureBody true "Forfeiture data"
// @Success 201 {object} models.Forfeiture "Forfeiture recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Failure 422 {object} ErrorResponse "Unknown reason code"
// @Router /participants/{id}/forfeitures [post]
func (h *ParticipantHandler) CreateForfeiture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	var body CreateForfeitureBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	periodStart, err := time.Parse(models.DateOnly, body.PeriodStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period_start, expected YYYY-MM-DD"})
		return
	}

	forfeiture, err := h.participantService.CreateForfeiture(id, &service.CreateForfeitureRequest{
		PeriodStart: periodStart,
		Reason:      models.ForfeitureReason(body.Reason),
		Notes:       body.Notes,
		Actor:       actorFrom(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, forfeiture)
}

// CreateVacationAllocation schedules a vacation period
// @Summary Schedule a vacation allocation
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Param allocation body CreateVacationAllocationBody true "Vacation period"
// @Success 201 {object} models.VacationAllocation "Vacation allocation created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Failure 422 {object} ErrorResponse "End date before start date"
// @Router /participants/{id}/vacation-allocations [post]
func (h *ParticipantHandler) CreateVacationAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	var body CreateVacationAllocationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := time.Parse(models.DateOnly, body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(models.DateOnly, body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	allocation, err := h.participantService.CreateVacationAllocation(id, &service.CreateVacationAllocationRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Actor:     actorFrom(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, allocation)
}
