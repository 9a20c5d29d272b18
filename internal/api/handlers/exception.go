package handlers

import (
	"net/http"
	"time"

	"brokerage-rotation-backend/internal/database/models"
	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExceptionHandler handles HTTP requests for manual overrides
type ExceptionHandler struct {
	exceptionService *service.ExceptionService
}

// NewExceptionHandler creates a new exception handler
func NewExceptionHandler(exceptionService *service.ExceptionService) *ExceptionHandler {
	return &ExceptionHandler{
		exceptionService: exceptionService,
	}
}

// MoveAssignmentBody moves an assignment to a new date
type MoveAssignmentBody struct {
	NewDate string `json:"new_date" binding:"required" example:"2026-09-22"`
	Reason  string `json:"reason" binding:"required"`
}

// SwapAssignmentsBody exchanges the dates of two assignments
type SwapAssignmentsBody struct {
	AssignmentA uuid.UUID `json:"assignment_a" binding:"required"`
	AssignmentB uuid.UUID `json:"assignment_b" binding:"required"`
}

// RemoveAssignmentBody deletes an assignment
type RemoveAssignmentBody struct {
	Justification string `json:"justification" binding:"required"`
	GrantCredit   bool   `json:"grant_credit"`
}

// ReduceAllocationBody shortens a vacation allocation
type ReduceAllocationBody struct {
	DaysToRemove  int    `json:"days_to_remove" binding:"required"`
	Justification string `json:"justification" binding:"required"`
}

// MoveAssignment moves an assignment to a new date
// @Summary Move an assignment
// @Description Updates the assignment's date in place and flags it as an exception. A paired relative's assignment in the same period moves with it.
// @Tags exceptions
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param move body MoveAssignmentBody true "New date and reason"
// @Success 200 {object} service.AssignmentResponse "Assignment moved"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Target slot already taken"
// @Router /assignments/{id}/move [post]
func (h *ExceptionHandler) MoveAssignment(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var body MoveAssignmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newDate, err := time.Parse(models.DateOnly, body.NewDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid new_date, expected YYYY-MM-DD"})
		return
	}

	assignment, err := h.exceptionService.MoveAssignment(assignmentID, &service.MoveAssignmentRequest{
		NewDate: newDate,
		Reason:  body.Reason,
		Actor:   actorFrom(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// SwapAssignments exchanges the dates of two assignments
// @Summary Swap two assignments
// @Description Exchanges the dates of two assignments. When exactly one of the two participants has a paired assignment in the period, the swap is rejected; when both have, the paired assignments swap too.
// @Tags exceptions
// @Accept json
// @Produce json
// @Param swap body SwapAssignmentsBody true "Assignments to swap"
// @Success 200 {object} map[string]string "Assignments swapped"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 422 {object} ErrorResponse "Swap would break a pairing"
// @Router /assignments/swap [post]
func (h *ExceptionHandler) SwapAssignments(c *gin.Context) {
	var body SwapAssignmentsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.exceptionService.SwapAssignments(body.AssignmentA, body.AssignmentB, actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "swapped"})
}

// RemoveAssignment deletes an assignment
// @Summary Remove an assignment
// @Description Deletes the assignment. With grant_credit, the participant is compensated with a one-day fairness credit tied to the removed date.
// @Tags exceptions
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param removal body RemoveAssignmentBody true "Justification and credit flag"
// @Success 204 "Assignment removed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (h *ExceptionHandler) RemoveAssignment(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var body RemoveAssignmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.exceptionService.RemoveAssignment(assignmentID, &service.RemoveAssignmentRequest{
		Justification: body.Justification,
		GrantCredit:   body.GrantCredit,
		Actor:         actorFrom(c),
	}); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReduceAllocation shortens a vacation allocation
// @Summary Reduce a vacation allocation
// @Description Shortens the allocation's end date by the given number of days and grants a matching fairness credit. The reduction must leave at least one day.
// @Tags exceptions
// @Accept json
// @Produce json
// @Param id path string true "Vacation allocation ID (UUID)"
// @Param reduction body ReduceAllocationBody true "Days to remove and justification"
// @Success 204 "Allocation reduced"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Vacation allocation not found"
// @Failure 422 {object} ErrorResponse "Invalid reduction"
// @Router /vacation-allocations/{id}/reduce [post]
func (h *ExceptionHandler) ReduceAllocation(c *gin.Context) {
	allocationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vacation allocation ID"})
		return
	}

	var body ReduceAllocationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.exceptionService.ReduceAllocation(allocationID, &service.ReduceAllocationRequest{
		DaysToRemove:  body.DaysToRemove,
		Justification: body.Justification,
		Actor:         actorFrom(c),
	}); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
