package handlers

import (
	"net/http"
	"strconv"

	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RotationGroupHandler handles HTTP requests for rotation groups
type RotationGroupHandler struct {
	groupService service.RotationGroupServiceInterface
}

// NewRotationGroupHandler creates a new rotation group handler
func NewRotationGroupHandler(groupService service.RotationGroupServiceInterface) *RotationGroupHandler {
	return &RotationGroupHandler{
		groupService: groupService,
	}
}

// CreateRotationGroup creates a new rotation group
// @Summary Create a new rotation group
// @Description Create a rotation pool for a location or a sector
// @Tags rotation-groups
// @Accept json
// @Produce json
// @Param group body service.CreateRotationGroupRequest true "Rotation group data"
// @Success 201 {object} service.RotationGroupResponse "Successfully created rotation group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Rotation group already exists"
// @Router /rotation-groups [post]
func (h *RotationGroupHandler) CreateRotationGroup(c *gin.Context) {
	var req service.CreateRotationGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetRotationGroup retrieves a rotation group by ID
// @Summary Get rotation group by ID
// @Tags rotation-groups
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Success 200 {object} service.RotationGroupResponse "Successfully retrieved rotation group"
// @Failure 400 {object} ErrorResponse "Invalid rotation group ID"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Router /rotation-groups/{id} [get]
func (h *RotationGroupHandler) GetRotationGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	group, err := h.groupService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ListRotationGroups lists rotation groups
// @Summary List rotation groups
// @Tags rotation-groups
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.RotationGroupListResponse "Successfully retrieved rotation groups"
// @Router /rotation-groups [get]
func (h *RotationGroupHandler) ListRotationGroups(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	groups, err := h.groupService.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// UpdateRotationGroup updates a rotation group
// @Summary Update rotation group
// @Tags rotation-groups
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Param group body service.UpdateRotationGroupRequest true "Fields to update"
// @Success 200 {object} service.RotationGroupResponse "Successfully updated rotation group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Router /rotation-groups/{id} [put]
func (h *RotationGroupHandler) UpdateRotationGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	var req service.UpdateRotationGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeactivateRotationGroup deactivates a rotation group
// @Summary Deactivate rotation group
// @Description Deactivates the group, keeping roster and queue history
// @Tags rotation-groups
// @Accept json
// @Produce json
// @Param id path string true "Rotation group ID (UUID)"
// @Success 204 "Successfully deactivated rotation group"
// @Failure 400 {object} ErrorResponse "Invalid rotation group ID"
// @Failure 404 {object} ErrorResponse "Rotation group not found"
// @Router /rotation-groups/{id} [delete]
func (h *RotationGroupHandler) DeactivateRotationGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rotation group ID"})
		return
	}

	if err := h.groupService.Deactivate(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
