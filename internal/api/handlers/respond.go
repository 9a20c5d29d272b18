package handlers

import (
	"errors"
	"net/http"

	apperrors "brokerage-rotation-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrAlreadyMember),
		errors.Is(err, apperrors.ErrDuplicateAssignment):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPairingInconsistency),
		errors.Is(err, apperrors.ErrInvalidReduction),
		errors.Is(err, apperrors.ErrNotAMember),
		errors.Is(err, apperrors.ErrGroupInactive),
		errors.Is(err, apperrors.ErrInvalidShift),
		errors.Is(err, apperrors.ErrInvalidGroupKind),
		errors.Is(err, apperrors.ErrInvalidReasonCode),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrCreditAlreadyUsed),
		apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoEligibleCandidate):
		// Nobody available is a result for the caller, not a server fault.
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// actorFrom reads the acting user from headers, defaulting to "system"
func actorFrom(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor"); actor != "" {
		return actor
	}
	return "system"
}
