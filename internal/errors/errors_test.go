package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "rotation group"}
		assert.Equal(t, "rotation group not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "participant"}
		err2 := &NotFoundError{Entity: "participant"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "participant"}
		err2 := &NotFoundError{Entity: "assignment"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrParticipantNotFound, ErrParticipantNotFound))
		assert.False(t, errors.Is(ErrParticipantNotFound, ErrAssignmentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrRotationGroupNotFound))
		assert.False(t, IsNotFound(ErrAlreadyMember))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading queue: %w", ErrRotationGroupNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "rotation group", Context: "with this name"}
		assert.Equal(t, "rotation group already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "participant"}
		assert.Equal(t, "participant already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "participant", Context: "with this email"}
		err2 := &AlreadyExistsError{Entity: "participant", Context: "with this email"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrParticipantExists))
		assert.False(t, IsAlreadyExists(ErrParticipantNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "must not be empty"}
		assert.Equal(t, "validation error: name - must not be empty", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid request"}
		assert.Equal(t, "validation error: invalid request", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("name", "must not be empty")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrParticipantNotFound))
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("roster errors are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrAlreadyMember, ErrNotAMember))
		assert.False(t, errors.Is(ErrNoEligibleCandidate, ErrGroupInactive))
	})

	t.Run("sentinels survive wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("applying batch: %w", ErrPairingInconsistency)
		assert.True(t, errors.Is(wrapped, ErrPairingInconsistency))
		assert.False(t, errors.Is(wrapped, ErrInvalidReduction))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("audit record")
		assert.Equal(t, "audit record not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("queue position", "in group")
		assert.Equal(t, "queue position already exists in group", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("rules file missing")
		assert.Equal(t, "rules file missing", err.Error())
		assert.True(t, IsConfiguration(err))
	})
}
