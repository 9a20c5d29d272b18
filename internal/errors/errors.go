package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in group"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRotationGroupNotFound      = &NotFoundError{Entity: "rotation group"}
	ErrParticipantNotFound        = &NotFoundError{Entity: "participant"}
	ErrAssignmentNotFound         = &NotFoundError{Entity: "assignment"}
	ErrVacationAllocationNotFound = &NotFoundError{Entity: "vacation allocation"}
	ErrFairnessCreditNotFound     = &NotFoundError{Entity: "fairness credit"}
	ErrForfeitureNotFound         = &NotFoundError{Entity: "forfeiture"}
)

// Already Exists Errors
var (
	ErrRotationGroupExists = &AlreadyExistsError{Entity: "rotation group", Context: "with this name"}
	ErrParticipantExists   = &AlreadyExistsError{Entity: "participant", Context: "with this email"}
)

// Roster and Queue Errors
var (
	ErrAlreadyMember       = errors.New("participant is already an active member of this group")
	ErrNotAMember          = errors.New("participant is not an active member of this group")
	ErrNoEligibleCandidate = errors.New("no eligible candidate available in this group")
	ErrGroupInactive       = errors.New("rotation group is not active")
)

// Exception Layer Errors
var (
	ErrPairingInconsistency = errors.New("swap would break the relative pairing guarantee for one side")
	ErrInvalidReduction     = errors.New("invalid reduction: day count must be at least 1 and within the allocation")
	ErrDuplicateAssignment  = errors.New("assignment already exists for this group, participant, date and shift")
	ErrAssignmentImmutable  = errors.New("assignment can only be changed through an exception")
)

// Business Logic Errors
var (
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidShift            = errors.New("invalid shift")
	ErrInvalidGroupKind        = errors.New("invalid group kind")
	ErrInvalidReasonCode       = errors.New("invalid forfeiture reason code")
	ErrCreditAlreadyUsed       = errors.New("fairness credit has already been used")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
