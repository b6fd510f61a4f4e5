package errors

import (
	"errors"
	"fmt"
)

// PlanningError represents a caller-correctable planning input error.
// Two PlanningErrors match under errors.Is when their codes are equal.
type PlanningError struct {
	Code    string
	Message string
}

func (e *PlanningError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("planning error: %s", e.Code)
}

// Is enables errors.Is() comparison for PlanningError
func (e *PlanningError) Is(target error) bool {
	t, ok := target.(*PlanningError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error carrying a specific message
func (e *PlanningError) WithMessage(format string, args ...interface{}) *PlanningError {
	return &PlanningError{
		Code:    e.Code,
		Message: fmt.Sprintf(format, args...),
	}
}

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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Planning Errors
var (
	ErrInvalidPlantID             = &PlanningError{Code: "INVALID_PLANT_ID"}
	ErrInvalidGardenArea          = &PlanningError{Code: "INVALID_GARDEN_AREA"}
	ErrInvalidPlantSelection      = &PlanningError{Code: "INVALID_PLANT_SELECTION"}
	ErrGardenCapacityExceeded     = &PlanningError{Code: "GARDEN_CAPACITY_EXCEEDED"}
	ErrIncompatibleSelectedPlants = &PlanningError{Code: "INCOMPATIBLE_SELECTED_PLANTS"}
)

// Entity Not Found Errors
var (
	ErrPlantNotFound = &NotFoundError{Entity: "plant"}
)

// Dataset Errors
var (
	ErrDatasetNotLoaded     = errors.New("companion dataset is not loaded")
	ErrDatasetSourceUnknown = &ConfigurationError{Message: "unknown companion dataset source"}
	ErrDatasetNotFound      = &ConfigurationError{Message: "companion dataset file not found"}
)

// Authentication Errors
var (
	ErrMissingAuthorization = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid token"}
)

// Helper Functions

// IsPlanningError checks if an error is a PlanningError
func IsPlanningError(err error) bool {
	var planningErr *PlanningError
	return errors.As(err, &planningErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}
