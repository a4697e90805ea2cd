package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrNoResult        = errors.New("no gpa result calculated yet")

	// Token errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("token not found")
	ErrInvalidFormat = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Field names reported by ValidationError
const (
	FieldName          = "name"
	FieldGrade         = "grade"
	FieldUnits         = "units"
	FieldPreviousGPA   = "previousGpa"
	FieldPreviousUnits = "previousUnits"
	FieldSubjects      = "subjects"
	FieldScale         = "scale"
)

// Reason identifies why a field failed validation
type Reason string

const (
	ReasonRequired     Reason = "required"
	ReasonUnknownGrade Reason = "unknown-grade"
	ReasonNotInteger   Reason = "not-integer"
	ReasonNotPositive  Reason = "not-positive"
	ReasonOutOfRange   Reason = "out-of-range"
	ReasonNegative     Reason = "negative"
	ReasonEmptyLedger  Reason = "empty-ledger"
	ReasonDuplicate    Reason = "duplicate"
	ReasonTooLong      Reason = "too-long"
)

// ValidationError is returned when an input field is rejected.
// It unwraps to ErrValidationFailed.
type ValidationError struct {
	Field   string
	Reason  Reason
	Message string
}

// NewValidationError creates a ValidationError with a formatted message
func NewValidationError(field string, reason Reason, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// AsValidationError extracts a ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
