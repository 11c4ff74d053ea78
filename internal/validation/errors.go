package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty validation error collection
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	messages := make([]string, len(ve.Errors))
	for i, fieldErr := range ve.Errors {
		messages[i] = fieldErr.Error()
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// HasErrors reports whether any field errors have been recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddRequiredError records a missing required field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeRequired,
		Message: fmt.Sprintf("%s is required", field),
	})
}

// AddInvalidLengthError records a field value outside its length bounds
func (ve *ValidationError) AddInvalidLengthError(field string, value string, min, max int) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidLength,
		Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
		Value:   value,
	})
}

// AddInvalidFormatError records a field value with an invalid format
func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expected string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidFormat,
		Message: fmt.Sprintf("%s has invalid format, expected %s", field, expected),
		Value:   value,
	})
}

// AddInvalidValueError records a field with an invalid value
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidValue,
		Message: fmt.Sprintf("%s is invalid: %s", field, reason),
		Value:   value,
	})
}

// GetUserFriendlyMessage returns a message suitable for showing to the user
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "Invalid input"
	}
	return ve.Errors[0].Message
}
