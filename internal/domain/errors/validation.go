package errors

import (
	"net/http"
	"strings"
)

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is an AppError that carries per-field failures.
// Batch operations also use it to report partial failures.
type ValidationError struct {
	message string
	fields  []FieldError
}

// NewValidationError creates a validation error from field failures
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	if message == "" {
		message = ErrValidationFailed.Message()
	}

	return &ValidationError{message: message, fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return e.message
	}

	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return e.message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return e.message
}

func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the individual field failures
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// Add appends another field failure
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.fields = append(e.fields, FieldError{Field: field, Message: message})

	return e
}

// Is lets errors.Is match ErrValidationFailed
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrValidationFailed.ErrorCode()
}
