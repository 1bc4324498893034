package errors

import (
	"net/http"
	"strings"
)

// FieldError is a single failed constraint, addressed by wire path
// (e.g. "conversations[0].messages[1].text").
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports malformed or out-of-constraint input. It carries
// every failing field, in declaration order. Never retried.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a ValidationError from the failing fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing fields.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// HTTPCode returns 422: the payload parsed but broke a constraint.
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return "Validation failed"
}

func (e *ValidationError) Details() string {
	return e.Error()
}
