package models

import (
	"sort"
	"strings"
)

// ErrorResponse is the body of non-field error responses
// (401, 404, 405, 413, 429, 500).
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NonFieldErrors is the key used for errors that concern the request as a
// whole rather than a single field.
const NonFieldErrors = "non_field_errors"

// ValidationError maps a request field to the messages explaining why its
// value was rejected. It is rendered as the body of a 400 response.
type ValidationError map[string][]string

// Add appends a message for field.
func (v ValidationError) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Empty reports whether no field error has been recorded.
func (v ValidationError) Empty() bool {
	return len(v) == 0
}

// Err returns v as an error, or nil when it is empty.
func (v ValidationError) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

// Error implements error. Fields are listed in sorted order.
func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, field := range fields {
		b.WriteString(" ")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(v[field], " "))
		b.WriteString(";")
	}
	return b.String()
}

// NewValidationError returns a ValidationError with a single message.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{field: {message}}
}
