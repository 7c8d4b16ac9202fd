package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInUse                = errors.New("referenced by existing orders")
	ErrInvalidReference     = errors.New("invalid reference")
	ErrInvalidPageParameter = errors.New("invalid page parameter")
	ErrEmptyAddress         = errors.New("address field can not be empty")
)

// NonFieldKey collects violations not tied to a single input field.
const NonFieldKey = "__all__"

// ValidationError carries field level violations of client input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError with a single violation.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records a violation, keeping the first reason reported for a field.
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = reason
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
