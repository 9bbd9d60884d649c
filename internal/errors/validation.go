package errors

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// Error implements the error interface with fields in a stable order.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return ""
	}
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return strings.Join(parts, "; ")
}

// InvalidInput creates a validation error carrying per-field messages.
func InvalidInput(message string, fields FieldErrors) *AppError {
	err := &AppError{
		Kind:    ErrValidation,
		Message: message,
	}
	if len(fields) > 0 {
		err.Cause = fields
		err.Details = make(map[string]string, len(fields))
		for k, v := range fields {
			err.Details[k] = v
		}
	}
	return err
}
