// Package errors provides categorized error types with actionable suggestions
// for offerdesk. Errors carry enough context for the CLI to print a helpful
// message and for the TUI to decide what to show in a toast.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrAuth indicates the remote API rejected our credentials.
	ErrAuth = errors.New("authentication error")
	// ErrSession indicates there is no usable local session.
	ErrSession = errors.New("session error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrNetwork indicates a transport failure talking to the API.
	ErrNetwork = errors.New("network error")
	// ErrTimeout indicates a request timed out or was cancelled.
	ErrTimeout = errors.New("timeout error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates input failed validation, locally or on the server.
	ErrValidation = errors.New("validation error")
	// ErrAPI indicates the API answered with a non-success status.
	ErrAPI = errors.New("api error")
)

// AppError is the base error type for offerdesk errors.
// It wraps an underlying error and provides additional context.
type AppError struct {
	// Kind is the category of error (e.g., ErrAuth, ErrNetwork).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Status is the HTTP status code for API errors, zero otherwise.
	Status int
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., endpoint, field name).
	Details map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error kind matches target.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *AppError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError with the given kind and message.
func New(kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As returns the *AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsUserError returns true if the error is due to user input or setup.
func IsUserError(err error) bool {
	appErr, ok := As(err)
	if !ok {
		return false
	}
	switch appErr.Kind {
	case ErrConfig, ErrAuth, ErrSession, ErrValidation:
		return true
	default:
		return false
	}
}

// UserMessage picks the text shown to a user for err: the API-provided message
// when present, else the error text, else fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if appErr, ok := As(err); ok {
		if msg := appErr.Details["server_message"]; msg != "" {
			return msg
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
