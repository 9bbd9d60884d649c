package errors

import (
	"fmt"
	"time"
)

// NotLoggedIn creates an error for commands that need a stored session.
func NotLoggedIn() *AppError {
	return &AppError{
		Kind:       ErrSession,
		Message:    "not logged in",
		Suggestion: "Run: offerdesk login",
	}
}

// SessionExpired creates an error for a stored token whose exp claim has passed.
func SessionExpired(expiredAt time.Time) *AppError {
	return &AppError{
		Kind:    ErrSession,
		Message: fmt.Sprintf("session expired at %s", expiredAt.Format(time.RFC3339)),
		Details: map[string]string{
			"expired_at": expiredAt.Format(time.RFC3339),
		},
		Suggestion: "Run: offerdesk login",
	}
}

// LoginFailed creates an error for rejected credentials.
func LoginFailed(email string, cause error) *AppError {
	err := &AppError{
		Kind:       ErrAuth,
		Message:    "login failed",
		Cause:      cause,
		Suggestion: "Check the email and password and try again.",
	}
	if email != "" {
		err.Details = map[string]string{"email": email}
	}
	return err
}

// SessionStore creates an error for failures reading or writing the session file.
func SessionStore(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrSession,
		Message: "session storage failed",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check permissions on the session file or set session.path in your config.",
	}
}
