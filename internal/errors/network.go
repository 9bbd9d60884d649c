// Package errors provides categorized error types for offerdesk.
// This file contains network, API and timeout-related errors.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// NetworkUnavailable creates an error for network connectivity issues.
func NetworkUnavailable(host string, cause error) *AppError {
	err := &AppError{
		Kind:    ErrNetwork,
		Message: "network unavailable",
		Cause:   cause,
		Suggestion: `Check your network connection:

  1. Verify the API base URL in your config (api.base_url)
  2. Check if VPN or firewall is blocking access
  3. Try: curl -I <base_url>/api/offers

If you're behind a proxy:
  export HTTP_PROXY=http://proxy:port
  export HTTPS_PROXY=http://proxy:port`,
	}
	if host != "" {
		err.Details = map[string]string{"host": host}
	}
	return err
}

// RequestTimeout creates an error for a request that exceeded its deadline.
func RequestTimeout(endpoint string, limit time.Duration) *AppError {
	return &AppError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("request to %s timed out after %v", endpoint, limit.Round(time.Millisecond)),
		Details: map[string]string{
			"endpoint": endpoint,
			"limit":    limit.Round(time.Millisecond).String(),
		},
		Suggestion: "Raise api.timeout in your config or try again later.",
	}
}

// RequestCancelled creates an error for a request whose context was cancelled.
func RequestCancelled(endpoint string) *AppError {
	return &AppError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("request to %s was cancelled", endpoint),
		Details: map[string]string{
			"endpoint": endpoint,
		},
	}
}

// APIStatus creates an error for a non-success HTTP response. The kind is
// derived from the status code; serverMessage is the API's own "message"
// field, if it sent one.
func APIStatus(endpoint string, status int, serverMessage string) *AppError {
	kind := ErrAPI
	suggestion := ""
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrAuth
		suggestion = "Your session may have expired. Run: offerdesk login"
	case http.StatusNotFound:
		kind = ErrNotFound
		suggestion = "Check api.base_url in your config."
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		kind = ErrValidation
	}

	message := fmt.Sprintf("%s returned %d %s", endpoint, status, http.StatusText(status))
	err := &AppError{
		Kind:       kind,
		Message:    message,
		Status:     status,
		Suggestion: suggestion,
		Details: map[string]string{
			"endpoint": endpoint,
			"status":   fmt.Sprintf("%d", status),
		},
	}
	if serverMessage != "" {
		err.Details["server_message"] = serverMessage
	}
	return err
}

// DecodeFailed creates an error for a response body that could not be parsed.
func DecodeFailed(endpoint string, cause error) *AppError {
	return &AppError{
		Kind:    ErrAPI,
		Message: fmt.Sprintf("unexpected response from %s", endpoint),
		Cause:   cause,
		Details: map[string]string{
			"endpoint": endpoint,
		},
	}
}
