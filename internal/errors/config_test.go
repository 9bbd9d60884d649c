package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	err := ConfigParseError("/etc/offerdesk.yaml", errors.New("yaml: line 3"))

	if !errors.Is(err, ErrConfig) {
		t.Error("should be ErrConfig")
	}
	if err.Details["path"] != "/etc/offerdesk.yaml" {
		t.Errorf("path = %q", err.Details["path"])
	}
	if !strings.Contains(err.Suggestion, "yamllint /etc/offerdesk.yaml") {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("log.level", "unknown level", []string{"debug", "info"})

	if err.Details["field"] != "log.level" {
		t.Errorf("field = %q", err.Details["field"])
	}
	if !strings.Contains(err.Suggestion, "debug, info") {
		t.Errorf("Suggestion = %q, want options listed", err.Suggestion)
	}
}

func TestConfigValidationError_NoOptions(t *testing.T) {
	err := ConfigValidationError("api.base_url", "required", nil)
	if strings.Contains(err.Suggestion, "Valid options") {
		t.Errorf("Suggestion = %q, want no options", err.Suggestion)
	}
}

func TestSessionErrors(t *testing.T) {
	if !errors.Is(NotLoggedIn(), ErrSession) {
		t.Error("NotLoggedIn should be ErrSession")
	}
	if !errors.Is(LoginFailed("a@b.c", nil), ErrAuth) {
		t.Error("LoginFailed should be ErrAuth")
	}
	store := SessionStore("/tmp/s.json", errors.New("permission denied"))
	if store.Details["path"] != "/tmp/s.json" {
		t.Errorf("path = %q", store.Details["path"])
	}
}

func TestInvalidInput(t *testing.T) {
	fields := FieldErrors{
		"price":   "Price is required",
		"user_id": "User is required",
	}
	err := InvalidInput("Please fill all required fields", fields)

	if !errors.Is(err, ErrValidation) {
		t.Error("should be ErrValidation")
	}
	if got := fields.Error(); got != "price: Price is required; user_id: User is required" {
		t.Errorf("FieldErrors.Error() = %q", got)
	}
	var fe FieldErrors
	if !errors.As(err, &fe) || len(fe) != 2 {
		t.Errorf("errors.As FieldErrors = %v", fe)
	}
}
