package onboarding

import (
	"context"

	"github.com/wexinc/offerdesk/internal/api"
	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
)

// Toast messages shown after a submit attempt.
const (
	MsgInvalidForm = "Please fill all required fields"
	MsgCreated     = "Offer created successfully"
	MsgFallback    = "Something went wrong!"
)

// UserPageSize is how many users the picker offers.
const UserPageSize = 5

// Backend is the part of the API the form talks to.
type Backend interface {
	CreateOffer(ctx context.Context, req api.CreateOfferRequest) (*api.CreateOfferResponse, error)
	ListUsers(ctx context.Context, page, perPage int) ([]api.User, error)
}

// Result describes the outcome of Submit.
type Result struct {
	// Created is true when the API accepted the offer; the form should reset.
	Created bool
	// Fields holds per-field messages when validation failed.
	Fields apperrors.FieldErrors
	// Toast is the message for the status bar.
	Toast string
	// Err is the underlying failure, if any.
	Err error
}

// Service validates and submits drafts.
type Service struct {
	backend Backend
	logger  *logging.Logger
}

// NewService creates a form service.
func NewService(backend Backend, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Global()
	}
	return &Service{backend: backend, logger: logger}
}

// Users loads the first page of users for the picker. Failures are logged and
// yield an empty list.
func (s *Service) Users(ctx context.Context) []api.User {
	users, err := s.backend.ListUsers(ctx, 1, UserPageSize)
	if err != nil {
		s.logger.Error("error fetching users", "error", err)
		return nil
	}
	return users
}

// Submit validates d and, when valid, posts it.
func (s *Service) Submit(ctx context.Context, d Draft) Result {
	fields, err := Validate(d)
	if err != nil {
		s.logger.Error("offer validation unavailable", "error", err)
		return Result{Toast: apperrors.UserMessage(err, MsgFallback), Err: err}
	}
	if len(fields) > 0 {
		return Result{
			Fields: fields,
			Toast:  MsgInvalidForm,
			Err:    apperrors.InvalidInput(MsgInvalidForm, fields),
		}
	}

	req := d.Request()
	if _, err := s.backend.CreateOffer(ctx, req); err != nil {
		s.logger.Warn("create offer failed", "user_id", req.UserID, "error", err)
		return Result{Toast: apperrors.UserMessage(err, MsgFallback), Err: err}
	}

	s.logger.Info("offer created", "user_id", req.UserID, "plan_type", req.PlanType)
	return Result{Created: true, Toast: MsgCreated}
}
