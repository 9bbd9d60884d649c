// Package tui provides the terminal user interface for offerdesk.
package tui

import (
	"github.com/wexinc/offerdesk/internal/api"
	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/onboarding"
	"github.com/wexinc/offerdesk/internal/tui/components"
)

// Results of asynchronous work. Each carries the sequence number of the
// request that produced it; views drop results whose sequence is not the
// latest they issued.

// LoginResultMsg is sent when a login attempt finishes.
type LoginResultMsg struct {
	Seq  uint64
	User api.User
	Err  error
}

// OffersLoadedMsg is sent when an offer page fetch finishes.
type OffersLoadedMsg struct {
	Seq  uint64
	Page offers.Page
	Err  error
}

// DashboardLoadedMsg is sent when the summary and stats load finishes.
type DashboardLoadedMsg struct {
	Seq  uint64
	Data *dashboard.Data
	Err  error
}

// UsersLoadedMsg is sent when the user picker list arrives. Failures yield no users.
type UsersLoadedMsg struct {
	Seq   uint64
	Users []api.User
}

// OfferSubmittedMsg is sent when a create offer attempt finishes.
type OfferSubmittedMsg struct {
	Seq    uint64
	Result onboarding.Result
}

// LoggedOutMsg is sent after the session was cleared.
type LoggedOutMsg struct {
	Err error
}

// ShowToastMsg asks the app to show a toast.
type ShowToastMsg struct {
	Kind components.ToastKind
	Text string
}

// ToastExpiredMsg removes the toast with ID if it is still showing.
type ToastExpiredMsg struct {
	ID int
}
