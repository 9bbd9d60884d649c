package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/offerdesk/internal/api"
	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/logging"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/onboarding"
	"github.com/wexinc/offerdesk/internal/tui/components"
)

// Backend is the API surface the TUI drives.
type Backend interface {
	ListOffers(ctx context.Context, w offers.Window) (offers.Page, error)
	dashboard.Source
	onboarding.Backend
}

// Auth is the session surface the TUI drives.
type Auth interface {
	Authenticated() bool
	User() (api.User, bool)
	Login(ctx context.Context, email, password string) (api.User, error)
	Logout() error
}

// env is shared by the screens.
type env struct {
	ctx     context.Context
	auth    Auth
	backend Backend
	loader  *dashboard.Loader
	form    *onboarding.Service
	logger  *logging.Logger
}

func (e *env) login(seq uint64, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := e.auth.Login(e.ctx, email, password)
		return LoginResultMsg{Seq: seq, User: user, Err: err}
	}
}

func (e *env) logout() tea.Cmd {
	return func() tea.Msg {
		return LoggedOutMsg{Err: e.auth.Logout()}
	}
}

func (e *env) fetchOffers(req offers.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := e.backend.ListOffers(e.ctx, req.Window)
		return OffersLoadedMsg{Seq: req.Seq, Page: page, Err: err}
	}
}

func (e *env) loadDashboard(seq uint64, period dashboard.Period) tea.Cmd {
	return func() tea.Msg {
		data, err := e.loader.Load(e.ctx, period)
		return DashboardLoadedMsg{Seq: seq, Data: data, Err: err}
	}
}

func (e *env) loadUsers(seq uint64) tea.Cmd {
	return func() tea.Msg {
		return UsersLoadedMsg{Seq: seq, Users: e.form.Users(e.ctx)}
	}
}

func (e *env) submitOffer(seq uint64, d onboarding.Draft) tea.Cmd {
	return func() tea.Msg {
		return OfferSubmittedMsg{Seq: seq, Result: e.form.Submit(e.ctx, d)}
	}
}

func toast(kind components.ToastKind, text string) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Kind: kind, Text: text}
	}
}

func expireToast(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
