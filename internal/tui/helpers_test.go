package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/offerdesk/internal/api"
	"github.com/wexinc/offerdesk/internal/dashboard"
	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/offers"
)

var errFake = errors.New("boom")

type fakeAuth struct {
	user       api.User
	signedIn   bool
	loggedOut  bool
	password   string
	loginCalls int
}

func (a *fakeAuth) Authenticated() bool { return a.signedIn }

func (a *fakeAuth) User() (api.User, bool) { return a.user, a.signedIn }

func (a *fakeAuth) Login(_ context.Context, email, password string) (api.User, error) {
	a.loginCalls++
	if password != a.password {
		return api.User{}, apperrors.LoginFailed(email, nil).WithDetails("server_message", "Invalid credentials")
	}
	a.signedIn = true
	return a.user, nil
}

func (a *fakeAuth) Logout() error {
	a.signedIn = false
	a.loggedOut = true
	return nil
}

type fakeBackend struct {
	mu       sync.Mutex
	page     offers.Page
	pageErr  error
	windows  []offers.Window
	summary  dashboard.Summary
	dashErr  error
	periods  []dashboard.Period
	users    []api.User
	created  []api.CreateOfferRequest
	createFn func(api.CreateOfferRequest) error
}

func (b *fakeBackend) ListOffers(_ context.Context, w offers.Window) (offers.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.windows = append(b.windows, w)
	return b.page, b.pageErr
}

func (b *fakeBackend) Summary(_ context.Context, p dashboard.Period) (dashboard.Summary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.periods = append(b.periods, p)
	return b.summary, b.dashErr
}

func (b *fakeBackend) Stats(context.Context, dashboard.Period) (dashboard.Stats, error) {
	return dashboard.Stats{
		WebsiteVisits: []dashboard.DayVisits{{Day: "Monday", Desktop: 10, Mobile: 5}},
		OffersSent:    []dashboard.DayCount{{Day: "Monday", Count: 3}},
	}, nil
}

func (b *fakeBackend) CreateOffer(_ context.Context, req api.CreateOfferRequest) (*api.CreateOfferResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.createFn != nil {
		if err := b.createFn(req); err != nil {
			return nil, err
		}
	}
	b.created = append(b.created, req)
	return &api.CreateOfferResponse{Message: "created"}, nil
}

func (b *fakeBackend) ListUsers(context.Context, int, int) ([]api.User, error) {
	return b.users, nil
}

func testPage(total int, rows ...offers.Offer) offers.Page {
	return offers.Page{Data: rows, Meta: offers.Meta{Total: total}}
}

func sampleOffers() []offers.Offer {
	return []offers.Offer{
		{ID: 1, UserName: "Alice Smith", Email: "alice@example.com", Type: "monthly", Status: "accepted"},
		{ID: 2, UserName: "Bob Jones", Email: "bob@example.com", Type: "yearly", Status: "pending"},
		{ID: 3, UserName: "Carol White", Email: "carol@example.com", Type: "monthly", Status: "rejected"},
	}
}

func newTestModel(signedIn bool) (*Model, *fakeAuth, *fakeBackend) {
	auth := &fakeAuth{
		user:     api.User{ID: 7, Name: "Admin", Email: "admin@example.com"},
		signedIn: signedIn,
		password: "secret",
	}
	backend := &fakeBackend{page: testPage(3, sampleOffers()...)}
	m := New(Options{Auth: auth, Backend: backend})
	return m, auth, backend
}

// collect runs cmd and any commands batched inside it, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed sends every message to m and returns the non-nil follow-up commands.
func feed(m *Model, msgs []tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
