package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/dashboard"
	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/onboarding"
	"github.com/wexinc/offerdesk/internal/tui/components"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// DefaultToastDuration is how long a toast stays in the status bar.
const DefaultToastDuration = 4 * time.Second

// MsgSessionEnded is shown when the API rejects the stored token.
const MsgSessionEnded = "Session expired, please sign in again"

// Screen identifies the active screen.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenOnboarding
)

// String returns the screen name for logs.
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	case ScreenOnboarding:
		return "onboarding"
	default:
		return "unknown"
	}
}

var screenTabs = []string{"1 Dashboard", "2 Create Offer"}

// Options configures the TUI.
type Options struct {
	Auth    Auth
	Backend Backend
	Offers  offers.ListConfig
	Period  dashboard.Period
	// Context bounds every request the TUI issues. Nil uses context.Background.
	Context       context.Context
	Logger        *logging.Logger
	ToastDuration time.Duration
}

// Model is the Bubble Tea model for the offerdesk TUI.
type Model struct {
	env *env

	// Components
	header      *components.Header
	statusBar   *components.StatusBar
	spinner     *components.Spinner
	helpOverlay *components.HelpOverlay
	confirmDlg  *components.ConfirmDialog

	// Screens
	login      *loginView
	dash       *dashboardView
	onboarding *onboardingView
	screen     Screen

	toastSeq      int
	toastDuration time.Duration

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a new TUI model.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Global()
	}
	e := &env{
		ctx:     ctx,
		auth:    opts.Auth,
		backend: opts.Backend,
		loader:  dashboard.NewLoader(opts.Backend, logger),
		form:    onboarding.NewService(opts.Backend, logger),
		logger:  logger,
	}
	toastDuration := opts.ToastDuration
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}

	m := &Model{
		env:           e,
		header:        components.NewHeader(),
		statusBar:     components.NewStatusBar(),
		spinner:       components.NewSpinner(),
		helpOverlay:   components.NewHelpOverlay(),
		confirmDlg:    components.NewConfirmDialog(),
		login:         newLoginView(e),
		dash:          newDashboardView(e, opts.Offers, opts.Period),
		onboarding:    newOnboardingView(e),
		toastDuration: toastDuration,
	}
	if opts.Auth != nil && opts.Auth.Authenticated() {
		m.screen = ScreenDashboard
	}
	return m
}

// Screen returns the active screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Init mounts the starting screen.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.enter(m.screen))
}

// enter switches to s and mounts it.
func (m *Model) enter(s Screen) tea.Cmd {
	m.env.logger.Debug("switching screen", "from", m.screen.String(), "to", s.String())
	m.screen = s
	m.updateHeader()
	switch s {
	case ScreenDashboard:
		return m.dash.mount()
	case ScreenOnboarding:
		return m.onboarding.mount()
	default:
		return m.login.mount()
	}
}

func (m *Model) updateHeader() {
	if m.screen == ScreenLogin {
		m.header.SetUser("")
		m.header.SetTabs(nil, -1)
		return
	}
	if user, ok := m.env.auth.User(); ok {
		m.header.SetUser(user.Label())
	}
	active := 0
	if m.screen == ScreenOnboarding {
		active = 1
	}
	m.header.SetTabs(screenTabs, active)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays capture keys while visible; everything else keeps flowing.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.confirmDlg.IsVisible() {
			return m, m.confirmDlg.Update(key)
		}
		if m.helpOverlay.IsVisible() {
			return m, m.helpOverlay.Update(key)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.dash.setWidth(msg.Width)
		m.helpOverlay.SetSize(60, 25)
		m.confirmDlg.SetSize(50)
		return m, nil

	case spinner.TickMsg:
		return m, m.spinner.Update(msg)

	case ShowToastMsg:
		m.toastSeq++
		m.statusBar.ShowToast(components.Toast{ID: m.toastSeq, Kind: msg.Kind, Text: msg.Text})
		return m, expireToast(m.toastSeq, m.toastDuration)

	case ToastExpiredMsg:
		m.statusBar.ClearToast(msg.ID)
		return m, nil

	case components.ConfirmYesMsg:
		return m, m.handleConfirmYes(msg.Action)

	case components.ConfirmNoMsg, components.HelpClosedMsg:
		return m, nil

	case LoginResultMsg:
		cmd := m.login.update(msg)
		if msg.Err != nil || msg.Seq != m.login.seq || m.screen != ScreenLogin {
			return m, cmd
		}
		m.env.logger.Info("signed in", "user_id", msg.User.ID)
		return m, tea.Batch(cmd, m.enter(ScreenDashboard))

	case LoggedOutMsg:
		if msg.Err != nil {
			m.env.logger.Warn("logout failed", "error", msg.Err)
		}
		return m, m.enter(ScreenLogin)

	case OffersLoadedMsg:
		cmd := m.dash.update(msg)
		return m, tea.Batch(cmd, m.checkAuth(msg.Err))

	case DashboardLoadedMsg:
		cmd := m.dash.update(msg)
		return m, tea.Batch(cmd, m.checkAuth(msg.Err))

	case UsersLoadedMsg:
		return m, m.onboarding.update(msg)

	case OfferSubmittedMsg:
		cmd := m.onboarding.update(msg)
		return m, tea.Batch(cmd, m.checkAuth(msg.Result.Err))
	}

	return m, nil
}

// checkAuth sends the user back to login when the API rejected the token.
func (m *Model) checkAuth(err error) tea.Cmd {
	if err == nil || !errors.Is(err, apperrors.ErrAuth) || m.screen == ScreenLogin {
		return nil
	}
	m.env.logger.Warn("api rejected session", "error", err)
	return tea.Batch(m.env.logout(), toast(components.ToastError, MsgSessionEnded))
}

func (m *Model) capturing() bool {
	switch m.screen {
	case ScreenLogin:
		return true
	case ScreenDashboard:
		return m.dash.capturing()
	case ScreenOnboarding:
		return m.onboarding.capturing()
	}
	return false
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if !m.capturing() {
		switch msg.String() {
		case "q":
			m.confirmDlg.ShowQuit()
			return nil
		case "?":
			m.helpOverlay.Toggle()
			return nil
		case "L":
			user := ""
			if u, ok := m.env.auth.User(); ok {
				user = u.Label()
			}
			m.confirmDlg.ShowLogout(user)
			return nil
		case "1":
			if m.screen == ScreenOnboarding && m.onboarding.dirty() {
				m.confirmDlg.ShowDiscard()
				return nil
			}
			if m.screen != ScreenDashboard {
				return m.enter(ScreenDashboard)
			}
			return nil
		case "2":
			if m.screen != ScreenOnboarding {
				return m.enter(ScreenOnboarding)
			}
			return nil
		}
	}

	if msg.String() == "esc" && m.screen == ScreenOnboarding {
		if m.onboarding.dirty() {
			m.confirmDlg.ShowDiscard()
			return nil
		}
		return m.enter(ScreenDashboard)
	}

	switch m.screen {
	case ScreenLogin:
		return m.login.update(msg)
	case ScreenDashboard:
		return m.dash.update(msg)
	case ScreenOnboarding:
		return m.onboarding.update(msg)
	}
	return nil
}

func (m *Model) handleConfirmYes(action components.ConfirmAction) tea.Cmd {
	switch action {
	case components.ConfirmActionLogout:
		return m.env.logout()
	case components.ConfirmActionQuit:
		m.quitting = true
		return tea.Quit
	case components.ConfirmActionDiscard:
		return m.enter(ScreenDashboard)
	}
	return nil
}

// View renders the active screen with its chrome.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var body string
	var shortcuts []components.ShortcutDef
	loading := ""
	switch m.screen {
	case ScreenLogin:
		body = m.login.view(m.width, max(m.height-4, 0))
		shortcuts = components.LoginShortcuts
		if m.login.pending {
			loading = "Signing in"
		}
	case ScreenDashboard:
		body = m.dash.view()
		shortcuts = m.dash.shortcuts()
		loading = m.dash.loading()
	case ScreenOnboarding:
		body = m.onboarding.view()
		shortcuts = components.OnboardingShortcuts
		loading = m.onboarding.loading()
	}

	spin := ""
	if loading != "" {
		spin = m.spinner.View()
	}
	m.statusBar.SetLoading(loading, spin)
	m.statusBar.SetShortcuts(shortcuts)

	var view strings.Builder
	view.WriteString(m.header.View())
	view.WriteString("\n")
	if m.width > 0 {
		view.WriteString(lipgloss.NewStyle().
			Foreground(styles.BorderColor).
			Render(strings.Repeat("─", m.width)))
		view.WriteString("\n")
	}
	view.WriteString(body)
	view.WriteString("\n")
	view.WriteString(m.statusBar.View())

	if overlay := m.overlayView(); overlay != "" {
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}
	return view.String()
}

func (m *Model) overlayView() string {
	if m.confirmDlg.IsVisible() {
		return m.confirmDlg.View()
	}
	if m.helpOverlay.IsVisible() {
		return m.helpOverlay.View()
	}
	return ""
}
