package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/tui/components"
)

func TestNewStartsOnLoginWhenSignedOut(t *testing.T) {
	m, _, _ := newTestModel(false)
	if m.Screen() != ScreenLogin {
		t.Errorf("Screen() = %v, want login", m.Screen())
	}
}

func TestNewStartsOnDashboardWhenSignedIn(t *testing.T) {
	m, _, _ := newTestModel(true)
	if m.Screen() != ScreenDashboard {
		t.Errorf("Screen() = %v, want dashboard", m.Screen())
	}
	if m.Init() == nil {
		t.Error("Init should return the mount commands")
	}
}

func TestScreenString(t *testing.T) {
	tests := []struct {
		screen Screen
		want   string
	}{
		{ScreenLogin, "login"},
		{ScreenDashboard, "dashboard"},
		{ScreenOnboarding, "onboarding"},
		{Screen(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.screen.String(); got != tt.want {
			t.Errorf("Screen(%d).String() = %q, want %q", tt.screen, got, tt.want)
		}
	}
}

func TestLoginSuccessShowsDashboard(t *testing.T) {
	m, auth, backend := newTestModel(false)
	m.login.email.SetValue("admin@example.com")
	m.login.password.SetValue("secret")

	m.Update(key(tea.KeyEnter)) // email -> password
	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("submitting should return a login command")
	}
	if !m.login.pending {
		t.Error("login should be pending after submit")
	}

	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	_, cmd = m.Update(msgs[0])

	if auth.loginCalls != 1 {
		t.Errorf("Login called %d times, want 1", auth.loginCalls)
	}
	if m.Screen() != ScreenDashboard {
		t.Fatalf("Screen() = %v, want dashboard", m.Screen())
	}

	feed(m, collect(cmd))
	if got := m.dash.list.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if m.dash.data == nil {
		t.Error("dashboard data should be loaded")
	}
	if len(backend.windows) != 1 || backend.windows[0].Page != 0 {
		t.Errorf("fetched windows = %+v, want first page", backend.windows)
	}

	view := m.View()
	if !strings.Contains(view, "Admin <admin@example.com>") {
		t.Error("header should show the signed-in user")
	}
	if !strings.Contains(view, "Alice Smith") {
		t.Error("dashboard should list offers")
	}
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	m, _, _ := newTestModel(false)
	m.login.email.SetValue("admin@example.com")
	m.login.password.SetValue("wrong")
	m.login.setFocus(loginSubmit)

	_, cmd := m.Update(key(tea.KeyEnter))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	_, cmd = m.Update(msgs[0])

	if m.Screen() != ScreenLogin {
		t.Errorf("Screen() = %v, want login", m.Screen())
	}
	if m.login.err != "Invalid credentials" {
		t.Errorf("login error = %q, want server message", m.login.err)
	}
	if m.login.password.Value() != "" {
		t.Error("password should be cleared after a failed login")
	}

	var toasted bool
	for _, msg := range collect(cmd) {
		if tm, ok := msg.(ShowToastMsg); ok && tm.Kind == components.ToastError {
			toasted = true
		}
	}
	if !toasted {
		t.Error("failed login should raise an error toast")
	}
}

func TestStaleLoginResultIgnored(t *testing.T) {
	m, _, _ := newTestModel(false)
	m.login.seq = 2
	m.login.pending = true

	m.Update(LoginResultMsg{Seq: 1})
	if m.Screen() != ScreenLogin {
		t.Errorf("Screen() = %v, want login", m.Screen())
	}
	if !m.login.pending {
		t.Error("stale result should not clear pending state")
	}
}

func TestQuitAsksForConfirmation(t *testing.T) {
	m, _, _ := newTestModel(true)

	m.Update(keyRunes("q"))
	if !m.confirmDlg.IsVisible() {
		t.Fatal("q should open the quit confirmation")
	}
	if m.quitting {
		t.Fatal("q alone should not quit")
	}

	_, cmd := m.Update(keyRunes("y"))
	feed(m, collect(cmd))
	if !m.quitting {
		t.Error("confirming should quit")
	}
	if m.View() != "Goodbye!\n" {
		t.Errorf("View() when quitting = %q", m.View())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(false)
	_, cmd := m.Update(key(tea.KeyCtrlC))
	if !m.quitting {
		t.Error("Model should be quitting after Ctrl+C")
	}
	if cmd == nil {
		t.Error("Should return a quit command")
	}
}

func TestQOnLoginTypesIntoField(t *testing.T) {
	m, _, _ := newTestModel(false)
	m.login.mount()

	m.Update(keyRunes("q"))
	if m.confirmDlg.IsVisible() {
		t.Error("q on the login screen should not open the quit dialog")
	}
	if m.login.email.Value() != "q" {
		t.Errorf("email = %q, want %q", m.login.email.Value(), "q")
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, auth, _ := newTestModel(true)

	m.Update(keyRunes("L"))
	if !m.confirmDlg.IsVisible() || m.confirmDlg.Action() != components.ConfirmActionLogout {
		t.Fatal("L should open the logout confirmation")
	}

	_, cmd := m.Update(keyRunes("y"))
	msgs := collect(cmd)
	cmds := feed(m, msgs) // ConfirmYesMsg -> logout command
	for _, c := range cmds {
		feed(m, collect(c))
	}

	if !auth.loggedOut {
		t.Error("logout should clear the session")
	}
	if m.Screen() != ScreenLogin {
		t.Errorf("Screen() = %v, want login", m.Screen())
	}
}

func TestAuthErrorRedirectsToLogin(t *testing.T) {
	m, auth, _ := newTestModel(true)
	req := m.dash.list.Refresh()

	err := apperrors.APIStatus("/api/offers", 401, "Unauthenticated.")
	_, cmd := m.Update(OffersLoadedMsg{Seq: req.Seq, Err: err})

	var toasted bool
	for _, msg := range collect(cmd) {
		if tm, ok := msg.(ShowToastMsg); ok && tm.Text == MsgSessionEnded {
			toasted = true
		}
		m.Update(msg)
	}
	if !auth.loggedOut {
		t.Error("a 401 should end the session")
	}
	if !toasted {
		t.Error("a 401 should explain why the user was signed out")
	}
	if m.Screen() != ScreenLogin {
		t.Errorf("Screen() = %v, want login", m.Screen())
	}
}

func TestNetworkErrorKeepsDashboard(t *testing.T) {
	m, auth, _ := newTestModel(true)
	req := m.dash.list.Refresh()

	_, cmd := m.Update(OffersLoadedMsg{Seq: req.Seq, Err: apperrors.NetworkUnavailable("api", nil)})
	if cmd != nil {
		feed(m, collect(cmd))
	}
	if auth.loggedOut {
		t.Error("a network error should not end the session")
	}
	if m.Screen() != ScreenDashboard {
		t.Errorf("Screen() = %v, want dashboard", m.Screen())
	}
}

func TestToastExpiry(t *testing.T) {
	m, _, _ := newTestModel(true)

	_, cmd := m.Update(ShowToastMsg{Kind: components.ToastSuccess, Text: "first"})
	if cmd == nil {
		t.Fatal("showing a toast should schedule its expiry")
	}
	m.Update(ShowToastMsg{Kind: components.ToastSuccess, Text: "second"})

	m.Update(ToastExpiredMsg{ID: 1})
	toast, ok := m.statusBar.Toast()
	if !ok || toast.Text != "second" {
		t.Fatalf("expiring an older toast removed the newer one: %+v, %v", toast, ok)
	}

	m.Update(ToastExpiredMsg{ID: 2})
	if _, ok := m.statusBar.Toast(); ok {
		t.Error("toast should be gone after it expires")
	}
}

func TestSwitchScreens(t *testing.T) {
	m, _, _ := newTestModel(true)

	m.Update(keyRunes("2"))
	if m.Screen() != ScreenOnboarding {
		t.Fatalf("Screen() = %v, want onboarding", m.Screen())
	}
	m.Update(keyRunes("1"))
	if m.Screen() != ScreenDashboard {
		t.Errorf("Screen() = %v, want dashboard", m.Screen())
	}
}

func TestLeavingDirtyFormAsksToDiscard(t *testing.T) {
	m, _, _ := newTestModel(true)
	m.Update(keyRunes("2"))
	m.onboarding.price.SetValue("10")

	m.Update(key(tea.KeyEsc))
	if !m.confirmDlg.IsVisible() || m.confirmDlg.Action() != components.ConfirmActionDiscard {
		t.Fatal("esc on a dirty form should ask before discarding")
	}
	if m.Screen() != ScreenOnboarding {
		t.Fatal("screen should not change before confirming")
	}

	_, cmd := m.Update(keyRunes("y"))
	feed(m, collect(cmd))
	if m.Screen() != ScreenDashboard {
		t.Errorf("Screen() = %v, want dashboard", m.Screen())
	}
}

func TestLeavingCleanFormSkipsConfirmation(t *testing.T) {
	m, _, _ := newTestModel(true)
	m.Update(keyRunes("2"))

	m.Update(key(tea.KeyEsc))
	if m.confirmDlg.IsVisible() {
		t.Error("clean form should not ask for confirmation")
	}
	if m.Screen() != ScreenDashboard {
		t.Errorf("Screen() = %v, want dashboard", m.Screen())
	}
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(true)

	m.Update(keyRunes("?"))
	if !m.helpOverlay.IsVisible() {
		t.Fatal("? should open help")
	}
	if !strings.Contains(m.View(), "Create Offer") {
		t.Error("help should list the create offer shortcuts")
	}
	m.Update(key(tea.KeyEsc))
	if m.helpOverlay.IsVisible() {
		t.Error("esc should close help")
	}
}

func TestAsyncResultsFlowBehindOverlay(t *testing.T) {
	m, _, _ := newTestModel(true)
	req := m.dash.list.Refresh()
	m.Update(keyRunes("?"))

	m.Update(OffersLoadedMsg{Seq: req.Seq, Page: testPage(3, sampleOffers()...)})
	if m.dash.list.Total() != 3 {
		t.Error("results should be applied while an overlay is open")
	}
}

func TestModelUpdateWindowSize(t *testing.T) {
	m, _, _ := newTestModel(true)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 {
		t.Errorf("Width should be 120, got %d", m.width)
	}
	if m.height != 40 {
		t.Errorf("Height should be 40, got %d", m.height)
	}
}

func TestLoginView(t *testing.T) {
	m, _, _ := newTestModel(false)
	view := m.View()
	for _, want := range []string{"Sign in to offerdesk", "Email", "Password"} {
		if !strings.Contains(view, want) {
			t.Errorf("login view missing %q", want)
		}
	}
}
