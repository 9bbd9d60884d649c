package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar is a component that displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}

	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	content := strings.Join(parts, sep)

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}
	return content
}

// Predefined shortcut sets for each screen.
var (
	// LoginShortcuts are shortcuts for the login screen.
	LoginShortcuts = []ShortcutDef{
		{"Tab", "next"},
		{"Enter", "sign in"},
		{"Ctrl+C", "quit"},
	}

	// DashboardShortcuts are shortcuts for the dashboard.
	DashboardShortcuts = []ShortcutDef{
		{"/", "search"},
		{"t", "type"},
		{"s", "status"},
		{"←→", "page"},
		{"p", "period"},
		{"2", "new offer"},
		{"?", "help"},
	}

	// SearchShortcuts are shortcuts while typing a search.
	SearchShortcuts = []ShortcutDef{
		{"Enter", "done"},
		{"Esc", "clear"},
		{"Tab", "field"},
	}

	// OnboardingShortcuts are shortcuts for the create offer form.
	OnboardingShortcuts = []ShortcutDef{
		{"Tab", "next"},
		{"Space", "toggle"},
		{"←→", "choose"},
		{"Ctrl+S", "submit"},
		{"Esc", "back"},
	}
)
