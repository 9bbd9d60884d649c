package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// ToastKind selects the color of a toast.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is a short message shown in the status bar until it expires.
type Toast struct {
	ID   int
	Kind ToastKind
	Text string
}

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Toast     *Toast
	Loading   string // non-empty while a request is in flight
	Spinner   string // rendered spinner frame shown next to Loading
	Shortcuts []ShortcutDef
}

// StatusBar is a component that displays toasts, loading state and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// ShowToast replaces the current toast.
func (s *StatusBar) ShowToast(t Toast) {
	s.data.Toast = &t
}

// ClearToast removes the toast if it is still the one with id.
func (s *StatusBar) ClearToast(id int) {
	if s.data.Toast != nil && s.data.Toast.ID == id {
		s.data.Toast = nil
	}
}

// Toast returns the visible toast, if any.
func (s *StatusBar) Toast() (Toast, bool) {
	if s.data.Toast == nil {
		return Toast{}, false
	}
	return *s.data.Toast, true
}

// SetLoading sets the loading label; empty hides it.
func (s *StatusBar) SetLoading(label, spinner string) {
	s.data.Loading = label
	s.data.Spinner = spinner
}

// SetShortcuts sets the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	var left []string
	if s.data.Loading != "" {
		loading := lipgloss.NewStyle().Foreground(styles.Secondary).Render(s.data.Loading)
		if s.data.Spinner != "" {
			loading = s.data.Spinner + " " + loading
		}
		left = append(left, loading)
	}
	if s.data.Toast != nil {
		left = append(left, s.renderToast(*s.data.Toast))
	}
	leftContent := strings.Join(left, sep)

	rightContent := NewShortcutBar(s.data.Shortcuts...).View()

	containerStyle := styles.StatusBarStyle
	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		padding := s.width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent) - 2
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	if leftContent == "" {
		return containerStyle.Render(rightContent)
	}
	return containerStyle.Render(leftContent + "  " + rightContent)
}

func (s *StatusBar) renderToast(t Toast) string {
	switch t.Kind {
	case ToastSuccess:
		return styles.SuccessTextStyle.Render("✓ " + t.Text)
	case ToastError:
		return styles.ErrorTextStyle.Render("✗ " + t.Text)
	default:
		return lipgloss.NewStyle().Foreground(styles.MutedLight).Italic(true).Render(t.Text)
	}
}
