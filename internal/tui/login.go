package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/tui/components"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

const (
	loginEmail = iota
	loginPassword
	loginSubmit
	loginFieldCount
)

// loginView is the sign-in screen.
type loginView struct {
	env      *env
	email    *components.TextInput
	password *components.TextInput
	submit   *components.Button
	focus    int
	seq      uint64
	pending  bool
	err      string
}

func newLoginView(e *env) *loginView {
	v := &loginView{
		env:      e,
		email:    components.NewTextInput("email", "Email"),
		password: components.NewPasswordInput("password", "Password"),
		submit:   components.NewButton("login", "Sign in"),
	}
	v.email.SetPlaceholder("you@example.com")
	v.email.SetWidth(50)
	v.password.SetWidth(50)
	return v
}

// mount resets the form and focuses the email field.
func (v *loginView) mount() tea.Cmd {
	v.password.Reset()
	v.pending = false
	v.err = ""
	v.submit.SetBusy("")
	return v.setFocus(loginEmail)
}

func (v *loginView) setFocus(i int) tea.Cmd {
	v.focus = (i + loginFieldCount) % loginFieldCount
	v.email.Blur()
	v.password.Blur()
	v.submit.Blur()
	switch v.focus {
	case loginEmail:
		return v.email.Focus()
	case loginPassword:
		return v.password.Focus()
	default:
		return v.submit.Focus()
	}
}

func (v *loginView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LoginResultMsg:
		if msg.Seq != v.seq {
			return nil
		}
		v.pending = false
		v.submit.SetBusy("")
		if msg.Err != nil {
			v.err = apperrors.UserMessage(msg.Err, "Login failed")
			v.password.Reset()
			return tea.Batch(v.setFocus(loginPassword), toast(components.ToastError, v.err))
		}
		v.err = ""
		v.password.Reset()
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return v.setFocus(v.focus + 1)
		case "shift+tab", "up":
			return v.setFocus(v.focus - 1)
		case "enter":
			if v.focus == loginEmail {
				return v.setFocus(loginPassword)
			}
			return v.doSubmit()
		}
		switch v.focus {
		case loginEmail:
			cmd, _ := v.email.Update(msg)
			return cmd
		case loginPassword:
			cmd, _ := v.password.Update(msg)
			return cmd
		}
	}
	return nil
}

func (v *loginView) doSubmit() tea.Cmd {
	if v.pending {
		return nil
	}
	v.seq++
	v.pending = true
	v.err = ""
	v.submit.SetBusy("Signing in…")
	return v.env.login(v.seq, strings.TrimSpace(v.email.Value()), v.password.Value())
}

func (v *loginView) view(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render("Sign in to offerdesk"))
	b.WriteString("\n\n")
	b.WriteString(v.email.View())
	b.WriteString("\n\n")
	b.WriteString(v.password.View())
	b.WriteString("\n\n")
	b.WriteString(v.submit.View())
	if v.err != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorTextStyle.Render(v.err))
	}

	box := styles.FocusedBoxStyle.Padding(1, 2).Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
