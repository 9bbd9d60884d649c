package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/offerdesk/internal/api"
	"github.com/wexinc/offerdesk/internal/offers"
	"github.com/wexinc/offerdesk/internal/onboarding"
	"github.com/wexinc/offerdesk/internal/tui/components"
	"github.com/wexinc/offerdesk/internal/tui/styles"
)

// Focus order of the create offer form. The addition checkboxes sit between
// the plan selector and the user picker.
const (
	focusPlan      = 0
	focusAdditions = 1
	focusUser      = 4
	focusExpiry    = 5
	focusPrice     = 6
	focusSubmit    = 7
	focusCount     = 8
)

// onboardingView is the create offer form.
type onboardingView struct {
	env *env

	draft     onboarding.Draft
	fields    map[string]string
	users     []api.User
	userIdx   int
	additions []*components.Checkbox
	expiry    *components.TextInput
	price     *components.TextInput
	submit    *components.Button

	focus     int
	usersSeq  uint64
	submitSeq uint64
	pending   bool
}

func newOnboardingView(e *env) *onboardingView {
	v := &onboardingView{
		env:     e,
		expiry:  components.NewTextInput("expired", "Expiration date"),
		price:   components.NewTextInput("price", "Price"),
		submit:  components.NewButton("submit", "Create offer"),
		userIdx: -1,
	}
	for _, tag := range onboarding.Additions() {
		v.additions = append(v.additions, components.NewCheckbox(tag, offers.Label(tag)))
	}
	v.expiry.SetPlaceholder(onboarding.ExpiryLayout)
	v.expiry.SetCharLimit(len(onboarding.ExpiryLayout))
	v.price.SetPlaceholder("0.00")
	return v
}

// mount resets the form and loads the user choices.
func (v *onboardingView) mount() tea.Cmd {
	v.reset()
	v.usersSeq++
	return tea.Batch(v.setFocus(focusPlan), v.env.loadUsers(v.usersSeq))
}

func (v *onboardingView) reset() {
	v.draft = onboarding.NewDraft()
	v.fields = nil
	v.userIdx = -1
	for _, c := range v.additions {
		c.SetChecked(false)
	}
	v.expiry.Reset()
	v.price.Reset()
	v.pending = false
	v.submit.SetBusy("")
}

// dirty reports whether leaving would lose input.
func (v *onboardingView) dirty() bool {
	v.syncText()
	return v.draft.Dirty()
}

// capturing reports whether keys go to a text input.
func (v *onboardingView) capturing() bool {
	return v.focus == focusExpiry || v.focus == focusPrice
}

func (v *onboardingView) loading() string {
	if v.pending {
		return "Creating offer"
	}
	return ""
}

func (v *onboardingView) setFocus(i int) tea.Cmd {
	v.focus = (i + focusCount) % focusCount
	for _, c := range v.additions {
		c.Blur()
	}
	v.expiry.Blur()
	v.price.Blur()
	v.submit.Blur()

	switch {
	case v.focus >= focusAdditions && v.focus < focusUser:
		return v.additions[v.focus-focusAdditions].Focus()
	case v.focus == focusExpiry:
		return v.expiry.Focus()
	case v.focus == focusPrice:
		return v.price.Focus()
	case v.focus == focusSubmit:
		return v.submit.Focus()
	}
	return nil
}

func (v *onboardingView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case UsersLoadedMsg:
		if msg.Seq != v.usersSeq {
			return nil
		}
		v.users = msg.Users
		if v.userIdx >= len(v.users) {
			v.userIdx = -1
			v.draft.UserID = 0
		}
		return nil

	case OfferSubmittedMsg:
		if msg.Seq != v.submitSeq {
			return nil
		}
		v.pending = false
		v.submit.SetBusy("")
		res := msg.Result
		if res.Created {
			v.reset()
			return tea.Batch(v.setFocus(focusPlan), toast(components.ToastSuccess, res.Toast))
		}
		v.setFieldErrors(res.Fields)
		return toast(components.ToastError, res.Toast)

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return nil
}

func (v *onboardingView) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		return v.doSubmit()
	case "tab", "down":
		return v.setFocus(v.focus + 1)
	case "shift+tab", "up":
		return v.setFocus(v.focus - 1)
	}

	switch {
	case v.focus == focusPlan:
		switch msg.String() {
		case "right", "l", " ":
			v.draft.NextPlan()
		case "left", "h":
			v.draft.PrevPlan()
		}
	case v.focus >= focusAdditions && v.focus < focusUser:
		box := v.additions[v.focus-focusAdditions]
		if box.Update(msg) {
			v.draft.ToggleAddition(onboarding.Additions()[v.focus-focusAdditions])
		}
	case v.focus == focusUser:
		switch msg.String() {
		case "right", "l", " ":
			v.selectUser(v.userIdx + 1)
		case "left", "h":
			v.selectUser(v.userIdx - 1)
		}
	case v.focus == focusExpiry:
		if msg.String() == "enter" {
			return v.setFocus(v.focus + 1)
		}
		cmd, _ := v.expiry.Update(msg)
		return cmd
	case v.focus == focusPrice:
		if msg.String() == "enter" {
			return v.setFocus(v.focus + 1)
		}
		cmd, _ := v.price.Update(msg)
		return cmd
	case v.focus == focusSubmit:
		if v.submit.Update(msg) {
			return v.doSubmit()
		}
	}
	return nil
}

func (v *onboardingView) selectUser(i int) {
	if len(v.users) == 0 {
		return
	}
	n := len(v.users)
	v.userIdx = ((i % n) + n) % n
	v.draft.UserID = v.users[v.userIdx].ID
}

func (v *onboardingView) syncText() {
	v.draft.Expired = strings.TrimSpace(v.expiry.Value())
	v.draft.Price = strings.TrimSpace(v.price.Value())
}

func (v *onboardingView) setFieldErrors(fields map[string]string) {
	v.fields = fields
	v.expiry.SetError(fields["expired"])
	v.price.SetError(fields["price"])
}

func (v *onboardingView) doSubmit() tea.Cmd {
	if v.pending {
		return nil
	}
	v.syncText()
	v.setFieldErrors(nil)
	v.submitSeq++
	v.pending = true
	v.submit.SetBusy("Creating…")
	return v.env.submitOffer(v.submitSeq, v.draft)
}

func (v *onboardingView) view() string {
	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render("Create Offer"))
	b.WriteString("\n\n")

	b.WriteString(v.label("Plan type", v.focus == focusPlan))
	for _, p := range offers.PlanTypes() {
		if string(p) == v.draft.PlanType {
			b.WriteString(styles.TabActiveStyle.Render(p.Label()))
		} else {
			b.WriteString(styles.TabStyle.Render(p.Label()))
		}
	}
	b.WriteString(v.fieldError("plan_type"))
	b.WriteString("\n\n")

	b.WriteString(v.label("Additions", v.focus >= focusAdditions && v.focus < focusUser))
	b.WriteString("\n")
	for _, c := range v.additions {
		b.WriteString("  ")
		b.WriteString(c.View())
		b.WriteString("\n")
	}
	b.WriteString(v.fieldError("additions"))
	b.WriteString("\n")

	b.WriteString(v.label("User", v.focus == focusUser))
	switch {
	case len(v.users) == 0:
		b.WriteString(styles.MutedTextStyle.Render("no users available"))
	case v.userIdx < 0:
		b.WriteString(styles.MutedTextStyle.Render("‹ select a user ›"))
	default:
		b.WriteString(styles.HeaderValueStyle.Render("‹ " + v.users[v.userIdx].Label() + " ›"))
	}
	b.WriteString(v.fieldError("user_id"))
	b.WriteString("\n\n")

	b.WriteString(v.expiry.View())
	b.WriteString("\n\n")
	b.WriteString(v.price.View())
	b.WriteString("\n\n")
	b.WriteString(v.submit.View())

	return styles.BoxStyle.Padding(1, 2).Render(b.String())
}

func (v *onboardingView) label(text string, focused bool) string {
	if focused {
		return styles.FormLabelFocusedStyle.Render(text + ": ")
	}
	return styles.FormLabelStyle.Render(text + ": ")
}

func (v *onboardingView) fieldError(field string) string {
	if msg := v.fields[field]; msg != "" {
		return "\n" + styles.FieldErrorStyle.Render(msg)
	}
	return ""
}
