package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"signup/internal/domain"
	"signup/internal/form"
)

var placeholders = map[domain.Field]string{
	domain.FieldFirstName:       "John",
	domain.FieldLastName:        "Doe",
	domain.FieldEmail:           "john@example.com",
	domain.FieldPassword:        "Create a strong password",
	domain.FieldConfirmPassword: "Confirm your password",
}

// submittedMsg carries a finished submission back into the update loop.
type submittedMsg struct {
	outcome domain.Outcome
}

// Model implements tea.Model for the registration screens.
type Model struct {
	ctx    context.Context
	holder *form.Holder

	inputs []textinput.Model // aligned with domain.Fields
	focus  int

	view       domain.View
	notice     string
	noticeErr  bool
	submitting bool
	registered bool
}

// New returns a model showing the register view, pre-filled from holder.
func New(ctx context.Context, holder *form.Holder) Model {
	m := Model{
		ctx:    ctx,
		holder: holder,
		inputs: make([]textinput.Model, len(domain.Fields)),
		view:   domain.ViewRegister,
	}
	for i, field := range domain.Fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = placeholders[field]
		in.CharLimit = 254
		if field.Secret() {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		in.SetValue(holder.Value(field))
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m
}

// Registered reports whether the program ended after a successful registration.
func (m Model) Registered() bool { return m.registered }

// CurrentView returns the screen being shown.
func (m Model) CurrentView() domain.View { return m.view }

// Notice returns the global notification text.
func (m Model) Notice() string { return m.notice }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return m.handleOutcome(msg.outcome), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.view == domain.ViewLogin {
			switch msg.String() {
			case "enter", "q":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			cmd := m.moveFocus(1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.moveFocus(-1)
			return m, cmd
		case "enter":
			return m.submit()
		case "ctrl+r":
			m.toggleReveal()
			return m, nil
		case "ctrl+l":
			if m.submitting {
				return m, nil
			}
			return m.navigate(domain.ViewLogin, "", false), nil
		}
	}

	if m.view != domain.ViewRegister {
		return m, nil
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and mirrors any edit into
// the holder, which clears that field's error.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	field := domain.Fields[m.focus]
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		_ = m.holder.Set(field, after)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	m.notice, m.noticeErr = "", false

	ctx, holder := m.ctx, m.holder
	return m, func() tea.Msg {
		return submittedMsg{outcome: holder.Submit(ctx)}
	}
}

func (m Model) handleOutcome(outcome domain.Outcome) Model {
	switch outcome.Kind {
	case domain.OutcomeSuppressed:
		// The original submission is still running and will report back.
		return m
	case domain.OutcomeInvalid:
		m.submitting = false
		if fields := outcome.Errors.Fields(); len(fields) > 0 {
			m.focusField(fields[0])
		}
	case domain.OutcomeFailed:
		m.submitting = false
		m.notice, m.noticeErr = outcome.Message, true
	case domain.OutcomeRegistered:
		m.submitting = false
		m.registered = true
		m = m.navigate(outcome.NextView, outcome.Message, false)
	}
	return m
}

// navigate switches screens. Leaving the register view discards the form.
func (m Model) navigate(to domain.View, notice string, isErr bool) Model {
	if to == "" || to == m.view {
		return m
	}
	if m.view == domain.ViewRegister {
		m.holder.Reset()
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
	}
	m.view = to
	m.notice, m.noticeErr = notice, isErr
	return m
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	next := (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.setFocus(next)
}

func (m *Model) focusField(field domain.Field) {
	for i, f := range domain.Fields {
		if f == field {
			m.setFocus(i)
			return
		}
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) toggleReveal() {
	if !domain.Fields[m.focus].Secret() {
		return
	}
	in := &m.inputs[m.focus]
	if in.EchoMode == textinput.EchoPassword {
		in.EchoMode = textinput.EchoNormal
	} else {
		in.EchoMode = textinput.EchoPassword
	}
}

func (m Model) View() string {
	var b strings.Builder
	if m.view == domain.ViewLogin {
		b.WriteString("Sign In\n\n")
		if m.notice != "" {
			b.WriteString(m.notice + "\n\n")
		}
		b.WriteString("Logging in is not available here yet. Press enter to exit.\n")
		return b.String()
	}

	b.WriteString("Create Account\nJoin us today\n\n")
	for i, field := range domain.Fields {
		b.WriteString(field.Label())
		b.WriteByte('\n')
		b.WriteString(m.inputs[i].View())
		b.WriteByte('\n')
		if msg := m.holder.Error(field); msg != "" {
			b.WriteString("  ! " + msg + "\n")
		}
		b.WriteByte('\n')
	}

	if m.submitting {
		b.WriteString("[ Creating Account... ]\n")
	} else {
		b.WriteString("[ Create Account ]\n")
	}
	if m.notice != "" {
		prefix := ""
		if m.noticeErr {
			prefix = "Error: "
		}
		b.WriteString("\n" + prefix + m.notice + "\n")
	}
	b.WriteString("\nAlready have an account? ctrl+l to sign in.\n")
	b.WriteString("tab/shift+tab move • enter submit • ctrl+r show password • esc quit\n")
	return b.String()
}
