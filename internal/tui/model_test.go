package tui_test

import (
	"context"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signup/internal/authtest"
	"signup/internal/domain"
	"signup/internal/form"
	"signup/internal/registration"
	"signup/internal/tui"
	"signup/internal/validation"
)

func newHolder(t *testing.T, srv *authtest.Server) *form.Holder {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)
	return form.New(v, registration.NewHTTP(srv.URL, srv.Client(), nil), nil)
}

func send(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(t *testing.T, m tui.Model, s string) tui.Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// fillForm types one value per field, tabbing between them, and returns
// focus to the first field.
func fillForm(t *testing.T, m tui.Model, values domain.RegistrationForm) tui.Model {
	t.Helper()
	for _, field := range domain.Fields {
		v, _ := values.Get(field)
		m = typeText(t, m, v)
		m, _ = send(t, m, key(tea.KeyTab))
	}
	return m
}

// submit presses enter and runs the resulting command to completion.
func submit(t *testing.T, m tui.Model) tui.Model {
	t.Helper()
	m, cmd := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Creating Account...")
	m, _ = send(t, m, cmd())
	return m
}

var johnDoe = domain.RegistrationForm{
	FirstName:       "John",
	LastName:        "Doe",
	Email:           "john@example.com",
	Password:        "s3cret-pass",
	ConfirmPassword: "s3cret-pass",
}

func TestTyping_UpdatesHolder(t *testing.T) {
	srv := authtest.NewServer(t)
	holder := newHolder(t, srv)
	m := tui.New(context.Background(), holder)

	fillForm(t, m, johnDoe)

	assert.Equal(t, johnDoe, holder.Values())
}

func TestSubmit_InvalidShowsFieldErrorsWithoutRequest(t *testing.T) {
	srv := authtest.NewServer(t)
	m := tui.New(context.Background(), newHolder(t, srv))

	m = submit(t, m)

	view := m.View()
	assert.Contains(t, view, validation.MessageFirstNameRequired)
	assert.Contains(t, view, validation.MessageConfirmRequired)
	assert.NotContains(t, view, "Creating Account...")
	assert.Equal(t, domain.ViewRegister, m.CurrentView())
	assert.Zero(t, srv.Requests())
}

func TestEditing_ClearsOnlyThatError(t *testing.T) {
	srv := authtest.NewServer(t)
	holder := newHolder(t, srv)
	m := tui.New(context.Background(), holder)
	m = submit(t, m)

	// Focus returns to the first invalid field, first name.
	m = typeText(t, m, "J")

	assert.Empty(t, holder.Error(domain.FieldFirstName))
	assert.Equal(t, validation.MessageLastNameRequired, holder.Error(domain.FieldLastName))
	assert.NotContains(t, m.View(), validation.MessageFirstNameRequired)
}

func TestSubmit_SuccessNavigatesToLogin(t *testing.T) {
	srv := authtest.NewServer(t)
	holder := newHolder(t, srv)
	m := fillForm(t, tui.New(context.Background(), holder), johnDoe)

	m = submit(t, m)

	assert.Equal(t, domain.ViewLogin, m.CurrentView())
	assert.True(t, m.Registered())
	assert.Equal(t, form.MessageRegistered, m.Notice())
	assert.Contains(t, m.View(), "Sign In")
	assert.True(t, holder.Values().IsZero(), "leaving the register view resets the form")

	_, cmd := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSubmit_RejectionShowsDetailAndKeepsForm(t *testing.T) {
	srv := authtest.NewServer(t, authtest.WithResponse(authtest.Response{
		Status:      http.StatusBadRequest,
		ContentType: "application/json",
		Body:        `{"detail":"Email already registered"}`,
	}))
	holder := newHolder(t, srv)
	m := fillForm(t, tui.New(context.Background(), holder), johnDoe)

	m = submit(t, m)

	assert.Equal(t, domain.ViewRegister, m.CurrentView())
	assert.Equal(t, "Email already registered", m.Notice())
	assert.Contains(t, m.View(), "Error: Email already registered")
	assert.Equal(t, johnDoe, holder.Values())
	assert.False(t, m.Registered())
}

func TestSubmit_SecondEnterWhileInFlightIsIgnored(t *testing.T) {
	srv := authtest.NewServer(t)
	m := fillForm(t, tui.New(context.Background(), newHolder(t, srv)), johnDoe)

	m, first := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, first)

	m, second := send(t, m, key(tea.KeyEnter))
	assert.Nil(t, second)

	m, _ = send(t, m, first())
	assert.Equal(t, domain.ViewLogin, m.CurrentView())
	assert.Equal(t, 1, srv.Requests())
}

func TestCtrlR_RevealsPassword(t *testing.T) {
	srv := authtest.NewServer(t)
	m := tui.New(context.Background(), newHolder(t, srv))
	for i := 0; i < 3; i++ {
		m, _ = send(t, m, key(tea.KeyTab))
	}
	m = typeText(t, m, "abcdefgh")

	assert.NotContains(t, m.View(), "abcdefgh")

	m, _ = send(t, m, key(tea.KeyCtrlR))
	assert.Contains(t, m.View(), "abcdefgh")

	m, _ = send(t, m, key(tea.KeyCtrlR))
	assert.NotContains(t, m.View(), "abcdefgh")
}

func TestCtrlL_NavigatesAwayAndResets(t *testing.T) {
	srv := authtest.NewServer(t)
	holder := newHolder(t, srv)
	m := fillForm(t, tui.New(context.Background(), holder), johnDoe)

	m, _ = send(t, m, key(tea.KeyCtrlL))

	assert.Equal(t, domain.ViewLogin, m.CurrentView())
	assert.False(t, m.Registered())
	assert.True(t, holder.Values().IsZero())
	assert.Zero(t, srv.Requests())
}

func TestCtrlL_IgnoredWhileSubmitting(t *testing.T) {
	gate := make(chan struct{})
	srv := authtest.NewServer(t, authtest.WithGate(gate))
	holder := newHolder(t, srv)
	m := fillForm(t, tui.New(context.Background(), holder), johnDoe)

	m, cmd := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	<-srv.Entered

	m, _ = send(t, m, key(tea.KeyCtrlL))
	assert.Equal(t, domain.ViewRegister, m.CurrentView())
	assert.Equal(t, johnDoe, holder.Values())

	close(gate)
	m, _ = send(t, m, <-done)

	assert.Equal(t, domain.ViewLogin, m.CurrentView())
	assert.True(t, m.Registered())
	assert.Equal(t, form.MessageRegistered, m.Notice())
}

func TestNew_PrefillsFromHolder(t *testing.T) {
	srv := authtest.NewServer(t)
	holder := newHolder(t, srv)
	holder.Load(domain.RegistrationForm{FirstName: "Jane"})

	m := tui.New(context.Background(), holder)

	assert.Contains(t, m.View(), "Jane")
}
