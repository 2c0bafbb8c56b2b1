package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"campuseats/internal/i18n"
	"campuseats/internal/types"
)

// formKind selects which submit action a form triggers.
type formKind int

const (
	formLogin formKind = iota
	formRegister
	formProfile
)

// formState is a small vertical form of text inputs with one focused field.
type formState struct {
	kind    formKind
	title   string
	inputs  []textinput.Model
	labels  []string
	focused int
	err     error
}

func newLoginForm(tr *i18n.Translator) *formState {
	username := textinput.New()
	username.Focus()
	password := textinput.New()
	password.EchoMode = textinput.EchoPassword

	return &formState{
		kind:   formLogin,
		title:  tr.T("login"),
		inputs: []textinput.Model{username, password},
		labels: []string{tr.T("username"), tr.T("password")},
	}
}

func newRegisterForm(tr *i18n.Translator) *formState {
	username := textinput.New()
	username.Focus()
	email := textinput.New()
	password := textinput.New()
	password.EchoMode = textinput.EchoPassword

	return &formState{
		kind:   formRegister,
		title:  tr.T("register"),
		inputs: []textinput.Model{username, email, password},
		labels: []string{tr.T("username"), tr.T("email"), tr.T("password")},
	}
}

func newProfileForm(tr *i18n.Translator, user *types.User) *formState {
	email := textinput.New()
	email.Focus()
	if user != nil {
		email.SetValue(user.Email)
	}

	return &formState{
		kind:   formProfile,
		title:  tr.T("profile"),
		inputs: []textinput.Model{email},
		labels: []string{tr.T("email")},
	}
}

// updateForm handles keys while a form is open.
func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	switch msg.String() {
	case "esc":
		m.form = nil
		m.viewMode = ListView
		return m, nil

	case "tab", "down":
		f.focusField((f.focused + 1) % len(f.inputs))
		return m, nil

	case "shift+tab", "up":
		f.focusField((f.focused - 1 + len(f.inputs)) % len(f.inputs))
		return m, nil

	case "enter":
		if f.focused < len(f.inputs)-1 {
			f.focusField(f.focused + 1)
			return m, nil
		}
		return m, m.submitForm()
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return m, cmd
}

func (f *formState) focusField(i int) {
	f.inputs[f.focused].Blur()
	f.focused = i
	f.inputs[i].Focus()
}

func (m *Model) submitForm() tea.Cmd {
	f := m.form
	m.loading = true
	switch f.kind {
	case formLogin:
		return tea.Batch(m.spinner.Tick,
			m.loginCmd(f.inputs[0].Value(), f.inputs[1].Value()))
	case formRegister:
		return tea.Batch(m.spinner.Tick,
			m.registerCmd(f.inputs[0].Value(), f.inputs[1].Value(), f.inputs[2].Value()))
	default:
		return tea.Batch(m.spinner.Tick,
			m.updateEmailCmd(f.inputs[0].Value()))
	}
}
