package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/auth"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/router"
)

type registerModel struct {
	name     textinput.Model
	email    textinput.Model
	password textinput.Model
	field    int
	busy     bool
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 100
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword

	return registerModel{name: name, email: email, password: password}
}

func (r registerModel) typing() bool {
	return r.name.Focused() || r.email.Focused() || r.password.Focused()
}

func (r *registerModel) inputs() []*textinput.Model {
	return []*textinput.Model{&r.name, &r.email, &r.password}
}

func (r *registerModel) focusField(index int) {
	inputs := r.inputs()
	r.field = (index + len(inputs)) % len(inputs)
	for i, input := range inputs {
		if i == r.field {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

type registerResultMsg struct {
	err error
}

func registerCmd(svc *auth.Service, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		return registerResultMsg{err: svc.Register(context.Background(), name, email, password)}
	}
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.register.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		next, cmd := m.navigate(router.PageHome)
		return next, tea.Batch(cmd, loadDisplayNameCmd(m.svc.Auth))

	case tea.KeyMsg:
		if m.register.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m.navigate(router.PageHome)
		case "tab":
			m.register.focusField(m.register.field + 1)
			return m, nil
		case "shift+tab":
			m.register.focusField(m.register.field - 1)
			return m, nil
		case "enter":
			m.register.busy = true
			return m, registerCmd(m.svc.Auth,
				m.register.name.Value(),
				m.register.email.Value(),
				m.register.password.Value())
		}
	}

	var cmd tea.Cmd
	input := m.register.inputs()[m.register.field]
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Register"))
	b.WriteString("\n\n")
	b.WriteString("  Name:     " + m.register.name.View() + "\n")
	b.WriteString("  Email:    " + m.register.email.View() + "\n")
	b.WriteString("  Password: " + m.register.password.View() + "\n\n")
	if m.register.busy {
		b.WriteString(dimStyle.Render("  Creating account..."))
	} else {
		b.WriteString(helpStyle.Render("  Tab: switch field  Enter: register  Esc: back"))
	}
	return b.String()
}
