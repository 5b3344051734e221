package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/auth"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/router"
)

type loginModel struct {
	email    textinput.Model
	password textinput.Model
	field    int
	busy     bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword

	return loginModel{email: email, password: password}
}

func (l loginModel) typing() bool {
	return l.email.Focused() || l.password.Focused()
}

type loginResultMsg struct {
	err error
}

func loginCmd(svc *auth.Service, email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: svc.Login(context.Background(), email, password)}
	}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.login.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		next, cmd := m.navigate(router.PageHome)
		return next, tea.Batch(cmd, loadDisplayNameCmd(m.svc.Auth))

	case tea.KeyMsg:
		if m.login.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m.navigate(router.PageHome)
		case "tab", "shift+tab":
			m.login.field = 1 - m.login.field
			if m.login.field == 0 {
				m.login.email.Focus()
				m.login.password.Blur()
			} else {
				m.login.email.Blur()
				m.login.password.Focus()
			}
			return m, nil
		case "enter":
			m.login.busy = true
			return m, loginCmd(m.svc.Auth, m.login.email.Value(), m.login.password.Value())
		}
	}

	var cmd tea.Cmd
	if m.login.field == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Log In"))
	b.WriteString("\n\n")
	b.WriteString("  Email:    " + m.login.email.View() + "\n")
	b.WriteString("  Password: " + m.login.password.View() + "\n\n")
	if m.login.busy {
		b.WriteString(dimStyle.Render("  Logging in..."))
	} else {
		b.WriteString(helpStyle.Render("  Tab: switch field  Enter: log in  Esc: back"))
	}
	return b.String()
}
