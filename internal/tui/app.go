// Package tui is the terminal front end: one bubbletea model dispatching to
// a page per screen, with the navigation guard applied on every transition.
package tui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/analyze"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/auth"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/chat"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/draft"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/history"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/session"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/router"
)

// Services bundles everything the TUI depends on.
type Services struct {
	Session *session.Store
	Auth    *auth.Service
	Analyze *analyze.Service
	Chat    *chat.Service
	Draft   *draft.Service
	History *history.Service
	Store   localstore.Store
	Logger  *slog.Logger
}

type Model struct {
	svc         Services
	page        router.Page
	width       int
	height      int
	status      string
	displayName string

	login     loginModel
	register  registerModel
	summarize summarizeModel
	chatUI    chatModel
	draftUI   draftModel
	historyUI historyModel
	settings  settingsModel

	quitting bool
}

// NewModel creates the application model, landing on home.
func NewModel(svc Services) Model {
	return Model{
		svc:       svc,
		page:      router.PageHome,
		width:     100,
		height:    30,
		login:     newLoginModel(),
		register:  newRegisterModel(),
		summarize: newSummarizeModel(),
		chatUI:    newChatModel(),
		draftUI:   newDraftModel(),
		historyUI: newHistoryModel(),
		settings:  newSettingsModel(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.svc.Session.Authenticated() {
		return loadDisplayNameCmd(m.svc.Auth)
	}
	return nil
}

// displayNameMsg delivers the fetched (or fallback) profile name. The render
// path only ever reads the cached copy on the model.
type displayNameMsg struct {
	name string
}

func loadDisplayNameCmd(svc *auth.Service) tea.Cmd {
	return func() tea.Msg {
		return displayNameMsg{name: svc.DisplayName(context.Background())}
	}
}

// navigate applies the guard and runs the target page's entry command.
func (m Model) navigate(target router.Page) (Model, tea.Cmd) {
	resolved := router.Resolve(target, m.svc.Session)
	if resolved != target {
		m.status = ""
		m.svc.Logger.Debug("navigation redirected", "requested", target, "shown", resolved)
	}
	m.page = resolved

	switch resolved {
	case router.PageChat:
		m.chatUI = m.chatUI.focus()
	case router.PageDraft:
		return m, refreshDraftCmd(m.svc.Draft)
	case router.PageHistory:
		return m, loadHistoryCmd(m.svc.History)
	case router.PageSettings:
		return m, loadSettingsCmd(m.svc.Store)
	case router.PageLogin:
		m.login = newLoginModel()
	case router.PageRegister:
		m.register = newRegisterModel()
	}
	return m, nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case displayNameMsg:
		m.displayName = msg.name
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if !m.typing() {
			if next, ok := pageForKey(msg.String()); ok {
				return m.navigate(next)
			}
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
		}

	}

	switch m.page {
	case router.PageLogin:
		return m.updateLogin(msg)
	case router.PageRegister:
		return m.updateRegister(msg)
	case router.PageSummarize:
		return m.updateSummarize(msg)
	case router.PageChat:
		return m.updateChat(msg)
	case router.PageDraft:
		return m.updateDraft(msg)
	case router.PageHistory:
		return m.updateHistory(msg)
	case router.PageSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.page {
	case router.PageHome:
		b.WriteString(m.viewHome())
	case router.PageTry:
		b.WriteString(m.viewTry())
	case router.PageLogin:
		b.WriteString(m.viewLogin())
	case router.PageRegister:
		b.WriteString(m.viewRegister())
	case router.PageSummarize:
		b.WriteString(m.viewSummarize())
	case router.PageChat:
		b.WriteString(m.viewChat())
	case router.PageDraft:
		b.WriteString(m.viewDraft())
	case router.PageHistory:
		b.WriteString(m.viewHistory())
	case router.PageSettings:
		b.WriteString(m.viewSettings())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m Model) viewHeader() string {
	var parts []string
	parts = append(parts, titleStyle.Render("DocAnalyzer"))
	for _, entry := range navEntries {
		if !m.svc.Session.Authenticated() && router.RequiresAuth(entry.page) {
			continue
		}
		if m.svc.Session.Authenticated() && (entry.page == router.PageLogin || entry.page == router.PageRegister) {
			continue
		}
		label := entry.key + ":" + entry.label
		if entry.page == m.page {
			parts = append(parts, navActiveStyle.Render(label))
		} else {
			parts = append(parts, navStyle.Render(label))
		}
	}
	if m.svc.Session.Authenticated() {
		name := m.displayName
		if name == "" {
			name = auth.FallbackName
		}
		parts = append(parts, avatarStyle.Render(auth.Initials(name)))
	}
	return strings.Join(parts, " ")
}

func (m Model) viewHelp() string {
	if m.typing() {
		return helpStyle.Render("  Esc: back  Ctrl+C: quit")
	}
	return helpStyle.Render("  number keys: navigate  q: quit")
}

// typing reports whether the current page has a focused text input, so
// navigation keys do not swallow typed characters.
func (m Model) typing() bool {
	switch m.page {
	case router.PageLogin:
		return m.login.typing()
	case router.PageRegister:
		return m.register.typing()
	case router.PageSummarize:
		return m.summarize.typing()
	case router.PageChat:
		return m.chatUI.typing()
	case router.PageDraft:
		return m.draftUI.typing()
	}
	return false
}

type navEntry struct {
	key   string
	label string
	page  router.Page
}

var navEntries = []navEntry{
	{"1", "Home", router.PageHome},
	{"2", "Summarize", router.PageSummarize},
	{"3", "Chat", router.PageChat},
	{"4", "Draft", router.PageDraft},
	{"5", "History", router.PageHistory},
	{"6", "Settings", router.PageSettings},
	{"7", "Try", router.PageTry},
	{"8", "Login", router.PageLogin},
	{"9", "Register", router.PageRegister},
}

func pageForKey(key string) (router.Page, bool) {
	for _, entry := range navEntries {
		if entry.key == key {
			return entry.page, true
		}
	}
	return "", false
}
