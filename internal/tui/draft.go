package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/draft"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/render"
)

type draftModel struct {
	query  textinput.Model
	busy   bool
	result *backend.DraftResult
}

func newDraftModel() draftModel {
	query := textinput.New()
	query.Placeholder = "e.g. draft a mutual confidentiality clause"
	query.CharLimit = 500
	return draftModel{query: query}
}

func (d draftModel) typing() bool {
	return d.query.Focused()
}

type draftRefreshedMsg struct {
	state draft.State
}

func refreshDraftCmd(svc *draft.Service) tea.Cmd {
	return func() tea.Msg {
		return draftRefreshedMsg{state: svc.Refresh(context.Background())}
	}
}

type draftInitializedMsg struct {
	err error
}

func initializeDraftCmd(svc *draft.Service) tea.Cmd {
	return func() tea.Msg {
		return draftInitializedMsg{err: svc.Initialize(context.Background())}
	}
}

type draftResultMsg struct {
	result *backend.DraftResult
	err    error
}

func draftCmd(svc *draft.Service, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Draft(context.Background(), query)
		return draftResultMsg{result: result, err: err}
	}
}

func (m Model) updateDraft(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case draftRefreshedMsg:
		m.draftUI.busy = false
		if msg.state == draft.StateReady {
			m.draftUI.query.Focus()
		}
		return m, nil

	case draftInitializedMsg:
		m.draftUI.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		return m, nil

	case draftResultMsg:
		m.draftUI.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.draftUI.result = msg.result
		return m, nil

	case tea.KeyMsg:
		if m.draftUI.busy {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.draftUI.query.Value())
			if query == "" {
				return m, nil
			}
			m.draftUI.busy = true
			return m, draftCmd(m.svc.Draft, query)
		case "i":
			if !m.draftUI.query.Focused() {
				m.draftUI.busy = true
				return m, initializeDraftCmd(m.svc.Draft)
			}
		case "r":
			if !m.draftUI.query.Focused() {
				m.draftUI.busy = true
				return m, refreshDraftCmd(m.svc.Draft)
			}
		case "esc":
			m.draftUI.query.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.draftUI.query, cmd = m.draftUI.query.Update(msg)
	return m, cmd
}

func (m Model) viewDraft() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Draft a Clause"))
	b.WriteString("  " + m.viewDraftState())
	b.WriteString("\n\n")

	if catalog := m.svc.Draft.Catalog(); catalog != nil && len(catalog.ContractTypes) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d contracts in corpus:", catalog.TotalContracts)))
		b.WriteString("\n")
		for _, ct := range catalog.ContractTypes {
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %s (%d)", ct.Type, ct.Count)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  Query: " + m.draftUI.query.View() + "\n\n")

	switch {
	case m.draftUI.busy:
		b.WriteString(dimStyle.Render("  Working..."))
	case m.draftUI.result != nil:
		b.WriteString(viewDisplay(render.Draft(m.draftUI.result)))
	case m.svc.Draft.State() != draft.StateReady:
		b.WriteString(helpStyle.Render("  i: initialize system  r: refresh status"))
	default:
		b.WriteString(helpStyle.Render("  Enter: draft  r: refresh status  Esc: unfocus"))
	}
	return b.String()
}

func (m Model) viewDraftState() string {
	switch m.svc.Draft.State() {
	case draft.StateReady:
		return okStyle.Render("ready")
	case draft.StateChecking:
		return dimStyle.Render("checking...")
	case draft.StateNotReady:
		return errorStyle.Render("not ready")
	default:
		return dimStyle.Render("unknown")
	}
}
