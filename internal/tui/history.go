package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/history"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/render"
)

type historyModel struct {
	remote  []backend.DocumentRef
	local   []localstore.Analysis
	cursor  int
	busy    bool
	detail  *backend.StoredDocument
	loadErr string
}

func newHistoryModel() historyModel {
	return historyModel{}
}

type historyLoadedMsg struct {
	remote []backend.DocumentRef
	local  []localstore.Analysis
	err    error
}

func loadHistoryCmd(svc *history.Service) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		remote, err := svc.Remote(ctx)
		// The local log still renders when the backend is unreachable.
		local, localErr := svc.Local(ctx)
		if localErr != nil && err == nil {
			err = localErr
		}
		return historyLoadedMsg{remote: remote, local: local, err: err}
	}
}

type historyDetailMsg struct {
	detail *backend.StoredDocument
	err    error
}

func loadDetailCmd(svc *history.Service, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.Detail(context.Background(), id)
		return historyDetailMsg{detail: detail, err: err}
	}
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.historyUI.busy = false
		m.historyUI.loadErr = ""
		if msg.err != nil {
			m.historyUI.loadErr = msg.err.Error()
		}
		m.historyUI.remote = msg.remote
		m.historyUI.local = msg.local
		if m.historyUI.cursor >= len(msg.remote) {
			m.historyUI.cursor = 0
		}
		return m, nil

	case historyDetailMsg:
		m.historyUI.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.historyUI.detail = msg.detail
		return m, nil

	case tea.KeyMsg:
		if m.historyUI.busy {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.historyUI.cursor > 0 {
				m.historyUI.cursor--
			}
		case "down", "j":
			if m.historyUI.cursor < len(m.historyUI.remote)-1 {
				m.historyUI.cursor++
			}
		case "enter":
			if m.historyUI.detail != nil {
				return m, nil
			}
			if len(m.historyUI.remote) > 0 {
				m.historyUI.busy = true
				return m, loadDetailCmd(m.svc.History, m.historyUI.remote[m.historyUI.cursor].ID)
			}
		case "esc":
			m.historyUI.detail = nil
		case "r":
			m.historyUI.busy = true
			return m, loadHistoryCmd(m.svc.History)
		}
	}
	return m, nil
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Document History"))
	b.WriteString("\n\n")

	if m.historyUI.busy {
		b.WriteString(dimStyle.Render("  Loading..."))
		return b.String()
	}
	if m.historyUI.detail != nil {
		doc := m.historyUI.detail
		b.WriteString("  " + okStyle.Render(doc.Filename) + " " + dimStyle.Render(doc.CreatedAt))
		b.WriteString("\n\n")
		b.WriteString(viewDisplay(render.Summary(&doc.Summary)))
		b.WriteString(helpStyle.Render("  Esc: back to list"))
		return b.String()
	}
	if m.historyUI.loadErr != "" {
		b.WriteString(errorStyle.Render("  " + m.historyUI.loadErr))
		b.WriteString("\n\n")
	}

	if len(m.historyUI.remote) == 0 {
		b.WriteString(dimStyle.Render("  No analyzed documents yet."))
		b.WriteString("\n")
	}
	for i, ref := range m.historyUI.remote {
		line := ref.Filename + "  " + ref.CreatedAt
		if i == m.historyUI.cursor {
			b.WriteString("  " + selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	if len(m.historyUI.local) > 0 {
		b.WriteString("\n  " + headingStyle.Render("Recent local analyses") + "\n")
		for _, entry := range m.historyUI.local {
			b.WriteString(dimStyle.Render("    "+entry.Filename+"  "+entry.Status+"  "+
				entry.CreatedAt.Format("2006-01-02 15:04")) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  Up/Down: select  Enter: open  r: reload"))
	return b.String()
}
