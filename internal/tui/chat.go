package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/chat"
)

type chatModel struct {
	input textinput.Model
	busy  bool
}

func newChatModel() chatModel {
	input := textinput.New()
	input.Placeholder = "ask DocBot..."
	input.CharLimit = 500
	return chatModel{input: input}
}

func (c chatModel) typing() bool {
	return c.input.Focused()
}

func (c chatModel) focus() chatModel {
	c.input.Focus()
	return c
}

type chatReplyMsg struct {
	err error
}

func sendChatCmd(svc *chat.Service, text string) tea.Cmd {
	return func() tea.Msg {
		return chatReplyMsg{err: svc.Send(context.Background(), text)}
	}
}

type chatClearedMsg struct {
	err error
}

func clearChatCmd(svc *chat.Service) tea.Cmd {
	return func() tea.Msg {
		return chatClearedMsg{err: svc.Clear(context.Background())}
	}
}

func (m Model) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.chatUI.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case chatClearedMsg:
		m.chatUI.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if m.chatUI.busy {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.chatUI.input.Value())
			if text == "" {
				return m, nil
			}
			m.chatUI.input.SetValue("")
			m.chatUI.busy = true
			return m, sendChatCmd(m.svc.Chat, text)
		case "ctrl+l":
			m.chatUI.busy = true
			return m, clearChatCmd(m.svc.Chat)
		case "esc":
			m.chatUI.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.chatUI.input, cmd = m.chatUI.input.Update(msg)
	return m, cmd
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Chat with DocBot"))
	b.WriteString("  " + dimStyle.Render(m.svc.Chat.SessionID()))
	b.WriteString("\n\n")

	messages := m.svc.Chat.Messages()
	start := 0
	if visible := m.height - 10; visible > 0 && len(messages) > visible {
		start = len(messages) - visible
	}
	for _, message := range messages[start:] {
		switch message.Role {
		case chat.RoleUser:
			b.WriteString("  " + userBubbleStyle.Render("You") + " " + message.Content)
			if message.Status == chat.StatusFailed {
				b.WriteString(" " + failedStyle.Render("(failed)"))
			}
		default:
			b.WriteString("  " + botBubbleStyle.Render("DocBot") + " " + message.Content)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  " + m.chatUI.input.View() + "\n\n")
	if m.chatUI.busy {
		b.WriteString(dimStyle.Render("  DocBot is thinking..."))
	} else {
		b.WriteString(helpStyle.Render("  Enter: send  Ctrl+L: clear chat  Esc: unfocus"))
	}
	return b.String()
}
