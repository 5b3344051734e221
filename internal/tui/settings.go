package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/auth"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/router"
)

type settingsModel struct {
	cursor  int
	toggles []toggle
}

type toggle struct {
	key   string
	label string
	on    bool
}

func newSettingsModel() settingsModel {
	return settingsModel{
		toggles: []toggle{
			{key: localstore.KeyPrefAutoSave, label: "Auto-save analyses to history", on: true},
			{key: localstore.KeyPrefNotifications, label: "Notifications", on: true},
			{key: localstore.KeyPrefDarkMode, label: "Dark mode", on: false},
		},
	}
}

type settingsLoadedMsg struct {
	values map[string]string
}

func loadSettingsCmd(store localstore.Store) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		values := make(map[string]string)
		keys := []string{
			localstore.KeyPrefAutoSave,
			localstore.KeyPrefNotifications,
			localstore.KeyPrefDarkMode,
		}
		for _, key := range keys {
			value, err := store.Get(ctx, key)
			if err != nil {
				continue
			}
			values[key] = value
		}
		return settingsLoadedMsg{values: values}
	}
}

type settingSavedMsg struct {
	err error
}

func saveSettingCmd(store localstore.Store, key string, on bool) tea.Cmd {
	return func() tea.Msg {
		value := "true"
		if !on {
			value = "false"
		}
		return settingSavedMsg{err: store.Set(context.Background(), key, value)}
	}
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		for i := range m.settings.toggles {
			if value, ok := msg.values[m.settings.toggles[i].key]; ok {
				m.settings.toggles[i].on = value != "false"
			}
		}
		return m, nil

	case settingSavedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.settings.cursor > 0 {
				m.settings.cursor--
			}
		case "down", "j":
			if m.settings.cursor < len(m.settings.toggles)-1 {
				m.settings.cursor++
			}
		case "enter", " ":
			t := &m.settings.toggles[m.settings.cursor]
			t.on = !t.on
			return m, saveSettingCmd(m.svc.Store, t.key, t.on)
		case "L":
			m.svc.Auth.Logout(context.Background())
			m.status = ""
			m.displayName = ""
			return m.navigate(router.PageHome)
		}
	}
	return m, nil
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Settings"))
	b.WriteString("\n\n")
	name := m.displayName
	if name == "" {
		name = auth.FallbackName
	}
	b.WriteString("  Signed in as " + okStyle.Render(name))
	b.WriteString("\n\n")

	for i, t := range m.settings.toggles {
		mark := "[ ]"
		if t.on {
			mark = "[x]"
		}
		line := mark + " " + t.label
		if i == m.settings.cursor {
			b.WriteString("  " + selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  Up/Down: select  Enter: toggle  Shift+L: log out"))
	return b.String()
}
