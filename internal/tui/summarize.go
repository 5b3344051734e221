package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/analyze"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/render"
)

type summarizeModel struct {
	path      textinput.Model
	busy      bool
	result    *backend.SummaryResult
	savedPath string
}

func newSummarizeModel() summarizeModel {
	path := textinput.New()
	path.Placeholder = "path to a PDF file"
	path.CharLimit = 300
	path.Focus()
	return summarizeModel{path: path}
}

func (s summarizeModel) typing() bool {
	return s.path.Focused()
}

type analyzeResultMsg struct {
	result *backend.SummaryResult
	err    error
}

func analyzeCmd(svc *analyze.Service, path string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return analyzeResultMsg{err: fmt.Errorf("opening %s: %w", path, err)}
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return analyzeResultMsg{err: fmt.Errorf("reading %s: %w", path, err)}
		}

		upload := &analyze.Upload{
			Name:   filepath.Base(path),
			Size:   info.Size(),
			Reader: file,
		}
		result, err := svc.Analyze(context.Background(), upload)
		return analyzeResultMsg{result: result, err: err}
	}
}

type downloadResultMsg struct {
	path string
	err  error
}

func downloadCmd(svc *analyze.Service, result *backend.SummaryResult) tea.Cmd {
	return func() tea.Msg {
		data, err := svc.DownloadPDF(context.Background(), result)
		if err != nil {
			return downloadResultMsg{err: err}
		}
		path := filepath.Join(os.TempDir(), "document-summary.pdf")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return downloadResultMsg{err: err}
		}
		return downloadResultMsg{path: path}
	}
}

func (m Model) updateSummarize(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzeResultMsg:
		m.summarize.busy = false
		if msg.err != nil {
			m.status = describeAnalyzeError(msg.err)
			return m, nil
		}
		m.status = ""
		m.summarize.result = msg.result
		m.summarize.savedPath = ""
		return m, nil

	case downloadResultMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.summarize.savedPath = msg.path
		return m, nil

	case tea.KeyMsg:
		if m.summarize.busy {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			if m.summarize.path.Focused() {
				m.summarize.busy = true
				m.summarize.path.Blur()
				return m, analyzeCmd(m.svc.Analyze, strings.TrimSpace(m.summarize.path.Value()))
			}
		case "e":
			if !m.summarize.path.Focused() {
				m.summarize.path.Focus()
				return m, nil
			}
		case "d":
			if !m.summarize.path.Focused() && m.summarize.result != nil {
				return m, downloadCmd(m.svc.Analyze, m.summarize.result)
			}
		case "esc":
			m.summarize.path.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.summarize.path, cmd = m.summarize.path.Update(msg)
	return m, cmd
}

func (m Model) viewSummarize() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Summarize a Document"))
	b.WriteString("\n\n")
	b.WriteString("  File: " + m.summarize.path.View() + "\n\n")

	switch {
	case m.summarize.busy:
		b.WriteString(dimStyle.Render("  Analyzing... this can take a while for long documents."))
	case m.summarize.result != nil:
		b.WriteString(viewDisplay(render.Summary(m.summarize.result)))
		if m.summarize.savedPath != "" {
			b.WriteString("  " + okStyle.Render("Saved to "+m.summarize.savedPath) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("  d: download PDF  e: analyze another file"))
	default:
		b.WriteString(helpStyle.Render("  Enter: analyze  Esc: unfocus"))
	}
	return b.String()
}

// describeAnalyzeError maps validation sentinels to the wording shown on the
// page.
func describeAnalyzeError(err error) string {
	switch {
	case errors.Is(err, analyze.ErrNoFile):
		return "Please select a PDF file first"
	case errors.Is(err, analyze.ErrUnsupportedType):
		return "Only PDF files are supported"
	}
	return err.Error()
}

// viewDisplay renders a Display shared by the summary and draft pages.
func viewDisplay(display render.Display) string {
	var b strings.Builder
	for _, section := range display.Sections {
		b.WriteString("  " + headingStyle.Render(section.Heading) + "\n")
		if section.Placeholder != "" {
			b.WriteString(dimStyle.Render("    "+section.Placeholder) + "\n\n")
			continue
		}
		for _, paragraph := range section.Paragraphs {
			b.WriteString("    " + paragraph + "\n")
		}
		for _, row := range section.Rows {
			b.WriteString("    " + okStyle.Render(row.Cells[0]) + "\n")
			for _, cell := range row.Cells[1:] {
				if cell != "" {
					b.WriteString("      " + cell + "\n")
				}
			}
		}
		for _, item := range section.Items {
			b.WriteString("    - " + item + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
