package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartsum/internal/domain"
	"smartsum/internal/summarizer"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Summarize(doc domain.Document) (domain.SummaryResult, error)
	Save(path string, result domain.SummaryResult) error
	Copy(result domain.SummaryResult) error
}

type view int

const (
	summaryView view = iota
	documentView
	chartView
	helpView
)

var viewNames = map[view]string{
	summaryView:  "Summary",
	documentView: "Document",
	chartView:    "Keywords",
	helpView:     "Help",
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  SummaryPort
	doc      domain.Document
	result   domain.SummaryResult
	err      error
	view     view
	lastView view
	input    textinput.Model
	viewport viewport.Model
	saving   bool
	theme    theme
	status   string
	ready    bool
}

// New creates a new TUI model and summarizes doc right away.
func New(service SummaryPort, doc domain.Document, dark bool) Model {
	ti := textinput.New()
	ti.Prompt = "Save as: "
	ti.Placeholder = "summary.txt"
	ti.CharLimit = 0
	m := Model{
		service:  service,
		doc:      doc,
		input:    ti,
		viewport: viewport.New(0, 0),
		theme:    themeFor(dark),
	}
	m.generate()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		fw, fh := m.theme.box.GetFrameSize()
		reserved := 4 // header, tabs, stats, status
		if m.saving {
			reserved++
		}
		m.viewport.Width = max(20, msg.Width-fw)
		m.viewport.Height = max(3, msg.Height-reserved-fh)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.saving {
			return m.updateSaving(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % helpView
			m.refresh()
			return m, nil
		case "?":
			if m.view == helpView {
				m.view = m.lastView
			} else {
				m.lastView = m.view
				m.view = helpView
			}
			m.refresh()
			return m, nil
		case "t":
			m.theme = themeFor(!m.theme.dark)
			m.refresh()
			return m, nil
		case "r":
			m.generate()
			m.refresh()
			return m, nil
		case "c":
			if m.err != nil || m.result.Summary == "" {
				m.status = "No summary to copy!"
				return m, nil
			}
			if err := m.service.Copy(m.result); err != nil {
				m.status = "Error: " + err.Error()
			} else {
				m.status = "Summary copied to clipboard!"
			}
			return m, nil
		case "s":
			if m.err != nil || m.result.Summary == "" {
				m.status = "No summary to save!"
				return m, nil
			}
			m.saving = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateSaving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.saving = false
		m.input.Blur()
		m.status = "Save cancelled."
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			path = m.input.Placeholder
		}
		m.saving = false
		m.input.Blur()
		if err := m.service.Save(path, m.result); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Summary saved to %s", path)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) generate() {
	res, err := m.service.Summarize(m.doc)
	m.result, m.err = res, err
	switch {
	case errors.Is(err, domain.ErrInsufficientContent):
		m.status = "Not enough content to summarize!"
	case err != nil:
		m.status = "Error: " + err.Error()
	default:
		m.status = "Summary generated with highlighted keywords!"
	}
}

func (m *Model) refresh() {
	width := max(10, m.viewport.Width)
	m.viewport.SetContent(lipgloss.NewStyle().Width(width).Render(m.renderBody(width)))
	m.viewport.GotoTop()
}

func (m Model) renderBody(width int) string {
	switch m.view {
	case documentView:
		if strings.TrimSpace(m.doc.Content) == "" {
			return "No text loaded."
		}
		return m.doc.Content
	case chartView:
		if m.err != nil {
			return "Generate a summary first!"
		}
		return renderChart(m.result.ChartKeywords, width, m.theme)
	case helpView:
		return helpText
	}
	if m.err != nil {
		return m.theme.muted.Render("No summary.")
	}
	var b strings.Builder
	spans := summarizer.Highlight(m.result.Summary, m.result.Highlight)
	summarizer.Segments(m.result.Summary, spans, func(part string, hl bool) {
		if hl {
			b.WriteString(m.theme.highlight.Render(part))
			return
		}
		b.WriteString(part)
	})
	return b.String()
}

// View renders the TUI layout and current view.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.theme.title.Render("Smart Summarizer") + "  " + m.theme.muted.Render(m.doc.Path)
	var tabs []string
	for v := summaryView; v <= helpView; v++ {
		if v == m.view {
			tabs = append(tabs, m.theme.activeTab.Render(viewNames[v]))
		} else {
			tabs = append(tabs, m.theme.tab.Render(viewNames[v]))
		}
	}
	body := m.theme.box.Render(m.viewport.View())
	lines := []string{header, strings.Join(tabs, " "), m.theme.muted.Render(statsLine(m.result, m.err)), body}
	if m.saving {
		lines = append(lines, m.input.View())
	}
	lines = append(lines, m.theme.status.Render(m.status))
	return strings.Join(lines, "\n")
}

func statsLine(res domain.SummaryResult, err error) string {
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Original: %d words | Summary: %d words | Compression: %.1f%%",
		res.Stats.OriginalWords, res.Stats.SummaryWords, res.Stats.Ratio)
}

const helpText = `SMART SUMMARIZER - HELP

tab     cycle Summary / Document / Keywords
?       toggle this help
r       regenerate the summary
c       copy the summary to the clipboard
s       save the summary (.txt, .json or .yaml)
t       toggle light / dark theme
up/down scroll
q       quit

The top keywords are highlighted in the summary. The stats line shows
the word counts of the original and the summary and the compression.`
