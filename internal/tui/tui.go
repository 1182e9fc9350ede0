package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/cgraparse/cgraparse"
	"github.com/sokinpui/cgraparse/model"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	deletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	pathStyle    = lipgloss.NewStyle()
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// ErrCancelled is returned by Run when the user quits before the run ends.
var ErrCancelled = errors.New("cancelled")

// --- Messages ---
type summaryMsg struct {
	model.Summary
}

type progressMsg struct {
	model.Event
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app     *cgraparse.App
	spinner spinner.Model
	state   state
	visited int
	current string
	summary summaryMsg
	err     error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(app *cgraparse.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		app:     app,
		spinner: s,
		state:   stateProcessing,
	}
}

// Run executes app inside a bubbletea program and returns its error, if any.
func Run(app *cgraparse.App) error {
	p := tea.NewProgram(New(app))
	app.SetProgressCallback(func(ev model.Event) {
		p.Send(progressMsg{ev})
	})
	defer app.SetProgressCallback(nil)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil
	}
	switch m.state {
	case stateError:
		return m.err
	case stateProcessing:
		return ErrCancelled
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case progressMsg:
		m.visited++
		m.current = msg.Target
		return m, nil

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		if m.current == "" {
			return fmt.Sprintf("%s Processing...", m.spinner.View())
		}
		return fmt.Sprintf("%s Processing... %s %s", m.spinner.View(),
			faintStyle.Render(fmt.Sprintf("[%d]", m.visited)), pathStyle.Render(m.current))
	case stateError:
		return errorStyle.Render("Error: ", m.err.Error()) + "\n"
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	if m.summary.Message != "" {
		b.WriteString(headerStyle.Render(m.summary.Message))
		b.WriteString("\n\n")
	}

	if len(m.summary.Modified) > 0 {
		b.WriteString(successStyle.Render("Modified:"))
		b.WriteString("\n")
		for _, f := range m.summary.Modified {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}
	if len(m.summary.Deleted) > 0 {
		b.WriteString(deletedStyle.Render("Deleted:"))
		b.WriteString("\n")
		for _, f := range m.summary.Deleted {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}
	if len(m.summary.Copied) > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("Copied %d unchanged file(s)", len(m.summary.Copied))))
		b.WriteString("\n")
	}

	if len(m.summary.Warnings) > 0 {
		b.WriteString(warningStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range m.summary.Warnings {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(w)))
		}
	}

	for _, t := range m.summary.Tallies {
		b.WriteString(headerStyle.Render(t.Target))
		b.WriteString(fmt.Sprintf(": modified %d out of %d files\n", t.Modified, t.Files))
	}

	if b.Len() == 0 {
		b.WriteString(faintStyle.Render("Nothing to do."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) runApp() tea.Msg {
	summary, err := m.app.Execute()
	if err != nil {
		// Check for detailed error to print stack
		var detailed *cgraparse.DetailedError
		if errors.As(err, &detailed) {
			// The TUI will exit, so we can print to stderr here for the stack trace.
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		return errorMsg{err}
	}
	return summaryMsg{
		Summary: summary,
	}
}
