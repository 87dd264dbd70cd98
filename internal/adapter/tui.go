package adapter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/topline/internal/model"
)

// TUI implements UI with a Bubble Tea progress display for interactive
// terminals.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    sync.WaitGroup
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Message types.
type outcomeMsg struct {
	outcome m.Outcome
}

type summaryMsg struct {
	report m.Report
}

type quitMsg struct{}

// Start launches the progress program in the background. Display methods
// feed it messages.
func (t *TUI) Start(total int) error {
	model := newProgressModel(total)
	t.program = tea.NewProgram(model, tea.WithOutput(t.output))

	t.done.Add(1)
	go func() {
		defer t.done.Done()
		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program and waits for its final frame.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}
	t.program.Send(quitMsg{})
	t.done.Wait()
	t.program = nil
}

// DisplayOutcome implements UI. Outside a progress run (the view replay
// never calls Start) outcomes print as plain lines.
func (t *TUI) DisplayOutcome(o m.Outcome) {
	if t.program != nil {
		t.program.Send(outcomeMsg{outcome: o})
		return
	}

	switch {
	case o.Err != "":
		_, _ = fmt.Fprintf(t.output, "error: %s: %s\n", o.Path, o.Err)
	case o.Warning != "":
		_, _ = fmt.Fprintf(t.output, "%s: %s (%s)\n", o.Status, o.Path, o.Warning)
	default:
		_, _ = fmt.Fprintf(t.output, "%s: %s\n", o.Status, o.Path)
	}
}

// DisplaySummary implements UI, printing plainly when no program runs.
func (t *TUI) DisplaySummary(r m.Report) {
	if t.program != nil {
		t.program.Send(summaryMsg{report: r})
		return
	}

	verb := "changed"
	if r.DryRun {
		verb = "would change"
	}
	_, _ = fmt.Fprintf(t.output, "done: %d %s, %d unchanged, %d skipped, %d failed\n",
		r.Changed(), verb,
		r.Count(m.StatusUnchanged), r.Count(m.StatusSkipped), r.Count(m.StatusFailed))
}

// DisplayVerify falls back to plain rendering: the verifier table prints
// after the progress program has finished.
func (t *TUI) DisplayVerify(v m.VerifyReport) {
	if v.Clean() {
		_, _ = fmt.Fprintf(t.output, "verified %d file(s): all headers complete\n", v.Processed)
		return
	}
	for _, d := range v.Diagnostics {
		_, _ = fmt.Fprintf(t.output, "%s: %s: %s\n", d.Path, d.Field, d.Detail)
	}
	_, _ = fmt.Fprintf(t.output, "%d of %d file(s) incomplete\n", len(v.Incomplete()), v.Processed)
}

// DisplayFiles prints the list table without pagination.
func (t *TUI) DisplayFiles(entries []ListEntry) {
	for _, e := range entries {
		_, _ = fmt.Fprintf(t.output, "%-10s %-8s %5d types %5d funcs  %s\n",
			e.Header, e.Lang, e.Types, e.Funcs, e.Path)
	}
}

var (
	statusStyle = map[m.FileStatus]lipgloss.Style{
		m.StatusInserted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.StatusUpdated:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		m.StatusUnchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		m.StatusSkipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		m.StatusFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// progressModel renders a progress bar plus a tail of recent outcomes.
type progressModel struct {
	total    int
	done     int
	bar      progress.Model
	recent   []m.Outcome
	summary  *m.Report
	quitting bool
}

const recentTail = 8

func newProgressModel(total int) progressModel {
	return progressModel{
		total: total,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (p progressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		p.done++
		p.recent = append(p.recent, msg.outcome)
		if len(p.recent) > recentTail {
			p.recent = p.recent[len(p.recent)-recentTail:]
		}
		return p, nil

	case summaryMsg:
		report := msg.report
		p.summary = &report
		return p, nil

	case quitMsg:
		p.quitting = true
		return p, tea.Quit

	case tea.WindowSizeMsg:
		p.bar.Width = msg.Width - 8
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			p.quitting = true
			return p, tea.Quit
		}
	}
	return p, nil
}

// View implements tea.Model.
func (p progressModel) View() string {
	var b strings.Builder

	ratio := 0.0
	if p.total > 0 {
		ratio = float64(p.done) / float64(p.total)
	}
	b.WriteString(fmt.Sprintf("\n  %s %d/%d\n\n", p.bar.ViewAs(ratio), p.done, p.total))

	for _, o := range p.recent {
		style, ok := statusStyle[o.Status]
		if !ok {
			style = pathStyle
		}
		line := fmt.Sprintf("  %s %s", style.Render(string(o.Status)), pathStyle.Render(o.Path))
		if o.Err != "" {
			line += " " + statusStyle[m.StatusFailed].Render(o.Err)
		}
		b.WriteString(line + "\n")
	}

	if p.summary != nil {
		r := *p.summary
		verb := "changed"
		if r.DryRun {
			verb = "would change"
		}
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"\n  done: %d %s, %d unchanged, %d skipped, %d failed\n",
			r.Changed(), verb,
			r.Count(m.StatusUnchanged), r.Count(m.StatusSkipped), r.Count(m.StatusFailed))))
		b.WriteString("\n")
	}

	return b.String()
}
