package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridmate/gridmate/agentlog"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	runStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var thoughtGlyphs = map[agentlog.ThoughtType]string{
	agentlog.ThoughtThinking:  "…",
	agentlog.ThoughtPlanning:  "◆",
	agentlog.ThoughtExecuting: "▶",
	agentlog.ThoughtCompleted: "✓",
	agentlog.ThoughtError:     "✗",
}

// AgentPanel displays the agent's narrated activity: thoughts, actions,
// and execution steps. Like the chat panel it rebuilds entirely from a
// log snapshot on refresh.
type AgentPanel struct {
	log      *agentlog.Log
	viewport viewport.Model
}

// NewAgentPanel creates an agent panel over the event log.
func NewAgentPanel(log *agentlog.Log) *AgentPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &AgentPanel{log: log, viewport: vp}
}

func (p *AgentPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg.(type) {
	case refreshMsg, StateChangedMsg:
		p.viewport.SetContent(RenderAgentLog(p.log.Snapshot()))
		p.viewport.GotoBottom()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *AgentPanel) View() string {
	return p.viewport.View()
}

func (p *AgentPanel) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// RenderAgentLog produces the full agent mode transcript from a log
// snapshot. Pure: output depends on the snapshot alone.
func RenderAgentLog(snap agentlog.Snapshot) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("THOUGHTS"))
	b.WriteByte('\n')
	if len(snap.Thoughts) == 0 {
		b.WriteString(detailStyle.Render("  (none)"))
		b.WriteByte('\n')
	}
	for _, th := range snap.Thoughts {
		fmt.Fprintf(&b, "%s %s %s\n",
			timeStyle.Render(th.Timestamp.Format("15:04:05")),
			thoughtGlyphs[th.Type],
			th.Message)
	}

	b.WriteByte('\n')
	b.WriteString(sectionStyle.Render("ACTIONS"))
	b.WriteByte('\n')
	if len(snap.Actions) == 0 {
		b.WriteString(detailStyle.Render("  (none)"))
		b.WriteByte('\n')
	}
	for _, a := range snap.Actions {
		b.WriteString(renderAction(a))
	}

	b.WriteByte('\n')
	b.WriteString(sectionStyle.Render("EXECUTION STEPS"))
	b.WriteByte('\n')
	if len(snap.Steps) == 0 {
		b.WriteString(detailStyle.Render("  (none)"))
		b.WriteByte('\n')
	}
	for _, s := range snap.Steps {
		b.WriteString(renderStep(s))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderAction(a agentlog.Action) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s [%s] %s",
		timeStyle.Render(a.Timestamp.Format("15:04:05")),
		statusGlyph(a.Status),
		a.Type,
		a.Description)
	if a.Duration > 0 {
		b.WriteString(timeStyle.Render(" (" + formatDuration(a.Duration) + ")"))
	}
	b.WriteByte('\n')

	// Closed sum: every payload kind renders, nil renders nothing.
	switch res := a.Result.(type) {
	case nil:
	case agentlog.ValueResult:
		b.WriteString(valueStyle.Render("    → " + res.Value))
		b.WriteByte('\n')
	case agentlog.TableResult:
		b.WriteString(renderTable(res))
	case agentlog.ErrorResult:
		b.WriteString(errStyle.Render("    error: " + res.Message))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderTable(t agentlog.TableResult) string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len([]rune(c))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var b strings.Builder
	b.WriteString("    " + valueStyle.Render(joinPadded(t.Columns, widths)))
	b.WriteByte('\n')
	for _, row := range t.Rows {
		b.WriteString("    " + joinPadded(row, widths))
		b.WriteByte('\n')
	}
	return b.String()
}

func joinPadded(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		if n := w - len([]rune(cell)); n > 0 {
			cell += strings.Repeat(" ", n)
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func renderStep(s agentlog.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", stepGlyph(s.Status), s.Title)
	if s.Duration > 0 {
		b.WriteString(timeStyle.Render(" (" + formatDuration(s.Duration) + ")"))
	}
	b.WriteByte('\n')
	for _, d := range s.Details {
		b.WriteString(detailStyle.Render("    · " + d))
		b.WriteByte('\n')
	}
	return b.String()
}

func statusGlyph(status agentlog.ActionStatus) string {
	switch status {
	case agentlog.StatusSuccess:
		return okStyle.Render("✓")
	case agentlog.StatusError:
		return errStyle.Render("✗")
	default:
		return runStyle.Render("●")
	}
}

func stepGlyph(status agentlog.StepStatus) string {
	switch status {
	case agentlog.StepCompleted:
		return okStyle.Render("✓")
	case agentlog.StepError:
		return errStyle.Render("✗")
	default:
		return runStyle.Render("●")
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(100 * time.Millisecond).String()
}
