package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridmate/gridmate/agentlog"
	"github.com/gridmate/gridmate/conversation"
	"github.com/gridmate/gridmate/logger"
	"github.com/gridmate/gridmate/sheet"
)

const defaultLogRatio = 0.4

var (
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	modeStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	busyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Mode selects which panel fills the screen.
type Mode int

const (
	ModeChat Mode = iota
	ModeAgent
)

// Options configures the root App.
type Options struct {
	Prompt      string
	LogRatio    float64        // share of the chat view given to the debug log
	DefaultPage string         // document page opened when leaving agent mode
	ActivePage  func() string  // reports the document's active page for the status line
}

// App is the root bubbletea model. It hosts the chat sidebar and the
// agent mode view and routes input to whichever store owns the current
// mode.
type App struct {
	store *conversation.Store
	log   *agentlog.Log
	doc   sheet.Document

	chatPanel  Panel
	agentPanel Panel
	inputPanel Panel
	logPanel   Panel

	mode          Mode
	width, height int
	opts          Options
}

// NewApp creates the root TUI model over the two state stores and the
// host document.
func NewApp(store *conversation.Store, log *agentlog.Log, doc sheet.Document, opts Options) *App {
	if opts.Prompt == "" {
		opts.Prompt = "gridmate> "
	}
	if opts.LogRatio <= 0 || opts.LogRatio >= 1 {
		opts.LogRatio = defaultLogRatio
	}
	return &App{
		store:      store,
		log:        log,
		doc:        doc,
		chatPanel:  NewChatPanel(store),
		agentPanel: NewAgentPanel(log),
		inputPanel: NewInputPanel(opts.Prompt),
		logPanel:   NewLogPanel(),
		opts:       opts,
	}
}

func (m *App) Init() tea.Cmd {
	// Render the seeded agent data before the first event arrives.
	return func() tea.Msg { return StateChangedMsg{} }
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		m.refreshState()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			if m.mode == ModeChat {
				m.mode = ModeAgent
				m.recalcLayout()
				m.refreshState()
			}
			return m, nil
		case tea.KeyEsc:
			if m.mode == ModeAgent {
				m.exitAgentMode()
			}
			return m, nil
		case tea.KeyCtrlL:
			if m.mode == ModeAgent {
				m.log.Clear()
				m.refreshState()
			}
			return m, nil
		case tea.KeyCtrlP:
			if m.mode == ModeAgent {
				m.log.TogglePause()
			}
			return m, nil
		}
		// All other keys go to the input panel.
		p, cmd := m.inputPanel.Update(msg)
		m.inputPanel = p
		cmds = append(cmds, cmd)

	case InputSubmitMsg:
		if m.submit(msg.Text) {
			p, _ := m.inputPanel.Update(clearInputMsg{})
			m.inputPanel = p
			m.refreshState()
		}

	case LogLineMsg:
		p, cmd := m.logPanel.Update(msg)
		m.logPanel = p
		cmds = append(cmds, cmd)

	case StateChangedMsg:
		m.refreshState()

	default:
		// Broadcast unknown messages to the input panel (blink etc).
		p, cmd := m.inputPanel.Update(msg)
		m.inputPanel = p
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit routes an input submission to the store owning the current
// mode. Returns whether the store accepted it.
func (m *App) submit(text string) bool {
	if m.mode == ModeAgent {
		return m.log.SubmitCommand(text)
	}
	return m.store.PostUserMessage(text)
}

// exitAgentMode navigates the host document back to the default page
// and returns to the chat sidebar.
func (m *App) exitAgentMode() {
	if m.doc != nil && m.opts.DefaultPage != "" {
		if err := m.doc.OpenPage(m.opts.DefaultPage); err != nil {
			logger.Warn("open page failed", "page", m.opts.DefaultPage, "error", err)
		}
	}
	m.mode = ModeChat
	m.recalcLayout()
	m.refreshState()
}

// refreshState makes the snapshot-rendering panels rebuild.
func (m *App) refreshState() {
	p, _ := m.chatPanel.Update(refreshMsg{})
	m.chatPanel = p
	p, _ = m.agentPanel.Update(refreshMsg{})
	m.agentPanel = p
}

func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	sep := separatorStyle.Render(strings.Repeat("─", m.width))
	status := m.statusLine()

	if m.mode == ModeAgent {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.agentPanel.View(),
			sep,
			status,
			m.inputPanel.View(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.logPanel.View(),
		sep,
		m.chatPanel.View(),
		sep,
		status,
		m.inputPanel.View(),
	)
}

func (m *App) statusLine() string {
	page := ""
	if m.opts.ActivePage != nil {
		page = m.opts.ActivePage()
	}
	return RenderStatus(m.mode, m.store.Busy(), m.log.Paused(), page)
}

// RenderStatus produces the one-line status bar. Pure: output depends
// on the arguments alone.
func RenderStatus(mode Mode, busy, paused bool, page string) string {
	var parts []string
	if mode == ModeAgent {
		parts = append(parts, modeStyle.Render("AGENT"))
		if paused {
			parts = append(parts, busyStyle.Render("paused"))
		}
		parts = append(parts, statusStyle.Render("ctrl+l clear · ctrl+p pause · esc exit"))
	} else {
		parts = append(parts, modeStyle.Render("CHAT"))
		if busy {
			parts = append(parts, busyStyle.Render("thinking…"))
		}
		parts = append(parts, statusStyle.Render("tab agent mode · ctrl+c quit"))
	}
	if page != "" {
		parts = append(parts, statusStyle.Render("page: "+page))
	}
	return strings.Join(parts, statusStyle.Render(" │ "))
}

func (m *App) recalcLayout() {
	const inputH = 1
	const statusH = 1

	if m.mode == ModeAgent {
		// One separator between panel and status.
		agentH := max(m.height-inputH-statusH-1, 2)
		m.agentPanel.SetSize(m.width, agentH)
		m.inputPanel.SetSize(m.width, inputH)
		return
	}

	const sepLines = 2
	usable := max(m.height-inputH-statusH-sepLines, 2)
	logH := max(int(float64(usable)*m.opts.LogRatio), 1)
	chatH := max(usable-logH, 1)

	m.logPanel.SetSize(m.width, logH)
	m.chatPanel.SetSize(m.width, chatH)
	m.inputPanel.SetSize(m.width, inputH)
}
