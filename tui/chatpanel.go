package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridmate/gridmate/conversation"
	"github.com/gridmate/gridmate/mdterm"
)

var (
	userMsgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	formulaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	msgErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// ChatPanel displays the conversation in a scrollable viewport. Content
// is rebuilt from the store snapshot on every refresh, never
// accumulated, so equal store state always renders identically.
type ChatPanel struct {
	store    *conversation.Store
	viewport viewport.Model
}

// NewChatPanel creates a chat panel over the conversation store.
func NewChatPanel(store *conversation.Store) *ChatPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &ChatPanel{store: store, viewport: vp}
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg.(type) {
	case refreshMsg, StateChangedMsg:
		p.viewport.SetContent(RenderConversation(p.store.Messages(), p.store.Busy()))
		p.viewport.GotoBottom()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *ChatPanel) View() string {
	return p.viewport.View()
}

func (p *ChatPanel) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// RenderConversation produces the chat transcript for the given
// messages and busy flag. Pure: output depends on the arguments alone.
func RenderConversation(messages []conversation.Message, busy bool) string {
	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch msg.Sender {
		case conversation.SenderUser:
			b.WriteString(userMsgStyle.Render("> " + msg.Text))
		default:
			b.WriteString(mdterm.Render(msg.Text))
		}
		b.WriteByte('\n')
		if msg.Formula != "" {
			b.WriteString(formulaStyle.Render("  formula: " + msg.Formula))
			b.WriteByte('\n')
		}
		if msg.Err != nil {
			b.WriteString(msgErrorStyle.Render("  error: " + msg.Err.Message))
			b.WriteByte('\n')
		}
	}
	if busy {
		if len(messages) > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pendingStyle.Render("assistant is thinking..."))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
