// Package tui provides the terminal user interface hosting the chat
// sidebar and the agent mode workspace view.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Panel is a composable TUI region with its own state, update logic,
// and view. The root App model orchestrates panels without knowing
// their internals.
type Panel interface {
	Update(tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// LogLineMsg carries a single log line from the logger writer.
type LogLineMsg struct{ Line string }

// InputSubmitMsg is emitted when the user presses Enter in the input
// panel. The input buffer is not cleared until the submission is
// accepted by a store.
type InputSubmitMsg struct{ Text string }

// StateChangedMsg tells panels to re-read their store snapshots. Sent
// by the bus subscriber when state mutates outside the update loop
// (the placeholder response timer).
type StateChangedMsg struct{}

// clearInputMsg resets the input buffer after an accepted submission.
type clearInputMsg struct{}

// refreshMsg makes a snapshot-rendering panel rebuild its content.
type refreshMsg struct{}
