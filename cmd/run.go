package cmd

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridmate/gridmate/agentlog"
	"github.com/gridmate/gridmate/bus"
	"github.com/gridmate/gridmate/config"
	"github.com/gridmate/gridmate/conversation"
	"github.com/gridmate/gridmate/logger"
	"github.com/gridmate/gridmate/sheet"
	"github.com/gridmate/gridmate/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the gridmate panels",
	Long: `Start the TUI with both panels.

Keys:
  enter    send a message / submit an agent command
  tab      enter agent mode
  esc      leave agent mode (navigates the document to its default page)
  ctrl+l   clear the agent event log
  ctrl+p   pause/resume the agent display
  ctrl+c   quit`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'gridmate onboard' to initialize", err)
	}

	doc := sheet.NewWorkbook(cfg.Document.Pages...)
	b := bus.New()

	store := conversation.NewStore(doc, b,
		conversation.WithResponseDelay(cfg.ResponseDelay()),
		conversation.WithPlaceholder(cfg.Chat.Placeholder),
	)
	defer store.Close()

	log := agentlog.New(b)
	log.SeedSampleData()

	app := tui.NewApp(store, log, doc, tui.Options{
		Prompt:      cfg.Chat.Prompt,
		LogRatio:    cfg.UI.LogRatio,
		DefaultPage: cfg.Document.DefaultPage,
		ActivePage:  doc.ActivePage,
	})
	program := tea.NewProgram(app, tea.WithAltScreen())

	// Route logger output into the TUI log panel.
	lw := newLogWriter(program)
	logger.Intercept(lw)
	defer func() {
		logger.Restore()
		lw.close()
	}()

	// Forward store mutations to the view. Sent from a fresh goroutine:
	// user-initiated mutations publish from inside the update loop, and
	// Send would deadlock there. Panels re-read atomic snapshots, so
	// refresh reordering is harmless.
	subID := b.Subscribe("", func(*bus.Event) {
		go program.Send(tui.StateChangedMsg{})
	})
	defer b.Unsubscribe(subID)

	logger.Info("gridmate started", "pages", cfg.Document.Pages)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

const logLineBufferSize = 256

// logWriter implements io.Writer and forwards each log line to the TUI
// as a LogLineMsg. Lines go through a buffered channel drained by a
// separate goroutine: writes happen inside the update loop (store
// methods log), where calling program.Send directly would deadlock.
type logWriter struct {
	lines chan string
	done  chan struct{}
}

func newLogWriter(program *tea.Program) *logWriter {
	w := &logWriter{
		lines: make(chan string, logLineBufferSize),
		done:  make(chan struct{}),
	}
	go func() {
		for {
			select {
			case line := <-w.lines:
				program.Send(tui.LogLineMsg{Line: line})
			case <-w.done:
				return
			}
		}
	}()
	return w
}

func (w *logWriter) Write(p []byte) (int, error) {
	// Split on newlines in case a single write contains multiple lines.
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		select {
		case w.lines <- string(line):
		default:
			// Buffer full; drop the line rather than block the caller.
		}
	}
	return len(p), nil
}

func (w *logWriter) close() {
	close(w.done)
}
