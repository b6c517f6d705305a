package agentlog

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gridmate/gridmate/bus"
)

func TestSeedSampleDataFixture(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.SeedSampleData()
	snap := l.Snapshot()

	if got := len(snap.Thoughts); got != 4 {
		t.Fatalf("thought count = %d, want 4", got)
	}
	if got := len(snap.Actions); got != 4 {
		t.Fatalf("action count = %d, want 4", got)
	}
	if got := len(snap.Steps); got != 3 {
		t.Fatalf("step count = %d, want 3", got)
	}

	// Spot-check the fixture's shape.
	if snap.Thoughts[0].Type != ThoughtThinking {
		t.Fatalf("first thought type = %q, want thinking", snap.Thoughts[0].Type)
	}
	if snap.Thoughts[3].Type != ThoughtCompleted {
		t.Fatalf("last thought type = %q, want completed", snap.Thoughts[3].Type)
	}
	if _, ok := snap.Actions[1].Result.(TableResult); !ok {
		t.Fatalf("second action should carry a TableResult, got %T", snap.Actions[1].Result)
	}
	if snap.Actions[3].Type != ActionPermissionDenied || snap.Actions[3].Status != StatusError {
		t.Fatalf("fourth action should be a denied write: %+v", snap.Actions[3])
	}
	if res, ok := snap.Actions[3].Result.(ErrorResult); !ok || res.Message == "" {
		t.Fatalf("denied action should carry an ErrorResult, got %#v", snap.Actions[3].Result)
	}
	if snap.Steps[2].Status != StepRunning {
		t.Fatalf("last step status = %q, want running", snap.Steps[2].Status)
	}
}

func TestSeedSampleDataIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(nil)
	a.SeedSampleData()
	b := New(nil)
	b.SeedSampleData()

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Fatal("two seeded logs should hold identical fixtures")
	}
}

func TestSubmitCommandAppendsThinkingThought(t *testing.T) {
	t.Parallel()

	l := New(nil)
	if !l.SubmitCommand("highlight duplicates in column A") {
		t.Fatal("SubmitCommand() should accept a non-empty command")
	}

	thoughts := l.Thoughts()
	if len(thoughts) != 1 {
		t.Fatalf("thought count = %d, want 1", len(thoughts))
	}
	if thoughts[0].Type != ThoughtThinking {
		t.Fatalf("thought type = %q, want thinking", thoughts[0].Type)
	}
	if !strings.Contains(thoughts[0].Message, "highlight duplicates in column A") {
		t.Fatalf("thought should describe the command, got %q", thoughts[0].Message)
	}

	// No placeholder action or step is produced.
	if len(l.Actions()) != 0 || len(l.Steps()) != 0 {
		t.Fatal("SubmitCommand() must only append a thought")
	}
}

func TestSubmitCommandRejectsBlankInput(t *testing.T) {
	t.Parallel()

	l := New(nil)
	for _, text := range []string{"", "  ", "\t"} {
		if l.SubmitCommand(text) {
			t.Fatalf("blank command %q should be rejected", text)
		}
	}
	if got := len(l.Thoughts()); got != 0 {
		t.Fatalf("thought log should stay empty, got %d", got)
	}
}

func TestClearEmptiesAllLogsAtomically(t *testing.T) {
	t.Parallel()

	b := bus.New()
	l := New(b)
	l.SeedSampleData()

	// The cleared event observer must never see a half-cleared state.
	cleared := false
	b.Subscribe(bus.EventLogCleared, func(*bus.Event) {
		snap := l.Snapshot()
		if len(snap.Thoughts) != 0 || len(snap.Actions) != 0 || len(snap.Steps) != 0 {
			t.Error("observer saw a partially cleared log")
		}
		cleared = true
	})

	l.Clear()

	if !cleared {
		t.Fatal("cleared event was not delivered")
	}
	snap := l.Snapshot()
	if len(snap.Thoughts) != 0 || len(snap.Actions) != 0 || len(snap.Steps) != 0 {
		t.Fatalf("logs not empty after Clear: %d/%d/%d",
			len(snap.Thoughts), len(snap.Actions), len(snap.Steps))
	}
}

func TestTogglePause(t *testing.T) {
	t.Parallel()

	l := New(nil)
	if l.Paused() {
		t.Fatal("log should start unpaused")
	}
	if !l.TogglePause() {
		t.Fatal("first toggle should pause")
	}
	if l.TogglePause() {
		t.Fatal("second toggle should resume")
	}
}

func TestPauseDoesNotBlockMutation(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.TogglePause()
	if !l.SubmitCommand("still works") {
		t.Fatal("pause must not gate log mutation")
	}
	if got := len(l.Thoughts()); got != 1 {
		t.Fatalf("thought count = %d, want 1", got)
	}
}

func TestAppendThought(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.AppendThought(ThoughtPlanning, "plan the rewrite")

	thoughts := l.Thoughts()
	if len(thoughts) != 1 || thoughts[0].Type != ThoughtPlanning {
		t.Fatalf("unexpected thoughts: %+v", thoughts)
	}
	if thoughts[0].Timestamp.IsZero() {
		t.Fatal("AppendThought() should stamp the entry")
	}
}

func TestAppendActionAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	l := New(nil, WithClock(func() time.Time { return fixed }))

	a := l.AppendAction(Action{
		Type:        ActionRead,
		Description: "Read range A1:B2",
		Status:      StatusSuccess,
	})
	if a.ID == "" {
		t.Fatal("AppendAction() should assign an ID")
	}
	if !a.Timestamp.Equal(fixed) {
		t.Fatalf("Timestamp = %v, want %v", a.Timestamp, fixed)
	}

	other := l.AppendAction(Action{Type: ActionWrite, Description: "Write A1", Status: StatusPending})
	if other.ID == a.ID {
		t.Fatal("action IDs should be unique")
	}
}
