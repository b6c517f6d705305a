package agentlog

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gridmate/gridmate/bus"
	"github.com/gridmate/gridmate/logger"
)

// Log is the agent mode state container. Logs grow monotonically
// within a session; only Clear empties them, and it empties all three
// at once.
type Log struct {
	mu       sync.Mutex
	bus      *bus.Bus
	thoughts []Thought
	actions  []Action
	steps    []Step
	paused   bool

	now func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the timestamp source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New creates an empty agent event log bound to the event bus. The bus
// may be nil in tests that don't observe events.
func New(b *bus.Bus, opts ...Option) *Log {
	l := &Log{
		bus: b,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SubmitCommand appends a thinking thought describing the user's
// command. Blank commands are rejected (returns false).
// TODO: dispatch the command to an executor that produces matching
// actions and steps; until then the command only narrates.
func (l *Log) SubmitCommand(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	l.mu.Lock()
	th := Thought{
		Timestamp: l.now(),
		Type:      ThoughtThinking,
		Message:   fmt.Sprintf("Processing command: %s", text),
	}
	l.thoughts = append(l.thoughts, th)
	l.mu.Unlock()

	logger.Info("agent command submitted", "command", text)
	l.publish(bus.EventThoughtAppended, th)
	return true
}

// AppendThought appends an arbitrary thought entry.
func (l *Log) AppendThought(t ThoughtType, message string) {
	l.mu.Lock()
	th := Thought{Timestamp: l.now(), Type: t, Message: message}
	l.thoughts = append(l.thoughts, th)
	l.mu.Unlock()

	l.publish(bus.EventThoughtAppended, th)
}

// AppendAction appends an action entry, assigning it an ID.
func (l *Log) AppendAction(a Action) Action {
	if a.ID == "" {
		a.ID = nextActionID()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = l.now()
	}

	l.mu.Lock()
	l.actions = append(l.actions, a)
	l.mu.Unlock()

	l.publish(bus.EventActionAppended, a)
	return a
}

// Clear empties thoughts, actions, and execution steps under one lock,
// then notifies observers once. No observer can see a partial clear:
// Snapshot takes the same lock.
func (l *Log) Clear() {
	l.mu.Lock()
	l.thoughts = nil
	l.actions = nil
	l.steps = nil
	l.mu.Unlock()

	logger.Info("agent event log cleared")
	l.publish(bus.EventLogCleared, nil)
}

// TogglePause flips the display-only pause flag and returns the new
// value. Pausing does not block log mutation.
func (l *Log) TogglePause() bool {
	l.mu.Lock()
	l.paused = !l.paused
	paused := l.paused
	l.mu.Unlock()

	l.publish(bus.EventPauseToggled, paused)
	return paused
}

// Paused reports the pause flag.
func (l *Log) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Snapshot returns a consistent copy of all three logs and the pause
// flag.
func (l *Log) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Thoughts: append([]Thought(nil), l.thoughts...),
		Actions:  append([]Action(nil), l.actions...),
		Steps:    append([]Step(nil), l.steps...),
		Paused:   l.paused,
	}
}

// Thoughts returns a copy of the thought log.
func (l *Log) Thoughts() []Thought {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Thought(nil), l.thoughts...)
}

// Actions returns a copy of the action log.
func (l *Log) Actions() []Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Action(nil), l.actions...)
}

// Steps returns a copy of the execution step log.
func (l *Log) Steps() []Step {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Step(nil), l.steps...)
}

func (l *Log) publish(t bus.EventType, data any) {
	if l.bus == nil {
		return
	}
	l.bus.Publish(bus.NewEvent(t, "agentlog", data))
}

var actionCounter atomic.Int64

func nextActionID() string {
	return fmt.Sprintf("act-%d", actionCounter.Add(1))
}
