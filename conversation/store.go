// Package conversation holds the chat sidebar's message log and its
// update protocol: user sends, the delayed placeholder response, and
// the formula hooks against the host document.
package conversation

import (
	"strings"
	"sync"
	"time"

	"github.com/gridmate/gridmate/bus"
	"github.com/gridmate/gridmate/logger"
	"github.com/gridmate/gridmate/sheet"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// MessageError is an error payload attached to a message for display.
type MessageError struct {
	Message string
}

// Message is a single conversation entry. Immutable once appended;
// ordering is arrival order.
type Message struct {
	Sender    Sender
	Text      string
	Formula   string        // optional suggested formula
	Err       *MessageError // optional error payload
	Timestamp time.Time
}

const (
	// DefaultResponseDelay is how long the store waits before
	// appending the placeholder response.
	DefaultResponseDelay = 1500 * time.Millisecond

	// DefaultPlaceholder is the canned reply standing in for the
	// unbuilt assistant backend.
	DefaultPlaceholder = "I received your message. The assistant backend is not connected yet."
)

// Store is the chat sidebar's state container. All mutations go
// through its methods; every mutation publishes a bus event after the
// lock is released.
type Store struct {
	mu       sync.Mutex
	doc      sheet.Document
	bus      *bus.Bus
	messages []Message
	busy     bool
	timer    *time.Timer
	closed   bool

	delay       time.Duration
	placeholder string
	now         func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithResponseDelay overrides the placeholder response delay.
func WithResponseDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithPlaceholder overrides the placeholder response text.
func WithPlaceholder(text string) Option {
	return func(s *Store) { s.placeholder = text }
}

// WithClock overrides the timestamp source. Tests use this to get
// deterministic message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a conversation store bound to the host document and
// the event bus. Both may be nil in tests that don't exercise them.
func NewStore(doc sheet.Document, b *bus.Bus, opts ...Option) *Store {
	s := &Store{
		doc:         doc,
		bus:         b,
		delay:       DefaultResponseDelay,
		placeholder: DefaultPlaceholder,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PostUserMessage validates and appends a user message, then schedules
// the placeholder response. Returns false when the message is rejected:
// blank text, a response already pending, or the store closed. The
// caller clears its input buffer only on true.
func (s *Store) PostUserMessage(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	s.mu.Lock()
	if s.closed || s.busy {
		s.mu.Unlock()
		return false
	}
	msg := Message{
		Sender:    SenderUser,
		Text:      text,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	s.busy = true
	// The user entry is in the log before the timer exists, so the
	// response can never precede it.
	s.timer = time.AfterFunc(s.delay, s.resolveResponse)
	s.mu.Unlock()

	s.publish(bus.EventMessageAppended, msg)
	s.publish(bus.EventBusyChanged, true)
	return true
}

// resolveResponse fires on the response timer. A store closed between
// scheduling and firing must not mutate.
func (s *Store) resolveResponse() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	msg := Message{
		Sender:    SenderAssistant,
		Text:      s.placeholder,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	s.busy = false
	s.timer = nil
	s.mu.Unlock()

	s.publish(bus.EventMessageAppended, msg)
	s.publish(bus.EventBusyChanged, false)
}

// ApplyFormula records a request to apply a suggested formula to the
// host document. Extension point: the formula engine is not wired yet,
// so this only logs and notifies observers.
// TODO: apply msg.Formula to the active page once the workbook exposes
// a formula engine.
func (s *Store) ApplyFormula(msg Message) {
	logger.Info("apply formula requested", "formula", msg.Formula)
	s.publish(bus.EventFormulaApplied, msg)
}

// PreviewFormula records a request to preview a suggested formula.
// Extension point, log-only like ApplyFormula.
func (s *Store) PreviewFormula(msg Message) {
	logger.Info("preview formula requested", "formula", msg.Formula)
	s.publish(bus.EventFormulaPreview, msg)
}

// Busy reports whether a placeholder response is pending.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Messages returns a copy of the message log.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Close disposes the store. A pending response timer is revoked; a
// timer that already fired into resolveResponse sees closed and backs
// out. Safe to call more than once.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store) publish(t bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(bus.NewEvent(t, "conversation", data))
}
