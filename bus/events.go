// Package bus provides the notify-on-change event bus shared by the
// panel state stores and the view layer.
package bus

import (
	"fmt"
	"sync/atomic"
	"time"
)

// EventType represents the type of event.
type EventType string

const (
	// Conversation store events.
	EventMessageAppended EventType = "conversation.message_appended"
	EventBusyChanged     EventType = "conversation.busy_changed"
	EventFormulaApplied  EventType = "conversation.formula_applied"
	EventFormulaPreview  EventType = "conversation.formula_preview"

	// Agent event log events.
	EventThoughtAppended EventType = "agent.thought_appended"
	EventActionAppended  EventType = "agent.action_appended"
	EventLogCleared      EventType = "agent.cleared"
	EventLogSeeded       EventType = "agent.seeded"
	EventPauseToggled    EventType = "agent.pause_toggled"
)

// Event represents a bus event. Data carries an event-specific payload;
// events never leave the process, so payloads stay typed rather than
// serialized.
type Event struct {
	ID        string
	Type      EventType
	Source    string
	Timestamp time.Time
	Data      any
}

// NewEvent creates a new event.
func NewEvent(eventType EventType, source string, data any) *Event {
	return &Event{
		ID:        generateEventID(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now(),
		Data:      data,
	}
}

var eventCounter atomic.Int64

func generateEventID() string {
	n := eventCounter.Add(1)
	return fmt.Sprintf("evt-%d-%d", time.Now().UnixMilli(), n)
}
