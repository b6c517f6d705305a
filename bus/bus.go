package bus

import (
	"fmt"
	"sync"

	"github.com/gridmate/gridmate/logger"
)

// Handler is a function that handles events.
type Handler func(event *Event)

// Subscription represents a subscription to events.
type Subscription struct {
	ID        string
	EventType EventType
	Handler   Handler
}

// Bus dispatches state-change events to subscribers. Dispatch is
// synchronous and in publish order: the panel stores mutate on a single
// goroutine at a time, and observers rely on seeing events in the order
// the mutations happened.
type Bus struct {
	mu         sync.RWMutex
	subs       []*Subscription
	subCounter int64
}

// New creates a new event bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a specific event type. An empty
// eventType subscribes to all events. Returns the subscription ID.
func (b *Bus) Subscribe(eventType EventType, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subCounter++
	id := fmt.Sprintf("sub-%d", b.subCounter)

	b.subs = append(b.subs, &Subscription{
		ID:        id,
		EventType: eventType,
		Handler:   handler,
	})

	logger.Debug("subscription added", "id", id, "eventType", eventType)
	return id
}

// Unsubscribe removes a subscription by ID.
func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.ID == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to all matching subscribers before
// returning. Publishers must not hold their own state lock while
// publishing: handlers may read back store state.
func (b *Bus) Publish(event *Event) {
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.EventType == "" || sub.EventType == event.Type {
			subs = append(subs, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		b.dispatch(sub, event)
	}
}

func (b *Bus) dispatch(sub *Subscription, event *Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panic", "subscription", sub.ID, "panic", r)
		}
	}()
	sub.Handler(event)
}
