package bus

import (
	"testing"
)

func TestPublishDispatchesInOrder(t *testing.T) {
	t.Parallel()

	b := New()
	var got []string
	b.Subscribe(EventMessageAppended, func(e *Event) {
		got = append(got, e.Data.(string))
	})

	b.Publish(NewEvent(EventMessageAppended, "test", "first"))
	b.Publish(NewEvent(EventMessageAppended, "test", "second"))

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("dispatch order broken: %v", got)
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	t.Parallel()

	b := New()
	var thoughts, all int
	b.Subscribe(EventThoughtAppended, func(*Event) { thoughts++ })
	b.Subscribe("", func(*Event) { all++ })

	b.Publish(NewEvent(EventThoughtAppended, "test", nil))
	b.Publish(NewEvent(EventLogCleared, "test", nil))

	if thoughts != 1 {
		t.Fatalf("typed subscriber called %d times, want 1", thoughts)
	}
	if all != 2 {
		t.Fatalf("wildcard subscriber called %d times, want 2", all)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	b := New()
	calls := 0
	id := b.Subscribe("", func(*Event) { calls++ })

	b.Publish(NewEvent(EventLogCleared, "test", nil))
	b.Unsubscribe(id)
	b.Publish(NewEvent(EventLogCleared, "test", nil))

	if calls != 1 {
		t.Fatalf("subscriber called %d times after unsubscribe, want 1", calls)
	}
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	t.Parallel()

	b := New()
	delivered := false
	b.Subscribe("", func(*Event) { panic("boom") })
	b.Subscribe("", func(*Event) { delivered = true })

	b.Publish(NewEvent(EventLogCleared, "test", nil))

	if !delivered {
		t.Fatal("a panicking handler must not block later subscribers")
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := NewEvent(EventLogCleared, "test", nil)
		if seen[e.ID] {
			t.Fatalf("duplicate event ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}
