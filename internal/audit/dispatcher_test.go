package audit

import (
	"sync"
	"testing"
	"time"
)

type memorySink struct {
	mu      sync.Mutex
	actions []string
}

func (m *memorySink) Log(medspaID string, userID *string, action, entity string, entityID *string, metadata any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
	return nil
}

func (m *memorySink) snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.actions...)
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{MedspaID: "m1", Action: "appointment_created", Entity: "appointment"})
	d.Dispatch(Event{MedspaID: "m1", Action: "appointment_status_changed", Entity: "appointment"})

	deadline := time.Now().Add(2 * time.Second)
	for {
		if len(sink.snapshot()) == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("events not delivered, got %v", sink.snapshot())
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := sink.snapshot()
	if got[0] != "appointment_created" || got[1] != "appointment_status_changed" {
		t.Fatalf("actions = %v", got)
	}
}

func TestNilDispatcherDiscards(t *testing.T) {
	var d *Dispatcher
	// Must not panic.
	d.Dispatch(Event{Action: "noop"})
}
