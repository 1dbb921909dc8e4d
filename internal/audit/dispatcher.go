package audit

import "log/slog"

type Event struct {
	MedspaID string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Sink receives audit entries. *Logger is the gorm-backed implementation.
type Sink interface {
	Log(medspaID string, userID *string, action, entity string, entityID *string, metadata any) error
}

// Dispatcher writes audit events off the request path. A full queue
// drops events rather than blocking the API.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.MedspaID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			slog.Warn("audit write failed", slog.Any("err", err))
		}
	}
}

// Dispatch is safe on a nil *Dispatcher, which discards the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}
