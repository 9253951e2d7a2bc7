package selection

import "github.com/rs/zerolog"

// EventKind says how a dialog closed.
type EventKind string

const (
	EventCommit  EventKind = "commit"
	EventClear   EventKind = "clear"
	EventDiscard EventKind = "discard"
)

// Event is published once when a dialog closes.
type Event struct {
	DialogID string
	Kind     EventKind
	Mode     Mode
	Value    string
	Changed  bool // host field was written
}

// Observer receives close events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// LogObserver writes close events to a zerolog logger at debug level.
type LogObserver struct {
	Logger zerolog.Logger
}

func (o LogObserver) Observe(e Event) {
	o.Logger.Debug().
		Str("dialog_id", e.DialogID).
		Str("event", string(e.Kind)).
		Str("mode", e.Mode.String()).
		Str("value", e.Value).
		Bool("changed", e.Changed).
		Msg("picker closed")
}

// Observers fans an event out to several observers in order.
type Observers []Observer

func (os Observers) Observe(e Event) {
	for _, o := range os {
		if o != nil {
			o.Observe(e)
		}
	}
}
