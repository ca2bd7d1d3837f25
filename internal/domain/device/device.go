package device

import (
	"log/slog"
	"time"
)

// Kind identifies the device family a command can be bound to.
type Kind string

const (
	KindLight      Kind = "light"
	KindCeilingFan Kind = "ceiling_fan"
	KindStereo     Kind = "stereo"
	KindGarageDoor Kind = "garage_door"
)

// Device is the read surface shared by all controllable devices.
// State mutation happens only through each device's own transition
// operations; Restore exists for reloading persisted state at startup
// and does not emit an event.
type Device interface {
	Name() string
	Label() string
	Kind() Kind
	State() string
	Restore(state string) error
}

// Event is one observable transition report. Every transition emits
// exactly one event, including transitions into the current state.
type Event struct {
	Kind  Kind      `json:"kind"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
	State string    `json:"state"`
	At    time.Time `json:"at"`
}

// Notifier receives transition events as they happen.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls the wrapped function.
func (f NotifierFunc) Notify(e Event) { f(e) }

// MultiNotifier fans one event out to several notifiers in order.
func MultiNotifier(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(e Event) {
		for _, n := range notifiers {
			if n != nil {
				n.Notify(e)
			}
		}
	})
}

// LogNotifier reports transitions through a structured logger.
func LogNotifier(logger *slog.Logger) Notifier {
	return NotifierFunc(func(e Event) {
		logger.Info(
			"device transition",
			"kind", string(e.Kind),
			"device", e.Name,
			"label", e.Label,
			"state", e.State,
		)
	})
}

func newEvent(d Device, state string) Event {
	return Event{
		Kind:  d.Kind(),
		Name:  d.Name(),
		Label: d.Label(),
		State: state,
		At:    time.Now().UTC(),
	}
}

func notify(n Notifier, d Device, state string) {
	if n != nil {
		n.Notify(newEvent(d, state))
	}
}
