package device

import "fmt"

const (
	stateOn  = "on"
	stateOff = "off"
)

// Light is a binary on/off device.
type Light struct {
	name     string
	label    string
	notifier Notifier
	on       bool
}

// NewLight creates a light in the off state.
func NewLight(name, label string, notifier Notifier) *Light {
	return &Light{name: name, label: label, notifier: notifier}
}

// Name returns the registry name.
func (l *Light) Name() string { return l.name }

// Label returns the human-readable location label.
func (l *Light) Label() string { return l.label }

// Kind returns KindLight.
func (l *Light) Kind() Kind { return KindLight }

// On switches the light on. Switching an already-on light is a valid
// transition and still reports.
func (l *Light) On() {
	l.on = true
	notify(l.notifier, l, stateOn)
}

// Off switches the light off.
func (l *Light) Off() {
	l.on = false
	notify(l.notifier, l, stateOff)
}

// IsOn reports whether the light is on.
func (l *Light) IsOn() bool { return l.on }

// State returns "on" or "off".
func (l *Light) State() string {
	if l.on {
		return stateOn
	}
	return stateOff
}

// Restore sets persisted state without emitting an event.
func (l *Light) Restore(state string) error {
	switch state {
	case stateOn:
		l.on = true
	case stateOff:
		l.on = false
	default:
		return fmt.Errorf("light %s: unknown state %q", l.name, state)
	}
	return nil
}
