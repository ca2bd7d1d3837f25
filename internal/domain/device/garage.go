package device

import "fmt"

const (
	stateOpen   = "open"
	stateClosed = "closed"
)

// GarageDoor is a binary open/closed device.
type GarageDoor struct {
	name     string
	label    string
	notifier Notifier
	open     bool
}

// NewGarageDoor creates a closed garage door.
func NewGarageDoor(name, label string, notifier Notifier) *GarageDoor {
	return &GarageDoor{name: name, label: label, notifier: notifier}
}

// Name returns the registry name.
func (g *GarageDoor) Name() string { return g.name }

// Label returns the human-readable location label.
func (g *GarageDoor) Label() string { return g.label }

// Kind returns KindGarageDoor.
func (g *GarageDoor) Kind() Kind { return KindGarageDoor }

// Up opens the door.
func (g *GarageDoor) Up() {
	g.open = true
	notify(g.notifier, g, stateOpen)
}

// Down closes the door.
func (g *GarageDoor) Down() {
	g.open = false
	notify(g.notifier, g, stateClosed)
}

// IsOpen reports whether the door is open.
func (g *GarageDoor) IsOpen() bool { return g.open }

// State returns "open" or "closed".
func (g *GarageDoor) State() string {
	if g.open {
		return stateOpen
	}
	return stateClosed
}

// Restore sets persisted state without emitting an event.
func (g *GarageDoor) Restore(state string) error {
	switch state {
	case stateOpen:
		g.open = true
	case stateClosed:
		g.open = false
	default:
		return fmt.Errorf("garage door %s: unknown state %q", g.name, state)
	}
	return nil
}
