package device

import "fmt"

// Speed is the closed set of ceiling fan levels, ordered from off up.
type Speed int

const (
	SpeedOff Speed = iota
	SpeedLow
	SpeedMedium
	SpeedHigh
)

// String returns the lowercase level name.
func (s Speed) String() string {
	switch s {
	case SpeedLow:
		return "low"
	case SpeedMedium:
		return "medium"
	case SpeedHigh:
		return "high"
	default:
		return "off"
	}
}

// ParseSpeed maps a level name back to a Speed.
func ParseSpeed(raw string) (Speed, error) {
	switch raw {
	case "off":
		return SpeedOff, nil
	case "low":
		return SpeedLow, nil
	case "medium":
		return SpeedMedium, nil
	case "high":
		return SpeedHigh, nil
	default:
		return SpeedOff, fmt.Errorf("unknown fan speed %q", raw)
	}
}

// CeilingFan is a four-level device. Commands snapshot its speed before
// transitioning so undo can restore the exact prior level.
type CeilingFan struct {
	name     string
	label    string
	notifier Notifier
	speed    Speed
}

// NewCeilingFan creates a fan at SpeedOff.
func NewCeilingFan(name, label string, notifier Notifier) *CeilingFan {
	return &CeilingFan{name: name, label: label, notifier: notifier}
}

// Name returns the registry name.
func (f *CeilingFan) Name() string { return f.name }

// Label returns the human-readable location label.
func (f *CeilingFan) Label() string { return f.label }

// Kind returns KindCeilingFan.
func (f *CeilingFan) Kind() Kind { return KindCeilingFan }

// Off stops the fan.
func (f *CeilingFan) Off() { f.set(SpeedOff) }

// Low sets low speed.
func (f *CeilingFan) Low() { f.set(SpeedLow) }

// Medium sets medium speed.
func (f *CeilingFan) Medium() { f.set(SpeedMedium) }

// High sets high speed.
func (f *CeilingFan) High() { f.set(SpeedHigh) }

// Speed returns the current level.
func (f *CeilingFan) Speed() Speed { return f.speed }

// State returns the current level name.
func (f *CeilingFan) State() string { return f.speed.String() }

// Restore sets persisted state without emitting an event.
func (f *CeilingFan) Restore(state string) error {
	speed, err := ParseSpeed(state)
	if err != nil {
		return fmt.Errorf("fan %s: %w", f.name, err)
	}
	f.speed = speed
	return nil
}

func (f *CeilingFan) set(speed Speed) {
	f.speed = speed
	notify(f.notifier, f, speed.String())
}
