package device

import "fmt"

// Stereo is an on/off device with a playback source and volume that are
// only meaningful while it is on.
type Stereo struct {
	name     string
	label    string
	notifier Notifier
	on       bool
	source   string
	volume   int
}

// NewStereo creates a stereo in the off state.
func NewStereo(name, label string, notifier Notifier) *Stereo {
	return &Stereo{name: name, label: label, notifier: notifier}
}

// Name returns the registry name.
func (s *Stereo) Name() string { return s.name }

// Label returns the human-readable location label.
func (s *Stereo) Label() string { return s.label }

// Kind returns KindStereo.
func (s *Stereo) Kind() Kind { return KindStereo }

// On powers the stereo on.
func (s *Stereo) On() {
	s.on = true
	notify(s.notifier, s, stateOn)
}

// Off powers the stereo off and clears source and volume.
func (s *Stereo) Off() {
	s.on = false
	s.source = ""
	s.volume = 0
	notify(s.notifier, s, stateOff)
}

// SetCD selects the CD source.
func (s *Stereo) SetCD() {
	s.source = "cd"
	notify(s.notifier, s, "source cd")
}

// SetVolume sets playback volume.
func (s *Stereo) SetVolume(volume int) {
	s.volume = volume
	notify(s.notifier, s, fmt.Sprintf("volume %d", volume))
}

// IsOn reports whether the stereo is powered.
func (s *Stereo) IsOn() bool { return s.on }

// Source returns the selected source, empty when off.
func (s *Stereo) Source() string { return s.source }

// Volume returns the current volume.
func (s *Stereo) Volume() int { return s.volume }

// State returns "on" or "off".
func (s *Stereo) State() string {
	if s.on {
		return stateOn
	}
	return stateOff
}

// Restore sets persisted state without emitting an event.
func (s *Stereo) Restore(state string) error {
	switch state {
	case stateOn:
		s.on = true
	case stateOff:
		s.on = false
		s.source = ""
		s.volume = 0
	default:
		return fmt.Errorf("stereo %s: unknown state %q", s.name, state)
	}
	return nil
}
