package device

import "fmt"

// Registry holds all devices by name in declaration order.
type Registry struct {
	devices map[string]Device
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{devices: map[string]Device{}}
}

// Add registers a device under its name.
func (r *Registry) Add(d Device) error {
	if _, exists := r.devices[d.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDevice, d.Name())
	}
	r.devices[d.Name()] = d
	r.order = append(r.order, d.Name())
	return nil
}

// Find returns a device by name.
func (r *Registry) Find(name string) (Device, error) {
	d, ok := r.devices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, name)
	}
	return d, nil
}

// List returns all devices in declaration order.
func (r *Registry) List() []Device {
	out := make([]Device, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.devices[name])
	}
	return out
}

// States returns the current state of every device by name.
func (r *Registry) States() map[string]string {
	out := make(map[string]string, len(r.devices))
	for name, d := range r.devices {
		out[name] = d.State()
	}
	return out
}

// RestoreStates applies persisted states. Names without a registered
// device are skipped; a state a device cannot parse is an error.
func (r *Registry) RestoreStates(states map[string]string) error {
	for name, state := range states {
		d, ok := r.devices[name]
		if !ok {
			continue
		}
		if err := d.Restore(state); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs a device of the given kind wired to the notifier.
func Build(kind Kind, name, label string, notifier Notifier) (Device, error) {
	switch kind {
	case KindLight:
		return NewLight(name, label, notifier), nil
	case KindCeilingFan:
		return NewCeilingFan(name, label, notifier), nil
	case KindStereo:
		return NewStereo(name, label, notifier), nil
	case KindGarageDoor:
		return NewGarageDoor(name, label, notifier), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
