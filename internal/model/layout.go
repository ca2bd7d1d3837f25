package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// DeviceSpec declares one device in the layout file.
type DeviceSpec struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// BindingSpec declares one initial slot binding in the layout file.
type BindingSpec struct {
	Slot   int    `json:"slot"`
	Device string `json:"device"`
	Family string `json:"family"`
}

// Layout is the declarative wiring applied at startup: which devices
// exist and which slots they are bound to.
type Layout struct {
	Devices  []DeviceSpec  `json:"devices"`
	Bindings []BindingSpec `json:"bindings"`
}

// LoadLayout reads and validates a layout file. A missing file yields
// an empty layout so a fresh install starts with unbound slots.
func LoadLayout(path string) (Layout, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	var layout Layout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	layout.normalize()
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Validate checks internal consistency of the declared wiring.
func (l Layout) Validate() error {
	seen := map[string]bool{}
	for _, d := range l.Devices {
		if d.Name == "" {
			return fmt.Errorf("layout device with empty name")
		}
		if d.Kind == "" {
			return fmt.Errorf("layout device %q has no kind", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("layout device %q declared twice", d.Name)
		}
		seen[d.Name] = true
	}
	for _, b := range l.Bindings {
		if b.Slot < 0 {
			return fmt.Errorf("layout binding slot %d is negative", b.Slot)
		}
		if !seen[b.Device] {
			return fmt.Errorf("layout binding for slot %d references unknown device %q", b.Slot, b.Device)
		}
		if b.Family == "" {
			return fmt.Errorf("layout binding for slot %d has no family", b.Slot)
		}
	}
	return nil
}

func (l *Layout) normalize() {
	for i := range l.Devices {
		l.Devices[i].Name = strings.TrimSpace(l.Devices[i].Name)
		l.Devices[i].Kind = strings.TrimSpace(l.Devices[i].Kind)
		l.Devices[i].Label = strings.TrimSpace(l.Devices[i].Label)
		if l.Devices[i].Label == "" {
			l.Devices[i].Label = l.Devices[i].Name
		}
	}
	for i := range l.Bindings {
		l.Bindings[i].Device = strings.TrimSpace(l.Bindings[i].Device)
		l.Bindings[i].Family = strings.TrimSpace(l.Bindings[i].Family)
	}
}

// SlotBinding is one persisted slot row.
type SlotBinding struct {
	Slot      int       `json:"slot"`
	Device    string    `json:"device"`
	Family    string    `json:"family"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeviceState is one persisted device state row.
type DeviceState struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}
