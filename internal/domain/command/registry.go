package command

import (
	"errors"
	"fmt"
	"sort"

	"github.com/micro-ha/remotectl/internal/domain/device"
)

var (
	// ErrUnknownFamily indicates a selector with no registered builder.
	ErrUnknownFamily = errors.New("unknown command family")
	// ErrFamilyMismatch indicates a family bound to a device of the
	// wrong kind.
	ErrFamilyMismatch = errors.New("command family does not match device kind")
)

// Family selectors accepted by ForDevice.
const (
	FamilyLight     = "light"
	FamilyFanLow    = "fan.low"
	FamilyFanMedium = "fan.medium"
	FamilyFanHigh   = "fan.high"
	FamilyStereo    = "stereo"
	FamilyGarage    = "garage"
)

type definition struct {
	kind  device.Kind
	label string
	build func(device.Device) (Command, Command)
}

var definitions = map[string]definition{
	FamilyLight: {
		kind:  device.KindLight,
		label: "Light on/off",
		build: func(d device.Device) (Command, Command) {
			light := d.(*device.Light)
			return NewLightOn(light), NewLightOff(light)
		},
	},
	FamilyFanLow: {
		kind:  device.KindCeilingFan,
		label: "Ceiling fan low/off",
		build: fanPair(device.SpeedLow),
	},
	FamilyFanMedium: {
		kind:  device.KindCeilingFan,
		label: "Ceiling fan medium/off",
		build: fanPair(device.SpeedMedium),
	},
	FamilyFanHigh: {
		kind:  device.KindCeilingFan,
		label: "Ceiling fan high/off",
		build: fanPair(device.SpeedHigh),
	},
	FamilyStereo: {
		kind:  device.KindStereo,
		label: "Stereo with CD on/off",
		build: func(d device.Device) (Command, Command) {
			stereo := d.(*device.Stereo)
			return NewStereoOnWithCD(stereo), NewStereoOff(stereo)
		},
	},
	FamilyGarage: {
		kind:  device.KindGarageDoor,
		label: "Garage door up/down",
		build: func(d device.Device) (Command, Command) {
			door := d.(*device.GarageDoor)
			return NewGarageDoorUp(door), NewGarageDoorDown(door)
		},
	},
}

func fanPair(target device.Speed) func(device.Device) (Command, Command) {
	return func(d device.Device) (Command, Command) {
		fan := d.(*device.CeilingFan)
		return NewFanSpeed(fan, target), NewFanSpeed(fan, device.SpeedOff)
	}
}

// FamilyInfo describes one selectable command family.
type FamilyInfo struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Kind  device.Kind `json:"kind"`
}

// Families returns stable family metadata for the HTTP DTO.
func Families() []FamilyInfo {
	out := make([]FamilyInfo, 0, len(definitions))
	for id, def := range definitions {
		out = append(out, FamilyInfo{ID: id, Label: def.label, Kind: def.kind})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// ForDevice builds the on/off command pair of a family bound to a
// device. Unknown selectors and kind mismatches fail without building
// anything.
func ForDevice(family string, d device.Device) (Command, Command, error) {
	def, ok := definitions[family]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	if d.Kind() != def.kind {
		return nil, nil, fmt.Errorf(
			"%w: family %q needs %s, device %q is %s",
			ErrFamilyMismatch, family, def.kind, d.Name(), d.Kind(),
		)
	}
	on, off := def.build(d)
	return on, off, nil
}
