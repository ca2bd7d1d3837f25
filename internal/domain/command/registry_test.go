package command

import (
	"errors"
	"testing"

	"github.com/micro-ha/remotectl/internal/domain/device"
)

func TestForDeviceBuildsPairs(t *testing.T) {
	fan := device.NewCeilingFan("attic-fan", "Attic", nil)
	on, off, err := ForDevice(FamilyFanMedium, fan)
	if err != nil {
		t.Fatalf("build fan pair: %v", err)
	}
	if on.Name() != "attic-fan:medium" || off.Name() != "attic-fan:off" {
		t.Fatalf("unexpected pair names: %s / %s", on.Name(), off.Name())
	}

	on.Execute()
	if fan.Speed() != device.SpeedMedium {
		t.Fatalf("expected medium, got %s", fan.Speed())
	}
	off.Execute()
	if fan.Speed() != device.SpeedOff {
		t.Fatalf("expected off, got %s", fan.Speed())
	}
}

func TestForDeviceUnknownFamily(t *testing.T) {
	light := device.NewLight("light", "Test", nil)
	_, _, err := ForDevice("disco", light)
	if !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("expected ErrUnknownFamily, got %v", err)
	}
}

func TestForDeviceKindMismatch(t *testing.T) {
	light := device.NewLight("light", "Test", nil)
	_, _, err := ForDevice(FamilyFanHigh, light)
	if !errors.Is(err, ErrFamilyMismatch) {
		t.Fatalf("expected ErrFamilyMismatch, got %v", err)
	}
}

func TestFamiliesSortedAndComplete(t *testing.T) {
	families := Families()
	if len(families) != len(definitions) {
		t.Fatalf("expected %d families, got %d", len(definitions), len(families))
	}
	for i := 1; i < len(families); i++ {
		if families[i-1].ID >= families[i].ID {
			t.Fatalf("families not sorted: %v", families)
		}
	}
}
