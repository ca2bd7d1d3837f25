package device

import (
	"errors"
	"testing"
)

type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) { r.events = append(r.events, e) }

func (r *recorder) states() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.State)
	}
	return out
}

func TestLightTransitionsReport(t *testing.T) {
	rec := &recorder{}
	light := NewLight("kitchen-light", "Kitchen", rec)

	light.On()
	light.On()
	light.Off()

	if got := rec.states(); len(got) != 3 || got[0] != "on" || got[1] != "on" || got[2] != "off" {
		t.Fatalf("unexpected reported states: %v", got)
	}
	if light.State() != "off" {
		t.Fatalf("expected off, got %s", light.State())
	}
	for _, e := range rec.events {
		if e.Name != "kitchen-light" || e.Label != "Kitchen" || e.Kind != KindLight {
			t.Fatalf("event missing identity fields: %+v", e)
		}
	}
}

func TestFanTransitionsAreTotal(t *testing.T) {
	rec := &recorder{}
	fan := NewCeilingFan("office-fan", "Office", rec)

	// Off on an already-off fan is still a valid, reporting transition.
	fan.Off()
	fan.High()
	fan.Low()

	if got := rec.states(); len(got) != 3 || got[0] != "off" || got[1] != "high" || got[2] != "low" {
		t.Fatalf("unexpected reported states: %v", got)
	}
	if fan.Speed() != SpeedLow {
		t.Fatalf("expected low, got %s", fan.Speed())
	}
}

func TestParseSpeedRoundTrip(t *testing.T) {
	for _, speed := range []Speed{SpeedOff, SpeedLow, SpeedMedium, SpeedHigh} {
		parsed, err := ParseSpeed(speed.String())
		if err != nil {
			t.Fatalf("parse %s: %v", speed, err)
		}
		if parsed != speed {
			t.Fatalf("expected %s, got %s", speed, parsed)
		}
	}
	if _, err := ParseSpeed("turbo"); err == nil {
		t.Fatalf("expected error for unknown speed")
	}
}

func TestStereoOffClearsSourceAndVolume(t *testing.T) {
	stereo := NewStereo("den-stereo", "Den", nil)
	stereo.On()
	stereo.SetCD()
	stereo.SetVolume(11)
	if stereo.Source() != "cd" || stereo.Volume() != 11 {
		t.Fatalf("unexpected stereo settings: %s %d", stereo.Source(), stereo.Volume())
	}
	stereo.Off()
	if stereo.Source() != "" || stereo.Volume() != 0 {
		t.Fatalf("off should clear source and volume")
	}
}

func TestRestoreDoesNotReport(t *testing.T) {
	rec := &recorder{}
	fan := NewCeilingFan("office-fan", "Office", rec)
	if err := fan.Restore("medium"); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if fan.Speed() != SpeedMedium {
		t.Fatalf("expected medium after restore, got %s", fan.Speed())
	}
	if len(rec.events) != 0 {
		t.Fatalf("restore must not emit events, got %d", len(rec.events))
	}
	if err := fan.Restore("warp"); err == nil {
		t.Fatalf("expected error for unknown restored state")
	}
}

func TestRegistryLookupAndStates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(NewLight("a-light", "A", nil)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := reg.Add(NewCeilingFan("b-fan", "B", nil)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := reg.Add(NewLight("a-light", "A again", nil)); !errors.Is(err, ErrDuplicateDevice) {
		t.Fatalf("expected ErrDuplicateDevice, got %v", err)
	}
	if _, err := reg.Find("missing"); !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}

	if err := reg.RestoreStates(map[string]string{"b-fan": "high", "ghost": "on"}); err != nil {
		t.Fatalf("restore states: %v", err)
	}
	states := reg.States()
	if states["b-fan"] != "high" || states["a-light"] != "off" {
		t.Fatalf("unexpected states: %v", states)
	}

	list := reg.List()
	if len(list) != 2 || list[0].Name() != "a-light" || list[1].Name() != "b-fan" {
		t.Fatalf("expected declaration order, got %v", list)
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := Build(Kind("toaster"), "t", "T", nil); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
