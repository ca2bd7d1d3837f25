package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/micro-ha/remotectl/internal/domain/command"
	"github.com/micro-ha/remotectl/internal/domain/device"
	"github.com/micro-ha/remotectl/internal/invoker"
	"github.com/micro-ha/remotectl/internal/model"
)

type fakeRepo struct {
	bindings map[int]model.SlotBinding
	states   map[string]model.DeviceState
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bindings: map[int]model.SlotBinding{},
		states:   map[string]model.DeviceState{},
	}
}

func (f *fakeRepo) UpsertBinding(_ context.Context, binding model.SlotBinding) error {
	f.bindings[binding.Slot] = binding
	return nil
}

func (f *fakeRepo) ListBindings(_ context.Context) ([]model.SlotBinding, error) {
	out := make([]model.SlotBinding, 0, len(f.bindings))
	for _, b := range f.bindings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) UpsertDeviceStates(_ context.Context, states []model.DeviceState) error {
	for _, s := range states {
		f.states[s.Name] = s
	}
	return nil
}

func (f *fakeRepo) ListDeviceStates(_ context.Context) (map[string]model.DeviceState, error) {
	out := make(map[string]model.DeviceState, len(f.states))
	for name, s := range f.states {
		out[name] = s
	}
	return out, nil
}

func newTestService(t *testing.T, repo Repository, capacity int) (*Service, *device.Registry) {
	t.Helper()
	registry := device.NewRegistry()
	for _, d := range []device.Device{
		device.NewLight("hall-light", "Hallway", nil),
		device.NewCeilingFan("den-fan", "Den", nil),
		device.NewStereo("den-stereo", "Den", nil),
	} {
		if err := registry.Add(d); err != nil {
			t.Fatalf("add device: %v", err)
		}
	}
	return New(registry, invoker.New(capacity), repo, slog.Default()), registry
}

func TestEndToEndFanScenario(t *testing.T) {
	repo := newFakeRepo()
	svc, registry := newTestService(t, repo, 3)
	ctx := context.Background()

	if err := svc.BindSlot(ctx, 0, "den-fan", command.FamilyFanMedium); err != nil {
		t.Fatalf("bind: %v", err)
	}

	fanState := func() string {
		d, err := registry.Find("den-fan")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		return d.State()
	}

	if err := svc.PressOn(ctx, 0); err != nil {
		t.Fatalf("press on: %v", err)
	}
	if fanState() != "medium" {
		t.Fatalf("expected medium, got %s", fanState())
	}
	if err := svc.PressOff(ctx, 0); err != nil {
		t.Fatalf("press off: %v", err)
	}
	if fanState() != "off" {
		t.Fatalf("expected off, got %s", fanState())
	}
	if err := svc.Undo(ctx); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if fanState() != "medium" {
		t.Fatalf("undo of off should restore medium, got %s", fanState())
	}

	if repo.states["den-fan"].State != "medium" {
		t.Fatalf("expected persisted state medium, got %+v", repo.states["den-fan"])
	}
}

func TestBindSlotErrors(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(t, repo, 2)
	ctx := context.Background()

	if err := svc.BindSlot(ctx, 0, "ghost", command.FamilyLight); !errors.Is(err, device.ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	if err := svc.BindSlot(ctx, 0, "hall-light", "disco"); !errors.Is(err, command.ErrUnknownFamily) {
		t.Fatalf("expected ErrUnknownFamily, got %v", err)
	}
	if err := svc.BindSlot(ctx, 0, "hall-light", command.FamilyFanHigh); !errors.Is(err, command.ErrFamilyMismatch) {
		t.Fatalf("expected ErrFamilyMismatch, got %v", err)
	}
	if err := svc.BindSlot(ctx, 9, "hall-light", command.FamilyLight); !errors.Is(err, invoker.ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange, got %v", err)
	}
	if len(repo.bindings) != 0 {
		t.Fatalf("failed binds must not persist anything: %v", repo.bindings)
	}
}

func TestRestoreAppliesStatesAndBindings(t *testing.T) {
	repo := newFakeRepo()
	repo.states["den-fan"] = model.DeviceState{Name: "den-fan", Kind: "ceiling_fan", State: "high"}
	// Persisted binding overrides the layout's wiring of slot 0.
	repo.bindings[0] = model.SlotBinding{Slot: 0, Device: "den-stereo", Family: command.FamilyStereo}

	svc, registry := newTestService(t, repo, 3)
	layout := model.Layout{
		Bindings: []model.BindingSpec{
			{Slot: 0, Device: "hall-light", Family: command.FamilyLight},
			{Slot: 1, Device: "den-fan", Family: command.FamilyFanLow},
		},
	}
	if err := svc.Restore(context.Background(), layout); err != nil {
		t.Fatalf("restore: %v", err)
	}

	d, err := registry.Find("den-fan")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if d.State() != "high" {
		t.Fatalf("expected restored high, got %s", d.State())
	}

	view := svc.Layout()
	if view.Slots[0].On != "den-stereo:on" {
		t.Fatalf("persisted binding should win slot 0, got %+v", view.Slots[0])
	}
	if view.Slots[1].On != "den-fan:low" {
		t.Fatalf("layout binding missing on slot 1, got %+v", view.Slots[1])
	}
	if view.Slots[2].On != "noop" {
		t.Fatalf("unbound slot should stay noop, got %+v", view.Slots[2])
	}
}

func TestRestoreSkipsStaleBindings(t *testing.T) {
	repo := newFakeRepo()
	repo.bindings[1] = model.SlotBinding{Slot: 1, Device: "removed-device", Family: command.FamilyLight}
	svc, _ := newTestService(t, repo, 2)
	if err := svc.Restore(context.Background(), model.Layout{}); err != nil {
		t.Fatalf("stale persisted binding should only warn: %v", err)
	}
	if got := svc.Layout().Slots[1].On; got != "noop" {
		t.Fatalf("stale binding must stay unbound, got %s", got)
	}
}

func TestDevicesView(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo(), 1)
	devices := svc.Devices()
	if len(devices) != 3 {
		t.Fatalf("expected 3 devices, got %d", len(devices))
	}
	if devices[0].Name != "hall-light" || devices[0].State != "off" || devices[0].Kind != "light" {
		t.Fatalf("unexpected first device: %+v", devices[0])
	}
}
