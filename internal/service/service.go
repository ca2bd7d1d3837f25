// Package service ties the device registry, command factory, remote
// control and persistence into the control surface used by HTTP
// handlers.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/micro-ha/remotectl/internal/domain/command"
	"github.com/micro-ha/remotectl/internal/domain/device"
	"github.com/micro-ha/remotectl/internal/invoker"
	"github.com/micro-ha/remotectl/internal/model"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	UpsertBinding(ctx context.Context, binding model.SlotBinding) error
	ListBindings(ctx context.Context) ([]model.SlotBinding, error)
	UpsertDeviceStates(ctx context.Context, states []model.DeviceState) error
	ListDeviceStates(ctx context.Context) (map[string]model.DeviceState, error)
}

// Service drives the remote control and keeps wiring and device state
// persisted across restarts. The undo pointer itself is deliberately
// in-memory only.
type Service struct {
	registry *device.Registry
	remote   *invoker.RemoteControl
	repo     Repository
	logger   *slog.Logger
}

// New creates the control service with explicit dependencies.
func New(registry *device.Registry, remote *invoker.RemoteControl, repo Repository, logger *slog.Logger) *Service {
	return &Service{registry: registry, remote: remote, repo: repo, logger: logger}
}

// Restore applies persisted device states, then layout bindings, then
// persisted bindings. Persisted bindings win over the layout file so a
// rebind survives a restart even when the layout still declares the
// old wiring.
func (s *Service) Restore(ctx context.Context, layout model.Layout) error {
	persisted, err := s.repo.ListDeviceStates(ctx)
	if err != nil {
		return fmt.Errorf("load device states: %w", err)
	}
	states := make(map[string]string, len(persisted))
	for name, row := range persisted {
		states[name] = row.State
	}
	if err := s.registry.RestoreStates(states); err != nil {
		return fmt.Errorf("restore device states: %w", err)
	}

	for _, binding := range layout.Bindings {
		if err := s.bind(binding.Slot, binding.Device, binding.Family); err != nil {
			return fmt.Errorf("apply layout binding: %w", err)
		}
	}

	bindings, err := s.repo.ListBindings(ctx)
	if err != nil {
		return fmt.Errorf("load bindings: %w", err)
	}
	for _, binding := range bindings {
		if err := s.bind(binding.Slot, binding.Device, binding.Family); err != nil {
			s.logger.Warn(
				"skipping stale persisted binding",
				"slot", binding.Slot,
				"device", binding.Device,
				"family", binding.Family,
				"err", err,
			)
		}
	}
	return nil
}

// BindSlot builds the family's on/off pair for a device and binds it,
// persisting the new wiring.
func (s *Service) BindSlot(ctx context.Context, slot int, deviceName, family string) error {
	if err := s.bind(slot, deviceName, family); err != nil {
		return err
	}
	if err := s.repo.UpsertBinding(ctx, model.SlotBinding{Slot: slot, Device: deviceName, Family: family}); err != nil {
		return err
	}
	s.logger.Info("slot bound", "slot", slot, "device", deviceName, "family", family)
	return nil
}

// PressOn triggers the slot's on command and persists resulting states.
func (s *Service) PressOn(ctx context.Context, slot int) error {
	if err := s.remote.PressOn(slot); err != nil {
		return err
	}
	return s.persistStates(ctx)
}

// PressOff triggers the slot's off command and persists resulting states.
func (s *Service) PressOff(ctx context.Context, slot int) error {
	if err := s.remote.PressOff(slot); err != nil {
		return err
	}
	return s.persistStates(ctx)
}

// Undo reverses the last triggered command and persists resulting states.
func (s *Service) Undo(ctx context.Context) error {
	s.remote.PressUndo()
	return s.persistStates(ctx)
}

// LayoutView is the structured slot listing returned by the API.
type LayoutView struct {
	Capacity    int            `json:"capacity"`
	Slots       []invoker.Slot `json:"slots"`
	Description string         `json:"description"`
}

// Layout returns the current slot listing.
func (s *Service) Layout() LayoutView {
	return LayoutView{
		Capacity:    s.remote.Capacity(),
		Slots:       s.remote.Slots(),
		Description: s.remote.Describe(),
	}
}

// DeviceView is one device with its current state.
type DeviceView struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	State string `json:"state"`
}

// Devices returns all registered devices with current state.
func (s *Service) Devices() []DeviceView {
	devices := s.registry.List()
	out := make([]DeviceView, 0, len(devices))
	for _, d := range devices {
		out = append(out, DeviceView{
			Name:  d.Name(),
			Kind:  string(d.Kind()),
			Label: d.Label(),
			State: d.State(),
		})
	}
	return out
}

func (s *Service) bind(slot int, deviceName, family string) error {
	dev, err := s.registry.Find(deviceName)
	if err != nil {
		return err
	}
	on, off, err := command.ForDevice(family, dev)
	if err != nil {
		return err
	}
	return s.remote.Bind(slot, on, off)
}

func (s *Service) persistStates(ctx context.Context) error {
	devices := s.registry.List()
	states := make([]model.DeviceState, 0, len(devices))
	for _, d := range devices {
		states = append(states, model.DeviceState{
			Name:  d.Name(),
			Kind:  string(d.Kind()),
			State: d.State(),
		})
	}
	return s.repo.UpsertDeviceStates(ctx, states)
}
