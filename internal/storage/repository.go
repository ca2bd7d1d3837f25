package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/micro-ha/remotectl/internal/model"
)

// UpsertBinding stores or replaces one slot binding.
func (r *Repository) UpsertBinding(ctx context.Context, binding model.SlotBinding) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO slot_bindings (slot, device_name, family, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
			device_name = excluded.device_name,
			family = excluded.family,
			updated_at = excluded.updated_at;`,
		binding.Slot, binding.Device, binding.Family, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("upsert binding for slot %d: %w", binding.Slot, err)
	}
	return nil
}

// ListBindings returns all persisted slot bindings ordered by slot.
func (r *Repository) ListBindings(ctx context.Context) ([]model.SlotBinding, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot, device_name, family, updated_at FROM slot_bindings ORDER BY slot;`)
	if err != nil {
		return nil, fmt.Errorf("list bindings: %w", err)
	}
	defer rows.Close()

	var out []model.SlotBinding
	for rows.Next() {
		var binding model.SlotBinding
		var updatedAt string
		if err := rows.Scan(&binding.Slot, &binding.Device, &binding.Family, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan binding: %w", err)
		}
		binding.UpdatedAt = parseTime(updatedAt)
		out = append(out, binding)
	}
	return out, rows.Err()
}

// UpsertDeviceStates stores the current state of every given device.
func (r *Repository) UpsertDeviceStates(ctx context.Context, states []model.DeviceState) error {
	if len(states) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin state upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := formatTime(time.Now())
	for _, state := range states {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO device_states (name, kind, state, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET
				kind = excluded.kind,
				state = excluded.state,
				updated_at = excluded.updated_at;`,
			state.Name, state.Kind, state.State, now,
		); err != nil {
			return fmt.Errorf("upsert state for %q: %w", state.Name, err)
		}
	}
	return tx.Commit()
}

// ListDeviceStates returns all persisted device states by name.
func (r *Repository) ListDeviceStates(ctx context.Context) (map[string]model.DeviceState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, kind, state, updated_at FROM device_states;`)
	if err != nil {
		return nil, fmt.Errorf("list device states: %w", err)
	}
	defer rows.Close()

	out := map[string]model.DeviceState{}
	for rows.Next() {
		var state model.DeviceState
		var updatedAt string
		if err := rows.Scan(&state.Name, &state.Kind, &state.State, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan device state: %w", err)
		}
		state.UpdatedAt = parseTime(updatedAt)
		out[state.Name] = state
	}
	return out, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
