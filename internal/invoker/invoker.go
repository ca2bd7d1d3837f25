// Package invoker holds the remote control: a fixed set of numbered
// slots, each bound to an on/off command pair, with single-level undo.
package invoker

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/micro-ha/remotectl/internal/domain/command"
)

// ErrSlotOutOfRange indicates a slot index outside the fixed capacity.
var ErrSlotOutOfRange = errors.New("slot out of range")

// RemoteControl owns the slot table and the last-executed pointer.
// Triggers are serialized: a multi-state command's Execute is a
// read-then-write on shared device state, so concurrent presses through
// the HTTP surface must not interleave.
type RemoteControl struct {
	mu   sync.Mutex
	on   []command.Command
	off  []command.Command
	last command.Command
}

// New creates a remote with the given capacity. Every slot starts bound
// to NoOp, as does the undo target, so no press ever hits a nil command.
func New(capacity int) *RemoteControl {
	if capacity < 1 {
		capacity = 1
	}
	r := &RemoteControl{
		on:   make([]command.Command, capacity),
		off:  make([]command.Command, capacity),
		last: command.NoOp{},
	}
	for i := 0; i < capacity; i++ {
		r.on[i] = command.NoOp{}
		r.off[i] = command.NoOp{}
	}
	return r
}

// Capacity returns the fixed slot count.
func (r *RemoteControl) Capacity() int { return len(r.on) }

// Bind replaces both commands at a slot. Out-of-range binds fail fast
// and leave the slot table untouched.
func (r *RemoteControl) Bind(slot int, on, off command.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkSlot(slot); err != nil {
		return err
	}
	r.on[slot] = on
	r.off[slot] = off
	return nil
}

// PressOn executes the slot's on command and records it for undo.
func (r *RemoteControl) PressOn(slot int) error {
	return r.press(slot, r.on)
}

// PressOff executes the slot's off command and records it for undo.
func (r *RemoteControl) PressOff(slot int) error {
	return r.press(slot, r.off)
}

// PressUndo re-invokes the recorded command's Undo. Before any trigger
// the recorded command is NoOp, so this is always safe. Undo never
// updates the recorded command, so repeating it re-runs the same undo.
func (r *RemoteControl) PressUndo() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last.Undo()
}

// Describe renders the slot listing with the bound command names.
func (r *RemoteControl) Describe() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	b.WriteString("-- remote control --\n")
	for i := range r.on {
		fmt.Fprintf(&b, "[slot %d] %s / %s\n", i, r.on[i].Name(), r.off[i].Name())
	}
	return b.String()
}

// Slot is one row of the structured slot listing.
type Slot struct {
	Index int    `json:"slot"`
	On    string `json:"on"`
	Off   string `json:"off"`
}

// Slots returns the slot listing as structured data.
func (r *RemoteControl) Slots() []Slot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Slot, len(r.on))
	for i := range r.on {
		out[i] = Slot{Index: i, On: r.on[i].Name(), Off: r.off[i].Name()}
	}
	return out
}

func (r *RemoteControl) press(slot int, table []command.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkSlot(slot); err != nil {
		return err
	}
	cmd := table[slot]
	cmd.Execute()
	r.last = cmd
	return nil
}

func (r *RemoteControl) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.on) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrSlotOutOfRange, slot, len(r.on))
	}
	return nil
}
