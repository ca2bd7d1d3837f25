// Package command binds devices to reversible instructions. Each command
// carries an explicit name used in slot listings, so diagnostics never
// rely on reflection over concrete types.
package command

// Command is one reversible instruction bound to a device.
type Command interface {
	Execute()
	Undo()
	Name() string
}

// NoOp is the default occupant of unbound slots and of the undo target
// before anything has been triggered.
type NoOp struct{}

// Execute does nothing.
func (NoOp) Execute() {}

// Undo does nothing.
func (NoOp) Undo() {}

// Name returns "noop".
func (NoOp) Name() string { return "noop" }
