package command

import "github.com/micro-ha/remotectl/internal/domain/device"

// GarageDoorUp opens a garage door.
type GarageDoorUp struct {
	door *device.GarageDoor
	name string
}

// NewGarageDoorUp binds an up command to a garage door.
func NewGarageDoorUp(door *device.GarageDoor) *GarageDoorUp {
	return &GarageDoorUp{door: door, name: door.Name() + ":up"}
}

// Execute opens the door.
func (c *GarageDoorUp) Execute() { c.door.Up() }

// Undo closes the door.
func (c *GarageDoorUp) Undo() { c.door.Down() }

// Name returns the bound command name.
func (c *GarageDoorUp) Name() string { return c.name }

// GarageDoorDown closes a garage door.
type GarageDoorDown struct {
	door *device.GarageDoor
	name string
}

// NewGarageDoorDown binds a down command to a garage door.
func NewGarageDoorDown(door *device.GarageDoor) *GarageDoorDown {
	return &GarageDoorDown{door: door, name: door.Name() + ":down"}
}

// Execute closes the door.
func (c *GarageDoorDown) Execute() { c.door.Down() }

// Undo opens the door.
func (c *GarageDoorDown) Undo() { c.door.Up() }

// Name returns the bound command name.
func (c *GarageDoorDown) Name() string { return c.name }
