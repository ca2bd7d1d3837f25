package command

import "github.com/micro-ha/remotectl/internal/domain/device"

// LightOn switches a light on; its undo is the static complement since
// a light has only two states.
type LightOn struct {
	light *device.Light
	name  string
}

// NewLightOn binds an on command to a light.
func NewLightOn(light *device.Light) *LightOn {
	return &LightOn{light: light, name: light.Name() + ":on"}
}

// Execute switches the light on.
func (c *LightOn) Execute() { c.light.On() }

// Undo switches the light off.
func (c *LightOn) Undo() { c.light.Off() }

// Name returns the bound command name.
func (c *LightOn) Name() string { return c.name }

// LightOff switches a light off.
type LightOff struct {
	light *device.Light
	name  string
}

// NewLightOff binds an off command to a light.
func NewLightOff(light *device.Light) *LightOff {
	return &LightOff{light: light, name: light.Name() + ":off"}
}

// Execute switches the light off.
func (c *LightOff) Execute() { c.light.Off() }

// Undo switches the light on.
func (c *LightOff) Undo() { c.light.On() }

// Name returns the bound command name.
func (c *LightOff) Name() string { return c.name }
