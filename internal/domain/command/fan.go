package command

import "github.com/micro-ha/remotectl/internal/domain/device"

// FanSpeed moves a ceiling fan to a fixed target level. The fan's level
// is snapshotted when Execute runs, not at construction, so undo always
// restores whatever level the fan actually had before the last call.
type FanSpeed struct {
	fan    *device.CeilingFan
	target device.Speed
	prev   device.Speed
	name   string
}

// NewFanSpeed binds a command that sets the fan to target.
func NewFanSpeed(fan *device.CeilingFan, target device.Speed) *FanSpeed {
	return &FanSpeed{
		fan:    fan,
		target: target,
		name:   fan.Name() + ":" + target.String(),
	}
}

// Execute snapshots the current level, then transitions to the target.
func (c *FanSpeed) Execute() {
	c.prev = c.fan.Speed()
	c.apply(c.target)
}

// Undo transitions back to the snapshotted level.
func (c *FanSpeed) Undo() {
	c.apply(c.prev)
}

// Name returns the bound command name.
func (c *FanSpeed) Name() string { return c.name }

// apply is total over the closed Speed enumeration.
func (c *FanSpeed) apply(speed device.Speed) {
	switch speed {
	case device.SpeedLow:
		c.fan.Low()
	case device.SpeedMedium:
		c.fan.Medium()
	case device.SpeedHigh:
		c.fan.High()
	default:
		c.fan.Off()
	}
}
