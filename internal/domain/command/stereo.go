package command

import "github.com/micro-ha/remotectl/internal/domain/device"

const defaultStereoVolume = 11

// StereoOnWithCD powers the stereo on, selects CD and sets a default
// volume as a single instruction.
type StereoOnWithCD struct {
	stereo *device.Stereo
	name   string
}

// NewStereoOnWithCD binds the on-with-CD command to a stereo.
func NewStereoOnWithCD(stereo *device.Stereo) *StereoOnWithCD {
	return &StereoOnWithCD{stereo: stereo, name: stereo.Name() + ":on"}
}

// Execute powers on, selects CD, sets the default volume.
func (c *StereoOnWithCD) Execute() {
	c.stereo.On()
	c.stereo.SetCD()
	c.stereo.SetVolume(defaultStereoVolume)
}

// Undo powers the stereo off.
func (c *StereoOnWithCD) Undo() { c.stereo.Off() }

// Name returns the bound command name.
func (c *StereoOnWithCD) Name() string { return c.name }

// StereoOff powers a stereo off.
type StereoOff struct {
	stereo *device.Stereo
	name   string
}

// NewStereoOff binds an off command to a stereo.
func NewStereoOff(stereo *device.Stereo) *StereoOff {
	return &StereoOff{stereo: stereo, name: stereo.Name() + ":off"}
}

// Execute powers the stereo off.
func (c *StereoOff) Execute() { c.stereo.Off() }

// Undo powers the stereo back on.
func (c *StereoOff) Undo() { c.stereo.On() }

// Name returns the bound command name.
func (c *StereoOff) Name() string { return c.name }
