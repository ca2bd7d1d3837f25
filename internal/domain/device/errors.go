package device

import "errors"

var (
	// ErrDeviceNotFound indicates a lookup for an unknown device name.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice indicates two devices registered under one name.
	ErrDuplicateDevice = errors.New("device name already registered")
	// ErrUnknownKind indicates a declared kind with no constructor.
	ErrUnknownKind = errors.New("unknown device kind")
)
