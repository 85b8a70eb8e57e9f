package serial

import "errors"

var (
	// ErrPortNotFound indicates an operation targeted an identifier with no
	// corresponding open entry in either backend.
	ErrPortNotFound = errors.New("serial: port not found")

	// ErrInvalidHex indicates a write payload flagged as hexadecimal text
	// could not be decoded.
	ErrInvalidHex = errors.New("serial: invalid hex payload")

	// ErrInvalidConfig indicates a port configuration failed the strict
	// checks (missing name, non-positive baud rate). Unrecognized enum
	// values do not produce this error; see Config.Normalize.
	ErrInvalidConfig = errors.New("serial: invalid configuration")
)
