package serial

import (
	"time"

	gobug "go.bug.st/serial"
)

// DefaultReadTimeout is the read timeout applied to a real port when it is
// opened. Individual reads override it per call.
const DefaultReadTimeout = 100 * time.Millisecond

// Config holds the parameters used to open a real serial port. Virtual ports
// accept a Config but ignore everything except PortName.
type Config struct {
	// PortName identifies the port, e.g. /dev/ttyUSB0, COM3 or VIRTUAL-COM1.
	PortName string

	BaudRate int
	DataBits int
	StopBits int

	// Parity is one of "None", "Odd" or "Even" (case-sensitive).
	Parity string

	// ReadTimeout is the initial read timeout applied on open. Zero or
	// negative means DefaultReadTimeout.
	ReadTimeout time.Duration
}

// Normalize returns a copy of the configuration with every unrecognized enum
// value replaced by its documented default: 8 data bits, 1 stop bit, no
// parity. This permissive substitution is deliberate; only the strict checks
// in ValidateConfig can reject a configuration.
func (c Config) Normalize() Config {
	if c.DataBits < 5 || c.DataBits > 8 {
		c.DataBits = 8
	}
	if c.StopBits != 1 && c.StopBits != 2 {
		c.StopBits = 1
	}
	switch c.Parity {
	case ParityNameNone, ParityNameOdd, ParityNameEven:
	default:
		c.Parity = ParityNameNone
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	return c
}

// mode builds the go.bug.st port mode for a normalized configuration.
func (c Config) mode() *gobug.Mode {
	return &gobug.Mode{
		BaudRate: c.BaudRate,
		DataBits: NormalizeDataBits(c.DataBits).Int(),
		StopBits: NormalizeStopBits(c.StopBits).Get(),
		Parity:   ParseParity(c.Parity).Get(),
	}
}
