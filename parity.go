package serial

import (
	gobug "go.bug.st/serial"
)

type Parity gobug.Parity

func (pa Parity) Get() gobug.Parity {
	return gobug.Parity(pa)
}

const (
	// ParityNone represents no parity bit
	ParityNone = Parity(gobug.NoParity)
	// ParityOdd represents odd parity bit
	ParityOdd = Parity(gobug.OddParity)
	// ParityEven represents even parity bit
	ParityEven = Parity(gobug.EvenParity)
)

// Parity names accepted in Config.Parity. Matching is case-sensitive.
const (
	ParityNameNone = "None"
	ParityNameOdd  = "Odd"
	ParityNameEven = "Even"
)

// ParseParity maps a parity name to its port mode value. Unrecognized names
// fall back to ParityNone rather than erroring.
func ParseParity(name string) Parity {
	switch name {
	case ParityNameOdd:
		return ParityOdd
	case ParityNameEven:
		return ParityEven
	default:
		return ParityNone
	}
}
