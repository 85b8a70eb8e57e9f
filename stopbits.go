package serial

import gobug "go.bug.st/serial"

type StopBits gobug.StopBits

func (sb StopBits) Get() gobug.StopBits {
	return gobug.StopBits(sb)
}

const (
	// StopBits1 represents 1 stop bit
	StopBits1 = StopBits(gobug.OneStopBit)
	// StopBits2 represents 2 stop bits
	StopBits2 = StopBits(gobug.TwoStopBits)
)

// NormalizeStopBits maps an arbitrary stop-bits count to a supported value.
// Anything other than 1 or 2 falls back to StopBits1.
func NormalizeStopBits(v int) StopBits {
	if v == 2 {
		return StopBits2
	}
	return StopBits1
}
