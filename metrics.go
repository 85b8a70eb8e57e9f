package serial

import "go.uber.org/atomic"

// Metrics tracks operation counters for both backends. A single Metrics
// instance is shared by the Registry and the Simulator owned by one Bridge.
type Metrics struct {
	// Real-port lifecycle
	OpenAttempts atomic.Int64
	OpenFailures atomic.Int64
	Closes       atomic.Int64
	OpenPorts    atomic.Int64 // currently open real ports

	// Real-port I/O
	ReadOps      atomic.Int64
	ReadErrors   atomic.Int64
	ReadTimeouts atomic.Int64 // reads that returned no data before the deadline
	BytesRead    atomic.Int64
	WriteOps     atomic.Int64
	WriteErrors  atomic.Int64
	BytesWritten atomic.Int64

	// Simulator
	VirtualOpens  atomic.Int64
	VirtualWrites atomic.Int64
	VirtualReads  atomic.Int64
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	OpenAttempts int64
	OpenFailures int64
	Closes       int64
	OpenPorts    int64

	ReadOps      int64
	ReadErrors   int64
	ReadTimeouts int64
	BytesRead    int64
	WriteOps     int64
	WriteErrors  int64
	BytesWritten int64

	VirtualOpens  int64
	VirtualWrites int64
	VirtualReads  int64
}

// Snapshot returns a consistent-enough view of the counters. Counters are
// read individually, so a snapshot taken during concurrent operations may
// mix values from adjacent instants.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		OpenAttempts: m.OpenAttempts.Load(),
		OpenFailures: m.OpenFailures.Load(),
		Closes:       m.Closes.Load(),
		OpenPorts:    m.OpenPorts.Load(),

		ReadOps:      m.ReadOps.Load(),
		ReadErrors:   m.ReadErrors.Load(),
		ReadTimeouts: m.ReadTimeouts.Load(),
		BytesRead:    m.BytesRead.Load(),
		WriteOps:     m.WriteOps.Load(),
		WriteErrors:  m.WriteErrors.Load(),
		BytesWritten: m.BytesWritten.Load(),

		VirtualOpens:  m.VirtualOpens.Load(),
		VirtualWrites: m.VirtualWrites.Load(),
		VirtualReads:  m.VirtualReads.Load(),
	}
}
