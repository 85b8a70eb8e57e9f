package serial

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// VirtualPortPrefix marks the identifier namespace handled by the Simulator.
// Identifiers without this prefix are treated as real hardware port names.
const VirtualPortPrefix = "VIRTUAL-"

// The three fixed simulated devices, one per reply behavior.
const (
	// VirtualEchoPort buffers write payloads verbatim.
	VirtualEchoPort = "VIRTUAL-COM1"
	// VirtualReplyPort ignores the payload and buffers a canned
	// acknowledgement of the original text.
	VirtualReplyPort = "VIRTUAL-COM2"
	// VirtualRandomPort ignores the payload and buffers a pseudo-random
	// token derived from the wall clock.
	VirtualRandomPort = "VIRTUAL-COM3"
)

// IsVirtualPort reports whether name belongs to the simulator namespace.
func IsVirtualPort(name string) bool {
	return strings.HasPrefix(name, VirtualPortPrefix)
}

func virtualPortInfos() []PortInfo {
	return []PortInfo{
		{Name: VirtualEchoPort, Type: "Virtual Port (Echo)"},
		{Name: VirtualReplyPort, Type: "Virtual Port (Reply)"},
		{Name: VirtualRandomPort, Type: "Virtual Port (Random)"},
	}
}

// Simulator emulates serial devices without hardware. Each open virtual
// identifier owns an unbounded pending-output FIFO that writes append to
// (per variant behavior) and reads drain atomically.
//
// Like the Registry, a single mutex guards the whole map for the duration of
// each operation. No operation blocks on anything but the lock.
type Simulator struct {
	mu      sync.Mutex
	buffers map[string][]byte

	metrics *Metrics
	log     zerolog.Logger

	// now is the clock for the random variant; injectable for tests.
	now func() time.Time
}

// NewSimulator creates a simulator with no open ports.
func NewSimulator(log zerolog.Logger, metrics *Metrics) *Simulator {
	if metrics == nil {
		metrics = &Metrics{}
	}
	return &Simulator{
		buffers: make(map[string][]byte),
		metrics: metrics,
		log:     log.With().Str("component", "simulator").Logger(),
		now:     time.Now,
	}
}

// Open creates an empty pending-output buffer for name. It is idempotent:
// reopening an already-open identifier resets its buffer to empty. Virtual
// ports have no configuration; baud rate, parity and friends are ignored.
func (s *Simulator) Open(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buffers[name] = nil
	s.metrics.VirtualOpens.Add(1)
	s.log.Debug().Str("port", name).Msg("virtual port opened")
}

// Close discards the buffer for name. Closing an identifier that was never
// opened is a no-op, not an error.
func (s *Simulator) Close(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buffers, name)
	s.log.Debug().Str("port", name).Msg("virtual port closed")
}

// Write appends to the pending-output buffer of name according to its
// variant: the echo port appends payload verbatim, the reply port appends
// "Received: " plus the original text form, and the random port appends
// "Random-" plus the wall clock in milliseconds modulo 10000. Two random
// writes within the same millisecond may buffer identical text; that is
// accepted nondeterminism.
//
// The returned count is always the number of payload bytes the caller
// submitted, even for variants that buffer different content: it means
// "bytes accepted", not "bytes buffered".
func (s *Simulator) Write(name string, payload []byte, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[name]
	if !ok {
		return 0, fmt.Errorf("virtual port %s: %w", name, ErrPortNotFound)
	}

	switch name {
	case VirtualEchoPort:
		buf = append(buf, payload...)
	case VirtualReplyPort:
		buf = append(buf, "Received: "+text...)
	case VirtualRandomPort:
		buf = append(buf, fmt.Sprintf("Random-%d", s.now().UnixMilli()%10000)...)
	}
	s.buffers[name] = buf

	s.metrics.VirtualWrites.Add(1)
	return len(payload), nil
}

// Read returns the entire pending-output buffer of name and atomically
// empties it. There are no partial reads and no timeout: a virtual read is
// instantaneous, and an empty buffer yields an empty slice.
func (s *Simulator) Read(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[name]
	if !ok {
		return nil, fmt.Errorf("virtual port %s: %w", name, ErrPortNotFound)
	}
	if len(buf) == 0 {
		return []byte{}, nil
	}
	s.buffers[name] = nil

	s.metrics.VirtualReads.Add(1)
	return buf, nil
}
