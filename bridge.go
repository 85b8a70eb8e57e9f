package serial

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Bridge routes the five logical operations to the backend matching the
// identifier namespace: names starting with VirtualPortPrefix go to the
// Simulator, everything else to the Registry. It is the surface a command
// dispatcher or UI shell talks to; confirmations are human-readable text.
type Bridge struct {
	registry *Registry
	sim      *Simulator
	metrics  *Metrics
	log      zerolog.Logger
}

// New creates a Bridge with a fresh registry and simulator sharing one
// Metrics instance.
func New(log zerolog.Logger) *Bridge {
	m := &Metrics{}
	return &Bridge{
		registry: NewRegistry(log, m),
		sim:      NewSimulator(log, m),
		metrics:  m,
		log:      log.With().Str("component", "bridge").Logger(),
	}
}

// ListPorts enumerates real and virtual ports. It never fails.
func (b *Bridge) ListPorts() []PortInfo {
	return b.registry.List()
}

// OpenPort opens the port named by cfg.PortName and returns a confirmation
// message. Virtual ports ignore the rest of the configuration.
func (b *Bridge) OpenPort(cfg Config) (string, error) {
	if IsVirtualPort(cfg.PortName) {
		b.sim.Open(cfg.PortName)
		return fmt.Sprintf("Virtual port %s opened successfully", cfg.PortName), nil
	}
	if err := b.registry.Open(cfg); err != nil {
		return "", err
	}
	return fmt.Sprintf("Port %s opened successfully", cfg.PortName), nil
}

// ClosePort closes the named port. Closing an unopened virtual port
// succeeds; closing an unopened real port fails with ErrPortNotFound.
func (b *Bridge) ClosePort(name string) (string, error) {
	if IsVirtualPort(name) {
		b.sim.Close(name)
		return fmt.Sprintf("Virtual port %s closed successfully", name), nil
	}
	if err := b.registry.Close(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Port %s closed successfully", name), nil
}

// WriteData writes payload to the named port and reports the accepted byte
// count. With isHex set, payload is decoded as hexadecimal text first; the
// decoding is shared by both backends and fails with ErrInvalidHex before
// any port is touched.
func (b *Bridge) WriteData(name, payload string, isHex bool) (string, error) {
	data := []byte(payload)
	if isHex {
		var err error
		if data, err = DecodeHexPayload(payload); err != nil {
			return "", err
		}
	}

	var (
		n   int
		err error
	)
	if IsVirtualPort(name) {
		n, err = b.sim.Write(name, data, payload)
	} else {
		n, err = b.registry.Write(name, data)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sent %d bytes", n), nil
}

// ReadData reads pending bytes from the named port. The timeout applies to
// real ports only; virtual reads drain instantly. An empty result is not an
// error.
func (b *Bridge) ReadData(name string, timeout time.Duration) ([]byte, error) {
	if IsVirtualPort(name) {
		return b.sim.Read(name)
	}
	return b.registry.Read(name, timeout)
}

// MetricsSnapshot returns current operation counters for both backends.
func (b *Bridge) MetricsSnapshot() Snapshot {
	return b.metrics.Snapshot()
}

// ReadBufferStats exposes the registry's scratch-buffer pool statistics.
func (b *Bridge) ReadBufferStats() PoolStats {
	return b.registry.bufPool.Stats()
}
