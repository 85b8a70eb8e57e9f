package serial

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Registry owns all currently-open real serial port handles, keyed by
// identifier. It is plain injectable state: construct one per application
// (or per test) with NewRegistry.
//
// A single mutex guards the map and is held for the full duration of every
// operation, including the underlying OS call. A slow read or write on one
// port therefore serializes access to every other port. The contract this
// must preserve is at most one reader or writer per port at a time; the
// coarse lock satisfies it trivially.
type Registry struct {
	mu    sync.Mutex
	ports map[string]portHandle

	bufPool *BufferPool
	metrics *Metrics
	log     zerolog.Logger
}

// NewRegistry creates an empty registry. A nil metrics installs a private,
// unexported instance so callers never need to nil-check.
func NewRegistry(log zerolog.Logger, metrics *Metrics) *Registry {
	if metrics == nil {
		metrics = &Metrics{}
	}
	return &Registry{
		ports:   make(map[string]portHandle),
		bufPool: NewBufferPool(readBufferSize),
		metrics: metrics,
		log:     log.With().Str("component", "registry").Logger(),
	}
}

// Open validates and normalizes the configuration, opens the OS resource and
// stores the handle under cfg.PortName. Opening an identifier that is
// already open replaces the prior entry; the replaced handle is explicitly
// closed so the old descriptor does not leak. On failure the registry is not
// mutated.
func (r *Registry) Open(cfg Config) error {
	if err := ValidateConfig(cfg); err != nil {
		r.metrics.OpenFailures.Add(1)
		return err
	}
	cfg = cfg.Normalize()

	// High-numbered Windows identifiers need the extended-path form, but
	// only for the OS call; the map key stays as given.
	path := normalizePortPath(cfg.PortName)

	r.metrics.OpenAttempts.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()

	h, err := openPort(path, cfg.mode())
	if err != nil {
		r.metrics.OpenFailures.Add(1)
		return fmt.Errorf("opening port %s: %w", cfg.PortName, err)
	}
	if err := h.SetReadTimeout(cfg.ReadTimeout); err != nil {
		// The handle is unusable without a working timeout; release it and
		// leave the registry untouched.
		cerr := h.Close()
		r.metrics.OpenFailures.Add(1)
		return fmt.Errorf("setting read timeout on %s: %w", cfg.PortName, errors.Join(err, cerr))
	}

	if old, ok := r.ports[cfg.PortName]; ok {
		if cerr := old.Close(); cerr != nil {
			r.log.Warn().Err(cerr).Str("port", cfg.PortName).Msg("closing replaced handle")
		}
	} else {
		r.metrics.OpenPorts.Add(1)
	}
	r.ports[cfg.PortName] = h

	r.log.Info().
		Str("port", cfg.PortName).
		Int("baud", cfg.BaudRate).
		Int("data_bits", cfg.DataBits).
		Int("stop_bits", cfg.StopBits).
		Str("parity", cfg.Parity).
		Msg("port opened")
	return nil
}

// Close removes the handle for name and releases its OS resources. Closing
// an identifier that is not open returns ErrPortNotFound.
func (r *Registry) Close(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.ports[name]
	if !ok {
		return fmt.Errorf("port %s: %w", name, ErrPortNotFound)
	}
	delete(r.ports, name)
	r.metrics.Closes.Add(1)
	r.metrics.OpenPorts.Add(-1)

	if err := h.Close(); err != nil {
		return fmt.Errorf("closing port %s: %w", name, err)
	}
	r.log.Info().Str("port", name).Msg("port closed")
	return nil
}

// Write writes all of data to the named port, blocking until every byte is
// accepted or the OS reports an error. It returns the number of bytes
// written.
func (r *Registry) Write(name string, data []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.ports[name]
	if !ok {
		r.metrics.WriteErrors.Add(1)
		return 0, fmt.Errorf("port %s: %w", name, ErrPortNotFound)
	}

	r.metrics.WriteOps.Add(1)

	written := 0
	for written < len(data) {
		n, err := h.Write(data[written:])
		if err != nil {
			r.metrics.WriteErrors.Add(1)
			return written, fmt.Errorf("writing to %s: %w", name, err)
		}
		written += n
		if n == 0 {
			// Prevent spinning if the driver accepts nothing.
			break
		}
	}
	if written < len(data) {
		r.metrics.WriteErrors.Add(1)
		return written, fmt.Errorf("writing to %s: partial write of %d/%d bytes", name, written, len(data))
	}

	r.metrics.BytesWritten.Add(int64(written))
	return written, nil
}

// Read sets the per-call read timeout on the named port, then attempts a
// single read of up to readBufferSize bytes. It returns the bytes actually
// read, which may be empty: a timeout with no data is a successful empty
// result, not an error.
func (r *Registry) Read(name string, timeout time.Duration) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.ports[name]
	if !ok {
		r.metrics.ReadErrors.Add(1)
		return nil, fmt.Errorf("port %s: %w", name, ErrPortNotFound)
	}

	if err := h.SetReadTimeout(timeout); err != nil {
		r.metrics.ReadErrors.Add(1)
		return nil, fmt.Errorf("setting read timeout on %s: %w", name, err)
	}

	r.metrics.ReadOps.Add(1)

	buf := r.bufPool.Get()
	defer r.bufPool.Put(buf)

	n, err := h.Read(buf)
	if err != nil {
		if isTimeout(err) {
			r.metrics.ReadTimeouts.Add(1)
			return []byte{}, nil
		}
		r.metrics.ReadErrors.Add(1)
		return nil, fmt.Errorf("reading from %s: %w", name, err)
	}
	if n == 0 {
		// go.bug.st/serial reports an elapsed read timeout as a zero-byte
		// read with a nil error.
		r.metrics.ReadTimeouts.Add(1)
		return []byte{}, nil
	}

	out := make([]byte, n)
	copy(out, buf[:n])
	r.metrics.BytesRead.Add(int64(n))
	return out, nil
}

// isTimeout reports whether err is a deadline-style failure from a transport
// whose handles surface timeouts as errors instead of zero-byte reads.
func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
