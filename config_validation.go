package serial

import "fmt"

// ValidateConfig checks the strict requirements of a port configuration.
// Unlike the enum fields, which silently fall back to defaults (see
// Config.Normalize), a missing port name or a non-positive baud rate is a
// caller error and is rejected.
func ValidateConfig(cfg Config) error {
	if cfg.PortName == "" {
		return fmt.Errorf("%w: missing port name", ErrInvalidConfig)
	}
	if cfg.BaudRate <= 0 {
		return fmt.Errorf("%w: baud rate must be positive, got %d", ErrInvalidConfig, cfg.BaudRate)
	}
	return nil
}
