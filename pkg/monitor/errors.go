package monitor

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle misuse.
var (
	// ErrAlreadyRunning is returned by Start on a running monitor.
	ErrAlreadyRunning = errors.New("monitor: already running")

	// ErrNotRunning is returned by Stop on an idle monitor.
	ErrNotRunning = errors.New("monitor: not running")

	// ErrSourceNotReady is returned by Start when the detection source
	// reports it cannot be sampled yet.
	ErrSourceNotReady = errors.New("monitor: detection source not ready")

	// ErrTickInFlight is returned by Reset while a tick is being
	// processed. The caller may retry; reset is never interleaved with
	// an in-flight classification.
	ErrTickInFlight = errors.New("monitor: reset rejected, tick in flight")
)

// ConfigError reports an invalid configuration value at construction.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("monitor: invalid config: %s %s", e.Field, e.Reason)
}
