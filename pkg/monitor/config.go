package monitor

import "time"

// Fallback frame dimensions used when the detection source does not
// report its frame size. Callers should supply real dimensions; this
// default exists so drift math stays well-defined, not to be relied on.
const (
	FallbackFrameWidth  = 640
	FallbackFrameHeight = 480
)

// Config holds all tunable parameters for a monitoring session.
type Config struct {
	// Hysteresis
	FocusLostFrames  int // consecutive-ish drift ticks before focus loss fires
	DrowsinessFrames int // consecutive closed-eye ticks before drowsiness fires

	// Thresholds
	FocusDriftFraction float64 // drift > min(w,h) * fraction counts as off-center
	EARThreshold       float64 // eye-aspect ratio below this counts as closed

	// Timing
	TickInterval time.Duration // how often to sample the detectors

	// Fallback frame dimensions, used only when the source reports (0, 0)
	FrameWidth  int
	FrameHeight int
}

// DefaultConfig returns the recommended configuration.
func DefaultConfig() Config {
	return Config{
		FocusLostFrames:    35,  // ~10.5s of drift at the default tick rate
		DrowsinessFrames:   15,  // ~4.5s of eye closure
		FocusDriftFraction: 0.25,
		EARThreshold:       0.2,
		TickInterval:       300 * time.Millisecond,
		FrameWidth:         FallbackFrameWidth,
		FrameHeight:        FallbackFrameHeight,
	}
}

// StrictConfig returns a configuration that flags violations sooner.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.FocusLostFrames = 20
	cfg.DrowsinessFrames = 10
	cfg.TickInterval = 200 * time.Millisecond
	return cfg
}

// RelaxedConfig returns a configuration that tolerates more noise.
func RelaxedConfig() Config {
	cfg := DefaultConfig()
	cfg.FocusLostFrames = 50
	cfg.DrowsinessFrames = 25
	cfg.FocusDriftFraction = 0.3
	cfg.TickInterval = 500 * time.Millisecond
	return cfg
}

// Validate rejects configurations that would break the engine at
// runtime. Called at construction so bad values fail fast.
func (c Config) Validate() error {
	switch {
	case c.FocusLostFrames <= 0:
		return &ConfigError{Field: "FocusLostFrames", Reason: "must be positive"}
	case c.DrowsinessFrames <= 0:
		return &ConfigError{Field: "DrowsinessFrames", Reason: "must be positive"}
	case c.FocusDriftFraction <= 0:
		return &ConfigError{Field: "FocusDriftFraction", Reason: "must be positive"}
	case c.EARThreshold <= 0:
		return &ConfigError{Field: "EARThreshold", Reason: "must be positive"}
	case c.TickInterval <= 0:
		return &ConfigError{Field: "TickInterval", Reason: "must be positive"}
	case c.FrameWidth <= 0 || c.FrameHeight <= 0:
		return &ConfigError{Field: "FrameWidth/FrameHeight", Reason: "must be positive"}
	}
	return nil
}
