package monitor

import (
	"math"

	"github.com/examwatch/go-proctor/pkg/detect"
)

// FocusTracker applies temporal hysteresis to face-center drift.
// Only the primary face's bounding-box center is used; no true gaze
// vector is required.
//
// The counter increments when no face is visible or the face center
// drifts beyond the threshold radius, and decays by one otherwise.
// Decay rather than reset tolerates brief recoveries.
type FocusTracker struct {
	counter       int
	threshold     int
	driftFraction float64
}

// NewFocusTracker creates a tracker from the session config.
func NewFocusTracker(cfg Config) *FocusTracker {
	return &FocusTracker{
		threshold:     cfg.FocusLostFrames,
		driftFraction: cfg.FocusDriftFraction,
	}
}

// Update advances the tracker by one tick and reports whether the
// sustained-loss threshold has been reached. Frame dimensions must be
// the dimensions of the frame the face was detected in.
func (t *FocusTracker) Update(face *detect.Face, frameWidth, frameHeight int) bool {
	if face == nil {
		t.counter++
		return t.counter >= t.threshold
	}

	mid := detect.Point{X: float64(frameWidth) / 2, Y: float64(frameHeight) / 2}
	short := math.Min(float64(frameWidth), float64(frameHeight))

	if face.Center().Dist(mid) > short*t.driftFraction {
		t.counter++
	} else if t.counter > 0 {
		t.counter--
	}

	return t.counter >= t.threshold
}

// Counter returns the current hysteresis counter.
func (t *FocusTracker) Counter() int {
	return t.counter
}

// Reset zeroes the hysteresis counter.
func (t *FocusTracker) Reset() {
	t.counter = 0
}
