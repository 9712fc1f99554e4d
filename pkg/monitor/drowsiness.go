package monitor

import "github.com/examwatch/go-proctor/pkg/detect"

// EARFunc computes an eye-aspect ratio from facial landmarks.
// ok must be false when the landmarks carry no usable eye data.
type EARFunc func(*detect.Landmarks) (ratio float64, ok bool)

// DrowsinessTracker applies temporal hysteresis to eye closure.
//
// Without a face or usable landmarks closure cannot be assessed, so
// the counter resets to zero. A closed frame (EAR below threshold)
// increments the counter; an open frame resets it.
type DrowsinessTracker struct {
	counter      int
	threshold    int
	earThreshold float64
	ear          EARFunc
}

// NewDrowsinessTracker creates a tracker from the session config.
// A nil ear falls back to detect.EAR, the deterministic
// landmark-geometry implementation.
func NewDrowsinessTracker(cfg Config, ear EARFunc) *DrowsinessTracker {
	if ear == nil {
		ear = detect.EAR
	}
	return &DrowsinessTracker{
		threshold:    cfg.DrowsinessFrames,
		earThreshold: cfg.EARThreshold,
		ear:          ear,
	}
}

// Update advances the tracker by one tick and reports whether the
// sustained-closure threshold has been reached.
func (t *DrowsinessTracker) Update(face *detect.Face) bool {
	if face == nil || face.Landmarks == nil {
		t.counter = 0
		return false
	}

	ratio, ok := t.ear(face.Landmarks)
	if !ok {
		t.counter = 0
		return false
	}

	if ratio < t.earThreshold {
		t.counter++
	} else {
		t.counter = 0
	}

	return t.counter >= t.threshold
}

// Counter returns the current hysteresis counter.
func (t *DrowsinessTracker) Counter() int {
	return t.counter
}

// Reset zeroes the hysteresis counter.
func (t *DrowsinessTracker) Reset() {
	t.counter = 0
}
