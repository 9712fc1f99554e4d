package monitor

import (
	"testing"

	"github.com/examwatch/go-proctor/pkg/detect"
)

// centeredFace returns a face whose center sits exactly at the frame center.
func centeredFace(w, h float64) *detect.Face {
	return &detect.Face{Box: detect.Rect{X: w/2 - 40, Y: h/2 - 40, W: 80, H: 80}, Confidence: 0.9}
}

// driftedFace returns a face far off-center (top-left corner).
func driftedFace() *detect.Face {
	return &detect.Face{Box: detect.Rect{X: 0, Y: 0, W: 40, H: 40}, Confidence: 0.9}
}

func TestFocusTracker_NoFaceIncrements(t *testing.T) {
	tracker := NewFocusTracker(DefaultConfig())

	for i := 0; i < 10; i++ {
		tracker.Update(nil, 640, 480)
	}
	if tracker.Counter() != 10 {
		t.Errorf("Counter after 10 no-face ticks: got %d, want 10", tracker.Counter())
	}
}

func TestFocusTracker_ThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()
	tracker := NewFocusTracker(cfg)

	for i := 1; i < cfg.FocusLostFrames; i++ {
		if tracker.Update(nil, 640, 480) {
			t.Fatalf("tracker fired at counter %d, threshold is %d", i, cfg.FocusLostFrames)
		}
	}

	// The very tick the counter reaches the threshold it must fire.
	if !tracker.Update(nil, 640, 480) {
		t.Errorf("tracker did not fire at counter %d", cfg.FocusLostFrames)
	}
}

func TestFocusTracker_DriftCounts(t *testing.T) {
	tracker := NewFocusTracker(DefaultConfig())

	tracker.Update(driftedFace(), 640, 480)
	if tracker.Counter() != 1 {
		t.Errorf("Counter after drifted face: got %d, want 1", tracker.Counter())
	}
}

func TestFocusTracker_CenteredDecays(t *testing.T) {
	tracker := NewFocusTracker(DefaultConfig())

	// Build up some drift, then recover
	for i := 0; i < 5; i++ {
		tracker.Update(nil, 640, 480)
	}
	tracker.Update(centeredFace(640, 480), 640, 480)

	// Decay, not reset: one centered tick removes one count
	if tracker.Counter() != 4 {
		t.Errorf("Counter after recovery tick: got %d, want 4", tracker.Counter())
	}
}

func TestFocusTracker_CounterNeverNegative(t *testing.T) {
	tracker := NewFocusTracker(DefaultConfig())

	for i := 0; i < 20; i++ {
		tracker.Update(centeredFace(640, 480), 640, 480)
		if tracker.Counter() < 0 {
			t.Fatalf("Counter went negative: %d", tracker.Counter())
		}
	}
	if tracker.Counter() != 0 {
		t.Errorf("Counter after centered-only ticks: got %d, want 0", tracker.Counter())
	}
}

func TestFocusTracker_DriftThresholdScalesWithFrame(t *testing.T) {
	tracker := NewFocusTracker(DefaultConfig())

	// Face center at (200, 240) in a 640x480 frame: distance from
	// center (320, 240) is 120, threshold is 480/4 = 120. Not beyond
	// the threshold, so this counts as centered.
	face := &detect.Face{Box: detect.Rect{X: 160, Y: 200, W: 80, H: 80}}
	tracker.Update(face, 640, 480)
	if tracker.Counter() != 0 {
		t.Errorf("drift exactly at threshold should decay, counter: %d", tracker.Counter())
	}

	// The same face in a smaller frame drifts proportionally further.
	tracker.Update(face, 320, 240)
	if tracker.Counter() != 1 {
		t.Errorf("drift beyond threshold in small frame, counter: got %d, want 1", tracker.Counter())
	}
}

func TestFocusTracker_Reset(t *testing.T) {
	tracker := NewFocusTracker(DefaultConfig())
	for i := 0; i < 7; i++ {
		tracker.Update(nil, 640, 480)
	}
	tracker.Reset()
	if tracker.Counter() != 0 {
		t.Errorf("Counter after reset: got %d, want 0", tracker.Counter())
	}
}
