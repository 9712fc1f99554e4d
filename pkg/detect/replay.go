package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// ReplaySource plays back a fixed sequence of frames. It serves as the
// test double for the engine and lets integrators run the pipeline
// without a camera or OpenCV.
//
// The cursor advances on DetectFaces; the DetectObjects call of the
// same tick sees the same frame, matching the engine's call order.
type ReplaySource struct {
	mu     sync.Mutex
	frames []Frame
	idx    int
	loop   bool
	ready  bool

	width, height int
}

// NewReplaySource creates a replay source over the given frames.
func NewReplaySource(frames []Frame) *ReplaySource {
	return &ReplaySource{
		frames: frames,
		idx:    -1,
		ready:  true,
		width:  640,
		height: 480,
	}
}

// LoadReplayScript reads a JSON array of frames from disk.
func LoadReplayScript(path string) (*ReplaySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect: read script: %w", err)
	}

	var frames []Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("detect: parse script %s: %w", path, err)
	}

	return NewReplaySource(frames), nil
}

// SetLoop makes the source wrap around instead of exhausting.
func (s *ReplaySource) SetLoop(loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop = loop
}

// SetReady overrides the readiness flag, simulating detectors that are
// still warming up.
func (s *ReplaySource) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// SetFrameSize overrides the reported frame dimensions.
func (s *ReplaySource) SetFrameSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

// Ready reports whether the source will serve samples.
func (s *ReplaySource) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// FrameSize returns the configured frame dimensions.
func (s *ReplaySource) FrameSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// DetectFaces advances to the next frame and returns its faces.
func (s *ReplaySource) DetectFaces(ctx context.Context) ([]Face, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotReady
	}

	if s.idx+1 >= len(s.frames) {
		if !s.loop || len(s.frames) == 0 {
			return nil, ErrExhausted
		}
		s.idx = -1
	}
	s.idx++

	return s.frames[s.idx].Faces, nil
}

// DetectObjects returns the objects of the current frame.
func (s *ReplaySource) DetectObjects(ctx context.Context) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotReady
	}

	if s.idx < 0 || s.idx >= len(s.frames) {
		return nil, ErrExhausted
	}

	return s.frames[s.idx].Objects, nil
}

// Remaining returns how many frames have not been played yet.
func (s *ReplaySource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames) - (s.idx + 1)
}
