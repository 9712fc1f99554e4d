package detect

import (
	"context"
	"fmt"
	"sync"
)

// CameraSource combines a frame source with face and object detectors
// to form a complete detection source for the engine.
//
// Each tick captures one frame and runs both detectors against it.
// The frame is captured during DetectFaces and reused by the
// DetectObjects call of the same tick, so both classifiers see the
// same instant.
type CameraSource struct {
	frames  FrameSource
	faces   FaceDetector
	objects ObjectDetector

	width, height int

	mu        sync.Mutex
	lastFrame []byte
}

// NewCameraSource creates a detection source over a camera and two
// detectors. Width and height describe the captured frames; pass
// (0, 0) if unknown.
func NewCameraSource(frames FrameSource, faces FaceDetector, objects ObjectDetector, width, height int) *CameraSource {
	return &CameraSource{
		frames:  frames,
		faces:   faces,
		objects: objects,
		width:   width,
		height:  height,
	}
}

// Ready reports whether all three collaborators are wired.
func (s *CameraSource) Ready() bool {
	return s.frames != nil && s.faces != nil && s.objects != nil
}

// FrameSize returns the configured frame dimensions.
func (s *CameraSource) FrameSize() (int, int) {
	return s.width, s.height
}

// DetectFaces captures a fresh frame and runs face detection on it.
func (s *CameraSource) DetectFaces(ctx context.Context) ([]Face, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err := s.frames.CaptureJPEG()
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	s.mu.Lock()
	s.lastFrame = frame
	s.mu.Unlock()

	return s.faces.DetectFaces(frame)
}

// DetectObjects runs object detection on the frame captured by the
// preceding DetectFaces call. If face detection never captured a frame
// this tick (for example because the capture itself failed), a fresh
// frame is captured instead.
func (s *CameraSource) DetectObjects(ctx context.Context) ([]Object, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	frame := s.lastFrame
	s.lastFrame = nil
	s.mu.Unlock()

	if frame == nil {
		var err error
		frame, err = s.frames.CaptureJPEG()
		if err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
	}

	return s.objects.DetectObjects(frame)
}

// Close releases both detectors.
func (s *CameraSource) Close() error {
	var first error
	if s.faces != nil {
		if err := s.faces.Close(); err != nil && first == nil {
			first = err
		}
	}
	if s.objects != nil {
		if err := s.objects.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
