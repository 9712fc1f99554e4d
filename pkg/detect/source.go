package detect

import "context"

// FrameSource captures JPEG frames from a camera.
type FrameSource interface {
	CaptureJPEG() ([]byte, error)
}

// FaceDetector finds faces in a JPEG image.
type FaceDetector interface {
	DetectFaces(jpeg []byte) ([]Face, error)
	Close() error
}

// ObjectDetector finds objects in a JPEG image.
type ObjectDetector interface {
	DetectObjects(jpeg []byte) ([]Object, error)
	Close() error
}

// Source produces detections for the monitoring engine, one sample per
// tick. The engine calls DetectFaces then DetectObjects exactly once
// per tick, in that order; implementations may rely on this to serve
// both calls from the same sample.
type Source interface {
	// Ready reports whether the source can be sampled.
	// When false the engine skips the whole tick.
	Ready() bool

	DetectFaces(ctx context.Context) ([]Face, error)
	DetectObjects(ctx context.Context) ([]Object, error)

	// FrameSize returns the dimensions of captured frames in pixels.
	// Implementations that do not know return (0, 0) and the engine
	// falls back to its configured default.
	FrameSize() (width, height int)
}
