package detect

import "errors"

// Sentinel errors for the detect package.
var (
	// ErrModelNotFound indicates the model file does not exist on disk.
	ErrModelNotFound = errors.New("detect: model file not found")

	// ErrModelLoad indicates the model file exists but could not be loaded.
	ErrModelLoad = errors.New("detect: failed to load model")

	// ErrEmptyImage indicates the captured image decoded to nothing.
	ErrEmptyImage = errors.New("detect: empty image")

	// ErrNotReady indicates the source's detectors are not ready yet.
	ErrNotReady = errors.New("detect: source not ready")

	// ErrExhausted indicates a replay source has no frames left.
	ErrExhausted = errors.New("detect: replay script exhausted")
)
