package detect

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Webcam captures JPEG frames from a local camera device via OpenCV.
type Webcam struct {
	mu      sync.Mutex
	capture *gocv.VideoCapture
	mat     gocv.Mat

	width, height int
}

// OpenWebcam opens the camera device with the given ID (0 is the
// system default camera).
func OpenWebcam(deviceID int) (*Webcam, error) {
	capture, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("detect: open camera %d: %w", deviceID, err)
	}

	return &Webcam{
		capture: capture,
		mat:     gocv.NewMat(),
		width:   int(capture.Get(gocv.VideoCaptureFrameWidth)),
		height:  int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}, nil
}

// FrameSize returns the camera's frame dimensions in pixels.
func (w *Webcam) FrameSize() (int, int) {
	return w.width, w.height
}

// CaptureJPEG grabs one frame and encodes it as JPEG.
func (w *Webcam) CaptureJPEG() ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.capture.Read(&w.mat) || w.mat.Empty() {
		return nil, ErrEmptyImage
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, w.mat)
	if err != nil {
		return nil, fmt.Errorf("detect: encode frame: %w", err)
	}
	defer buf.Close()

	// Copy out: the buffer is backed by C memory
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}

// Close releases the camera.
func (w *Webcam) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mat.Close()
	return w.capture.Close()
}
