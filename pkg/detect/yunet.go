package detect

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// YuNetConfig holds YuNet face detector configuration.
type YuNetConfig struct {
	ModelPath        string
	ConfidenceThresh float64
	InputWidth       int
	InputHeight      int
}

// DefaultYuNetConfig returns production defaults for YuNet.
func DefaultYuNetConfig() YuNetConfig {
	return YuNetConfig{
		ModelPath:        "models/face_detection_yunet.onnx",
		ConfidenceThresh: 0.5,
		InputWidth:       320,
		InputHeight:      320,
	}
}

// YuNetFaceDetector uses OpenCV's FaceDetectorYN for face detection.
//
// YuNet reports a bounding box plus 5 coarse landmarks (eye centers,
// nose tip, mouth corners). Eye centers alone cannot support
// aspect-ratio math, so Landmarks.LeftEye/RightEye are left nil and
// downstream drowsiness tracking stays inactive with this backend.
type YuNetFaceDetector struct {
	detector gocv.FaceDetectorYN
	config   YuNetConfig
	mu       sync.Mutex // Protects inference
}

// NewYuNet creates a YuNet face detector from an ONNX model on disk.
func NewYuNet(cfg YuNetConfig) (*YuNetFaceDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.ModelPath)
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"", // No config file needed for ONNX
		image.Pt(cfg.InputWidth, cfg.InputHeight),
		float32(cfg.ConfidenceThresh),
		0.3,  // NMS threshold
		5000, // Top K
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	return &YuNetFaceDetector{
		detector: detector,
		config:   cfg,
	}, nil
}

// DetectFaces finds faces in the JPEG image.
func (d *YuNetFaceDetector) DetectFaces(jpeg []byte) ([]Face, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	img, err := gocv.IMDecode(jpeg, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer img.Close()

	if img.Empty() {
		return nil, ErrEmptyImage
	}

	// Update detector input size to match image
	d.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))

	faces := gocv.NewMat()
	defer faces.Close()

	d.detector.Detect(img, &faces)

	// YuNet output format (15 columns):
	// 0-3: x, y, w, h (bounding box in pixels)
	// 4-13: 5 facial landmarks (x,y pairs): right eye, left eye,
	//       nose tip, right mouth corner, left mouth corner
	// 14: face score
	var result []Face
	for r := 0; r < faces.Rows(); r++ {
		box := Rect{
			X: float64(faces.GetFloatAt(r, 0)),
			Y: float64(faces.GetFloatAt(r, 1)),
			W: float64(faces.GetFloatAt(r, 2)),
			H: float64(faces.GetFloatAt(r, 3)),
		}
		lm := &Landmarks{
			Nose: Point{
				X: float64(faces.GetFloatAt(r, 8)),
				Y: float64(faces.GetFloatAt(r, 9)),
			},
		}

		result = append(result, Face{
			Box:        box,
			Confidence: float64(faces.GetFloatAt(r, 14)),
			Landmarks:  lm,
		})
	}

	return result, nil
}

// Close releases the detector resources.
func (d *YuNetFaceDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}
