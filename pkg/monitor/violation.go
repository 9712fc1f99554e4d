// Package monitor fuses per-frame detection results into debounced
// violation events, running counters and a derived risk level.
package monitor

import "time"

// Kind identifies one violation in the fixed taxonomy.
type Kind string

const (
	// KindFocusLost is sustained gaze/position drift from frame center.
	KindFocusLost Kind = "focus_lost"
	// KindFaceAbsent is no face visible in the frame.
	KindFaceAbsent Kind = "face_absent"
	// KindMultipleFaces is more than one face visible in the frame.
	KindMultipleFaces Kind = "multiple_faces"
	// KindPhoneDetected is a phone visible in the frame.
	KindPhoneDetected Kind = "phone_detected"
	// KindNotesDetected is notes/books visible in the frame.
	KindNotesDetected Kind = "notes_detected"
	// KindDrowsiness is sustained eye closure.
	KindDrowsiness Kind = "drowsiness"
)

// Kinds returns the closed violation taxonomy in stable order.
func Kinds() []Kind {
	return []Kind{
		KindFocusLost,
		KindFaceAbsent,
		KindMultipleFaces,
		KindPhoneDetected,
		KindNotesDetected,
		KindDrowsiness,
	}
}

// Transition is an edge event: a violation turned on or off between
// two consecutive ticks.
type Transition struct {
	ID        string    `json:"id"`
	Session   string    `json:"session"`
	Kind      Kind      `json:"kind"`
	Active    bool      `json:"active"`
	Count     int       `json:"count"` // running count after this edge
	Timestamp time.Time `json:"timestamp"`
}
