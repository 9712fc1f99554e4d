package monitor

import "github.com/examwatch/go-proctor/pkg/detect"

// Presence holds the face-count conditions of one sample.
type Presence struct {
	FaceAbsent    bool
	MultipleFaces bool
}

// ClassifyPresence classifies the face count of one sample.
// Pure function, no state.
func ClassifyPresence(faces []detect.Face) Presence {
	return Presence{
		FaceAbsent:    len(faces) == 0,
		MultipleFaces: len(faces) > 1,
	}
}

// ObjectFlags holds the taxonomy hits of one sample.
type ObjectFlags struct {
	Phone bool
	Notes bool
}

// ClassifyObjects flags taxonomy classes present in one sample.
// Confidence is ignored: the detector pre-filters by confidence.
func ClassifyObjects(objects []detect.Object) ObjectFlags {
	var flags ObjectFlags
	for _, obj := range objects {
		switch obj.Class {
		case detect.ClassPhone:
			flags.Phone = true
		case detect.ClassNotes:
			flags.Notes = true
		}
	}
	return flags
}
