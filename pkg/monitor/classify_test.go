package monitor

import (
	"testing"

	"github.com/examwatch/go-proctor/pkg/detect"
)

func TestClassifyPresence(t *testing.T) {
	face := detect.Face{Box: detect.Rect{X: 100, Y: 100, W: 80, H: 80}, Confidence: 0.9}

	tests := []struct {
		name     string
		faces    []detect.Face
		absent   bool
		multiple bool
	}{
		{"no faces", nil, true, false},
		{"empty slice", []detect.Face{}, true, false},
		{"one face", []detect.Face{face}, false, false},
		{"two faces", []detect.Face{face, face}, false, true},
		{"three faces", []detect.Face{face, face, face}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyPresence(tc.faces)
			if got.FaceAbsent != tc.absent {
				t.Errorf("FaceAbsent: got %v, want %v", got.FaceAbsent, tc.absent)
			}
			if got.MultipleFaces != tc.multiple {
				t.Errorf("MultipleFaces: got %v, want %v", got.MultipleFaces, tc.multiple)
			}
		})
	}
}

func TestClassifyObjects(t *testing.T) {
	tests := []struct {
		name    string
		objects []detect.Object
		phone   bool
		notes   bool
	}{
		{"no objects", nil, false, false},
		{"phone only", []detect.Object{{Class: detect.ClassPhone, Confidence: 0.9}}, true, false},
		{"notes only", []detect.Object{{Class: detect.ClassNotes, Confidence: 0.8}}, false, true},
		{"both", []detect.Object{
			{Class: detect.ClassPhone, Confidence: 0.9},
			{Class: detect.ClassNotes, Confidence: 0.7},
		}, true, true},
		{"other ignored", []detect.Object{{Class: detect.ClassOther, Confidence: 0.99}}, false, false},
		// The detector pre-filters by confidence, so even a low value counts.
		{"low confidence still counts", []detect.Object{{Class: detect.ClassPhone, Confidence: 0.01}}, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyObjects(tc.objects)
			if got.Phone != tc.phone {
				t.Errorf("Phone: got %v, want %v", got.Phone, tc.phone)
			}
			if got.Notes != tc.notes {
				t.Errorf("Notes: got %v, want %v", got.Notes, tc.notes)
			}
		})
	}
}
