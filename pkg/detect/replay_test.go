package detect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReplaySource_ServesFramesInOrder(t *testing.T) {
	frames := []Frame{
		{Faces: []Face{{Confidence: 0.1}}},
		{Faces: []Face{{Confidence: 0.2}}, Objects: []Object{{Class: ClassPhone}}},
	}
	src := NewReplaySource(frames)
	ctx := context.Background()

	faces, err := src.DetectFaces(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 1 || faces[0].Confidence != 0.1 {
		t.Errorf("first frame faces: got %+v", faces)
	}

	// Objects come from the same frame as the preceding faces call
	objects, err := src.DetectObjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 0 {
		t.Errorf("first frame objects: got %d, want 0", len(objects))
	}

	if _, err := src.DetectFaces(ctx); err != nil {
		t.Fatal(err)
	}
	objects, err = src.DetectObjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(objects) != 1 || objects[0].Class != ClassPhone {
		t.Errorf("second frame objects: got %+v", objects)
	}
}

func TestReplaySource_Exhaustion(t *testing.T) {
	src := NewReplaySource([]Frame{{}})
	ctx := context.Background()

	if _, err := src.DetectFaces(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := src.DetectFaces(ctx); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestReplaySource_Loop(t *testing.T) {
	src := NewReplaySource([]Frame{
		{Faces: []Face{{Confidence: 0.1}}},
		{},
	})
	src.SetLoop(true)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := src.DetectFaces(ctx); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func TestReplaySource_Readiness(t *testing.T) {
	src := NewReplaySource([]Frame{{}})
	src.SetReady(false)

	if src.Ready() {
		t.Error("source should report not ready")
	}
	if _, err := src.DetectFaces(context.Background()); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}

	src.SetReady(true)
	if !src.Ready() {
		t.Error("source should report ready again")
	}
}

func TestReplaySource_DefaultFrameSize(t *testing.T) {
	src := NewReplaySource(nil)
	w, h := src.FrameSize()
	if w != 640 || h != 480 {
		t.Errorf("default frame size: got %dx%d, want 640x480", w, h)
	}
}

func TestLoadReplayScript(t *testing.T) {
	script := `[
		{"faces": [{"box": {"x": 100, "y": 80, "width": 60, "height": 60}, "confidence": 0.9}], "objects": []},
		{"faces": [], "objects": [{"class": 1, "confidence": 0.8, "box": {"x": 0, "y": 0, "width": 30, "height": 30}}]}
	]`
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := LoadReplayScript(path)
	if err != nil {
		t.Fatal(err)
	}
	if src.Remaining() != 2 {
		t.Errorf("Remaining: got %d, want 2", src.Remaining())
	}

	faces, err := src.DetectFaces(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 1 || faces[0].Box.W != 60 {
		t.Errorf("parsed faces: got %+v", faces)
	}
}

func TestLoadReplayScript_Missing(t *testing.T) {
	if _, err := LoadReplayScript("does/not/exist.json"); err == nil {
		t.Error("expected error for missing script")
	}
}
