package landmark

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestSyntheticSourceDetect(t *testing.T) {
	src := NewSyntheticSource()
	frame := gocv.NewMat()
	defer frame.Close()

	det, err := src.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if det == nil {
		t.Fatal("expected a detection")
	}
	if got := len(det.Landmarks); got != MeshPoints {
		t.Fatalf("got %d landmarks, want %d", got, MeshPoints)
	}
	if det.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", det.Confidence)
	}

	// The oval stays inside the configured face box around frame center.
	for i, p := range det.Landmarks {
		if p.X < 0.3 || p.X > 0.7 {
			t.Fatalf("landmark %d x = %v outside oval bounds", i, p.X)
		}
		if p.Y < 0.25 || p.Y > 0.75 {
			t.Fatalf("landmark %d y = %v outside oval bounds", i, p.Y)
		}
		if p.Z < -0.11 || p.Z > 0.11 {
			t.Fatalf("landmark %d z = %v outside depth bounds", i, p.Z)
		}
	}
}

func TestSyntheticSourceDeterministic(t *testing.T) {
	src := NewSyntheticSource()
	frame := gocv.NewMat()
	defer frame.Close()

	first, err := src.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	second, err := src.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	for i := range first.Landmarks {
		if first.Landmarks[i] != second.Landmarks[i] {
			t.Fatalf("landmark %d differs between calls: %+v vs %+v",
				i, first.Landmarks[i], second.Landmarks[i])
		}
	}

	// Each call owns its backing array.
	first.Landmarks[0] = Point{X: 99}
	if second.Landmarks[0] == first.Landmarks[0] {
		t.Error("detections share a landmark backing array")
	}
}
