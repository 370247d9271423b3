package facemesh

import (
	"testing"

	"github.com/faisalnazir/AnonCam/internal/landmark"
)

func TestDecodeMeshNormalizes(t *testing.T) {
	raw := make([]float32, meshOutputLen)
	for i := 0; i < landmark.MeshPoints; i++ {
		raw[i*3] = float32(i % 192)
		raw[i*3+1] = float32((i * 7) % 192)
		raw[i*3+2] = float32(i%40) - 20
	}

	set := decodeMesh(raw, 192)

	if got := len(set); got != landmark.MeshPoints {
		t.Fatalf("got %d landmarks, want %d", got, landmark.MeshPoints)
	}
	for i, p := range set {
		wantX := raw[i*3] / 192
		wantY := raw[i*3+1] / 192
		wantZ := raw[i*3+2] / 192
		if p.X != wantX || p.Y != wantY || p.Z != wantZ {
			t.Fatalf("landmark %d = %+v, want {%v %v %v}", i, p, wantX, wantY, wantZ)
		}
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Fatalf("landmark %d = %+v outside normalized range", i, p)
		}
	}
}

func TestThresholdHysteresis(t *testing.T) {
	d := &Detector{minDetect: 0.6, minTrack: 0.3}

	if got := d.threshold(); got != 0.6 {
		t.Errorf("acquisition threshold = %v, want 0.6", got)
	}

	d.tracking = true
	if got := d.threshold(); got != 0.3 {
		t.Errorf("tracking threshold = %v, want 0.3", got)
	}

	d.tracking = false
	if got := d.threshold(); got != 0.6 {
		t.Errorf("threshold after losing a face = %v, want 0.6", got)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBytesToFloat32(t *testing.T) {
	// 1.0 and -2.0 in little-endian IEEE 754.
	data := []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}

	out := bytesToFloat32(data)

	if len(out) != 2 {
		t.Fatalf("got %d floats, want 2", len(out))
	}
	if out[0] != 1.0 || out[1] != -2.0 {
		t.Errorf("got %v, want [1 -2]", out)
	}
}

func TestMissingTensorNames(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  []string
	}{
		{"all present", "\x0a\x05input\x12\x09landmarks\x12\x05score", nil},
		{"no score", "graph with input and landmarks only", []string{TensorScore}},
		{"wrong export", "images output0 output1", []string{TensorInput, TensorLandmarks, TensorScore}},
		{"empty file", "", []string{TensorInput, TensorLandmarks, TensorScore}},
	}
	for _, tt := range tests {
		got := MissingTensorNames([]byte(tt.model))
		if len(got) != len(tt.want) {
			t.Errorf("%s: missing = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: missing = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}
