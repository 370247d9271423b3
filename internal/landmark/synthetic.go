package landmark

import (
	"math"

	"gocv.io/x/gocv"
)

// SyntheticSource produces a deterministic oval face mesh without running a
// model. It stands in for the real detector in demos and tests.
type SyntheticSource struct {
	Confidence float32
	CenterX    float32
	CenterY    float32
	FaceWidth  float32
	FaceHeight float32
}

// NewSyntheticSource returns a source that places the mesh in the middle of
// the frame with typical face proportions.
func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{
		Confidence: 0.95,
		CenterX:    0.5,
		CenterY:    0.5,
		FaceWidth:  0.3,
		FaceHeight: 0.4,
	}
}

// Detect ignores the frame contents and returns the synthetic mesh. The mesh
// sweeps an oval: landmarks wrap around in rings of 23 from forehead to chin.
func (s *SyntheticSource) Detect(frame gocv.Mat) (*Detection, error) {
	set := make(Set, MeshPoints)
	for i := range set {
		u := float32(i%23) / 22.0
		v := float32(i/23) / 20.0
		angle := float64(u) * 2.0 * math.Pi
		radiusX := s.FaceWidth * 0.5 * float32(math.Sin(float64(v)*math.Pi))
		set[i] = Point{
			X: s.CenterX + radiusX*float32(math.Cos(angle)),
			Y: s.CenterY + (v-0.5)*s.FaceHeight,
			Z: float32(math.Cos(float64(v)*math.Pi)) * 0.1,
		}
	}
	return &Detection{Confidence: s.Confidence, Landmarks: set}, nil
}

// Close implements the landmark source interface; there is nothing to release.
func (s *SyntheticSource) Close() error {
	return nil
}
