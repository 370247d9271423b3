package track

import (
	"gocv.io/x/gocv"

	"github.com/faisalnazir/AnonCam/internal/landmark"
)

// LandmarkSource yields face-mesh landmarks for decoded video frames. A nil
// Detection with a nil error is a clean "no face in this frame". Each
// Detection must be freshly allocated per call: the session passes its
// landmark slice through to callers. Sources are not required to be safe
// for concurrent use; the Session serializes access.
type LandmarkSource interface {
	// Detect runs the underlying detector on a frame.
	Detect(frame gocv.Mat) (*landmark.Detection, error)
	// Close releases detector resources.
	Close() error
}

// SourceFunc adapts a plain function to the LandmarkSource interface.
type SourceFunc func(frame gocv.Mat) (*landmark.Detection, error)

// Detect calls f.
func (f SourceFunc) Detect(frame gocv.Mat) (*landmark.Detection, error) {
	return f(frame)
}

// Close is a no-op.
func (f SourceFunc) Close() error {
	return nil
}
