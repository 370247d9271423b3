package track

import "github.com/faisalnazir/AnonCam/internal/landmark"

// Result is the outcome of processing one frame. Results have value
// semantics: callers own what they receive and nothing in a Result aliases
// session state.
type Result struct {
	// HasFace reports whether a face cleared the confidence threshold.
	// When false every other field is the zero value.
	HasFace    bool
	Confidence float32
	Landmarks  landmark.Set
	// KeyPoints and Pose are derived per call. The cached result returned
	// by LastResult carries only the detection fields above.
	KeyPoints landmark.KeyPoints
	Pose      HeadPose
}

// Clone returns a deep copy with its own landmark backing array.
func (r Result) Clone() Result {
	out := r
	if r.Landmarks != nil {
		out.Landmarks = make(landmark.Set, len(r.Landmarks))
		copy(out.Landmarks, r.Landmarks)
	}
	return out
}
