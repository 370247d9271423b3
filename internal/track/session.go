package track

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/faisalnazir/AnonCam/internal/landmark"
)

// Timing holds per-stage durations for the most recent processed frame.
type Timing struct {
	Detect    time.Duration
	KeyPoints time.Duration
	Pose      time.Duration
	Matrix    time.Duration
	Total     time.Duration
}

// Session runs the per-frame tracking pipeline: landmark detection, key-point
// selection, pose estimation, and model-matrix construction. A Session is
// safe for concurrent use; detection and the cached-result update are
// serialized under one lock, so concurrent ProcessFrame calls never
// interleave their effects. The zero Session is uninitialized but safe:
// every method degrades to a clean no-op.
type Session struct {
	config Config
	source LandmarkSource

	mu          sync.Mutex
	initialized bool
	last        Result
	lastTiming  Timing
}

// NewSession builds a tracking session around a landmark source. The source
// is owned by the session afterwards and released by Close.
func NewSession(cfg Config, src LandmarkSource) (*Session, error) {
	if src == nil {
		return nil, errors.New("nil landmark source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tracking config: %w", err)
	}
	return &Session{
		config:      cfg,
		source:      src,
		initialized: true,
	}, nil
}

// ProcessFrame runs the full pipeline on one frame and returns the complete
// result. A nil or empty frame yields an empty result and leaves the cached
// last result untouched; a processed frame always overwrites it, faceless or
// not. The derived key points, pose, and matrix are computed outside the
// lock on the caller's private copy, so only the returned value carries
// them.
func (s *Session) ProcessFrame(frame *gocv.Mat) Result {
	start := time.Now()
	var timing Timing

	s.mu.Lock()
	if !s.initialized || frame == nil || frame.Empty() {
		s.mu.Unlock()
		return Result{}
	}

	detectStart := time.Now()
	det, err := s.source.Detect(*frame)
	timing.Detect = time.Since(detectStart)

	var result Result
	if err != nil {
		tracef("detect failed, treating frame as faceless: %v", err)
	} else if det != nil {
		result.HasFace = true
		result.Confidence = det.Confidence
		result.Landmarks = det.Landmarks
	}
	s.last = result.Clone()
	s.mu.Unlock()

	if result.HasFace {
		kpStart := time.Now()
		result.KeyPoints = landmark.ExtractKeyPoints(result.Landmarks)
		timing.KeyPoints = time.Since(kpStart)

		poseStart := time.Now()
		pose, ok := EstimatePose(result.Landmarks)
		timing.Pose = time.Since(poseStart)

		if ok {
			matrixStart := time.Now()
			pose.ModelMatrix = BuildModelMatrix(pose)
			timing.Matrix = time.Since(matrixStart)
			result.Pose = pose
		}
	}
	timing.Total = time.Since(start)

	s.mu.Lock()
	s.lastTiming = timing
	s.mu.Unlock()

	return result
}

// LastResult returns a copy of the most recent processed-frame result. It
// never triggers processing and never blocks on anything but the session
// lock.
func (s *Session) LastResult() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last.Clone()
}

// Config returns the parameters the session was built with.
func (s *Session) Config() Config {
	return s.config
}

// LastTiming returns the stage timings of the most recent processed frame.
func (s *Session) LastTiming() Timing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTiming
}

// Reset clears the cached result. The landmark source keeps its own state;
// swap in a fresh source for a full re-acquisition.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = Result{}
}

// IsInitialized reports whether the session holds a usable landmark source.
func (s *Session) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Close releases the landmark source and marks the session uninitialized.
// Calls after Close behave like calls on a zero Session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = false
	if s.source == nil {
		return nil
	}
	err := s.source.Close()
	s.source = nil
	return err
}
