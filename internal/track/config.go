package track

import "fmt"

// Config holds construction-time tracking parameters. A Config is fixed for
// the lifetime of a Session; changing parameters means building a new one.
type Config struct {
	// MaxNumFaces caps how many faces a source should report. The session
	// consumes a single detection per frame, so values above 1 only affect
	// sources that support multi-face models.
	MaxNumFaces int
	// MinDetectionConfidence is the score needed to acquire a new face.
	MinDetectionConfidence float32
	// MinTrackingConfidence is the lower score needed to keep a face that
	// was already being tracked.
	MinTrackingConfidence float32
	// EnableSegmentation asks the source for a background mask alongside
	// the landmarks, when the model supports one.
	EnableSegmentation bool
	// UseGPU selects the accelerated execution provider when available.
	UseGPU bool
}

// DefaultConfig returns the single-face defaults.
func DefaultConfig() Config {
	return Config{
		MaxNumFaces:            1,
		MinDetectionConfidence: 0.5,
		MinTrackingConfidence:  0.5,
	}
}

// Validate reports the first out-of-range parameter.
func (c Config) Validate() error {
	if c.MaxNumFaces < 1 {
		return fmt.Errorf("max num faces must be at least 1, got %d", c.MaxNumFaces)
	}
	if c.MinDetectionConfidence < 0 || c.MinDetectionConfidence > 1 {
		return fmt.Errorf("min detection confidence must be in [0, 1], got %v", c.MinDetectionConfidence)
	}
	if c.MinTrackingConfidence < 0 || c.MinTrackingConfidence > 1 {
		return fmt.Errorf("min tracking confidence must be in [0, 1], got %v", c.MinTrackingConfidence)
	}
	return nil
}
