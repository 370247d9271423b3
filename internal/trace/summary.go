package trace

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one run's frames. Pose statistics cover only the frames
// that carried a face.
type Summary struct {
	Frames     int
	FaceFrames int
	FaceRatio  float64

	MeanConfidence float64

	PitchMean, PitchStd float64
	YawMean, YawStd     float64
	RollMean, RollStd   float64

	DetectMeanMillis float64
	DetectP95Millis  float64
}

// Summarize reduces a run's frames to summary statistics.
func Summarize(frames []FrameRow) Summary {
	var s Summary
	s.Frames = len(frames)
	if len(frames) == 0 {
		return s
	}

	var confidence, pitch, yaw, roll, detect []float64
	for _, f := range frames {
		detect = append(detect, float64(f.DetectMicros)/1000.0)
		if !f.HasFace {
			continue
		}
		s.FaceFrames++
		confidence = append(confidence, f.Confidence)
		pitch = append(pitch, f.Pitch)
		yaw = append(yaw, f.Yaw)
		roll = append(roll, f.Roll)
	}
	s.FaceRatio = float64(s.FaceFrames) / float64(s.Frames)

	if s.FaceFrames > 0 {
		s.MeanConfidence = stat.Mean(confidence, nil)
		s.PitchMean, s.PitchStd = meanStd(pitch)
		s.YawMean, s.YawStd = meanStd(yaw)
		s.RollMean, s.RollStd = meanStd(roll)
	}

	s.DetectMeanMillis = stat.Mean(detect, nil)
	sort.Float64s(detect)
	s.DetectP95Millis = stat.Quantile(0.95, stat.Empirical, detect, nil)

	return s
}

func meanStd(values []float64) (float64, float64) {
	mean := stat.Mean(values, nil)
	if len(values) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(values, nil)
}
