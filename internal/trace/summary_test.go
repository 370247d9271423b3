package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	frames := []FrameRow{
		{Seq: 0, HasFace: true, Confidence: 0.9, Pitch: 0.1, Yaw: 0.2, Roll: 0.3, DetectMicros: 10000},
		{Seq: 1, HasFace: true, Confidence: 0.8, Pitch: 0.3, Yaw: 0.0, Roll: 0.1, DetectMicros: 20000},
		{Seq: 2, HasFace: false, DetectMicros: 30000},
		{Seq: 3, HasFace: true, Confidence: 0.7, Pitch: 0.2, Yaw: 0.4, Roll: 0.2, DetectMicros: 20000},
	}

	s := Summarize(frames)

	assert.Equal(t, 4, s.Frames)
	assert.Equal(t, 3, s.FaceFrames)
	assert.InDelta(t, 0.75, s.FaceRatio, 1e-9)
	assert.InDelta(t, 0.8, s.MeanConfidence, 1e-9)

	assert.InDelta(t, 0.2, s.PitchMean, 1e-9)
	assert.InDelta(t, 0.1, s.PitchStd, 1e-9)
	assert.InDelta(t, 0.2, s.YawMean, 1e-9)
	assert.InDelta(t, 0.2, s.RollMean, 1e-9)

	// Detect stats cover faceless frames too.
	assert.InDelta(t, 20.0, s.DetectMeanMillis, 1e-9)
	assert.InDelta(t, 30.0, s.DetectP95Millis, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeNoFaces(t *testing.T) {
	frames := []FrameRow{
		{Seq: 0, DetectMicros: 5000},
		{Seq: 1, DetectMicros: 7000},
	}

	s := Summarize(frames)

	assert.Equal(t, 2, s.Frames)
	assert.Equal(t, 0, s.FaceFrames)
	assert.Zero(t, s.FaceRatio)
	assert.Zero(t, s.MeanConfidence)
	assert.InDelta(t, 6.0, s.DetectMeanMillis, 1e-9)
}

func TestSummarizeSingleFaceFrame(t *testing.T) {
	frames := []FrameRow{
		{Seq: 0, HasFace: true, Confidence: 0.9, Pitch: 0.4, DetectMicros: 10000},
	}

	s := Summarize(frames)

	assert.InDelta(t, 0.4, s.PitchMean, 1e-9)
	assert.Zero(t, s.PitchStd, "one sample has no spread")
}
