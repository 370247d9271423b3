package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faisalnazir/AnonCam/internal/landmark"
)

func TestEstimatePoseShortSet(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 100, landmark.MeshPoints - 1} {
		set := make(landmark.Set, n)
		pose, ok := EstimatePose(set)
		assert.False(t, ok, "length %d", n)
		assert.Equal(t, HeadPose{}, pose, "length %d", n)
	}
}

func TestEstimatePoseCenteredFace(t *testing.T) {
	t.Parallel()

	set := make(landmark.Set, landmark.MeshPoints)
	set[landmark.IndexLeftEye] = landmark.Point{X: 0.35, Y: 0.45}
	set[landmark.IndexRightEye] = landmark.Point{X: 0.65, Y: 0.45}
	set[landmark.IndexNoseTip] = landmark.Point{X: 0.5, Y: 0.55}
	set[landmark.IndexChin] = landmark.Point{X: 0.5, Y: 0.9}

	pose, ok := EstimatePose(set)
	require.True(t, ok)

	assert.InDelta(t, -0.15, float64(pose.Rotation[0]), 1e-6, "pitch")
	assert.InDelta(t, 0, float64(pose.Rotation[1]), 1e-6, "yaw")
	assert.InDelta(t, 0, float64(pose.Rotation[2]), 1e-6, "roll")
	assert.InDelta(t, 0, float64(pose.Translation[0]), 1e-6, "tx")
	assert.InDelta(t, 0.05, float64(pose.Translation[1]), 1e-6, "ty")
	assert.InDelta(t, 0, float64(pose.Translation[2]), 1e-6, "tz")
}

func TestEstimatePoseOffCenterFace(t *testing.T) {
	t.Parallel()

	set := make(landmark.Set, landmark.MeshPoints)
	set[landmark.IndexLeftEye] = landmark.Point{X: 0.45, Y: 0.35}
	set[landmark.IndexRightEye] = landmark.Point{X: 0.75, Y: 0.35}
	set[landmark.IndexNoseTip] = landmark.Point{X: 0.62, Y: 0.48, Z: -0.04}

	pose, ok := EstimatePose(set)
	require.True(t, ok)

	// Eye midpoint x = 0.6, eye midpoint y = 0.35.
	assert.InDelta(t, (0.35-0.48)*1.5, float64(pose.Rotation[0]), 1e-6, "pitch")
	assert.InDelta(t, 0.2, float64(pose.Rotation[1]), 1e-6, "yaw")
	assert.InDelta(t, 0.12, float64(pose.Translation[0]), 1e-6, "tx")
	assert.InDelta(t, -0.02, float64(pose.Translation[1]), 1e-6, "ty")
	assert.InDelta(t, -0.04, float64(pose.Translation[2]), 1e-6, "tz")
}

func TestEstimatePoseRollExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right landmark.Point
	}{
		{"level", landmark.Point{X: 0.35, Y: 0.45}, landmark.Point{X: 0.65, Y: 0.45}},
		{"right eye low", landmark.Point{X: 0.35, Y: 0.40}, landmark.Point{X: 0.65, Y: 0.50}},
		{"right eye high", landmark.Point{X: 0.35, Y: 0.50}, landmark.Point{X: 0.65, Y: 0.40}},
		{"steep tilt", landmark.Point{X: 0.45, Y: 0.30}, landmark.Point{X: 0.55, Y: 0.60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := make(landmark.Set, landmark.MeshPoints)
			set[landmark.IndexLeftEye] = tt.left
			set[landmark.IndexRightEye] = tt.right
			set[landmark.IndexNoseTip] = landmark.Point{X: 0.5, Y: 0.55}

			pose, ok := EstimatePose(set)
			require.True(t, ok)

			want := math.Atan2(
				float64(tt.right.Y-tt.left.Y),
				float64(tt.right.X-tt.left.X),
			)
			assert.InDelta(t, want, float64(pose.Rotation[2]), 1e-6)
		})
	}
}
