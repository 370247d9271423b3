package track

import (
	"math"

	"github.com/faisalnazir/AnonCam/internal/landmark"
)

// HeadPose is a lightweight six-degree-of-freedom head estimate derived from
// landmark geometry alone, with the composed model transform attached.
type HeadPose struct {
	// Translation is (tx, ty, tz) in normalized frame coordinates relative
	// to frame center.
	Translation [3]float32
	// Rotation is (pitch, yaw, roll) in radians. Roll is an exact angle;
	// pitch and yaw are linear proxies tuned for mask alignment, not
	// metrically accurate angles.
	Rotation [3]float32
	// ModelMatrix is the row-major transform built from the fields above.
	ModelMatrix Mat4
}

// EstimatePose derives a head pose from eye and nose landmark geometry. The
// returned bool is false when the set has fewer than MeshPoints entries; the
// pose is then the zero value.
func EstimatePose(set landmark.Set) (HeadPose, bool) {
	var pose HeadPose
	if len(set) < landmark.MeshPoints {
		return pose, false
	}

	leftEye := set[landmark.IndexLeftEye]
	rightEye := set[landmark.IndexRightEye]
	noseTip := set[landmark.IndexNoseTip]

	// Yaw from the horizontal offset of the eye midpoint, pitch from the
	// height of the eye line over the nose tip.
	eyeMidX := (leftEye.X + rightEye.X) * 0.5
	eyeMidY := (leftEye.Y + rightEye.Y) * 0.5
	pose.Rotation[0] = (eyeMidY - noseTip.Y) * 1.5
	pose.Rotation[1] = (eyeMidX - 0.5) * 2.0

	// Roll is the in-plane tilt of the eye line.
	dx := float64(rightEye.X - leftEye.X)
	dy := float64(rightEye.Y - leftEye.Y)
	pose.Rotation[2] = float32(math.Atan2(dy, dx))

	pose.Translation[0] = noseTip.X - 0.5
	pose.Translation[1] = noseTip.Y - 0.5
	pose.Translation[2] = noseTip.Z

	return pose, true
}
