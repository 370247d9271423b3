// Package landmark defines the face-mesh landmark data model shared by the
// tracking pipeline and its landmark sources.
package landmark

// Point is a single face-mesh landmark. X and Y are normalized to [0, 1]
// relative to frame width and height; Z is a relative depth roughly in
// [-1, 1] with 0 at the nominal face plane.
type Point struct {
	X, Y, Z float32
}

// MeshPoints is the number of landmarks the face-mesh model produces per
// detected face (478-point topology with iris refinement).
const MeshPoints = 478

// Face-mesh landmark indices for the named key points.
// See: https://developers.google.com/mediapipe/solutions/vision/face_landmarker
const (
	IndexNoseTip    = 1
	IndexForehead   = 10
	IndexUpperLip   = 13
	IndexLowerLip   = 14
	IndexLeftEye    = 33
	IndexChin       = 152
	IndexLeftCheek  = 205
	IndexLeftEar    = 234
	IndexRightEye   = 263
	IndexRightCheek = 425
	IndexRightEar   = 454
)

// Set is an ordered sequence of face-mesh landmarks. Order is significant:
// the index of a point is its anatomical identity in the mesh topology.
type Set []Point

// Detection is one detected face: the full landmark set plus the source's
// confidence score in [0, 1].
type Detection struct {
	Confidence float32
	Landmarks  Set
}

// KeyPoints is the small named subset of landmarks used for pose estimation
// and mask alignment.
type KeyPoints struct {
	LeftEye  Point
	RightEye Point
	NoseTip  Point
	UpperLip Point
	Chin     Point
	LeftEar  Point
	RightEar Point
	Forehead Point
}

// ExtractKeyPoints copies the fixed-index key landmarks out of a full set.
// A set shorter than MeshPoints yields the zero value: no partial fill.
func ExtractKeyPoints(set Set) KeyPoints {
	if len(set) < MeshPoints {
		return KeyPoints{}
	}
	return KeyPoints{
		LeftEye:  set[IndexLeftEye],
		RightEye: set[IndexRightEye],
		NoseTip:  set[IndexNoseTip],
		UpperLip: set[IndexUpperLip],
		Chin:     set[IndexChin],
		LeftEar:  set[IndexLeftEar],
		RightEar: set[IndexRightEar],
		Forehead: set[IndexForehead],
	}
}
