package landmark

import "testing"

func TestExtractKeyPointsFullSet(t *testing.T) {
	set := make(Set, MeshPoints)
	for i := range set {
		set[i] = Point{X: float32(i), Y: float32(i) / 2, Z: float32(i) / 4}
	}

	kp := ExtractKeyPoints(set)

	checks := []struct {
		name string
		got  Point
		idx  int
	}{
		{"left eye", kp.LeftEye, IndexLeftEye},
		{"right eye", kp.RightEye, IndexRightEye},
		{"nose tip", kp.NoseTip, IndexNoseTip},
		{"upper lip", kp.UpperLip, IndexUpperLip},
		{"chin", kp.Chin, IndexChin},
		{"left ear", kp.LeftEar, IndexLeftEar},
		{"right ear", kp.RightEar, IndexRightEar},
		{"forehead", kp.Forehead, IndexForehead},
	}
	for _, c := range checks {
		if c.got != set[c.idx] {
			t.Errorf("%s = %+v, want landmark %d = %+v", c.name, c.got, c.idx, set[c.idx])
		}
	}
}

func TestExtractKeyPointsShortSet(t *testing.T) {
	for _, n := range []int{0, 1, 33, MeshPoints - 1} {
		set := make(Set, n)
		for i := range set {
			set[i] = Point{X: 1, Y: 1, Z: 1}
		}
		if kp := ExtractKeyPoints(set); kp != (KeyPoints{}) {
			t.Errorf("length %d: got %+v, want zero key points", n, kp)
		}
	}
}

func TestKeyPointIndicesWithinMesh(t *testing.T) {
	indices := []int{
		IndexNoseTip, IndexForehead, IndexUpperLip, IndexLowerLip,
		IndexLeftEye, IndexChin, IndexLeftCheek, IndexLeftEar,
		IndexRightEye, IndexRightCheek, IndexRightEar,
	}
	for _, idx := range indices {
		if idx < 0 || idx >= MeshPoints {
			t.Errorf("index %d outside mesh of %d points", idx, MeshPoints)
		}
	}
}
