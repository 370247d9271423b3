package track

import "math"

// Mat4 is a 4x4 homogeneous transform stored row-major: element (row, col)
// lives at index row*4+col. Renderers that consume column-major data must
// transpose on upload.
type Mat4 [16]float32

// mat3 is a 3x3 rotation matrix, row-major.
type mat3 [9]float32

func rotationX(angle float32) mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

func rotationY(angle float32) mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func rotationZ(angle float32) mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * o[k*3+j]
			}
			r[i*3+j] = sum
		}
	}
	return r
}

// BuildModelMatrix composes a pose into the renderer's model transform.
// Rotation order is fixed at Rz*Ry*Rx. The translation row maps normalized
// frame coordinates onto the scene: x doubled, y doubled and flipped, z
// pushed one unit in front of the camera.
func BuildModelMatrix(pose HeadPose) Mat4 {
	rx := rotationX(pose.Rotation[0])
	ry := rotationY(pose.Rotation[1])
	rz := rotationZ(pose.Rotation[2])
	r := rz.mul(ry).mul(rx)

	m := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	m[0], m[1], m[2] = r[0], r[1], r[2]
	m[4], m[5], m[6] = r[3], r[4], r[5]
	m[8], m[9], m[10] = r[6], r[7], r[8]

	m[12] = pose.Translation[0] * 2.0
	m[13] = -pose.Translation[1] * 2.0
	m[14] = pose.Translation[2] + 1.0
	return m
}
