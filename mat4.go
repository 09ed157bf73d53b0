package strand

import "math"

// Mat4 is a row-major 4×4 transformation matrix. Points transform as
// homogeneous column vectors: p' = M * (x, y, z, 1)ᵀ.
type Mat4 [16]float64

// Identity4 is the identity transform.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translation3 returns the transform that translates points by v.
func Translation3(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// RotationX returns the rotation about the x axis by th radians.
//
// The convention is right-handed: a positive angle rotates the positive y
// axis towards the positive z axis.
func RotationX(th float64) Mat4 {
	sin, cos := math.Sincos(th)
	return Mat4{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * o; the resulting transform applies o
// first and m second.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*o[0*4+c] +
				m[r*4+1]*o[1*4+c] +
				m[r*4+2]*o[2*4+c] +
				m[r*4+3]*o[3*4+c]
		}
	}
	return out
}

// TransformPoint applies m to pt as a homogeneous column vector and divides
// by the resulting w coordinate. A transform that produces w == 0 for a point
// it is applied to is a programmer error; the result is not a number.
func (m Mat4) TransformPoint(pt Point3) Point3 {
	x := m[0]*pt.X + m[1]*pt.Y + m[2]*pt.Z + m[3]
	y := m[4]*pt.X + m[5]*pt.Y + m[6]*pt.Z + m[7]
	z := m[8]*pt.X + m[9]*pt.Y + m[10]*pt.Z + m[11]
	w := m[12]*pt.X + m[13]*pt.Y + m[14]*pt.Z + m[15]

	rcpW := 1.0 / w
	return Point3{X: x * rcpW, Y: y * rcpW, Z: z * rcpW}
}
