package strand

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMat4TransformPoint(t *testing.T) {
	m := Translation3(V3(1, 2, 3))
	diff(t, Pt3(2, 4, 6), m.TransformPoint(Pt3(1, 2, 3)))

	diff(t, Pt3(-4, 0.5, 9), Identity4.TransformPoint(Pt3(-4, 0.5, 9)))
}

func TestMat4PerspectiveDivide(t *testing.T) {
	// A projective transform with w = z must divide through.
	m := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
	}
	diff(t, Pt3(1, 2, 1), m.TransformPoint(Pt3(2, 4, 2)))
}

func TestMat4Mul(t *testing.T) {
	a := RotationX(0.7)
	b := Translation3(V3(3, -1, 2))
	pt := Pt3(0.3, -2, 5)

	// (a*b) applies b first.
	got := a.Mul(b).TransformPoint(pt)
	want := a.TransformPoint(b.TransformPoint(pt))
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))

	diff(t, a, a.Mul(Identity4), cmpopts.EquateApprox(0, 1e-15))
	diff(t, a, Identity4.Mul(a), cmpopts.EquateApprox(0, 1e-15))
}

func TestRotationX(t *testing.T) {
	// A positive quarter turn takes +y to +z.
	m := RotationX(0.5 * math.Pi)
	diff(t, Pt3(0, 0, 1), m.TransformPoint(Pt3(0, 1, 0)), cmpopts.EquateApprox(0, 1e-15))
	diff(t, Pt3(0, -1, 0), m.TransformPoint(Pt3(0, 0, 1)), cmpopts.EquateApprox(0, 1e-15))
}
