package strand

import "math"

// Box3 is an axis-aligned box in 3D space.
type Box3 struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// EmptyBox3 is the empty box, the identity element for [Box3.Union] and
// [Box3.UnionPoint]. It contains no points.
var EmptyBox3 = Box3{
	X0: math.Inf(1), Y0: math.Inf(1), Z0: math.Inf(1),
	X1: math.Inf(-1), Y1: math.Inf(-1), Z1: math.Inf(-1),
}

// NewBox3FromPoints returns a box with the extents of p0 and p1, ensuring
// that all extents are non-negative.
func NewBox3FromPoints(p0, p1 Point3) Box3 {
	return Box3{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that all
// extents are non-negative.
func (b Box3) Abs() Box3 {
	return Box3{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.X0 > b.X1 || b.Y0 > b.Y1 || b.Z0 > b.Z1
}

func (b Box3) Center() Point3 {
	return Point3{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

func (b Box3) Contains(pt Point3) bool {
	return pt.X >= b.X0 && pt.X <= b.X1 &&
		pt.Y >= b.Y0 && pt.Y <= b.Y1 &&
		pt.Z >= b.Z0 && pt.Z <= b.Z1
}

// Union returns the smallest box enclosing b and o.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// [EmptyBox3], yields their enclosing box.
func (b Box3) UnionPoint(pt Point3) Box3 {
	return Box3{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

// Inflate returns a new box grown by amount on all six sides.
func (b Box3) Inflate(amount float64) Box3 {
	return Box3{
		X0: b.X0 - amount,
		Y0: b.Y0 - amount,
		Z0: b.Z0 - amount,
		X1: b.X1 + amount,
		Y1: b.Y1 + amount,
		Z1: b.Z1 + amount,
	}
}

// robustInflate grows the box by eps scaled to the box's coordinate
// magnitude, so the growth stays meaningful for boxes far from the origin.
func (b Box3) robustInflate(eps float64) Box3 {
	s := max(1.0,
		math.Abs(b.X0), math.Abs(b.X1),
		math.Abs(b.Y0), math.Abs(b.Y1),
		math.Abs(b.Z0), math.Abs(b.Z1))
	return b.Inflate(eps * s)
}
