package strand

import "math"

// Ray is a ray in 3D space. Dir need not be normalized; hit parameters are
// reported in the ray's own parameterization, so the point at parameter t is
// Origin + Dir*t. TMax bounds the valid parameter range.
type Ray struct {
	Origin Point3
	Dir    Vec3
	TMax   float64
}

// NewRay returns the ray from origin along dir with an unbounded valid
// range.
func NewRay(origin Point3, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir, TMax: math.Inf(1)}
}

// Eval returns the point at parameter t along the ray.
func (r Ray) Eval(t float64) Point3 {
	return r.Origin.Translate(r.Dir.Mul(t))
}

const (
	// hitEpsilon is the minimum hit depth along the ray, in world units.
	// It excludes self-intersection at the ray origin.
	hitEpsilon = 1e-6

	// facingEpsilon is the minimum x/z projection length of the ray
	// direction below which the general facing rotation would divide by a
	// near-zero denominator.
	facingEpsilon = 1e-6

	// chordEpsilon is the minimum squared planar length of a leaf segment's
	// chord; below it the closest-approach parameter is indeterminate.
	chordEpsilon = 1e-6
)

// dotXY is the dot product of the x and y components only.
func dotXY(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y
}

// FacingTransform returns the matrix that maps world space into the ray's
// frame: the ray origin goes to the origin and the ray direction to the
// positive z axis, without scaling. It depends only on the ray and is meant
// to be computed once per ray and shared across all curve candidates.
//
// When the direction is (nearly) parallel to the y axis, its x/z projection
// is too short to orient the general rotation; a fixed ±π/2 rotation about x
// is used instead, with the sign chosen by the direction's y component.
func FacingTransform(ray Ray) Mat4 {
	rdir := ray.Dir.Normalize()

	var m Mat4
	if d := math.Sqrt(rdir.X*rdir.X + rdir.Z*rdir.Z); d >= facingEpsilon {
		rcpD := 1.0 / d
		m = Mat4{
			rdir.Z * rcpD, 0, -rdir.X * rcpD, 0,
			-(rdir.X * rdir.Y) * rcpD, d, -(rdir.Y * rdir.Z) * rcpD, 0,
			rdir.X, rdir.Y, rdir.Z, 0,
			0, 0, 0, 1,
		}
	} else {
		angle := -0.5 * math.Pi
		if rdir.Y > 0 {
			angle = 0.5 * math.Pi
		}
		m = RotationX(angle)
	}

	// Right-multiply by the translation taking the ray origin to the origin.
	m[3] = -(m[0]*ray.Origin.X + m[1]*ray.Origin.Y + m[2]*ray.Origin.Z)
	m[7] = -(m[4]*ray.Origin.X + m[5]*ray.Origin.Y + m[6]*ray.Origin.Z)
	m[11] = -(m[8]*ray.Origin.X + m[9]*ray.Origin.Y + m[10]*ray.Origin.Z)
	return m
}

// Intersect reports whether ray hits the tube swept by curve, and at which
// parameter along the ray. xfm must be the facing transform of ray; it is
// passed in so a caller testing many curves against one ray computes it
// once.
//
// The reported hit is the nearest one found along the explored subdivision
// order; for a single call this is the nearest hit on the curve within
// (hitEpsilon, TMax).
func Intersect[C Curve[C]](curve C, ray Ray, xfm Mat4) (float64, bool) {
	xfmCurve := curve.Transform(xfm)
	depth := xfmCurve.RecursionDepth()

	dirLen := ray.Dir.Hypot()
	t := ray.TMax * dirLen
	if converge(depth, curve, xfmCurve, xfm, 0.0, 1.0, &t) {
		// t is a depth in the ray's frame; rescale it to the ray's own
		// parameterization.
		return t / dirLen, true
	}
	return 0, false
}

// converge recursively bisects curve, a sub-curve of the facing-transformed
// query curve covering the parameter range [v0, vn] of orig. orig is the
// frame's untransformed query curve; leaf hits are evaluated on it so the
// piecewise-linear approximation error from splitting does not accumulate
// into the reported position. t carries the best hit depth found so far and
// doubles as the culling bound.
func converge[C Curve[C]](depth int, orig, curve C, xfm Mat4, v0, vn float64, t *float64) bool {
	bounds := curve.BoundingBox()
	halfWidth := 0.5 * curve.MaxWidth()

	// The ray occupies {x, y ∈ (−halfWidth, halfWidth), z ∈ (hitEpsilon, t)}
	// of the frame; reject the sub-curve if its box misses that region.
	if bounds.Z0 >= *t || bounds.Z1 <= hitEpsilon ||
		bounds.X0 >= halfWidth || bounds.X1 <= -halfWidth ||
		bounds.Y0 >= halfWidth || bounds.Y1 <= -halfWidth {
		return false
	}

	if depth > 0 {
		c1, c2 := curve.Split()
		vm := 0.5 * (v0 + vn)
		if converge(depth-1, orig, c1, xfm, v0, vm, t) {
			return true
		}
		return converge(depth-1, orig, c2, xfm, vm, vn, t)
	}

	// Flat enough: intersect the tube around the chord cp0→cpn.
	n := curve.Degree()
	cp0 := curve.ControlPoint(0)
	cpn := curve.ControlPoint(n)
	dir := cpn.Sub(cp0)

	// Reject when the nearest point projects outside the segment, so that
	// neighboring sub-curves sharing an endpoint don't both report it.
	dp0 := curve.ControlPoint(1).Sub(cp0)
	if dotXY(dir, dp0) < 0 {
		dp0 = dp0.Negate()
	}
	if dotXY(dp0, Vec3(cp0)) > 0 {
		return false
	}

	dpn := cpn.Sub(curve.ControlPoint(n - 1))
	if dotXY(dir, dpn) < 0 {
		dpn = dpn.Negate()
	}
	if dotXY(dpn, Vec3(cpn)) < 0 {
		return false
	}

	// Closest approach of the frame's z axis to the chord, in the xy plane.
	w := dir.X*dir.X + dir.Y*dir.Y
	if w < chordEpsilon {
		return false
	}
	w = -(cp0.X*dir.X + cp0.Y*dir.Y) / w
	w = min(max(w, 0.0), 1.0)

	// Map w back into the original curve's parameter range and evaluate the
	// hit on the exact curve.
	v := v0*(1.0-w) + vn*w
	p := xfm.TransformPoint(orig.Eval(v))

	if p.Z <= hitEpsilon || *t < p.Z {
		return false
	}

	// The width comes from the split sub-curve, not the original: split
	// interpolates the control widths, which keeps the blend smooth across
	// segment boundaries.
	halfWidth = 0.5 * curve.Width(w)
	if p.X*p.X+p.Y*p.Y >= halfWidth*halfWidth {
		return false
	}

	*t = p.Z
	return true
}
