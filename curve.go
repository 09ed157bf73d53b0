package strand

import "math"

// Curve constrains the closed set of Bézier tube degrees: [Line], [Quad],
// and [Cubic]. The self-referential type parameter lets [Intersect] recurse
// on split results without interface values on the hot path; the degree of a
// tube is always known at the call site.
type Curve[C any] interface {
	// Eval evaluates the curve at parameter t ∈ [0, 1].
	Eval(t float64) Point3
	// Width evaluates the tube width at parameter t ∈ [0, 1], blending the
	// control widths with the same Bernstein weights as the control points.
	Width(t float64) float64
	// Tangent evaluates the curve's derivative at parameter t ∈ [0, 1].
	Tangent(t float64) Vec3
	// Split subdivides the curve into halves at t = 0.5, using de Casteljau.
	// left.Eval(2t) reproduces Eval(t) on [0, 0.5], and right symmetrically.
	Split() (C, C)
	// Transform returns a transformed copy of the curve. Control points
	// transform perspective-correctly, widths pass through unchanged.
	Transform(m Mat4) C
	// BoundingBox returns the cached box enclosing the tube: the control
	// point hull inflated by half the maximum width, plus a robustness
	// epsilon.
	BoundingBox() Box3
	// MaxWidth returns the cached maximum control width.
	MaxWidth() float64
	// RecursionDepth returns how many times the curve must be bisected
	// before every sub-curve is flat enough to be treated as a straight
	// tube segment. The result is in [0, 5].
	RecursionDepth() int

	ControlPoint(i int) Point3
	ControlWidth(i int) float64
	Degree() int
	Start() Point3
	End() Point3
}

var _ Curve[Line] = Line{}
var _ Curve[Quad] = Quad{}
var _ Curve[Cubic] = Cubic{}

const (
	// boundsEpsilon is the relative amount by which curve bounding boxes are
	// grown to absorb floating-point error in evaluation and subdivision.
	boundsEpsilon = 1e-4

	// flatnessFraction is the flatness tolerance for subdivision, as a
	// fraction of the tube's maximum width: a sub-curve whose deviation from
	// its chord is below 1/20 of the width is intersected as a straight
	// segment.
	flatnessFraction = 0.05

	// maxSplitDepth caps the recursion depth bound.
	maxSplitDepth = 5

	rcpLog4 = 0.7213475204444817
)

// curveBounds returns the tube bounding box for a set of control points. The
// convex hull property keeps the curve inside the control point box; half the
// maximum width accounts for the swept surface.
func curveBounds(pts []Point3, maxWidth float64) Box3 {
	bounds := EmptyBox3
	for _, pt := range pts {
		bounds = bounds.UnionPoint(pt)
	}
	return bounds.Inflate(0.5 * maxWidth).robustInflate(boundsEpsilon)
}

// recursionDepth bounds the number of bisections needed to flatten a
// degree-n Bézier curve to within epsilon = maxWidth/20, from the maximum
// second difference of the control points in x and y. This is the depth
// bound from section 3 of the Nakamaru–Ohno paper:
//
//	r = log4(sqrt(2) * n * (n-1) * L∞ / (8 * epsilon))
//
// clamped to [0, 5] and truncated. Degree-1 curves have no curvature and
// need no subdivision.
func recursionDepth(pts []Point3, maxWidth float64, degree int) int {
	if degree < 2 {
		return 0
	}

	var l0 float64
	for i := 0; i+2 < len(pts); i++ {
		l0 = max(l0,
			math.Abs(pts[i].X-2.0*pts[i+1].X+pts[i+2].X),
			math.Abs(pts[i].Y-2.0*pts[i+1].Y+pts[i+2].Y))
	}

	n := float64(degree)
	epsilon := maxWidth * flatnessFraction
	value := (math.Sqrt2 * n * (n - 1) * l0) / (8.0 * epsilon)
	r0 := math.Log(value) * rcpLog4
	return int(min(max(r0, 0.0), maxSplitDepth))
}
