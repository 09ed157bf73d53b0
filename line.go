package strand

// Line is a degree-1 Bézier tube: a straight segment between two control
// points, with a linearly blended width.
type Line struct {
	p      [2]Point3
	w      [2]float64
	maxw   float64
	bounds Box3
}

// NewLine returns the tube segment from p0 to p1 whose width blends from w0
// to w1. Widths must be non-negative.
func NewLine(p0, p1 Point3, w0, w1 float64) Line {
	l := Line{
		p: [2]Point3{p0, p1},
		w: [2]float64{w0, w1},
	}
	l.maxw = max(l.w[0], l.w[1])
	l.bounds = curveBounds(l.p[:], l.maxw)
	return l
}

// NewLineUniform returns the tube segment from p0 to p1 with constant width.
func NewLineUniform(p0, p1 Point3, width float64) Line {
	return NewLine(p0, p1, width, width)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.p[1].Sub(l.p[0]).Hypot()
}

func (l Line) Eval(t float64) Point3 {
	return l.p[0].Lerp(l.p[1], t)
}

func (l Line) Width(t float64) float64 {
	return l.w[0] + t*(l.w[1]-l.w[0])
}

func (l Line) Tangent(t float64) Vec3 {
	return l.p[1].Sub(l.p[0])
}

// Split subdivides the line into halves. The shared endpoint and width are
// evaluated once and reused in both children.
func (l Line) Split() (Line, Line) {
	pm := l.Eval(0.5)
	wm := l.Width(0.5)
	return NewLine(l.p[0], pm, l.w[0], wm),
		NewLine(pm, l.p[1], wm, l.w[1])
}

// Transform returns a transformed copy of the line. The original is
// untouched; the copy's caches are freshly computed.
func (l Line) Transform(m Mat4) Line {
	return NewLine(
		m.TransformPoint(l.p[0]),
		m.TransformPoint(l.p[1]),
		l.w[0], l.w[1])
}

func (l Line) BoundingBox() Box3 { return l.bounds }
func (l Line) MaxWidth() float64 { return l.maxw }

// RecursionDepth implements [Curve]. A straight segment is already flat.
func (l Line) RecursionDepth() int { return 0 }

func (l Line) ControlPoint(i int) Point3  { return l.p[i] }
func (l Line) ControlWidth(i int) float64 { return l.w[i] }
func (l Line) Degree() int                { return 1 }
func (l Line) Start() Point3              { return l.p[0] }
func (l Line) End() Point3                { return l.p[1] }
