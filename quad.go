package strand

// Quad is a degree-2 Bézier tube: a quadratic Bézier segment with a width
// per control point.
type Quad struct {
	p      [3]Point3
	w      [3]float64
	maxw   float64
	bounds Box3
}

// NewQuad returns the quadratic tube with the given control points and
// widths. Widths must be non-negative.
func NewQuad(p0, p1, p2 Point3, w0, w1, w2 float64) Quad {
	q := Quad{
		p: [3]Point3{p0, p1, p2},
		w: [3]float64{w0, w1, w2},
	}
	q.maxw = max(q.w[0], q.w[1], q.w[2])
	q.bounds = curveBounds(q.p[:], q.maxw)
	return q
}

// NewQuadUniform returns the quadratic tube with constant width.
func NewQuadUniform(p0, p1, p2 Point3, width float64) Quad {
	return NewQuad(p0, p1, p2, width, width, width)
}

func (q Quad) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(q.p[0]).Mul(mt * mt)
	b := Vec3(q.p[1]).Mul(mt * 2.0)
	c := Vec3(q.p[2]).Mul(t)
	return Point3(a.Add(b.Add(c).Mul(t)))
}

func (q Quad) Width(t float64) float64 {
	mt := 1.0 - t
	return q.w[0]*(mt*mt) + (q.w[1]*(mt*2.0)+q.w[2]*t)*t
}

func (q Quad) Tangent(t float64) Vec3 {
	d01 := q.p[1].Sub(q.p[0])
	d12 := q.p[2].Sub(q.p[1])
	return d01.Lerp(d12, t).Mul(2.0)
}

// Split subdivides the quadratic into halves, using de Casteljau. The
// midpoint evaluations are reused in both children, so repeated splitting
// reproduces Eval exactly.
func (q Quad) Split() (Quad, Quad) {
	pm := q.Eval(0.5)
	wm := q.Width(0.5)
	return NewQuad(
			q.p[0], q.p[0].Midpoint(q.p[1]), pm,
			q.w[0], 0.5*(q.w[0]+q.w[1]), wm),
		NewQuad(
			pm, q.p[1].Midpoint(q.p[2]), q.p[2],
			wm, 0.5*(q.w[1]+q.w[2]), q.w[2])
}

// Transform returns a transformed copy of the quadratic. The original is
// untouched; the copy's caches are freshly computed.
func (q Quad) Transform(m Mat4) Quad {
	return NewQuad(
		m.TransformPoint(q.p[0]),
		m.TransformPoint(q.p[1]),
		m.TransformPoint(q.p[2]),
		q.w[0], q.w[1], q.w[2])
}

func (q Quad) BoundingBox() Box3 { return q.bounds }
func (q Quad) MaxWidth() float64 { return q.maxw }

// RecursionDepth implements [Curve].
func (q Quad) RecursionDepth() int {
	return recursionDepth(q.p[:], q.maxw, 2)
}

func (q Quad) ControlPoint(i int) Point3  { return q.p[i] }
func (q Quad) ControlWidth(i int) float64 { return q.w[i] }
func (q Quad) Degree() int                { return 2 }
func (q Quad) Start() Point3              { return q.p[0] }
func (q Quad) End() Point3                { return q.p[2] }
