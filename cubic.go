package strand

// Cubic is a degree-3 Bézier tube: a cubic Bézier segment with a width per
// control point.
type Cubic struct {
	p      [4]Point3
	w      [4]float64
	maxw   float64
	bounds Box3
}

// NewCubic returns the cubic tube with the given control points and widths.
// Widths must be non-negative.
func NewCubic(p0, p1, p2, p3 Point3, w0, w1, w2, w3 float64) Cubic {
	c := Cubic{
		p: [4]Point3{p0, p1, p2, p3},
		w: [4]float64{w0, w1, w2, w3},
	}
	c.maxw = max(c.w[0], c.w[1], c.w[2], c.w[3])
	c.bounds = curveBounds(c.p[:], c.maxw)
	return c
}

// NewCubicUniform returns the cubic tube with constant width.
func NewCubicUniform(p0, p1, p2, p3 Point3, width float64) Cubic {
	return NewCubic(p0, p1, p2, p3, width, width, width, width)
}

func (c Cubic) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(c.p[0]).Mul(mt * mt * mt)
	b := Vec3(c.p[1]).Mul(mt * mt * 3.0)
	cc := Vec3(c.p[2]).Mul(mt * 3.0)
	d := Vec3(c.p[3])
	return Point3(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

func (c Cubic) Width(t float64) float64 {
	mt := 1.0 - t
	return c.w[0]*(mt*mt*mt) + (c.w[1]*(mt*mt*3.0)+(c.w[2]*(mt*3.0)+c.w[3]*t)*t)*t
}

func (c Cubic) Tangent(t float64) Vec3 {
	mt := 1.0 - t
	d01 := c.p[1].Sub(c.p[0]).Mul(3.0 * mt * mt)
	d12 := c.p[2].Sub(c.p[1]).Mul(6.0 * mt * t)
	d23 := c.p[3].Sub(c.p[2]).Mul(3.0 * t * t)
	return d01.Add(d12).Add(d23)
}

// Split subdivides the cubic into halves, using de Casteljau. The midpoint
// evaluations are reused in both children, so repeated splitting reproduces
// Eval exactly.
func (c Cubic) Split() (Cubic, Cubic) {
	pm := c.Eval(0.5)
	wm := c.Width(0.5)

	m01 := c.p[0].Midpoint(c.p[1])
	m12 := c.p[1].Midpoint(c.p[2])
	m23 := c.p[2].Midpoint(c.p[3])

	w01 := 0.5 * (c.w[0] + c.w[1])
	w12 := 0.5 * (c.w[1] + c.w[2])
	w23 := 0.5 * (c.w[2] + c.w[3])

	return NewCubic(
			c.p[0], m01, m01.Midpoint(m12), pm,
			c.w[0], w01, 0.5*(w01+w12), wm),
		NewCubic(
			pm, m12.Midpoint(m23), m23, c.p[3],
			wm, 0.5*(w12+w23), w23, c.w[3])
}

// Transform returns a transformed copy of the cubic. The original is
// untouched; the copy's caches are freshly computed.
func (c Cubic) Transform(m Mat4) Cubic {
	return NewCubic(
		m.TransformPoint(c.p[0]),
		m.TransformPoint(c.p[1]),
		m.TransformPoint(c.p[2]),
		m.TransformPoint(c.p[3]),
		c.w[0], c.w[1], c.w[2], c.w[3])
}

func (c Cubic) BoundingBox() Box3 { return c.bounds }
func (c Cubic) MaxWidth() float64 { return c.maxw }

// RecursionDepth implements [Curve].
func (c Cubic) RecursionDepth() int {
	return recursionDepth(c.p[:], c.maxw, 3)
}

func (c Cubic) ControlPoint(i int) Point3  { return c.p[i] }
func (c Cubic) ControlWidth(i int) float64 { return c.w[i] }
func (c Cubic) Degree() int                { return 3 }
func (c Cubic) Start() Point3              { return c.p[0] }
func (c Cubic) End() Point3                { return c.p[3] }
