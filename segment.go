package strand

import "fmt"

// SegmentKind identifies the degree of a strand segment.
type SegmentKind uint8

const (
	LineKind SegmentKind = iota + 1
	QuadKind
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "LineKind"
	case QuadKind:
		return "QuadKind"
	case CubicKind:
		return "CubicKind"
	default:
		return fmt.Sprintf("SegmentKind(%d)", k)
	}
}

// Segment is a kind-tagged tube segment, wrapping one of [Line], [Quad], or
// [Cubic]. It allows strands to mix degrees without interface values; every
// operation dispatches on the kind, which is known per segment.
type Segment struct {
	Kind  SegmentKind
	line  Line
	quad  Quad
	cubic Cubic
}

// Seg wraps the line in a [Segment].
func (l Line) Seg() Segment { return Segment{Kind: LineKind, line: l} }

// Seg wraps the quadratic in a [Segment].
func (q Quad) Seg() Segment { return Segment{Kind: QuadKind, quad: q} }

// Seg wraps the cubic in a [Segment].
func (c Cubic) Seg() Segment { return Segment{Kind: CubicKind, cubic: c} }

// Line returns the wrapped line. It panics if the segment holds a different
// kind.
func (s Segment) Line() Line {
	if s.Kind != LineKind {
		panic(fmt.Sprintf("segment holds %v, not LineKind", s.Kind))
	}
	return s.line
}

// Quad returns the wrapped quadratic. It panics if the segment holds a
// different kind.
func (s Segment) Quad() Quad {
	if s.Kind != QuadKind {
		panic(fmt.Sprintf("segment holds %v, not QuadKind", s.Kind))
	}
	return s.quad
}

// Cubic returns the wrapped cubic. It panics if the segment holds a
// different kind.
func (s Segment) Cubic() Cubic {
	if s.Kind != CubicKind {
		panic(fmt.Sprintf("segment holds %v, not CubicKind", s.Kind))
	}
	return s.cubic
}

func (s Segment) Eval(t float64) Point3 {
	switch s.Kind {
	case LineKind:
		return s.line.Eval(t)
	case QuadKind:
		return s.quad.Eval(t)
	case CubicKind:
		return s.cubic.Eval(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

func (s Segment) Width(t float64) float64 {
	switch s.Kind {
	case LineKind:
		return s.line.Width(t)
	case QuadKind:
		return s.quad.Width(t)
	case CubicKind:
		return s.cubic.Width(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

func (s Segment) Tangent(t float64) Vec3 {
	switch s.Kind {
	case LineKind:
		return s.line.Tangent(t)
	case QuadKind:
		return s.quad.Tangent(t)
	case CubicKind:
		return s.cubic.Tangent(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

func (s Segment) BoundingBox() Box3 {
	switch s.Kind {
	case LineKind:
		return s.line.BoundingBox()
	case QuadKind:
		return s.quad.BoundingBox()
	case CubicKind:
		return s.cubic.BoundingBox()
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

func (s Segment) MaxWidth() float64 {
	switch s.Kind {
	case LineKind:
		return s.line.MaxWidth()
	case QuadKind:
		return s.quad.MaxWidth()
	case CubicKind:
		return s.cubic.MaxWidth()
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

func (s Segment) Start() Point3 {
	switch s.Kind {
	case LineKind:
		return s.line.Start()
	case QuadKind:
		return s.quad.Start()
	case CubicKind:
		return s.cubic.Start()
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

func (s Segment) End() Point3 {
	switch s.Kind {
	case LineKind:
		return s.line.End()
	case QuadKind:
		return s.quad.End()
	case CubicKind:
		return s.cubic.End()
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

// Transform returns a transformed copy of the segment.
func (s Segment) Transform(m Mat4) Segment {
	switch s.Kind {
	case LineKind:
		return s.line.Transform(m).Seg()
	case QuadKind:
		return s.quad.Transform(m).Seg()
	case CubicKind:
		return s.cubic.Transform(m).Seg()
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}

// Intersect intersects ray with the wrapped curve. See [Intersect].
func (s Segment) Intersect(ray Ray, xfm Mat4) (float64, bool) {
	switch s.Kind {
	case LineKind:
		return Intersect(s.line, ray, xfm)
	case QuadKind:
		return Intersect(s.quad, ray, xfm)
	case CubicKind:
		return Intersect(s.cubic, ray, xfm)
	default:
		panic(fmt.Sprintf("unhandled case %v", s.Kind))
	}
}
