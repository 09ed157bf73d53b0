package strand

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFacingTransform(t *testing.T) {
	rays := map[string]Ray{
		"axis z":       NewRay(Pt3(0, 0, 0), V3(0, 0, 1)),
		"axis x":       NewRay(Pt3(0, 0, 0), V3(1, 0, 0)),
		"axis y":       NewRay(Pt3(1, 2, 3), V3(0, 1, 0)),
		"axis -y":      NewRay(Pt3(0, 0, 0), V3(0, -1, 0)),
		"diagonal":     NewRay(Pt3(5, -3, 2), V3(1, 1, 1)),
		"unnormalized": NewRay(Pt3(0.5, 0.25, -1), V3(0, 0.6, -7)),
	}
	for name, ray := range rays {
		xfm := FacingTransform(ray)

		// The ray origin maps to the frame origin and the direction to +z,
		// without scaling.
		diff(t, Pt3(0, 0, 0), xfm.TransformPoint(ray.Origin),
			cmpopts.EquateApprox(0, 1e-12))
		tip := ray.Origin.Translate(ray.Dir)
		diff(t, Pt3(0, 0, ray.Dir.Hypot()), xfm.TransformPoint(tip),
			cmpopts.EquateApprox(1e-12, 1e-12))

		// The rotation preserves distances.
		probe := ray.Origin.Translate(V3(0.3, -0.9, 0.2))
		a := xfm.TransformPoint(probe).Distance(xfm.TransformPoint(tip))
		b := probe.Distance(tip)
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("%s: transform changed distance from %g to %g", name, b, a)
		}
	}
}

func TestIntersectTubeOnAxis(t *testing.T) {
	// The ray passes through the tube's axis at depth 5.
	curve := NewLineUniform(Pt3(-1, 0, 5), Pt3(1, 0, 5), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(0, 0, 1))

	tt, ok := Intersect(curve, ray, FacingTransform(ray))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if math.Abs(tt-5) > 1e-3 {
		t.Errorf("got t=%v, want 5±1e-3", tt)
	}
}

func TestIntersectMiss(t *testing.T) {
	// Perpendicular ray that never reaches the curve's depth.
	curve := NewLineUniform(Pt3(-1, 0, 5), Pt3(1, 0, 5), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(1, 0, 0))

	if tt, ok := Intersect(curve, ray, FacingTransform(ray)); ok {
		t.Errorf("got intersection at t=%v, want none", tt)
	}
}

func TestIntersectOutsideRadius(t *testing.T) {
	// The ray's (x, y) at the curve's depth is far outside the 0.2 tube.
	curve := NewLineUniform(Pt3(-1, 0, 5), Pt3(1, 0, 5), 0.2)
	ray := NewRay(Pt3(0, 5, 0), V3(0, 0, 1))

	if tt, ok := Intersect(curve, ray, FacingTransform(ray)); ok {
		t.Errorf("got intersection at t=%v, want none", tt)
	}
}

func TestIntersectBehindOrigin(t *testing.T) {
	curve := NewLineUniform(Pt3(-1, 0, -5), Pt3(1, 0, -5), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(0, 0, 1))

	if tt, ok := Intersect(curve, ray, FacingTransform(ray)); ok {
		t.Errorf("got intersection at t=%v, want none", tt)
	}
}

func TestIntersectDegenerateDirection(t *testing.T) {
	// A direction parallel to y has a zero-length x/z projection and takes
	// the fallback rotation. The result must still be exact.
	curve := NewLineUniform(Pt3(-1, 5, 0), Pt3(1, 5, 0), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(0, 1, 0))

	tt, ok := Intersect(curve, ray, FacingTransform(ray))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if math.Abs(tt-5) > 1e-3 {
		t.Errorf("got t=%v, want 5±1e-3", tt)
	}

	down := NewRay(Pt3(0, 0, 0), V3(0, -1, 0))
	below := NewLineUniform(Pt3(-1, -5, 0), Pt3(1, -5, 0), 0.2)
	tt, ok = Intersect(below, down, FacingTransform(down))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if math.Abs(tt-5) > 1e-3 {
		t.Errorf("got t=%v, want 5±1e-3", tt)
	}
}

func TestIntersectUnnormalizedDirection(t *testing.T) {
	// The hit parameter is expressed in the ray's own parameterization.
	curve := NewLineUniform(Pt3(-1, 0, 5), Pt3(1, 0, 5), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(0, 0, 2))

	tt, ok := Intersect(curve, ray, FacingTransform(ray))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if math.Abs(tt-2.5) > 1e-3 {
		t.Errorf("got t=%v, want 2.5±1e-3", tt)
	}
}

func TestIntersectRespectsTMax(t *testing.T) {
	curve := NewLineUniform(Pt3(-1, 0, 5), Pt3(1, 0, 5), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(0, 0, 1))

	ray.TMax = 4
	if tt, ok := Intersect(curve, ray, FacingTransform(ray)); ok {
		t.Errorf("got intersection at t=%v beyond TMax, want none", tt)
	}

	ray.TMax = 6
	if _, ok := Intersect(curve, ray, FacingTransform(ray)); !ok {
		t.Error("got no intersection, want one")
	}
}

func TestIntersectCubic(t *testing.T) {
	// A bent cubic whose midpoint is (0, 0.3, 5); aim straight at it.
	curve := NewCubicUniform(
		Pt3(-1, 0, 5), Pt3(-0.5, 0.4, 5), Pt3(0.5, 0.4, 5), Pt3(1, 0, 5), 0.2)
	diff(t, Pt3(0, 0.3, 5), curve.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))

	ray := NewRay(Pt3(0, 0, 0), V3(0, 0.3, 5))
	tt, ok := Intersect(curve, ray, FacingTransform(ray))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	// The hit is at the curve midpoint, at parameter 1 of the
	// (unnormalized) ray.
	if math.Abs(tt-1) > 1e-2 {
		t.Errorf("got t=%v, want 1±1e-2", tt)
	}

	// Aiming past the curve's extent misses.
	miss := NewRay(Pt3(0, 0, 0), V3(2, 0, 5))
	if tt, ok := Intersect(curve, miss, FacingTransform(miss)); ok {
		t.Errorf("got intersection at t=%v, want none", tt)
	}
}

func TestIntersectQuadOffsetRay(t *testing.T) {
	// A ray that doesn't start at the world origin, aimed at the apex
	// region of a quadratic.
	curve := NewQuadUniform(Pt3(-1, 0, 0), Pt3(0, 1, 0), Pt3(1, 0, 0), 0.3)
	apex := curve.Eval(0.5) // (0, 0.5, 0)
	origin := Pt3(0, 0.5, -3)
	ray := NewRay(origin, apex.Sub(origin))

	tt, ok := Intersect(curve, ray, FacingTransform(ray))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if math.Abs(tt-1) > 2e-1 {
		t.Errorf("got t=%v, want ≈1", tt)
	}
}

func TestIntersectNearestOfTwoCrossings(t *testing.T) {
	// In the x-z plane this quadratic is the parabola z = 6 − 2x². A ray
	// along +x at z = 4.5 pierces the tube twice, at x ≈ ∓√0.75; the
	// reported hit is the nearer crossing.
	curve := NewQuadUniform(Pt3(-1, 0, 4), Pt3(0, 0, 8), Pt3(1, 0, 4), 0.2)
	ray := NewRay(Pt3(-2, 0, 4.5), V3(1, 0, 0))

	tt, ok := Intersect(curve, ray, FacingTransform(ray))
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	near := 2 - math.Sqrt(0.75)
	if math.Abs(tt-near) > 0.05 {
		t.Errorf("got t=%v, want the nearer crossing %v±0.05", tt, near)
	}
}

func BenchmarkIntersectCubic(b *testing.B) {
	curve := NewCubicUniform(
		Pt3(-1, 0, 5), Pt3(-0.5, 0.4, 5), Pt3(0.5, 0.4, 5), Pt3(1, 0, 5), 0.2)
	ray := NewRay(Pt3(0, 0, 0), V3(0, 0.3, 5))
	xfm := FacingTransform(ray)
	for i := 0; i < b.N; i++ {
		Intersect(curve, ray, xfm)
	}
}

func BenchmarkFacingTransform(b *testing.B) {
	ray := NewRay(Pt3(5, -3, 2), V3(1, 1, 1))
	for i := 0; i < b.N; i++ {
		FacingTransform(ray)
	}
}
