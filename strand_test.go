package strand

import (
	"math"
	"testing"
)

// hairpin returns a two-segment strand crossing the z axis at depths
// 3.0625 and 4.75, with continuous position and width at the joint.
func hairpin() Strand {
	return Strand{
		NewLine(Pt3(-1, 0, 5), Pt3(3, 0, 4), 0.2, 0.3).Seg(),
		NewQuad(Pt3(3, 0, 4), Pt3(1, 0, 3), Pt3(-1, 0, 3), 0.3, 0.25, 0.2).Seg(),
	}
}

func TestStrandBoundingBox(t *testing.T) {
	s := hairpin()
	bounds := s.BoundingBox()
	for i, seg := range s {
		const n = 50
		for j := 0; j <= n; j++ {
			ts := float64(j) / float64(n)
			if pt := seg.Eval(ts); !bounds.Contains(pt) {
				t.Errorf("segment %d: point %v at t=%v outside strand bounds %+v", i, pt, ts, bounds)
			}
		}
	}
}

func TestStrandIntersectNearest(t *testing.T) {
	// Both segments cross the ray; the strand reports the nearer hit no
	// matter the segment order.
	ray := NewRay(Pt3(0, 0, 0), V3(0, 0, 1))
	xfm := FacingTransform(ray)

	s := hairpin()
	tt, seg, ok := s.Intersect(ray, xfm)
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if seg != 1 {
		t.Errorf("got segment %d, want 1", seg)
	}
	if math.Abs(tt-3.0625) > 0.05 {
		t.Errorf("got t=%v, want 3.0625±0.05", tt)
	}

	// Reversed, the nearer segment is found first and the farther one is
	// culled against the shrunken range.
	rev := Strand{s[1], s[0]}
	tt, seg, ok = rev.Intersect(ray, xfm)
	if !ok {
		t.Fatal("got no intersection, want one")
	}
	if seg != 0 {
		t.Errorf("got segment %d, want 0", seg)
	}
	if math.Abs(tt-3.0625) > 0.05 {
		t.Errorf("got t=%v, want 3.0625±0.05", tt)
	}
}

func TestStrandIntersectMiss(t *testing.T) {
	ray := NewRay(Pt3(0, 5, 0), V3(0, 0, 1))
	if tt, _, ok := hairpin().Intersect(ray, FacingTransform(ray)); ok {
		t.Errorf("got intersection at t=%v, want none", tt)
	}
}

func TestStrandTransform(t *testing.T) {
	s := hairpin()
	moved := s.Transform(Translation3(V3(0, 0, 10)))
	if len(moved) != len(s) {
		t.Fatalf("got %d segments, want %d", len(moved), len(s))
	}
	for i := range s {
		want := s[i].Eval(0.5).Translate(V3(0, 0, 10))
		if got := moved[i].Eval(0.5); got.Distance(want) > 1e-12 {
			t.Errorf("segment %d: got midpoint %v, want %v", i, got, want)
		}
	}
	// The original is untouched.
	if got := s.BoundingBox(); got != hairpin().BoundingBox() {
		t.Error("Transform modified the receiver")
	}
}
