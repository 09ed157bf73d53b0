package strand

// Strand is a piecewise Bézier tube: an ordered sequence of segments,
// typically sharing endpoints and widths at the joints so that position and
// width are continuous along the strand.
type Strand []Segment

// BoundingBox returns the union of the segments' bounding boxes.
func (s Strand) BoundingBox() Box3 {
	bounds := EmptyBox3
	for _, seg := range s {
		bounds = bounds.Union(seg.BoundingBox())
	}
	return bounds
}

// Transform returns a transformed copy of the strand.
func (s Strand) Transform(m Mat4) Strand {
	out := make(Strand, len(s))
	for i := range s {
		out[i] = s[i].Transform(m)
	}
	return out
}

// Intersect returns the nearest hit of ray across all segments of the
// strand, along with the index of the segment that produced it. xfm must be
// the facing transform of ray.
//
// Per-segment intersection only guarantees the nearest hit within that
// segment; the strand keeps the nearest across segments by shrinking the
// ray's valid range as hits are found.
func (s Strand) Intersect(ray Ray, xfm Mat4) (t float64, seg int, ok bool) {
	seg = -1
	for i := range s {
		if ht, hit := s[i].Intersect(ray, xfm); hit {
			ray.TMax = ht
			t, seg, ok = ht, i, true
		}
	}
	return t, seg, ok
}
