// Package strand implements ray intersection against Bézier tubes: degree 1,
// 2, and 3 Bézier curves in 3D space, swept by a width that is blended along
// the curve the same way the control points are. Tubes of this kind are the
// usual representation for hair, fur, and fiber strands in ray tracers.
//
// # Curves
//
// The three curve types are [Line], [Quad], and [Cubic], one per degree. Each
// carries one width per control point and caches its maximum width and its
// bounding box. Values are immutable: [Line.Transform] and [Line.Split] (and
// their Quad/Cubic counterparts) return new values with freshly computed
// caches.
//
// Heterogeneous sequences of segments are represented by [Segment], a
// kind-tagged wrapper over the three curve types, and [Strand], an ordered
// slice of segments forming a piecewise tube.
//
// # Intersection
//
// [Intersect] resolves visibility between a ray and a single curve. It
// transforms the curve into a frame in which the ray travels along +z from
// the origin (see [FacingTransform]), bounds the number of bisections needed
// to flatten the curve from its second differences, and recursively bisects,
// culling sub-curves whose bounding box cannot contain a hit. Flat-enough
// sub-curves are tested as straight tube segments in closed form.
//
// The intersector is purely functional: it is safe to call concurrently from
// many goroutines against shared, immutable curve data, one ray per caller.
//
// # Literature
//
// The intersection algorithm follows [Ray Tracing for Curves Primitive] by
// Koji Nakamaru and Yoshio Ohno. Bézier evaluation and subdivision are
// standard; see [A Primer on Bézier Curves].
//
// [Ray Tracing for Curves Primitive]: http://wscg.zcu.cz/wscg2002/Papers_2002/A83.pdf
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package strand
