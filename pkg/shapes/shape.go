package shapes

import "github.com/matteoilardi/goray/pkg/geometry"

// Shape is the closed set of primitives the renderer can intersect:
// spheres, planes, and CSG combinations of other shapes.
type Shape interface {
	// Intersections returns every intersection of ray with the shape within
	// (ray.TMin, ray.TMax), ordered by ascending T. CSG needs the full
	// ordered list to apply its boundary-trimming predicates; leaf shapes
	// return at most a couple of entries.
	Intersections(ray geometry.Ray) []HitRecord

	// IsPointInside reports whether a world-space point lies in the
	// shape's solid interior. By convention, points exactly on the
	// boundary count as outside.
	IsPointInside(p geometry.Point) bool
}

// ClosestHit returns the nearest intersection of ray with s, if any.
func ClosestHit(s Shape, ray geometry.Ray) (HitRecord, bool) {
	hits := s.Intersections(ray)
	if len(hits) == 0 {
		return HitRecord{}, false
	}
	return hits[0], true
}
