package geometry

import "math"

// DefaultTMin is the default minimum distance a Ray is allowed to hit at,
// used to avoid self-intersection ("shadow acne") at the origin.
const DefaultTMin = 1e-5

// Ray is a parametrized half-line origin + t*direction, valid over
// t in (TMin, TMax), carrying a bounce depth for recursive renderers.
type Ray struct {
	Origin    Point
	Direction Vec
	TMin      float64
	TMax      float64
	Depth     int
}

// NewRay returns a ray with the default tmin/tmax/depth.
func NewRay(origin Point, direction Vec) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: DefaultTMin, TMax: math.Inf(1), Depth: 0}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.AddVec(r.Direction.Multiply(t))
}

// Transform returns the ray obtained by transforming origin and direction by
// t, preserving tmin/tmax/depth.
func (r Ray) Transform(t Transformation) Ray {
	return Ray{
		Origin:    t.ApplyToPoint(r.Origin),
		Direction: t.ApplyToVec(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
		Depth:     r.Depth,
	}
}

// IsClose reports whether r and o have close origins and directions.
func (r Ray) IsClose(o Ray, tolerance float64) bool {
	return r.Origin.IsClose(o.Origin, tolerance) && r.Direction.IsClose(o.Direction, tolerance)
}
