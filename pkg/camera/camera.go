// Package camera implements the two camera models (orthogonal and
// perspective) and the image tracer that fires stratified rays per pixel.
package camera

import (
	"github.com/matteoilardi/goray/pkg/geometry"
)

// Camera turns a screen coordinate (u, v) in [0,1]^2, with (0,0) at the
// top-left of the screen, into a world-space ray.
type Camera interface {
	FireRay(u, v float64) geometry.Ray
}

// OrthogonalCamera produces parallel rays all pointing along +x in its
// local frame.
type OrthogonalCamera struct {
	AspectRatio    float64
	Transformation geometry.Transformation
}

func NewOrthogonalCamera(aspectRatio float64, t geometry.Transformation) *OrthogonalCamera {
	return &OrthogonalCamera{AspectRatio: aspectRatio, Transformation: t}
}

func (c *OrthogonalCamera) FireRay(u, v float64) geometry.Ray {
	origin := geometry.NewPoint(-1, (1-2*u)*c.AspectRatio, -1+2*v)
	direction := geometry.NewVec(1, 0, 0)
	return geometry.NewRay(origin, direction).Transform(c.Transformation)
}

// PerspectiveCamera produces rays converging on a single point at distance
// Distance behind the screen, in its local frame.
type PerspectiveCamera struct {
	Distance       float64
	AspectRatio    float64
	Transformation geometry.Transformation
}

func NewPerspectiveCamera(distance, aspectRatio float64, t geometry.Transformation) *PerspectiveCamera {
	return &PerspectiveCamera{Distance: distance, AspectRatio: aspectRatio, Transformation: t}
}

func (c *PerspectiveCamera) FireRay(u, v float64) geometry.Ray {
	origin := geometry.NewPoint(-c.Distance, 0, 0)
	direction := geometry.NewVec(c.Distance, (1-2*u)*c.AspectRatio, -1+2*v)
	return geometry.NewRay(origin, direction).Transform(c.Transformation)
}
