// Package shapes implements the scene graph of shapes (sphere, plane, CSG
// combinations) and the world that holds them and the point light sources,
// queried by ray intersection.
package shapes

import (
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/material"
)

// HitRecord describes a single ray/shape intersection. The material is
// carried directly rather than a back-reference to the shape, so the shape
// graph stays off the renderer's hot path.
type HitRecord struct {
	Material     material.Material
	WorldPoint   geometry.Point
	Normal       geometry.Normal
	SurfacePoint geometry.Vec2d
	Ray          geometry.Ray
	T            float64
}

// enforceCorrectNormalOrientation flips normal so that it points against
// the incoming ray: normal . ray.direction <= 0.
func enforceCorrectNormalOrientation(normal geometry.Normal, ray geometry.Ray) geometry.Normal {
	if normal.Dot(ray.Direction) > 0 {
		return normal.Negate()
	}
	return normal
}
