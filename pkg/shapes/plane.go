package shapes

import (
	"math"

	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/material"
)

// Plane is the xy-plane in its local frame.
type Plane struct {
	Transformation geometry.Transformation
	Material       material.Material
}

func NewPlane(t geometry.Transformation, mat material.Material) *Plane {
	return &Plane{Transformation: t, Material: mat}
}

func (p *Plane) Intersections(rayWorld geometry.Ray) []HitRecord {
	ray := rayWorld.Transform(p.Transformation.Inverse())

	if math.Abs(ray.Direction.Z) < geometry.DefaultErrorTolerance {
		return nil
	}
	t := -ray.Origin.Z / ray.Direction.Z
	if t <= ray.TMin || t >= ray.TMax {
		return nil
	}

	hitPoint := ray.At(t)
	normal := enforceCorrectNormalOrientation(geometry.NewVec(0, 0, 1).ToNormal(), ray)
	surface := geometry.NewVec2d(hitPoint.X-math.Floor(hitPoint.X), hitPoint.Y-math.Floor(hitPoint.Y))

	return []HitRecord{{
		Material:     p.Material,
		WorldPoint:   p.Transformation.ApplyToPoint(hitPoint),
		Normal:       p.Transformation.ApplyToNormal(normal),
		SurfacePoint: surface,
		Ray:          rayWorld,
		T:            t,
	}}
}

func (p *Plane) IsPointInside(point geometry.Point) bool {
	local := p.Transformation.Inverse().ApplyToPoint(point)
	return local.Z < 0
}
