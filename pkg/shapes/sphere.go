package shapes

import (
	"math"

	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/material"
)

// Sphere is a unit sphere centered at the origin in its local frame;
// Transformation maps it anywhere (including into an ellipsoid).
type Sphere struct {
	Transformation geometry.Transformation
	Material       material.Material
}

func NewSphere(t geometry.Transformation, mat material.Material) *Sphere {
	return &Sphere{Transformation: t, Material: mat}
}

func (s *Sphere) Intersections(rayWorld geometry.Ray) []HitRecord {
	ray := rayWorld.Transform(s.Transformation.Inverse())

	origin := ray.Origin.ToVec()
	a := ray.Direction.SquaredNorm()
	halfB := origin.Dot(ray.Direction)
	reducedDiscriminant := halfB*halfB - a*(origin.SquaredNorm()-1)
	if reducedDiscriminant <= 0 {
		return nil
	}
	sqrtD := math.Sqrt(reducedDiscriminant)

	roots := [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a}
	var hits []HitRecord
	for _, t := range roots {
		if t <= ray.TMin || t >= ray.TMax {
			continue
		}
		hits = append(hits, s.makeHit(ray, rayWorld, t))
	}
	return hits
}

func (s *Sphere) makeHit(localRay, worldRay geometry.Ray, t float64) HitRecord {
	hitPoint := localRay.At(t)
	normal := geometry.NewNormal(hitPoint.X, hitPoint.Y, hitPoint.Z)
	normal = enforceCorrectNormalOrientation(normal, localRay)

	u := math.Atan2(hitPoint.Y, hitPoint.X) / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	v := math.Acos(clampUnit(hitPoint.Z)) / math.Pi

	return HitRecord{
		Material:     s.Material,
		WorldPoint:   s.Transformation.ApplyToPoint(hitPoint),
		Normal:       s.Transformation.ApplyToNormal(normal),
		SurfacePoint: geometry.NewVec2d(u, v),
		Ray:          worldRay,
		T:            t,
	}
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

func (s *Sphere) IsPointInside(p geometry.Point) bool {
	local := s.Transformation.Inverse().ApplyToPoint(p)
	return local.ToVec().SquaredNorm() < 1
}
