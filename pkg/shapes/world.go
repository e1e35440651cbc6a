package shapes

import (
	"math"

	"github.com/matteoilardi/goray/pkg/geometry"
)

// World is the insertion-ordered collection of shapes and point light
// sources that a renderer queries.
type World struct {
	Shapes []Shape
	Lights []*PointLightSource
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddShape(s Shape) { w.Shapes = append(w.Shapes, s) }

func (w *World) AddLight(l *PointLightSource) { w.Lights = append(w.Lights, l) }

// RayIntersection returns the closest hit across every shape in the world,
// or false if the ray misses everything.
func (w *World) RayIntersection(ray geometry.Ray) (HitRecord, bool) {
	var closest HitRecord
	found := false
	bestT := math.Inf(1)

	for _, s := range w.Shapes {
		hit, ok := ClosestHit(s, ray)
		if ok && hit.T < bestT {
			closest = hit
			bestT = hit.T
			found = true
		}
	}
	return closest, found
}

// FirstHit returns the first intersection found in shape-insertion order,
// not necessarily the closest. Used by the on/off renderer, which only
// needs to know whether anything was hit.
func (w *World) FirstHit(ray geometry.Ray) (HitRecord, bool) {
	for _, s := range w.Shapes {
		if hit, ok := ClosestHit(s, ray); ok {
			return hit, true
		}
	}
	return HitRecord{}, false
}

// OffsetIfVisible returns the vector from viewer to surface if surface is
// visible from viewer: surface must face the viewer, and no shape may
// occlude the segment between them. It returns false when occluded or when
// the query originates from inside the surface (v.n > 0).
func (w *World) OffsetIfVisible(viewer, surface geometry.Point, normal geometry.Normal) (geometry.Vec, bool) {
	inDir := surface.Subtract(viewer)
	if normal.Dot(inDir) > 0 {
		return geometry.Vec{}, false
	}

	probeRay := geometry.NewRay(viewer, inDir)
	for _, s := range w.Shapes {
		hit, ok := ClosestHit(s, probeRay)
		if ok && hit.T < 1 && !hit.WorldPoint.IsClose(surface, geometry.DefaultErrorTolerance) {
			return geometry.Vec{}, false
		}
	}
	return inDir, true
}
