package renderer

import (
	"math"

	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/material"
	"github.com/matteoilardi/goray/pkg/shapes"
)

// PointLightTracer shades hits with a fixed ambient term plus a direct
// contribution from every visible point light source. Specular hits are
// followed through their mirror bounce before shading.
type PointLightTracer struct {
	World      *shapes.World
	Ambient    colors.Color
	Background colors.Color
}

func NewPointLightTracer(world *shapes.World, ambient, background colors.Color) *PointLightTracer {
	return &PointLightTracer{World: world, Ambient: ambient, Background: background}
}

func (t *PointLightTracer) Trace(ray geometry.Ray) colors.Color {
	var hit shapes.HitRecord
	for {
		var ok bool
		hit, ok = t.World.RayIntersection(ray)
		if !ok {
			return t.Background
		}

		if _, isSpecular := hit.Material.BRDF.(*material.SpecularBRDF); !isSpecular {
			break
		}
		ray = hit.Material.BRDF.ScatterRay(nil, ray.Direction, hit.WorldPoint, hit.Normal, ray.Depth)
	}

	cumRadiance := t.Ambient.Add(hit.Material.EmittedRadiance.At(hit.SurfacePoint))

	for _, source := range t.World.Lights {
		inDir, visible := t.World.OffsetIfVisible(source.Point, hit.WorldPoint, hit.Normal)
		if !visible {
			continue
		}

		distance := inDir.Norm()
		distanceFactor := 1.0
		if source.EmissionRadius > 0 {
			distanceFactor = math.Pow(source.EmissionRadius/distance, 2)
		}

		cosTheta := (-1.0 / distance) * hit.Normal.Dot(inDir) / hit.Normal.Norm()
		if cosTheta < 0 {
			continue
		}
		outDir := hit.Ray.Direction.Negate()
		contribution := hit.Material.BRDF.Eval(hit.Normal, inDir, outDir, hit.SurfacePoint)
		cumRadiance = cumRadiance.Add(source.Color.Scale(distanceFactor * cosTheta).Multiply(contribution))
	}

	return cumRadiance
}
