// Package renderer implements the four ray-to-color solvers: on/off,
// flat, point-light, and the Russian-roulette path tracer.
package renderer

import (
	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/shapes"
)

// Tracer evaluates the radiance carried back along a ray.
type Tracer interface {
	Trace(ray geometry.Ray) colors.Color
}

// OnOffTracer returns Foreground if the ray hits anything, else Background.
// Useful for cheap silhouette previews.
type OnOffTracer struct {
	World      *shapes.World
	Background colors.Color
	Foreground colors.Color
}

func NewOnOffTracer(world *shapes.World, background colors.Color) *OnOffTracer {
	return &OnOffTracer{World: world, Background: background, Foreground: colors.White}
}

func (t *OnOffTracer) Trace(ray geometry.Ray) colors.Color {
	if _, ok := t.World.FirstHit(ray); ok {
		return t.Foreground
	}
	return t.Background
}

// FlatTracer ignores lighting and simply sums a hit surface's pigment and
// emitted radiance at the hit point.
type FlatTracer struct {
	World      *shapes.World
	Background colors.Color
}

func NewFlatTracer(world *shapes.World, background colors.Color) *FlatTracer {
	return &FlatTracer{World: world, Background: background}
}

func (t *FlatTracer) Trace(ray geometry.Ray) colors.Color {
	hit, ok := t.World.RayIntersection(ray)
	if !ok {
		return t.Background
	}
	pigmentColor := hit.Material.BRDF.Pigment().At(hit.SurfacePoint)
	emitted := hit.Material.EmittedRadiance.At(hit.SurfacePoint)
	return pigmentColor.Add(emitted)
}
