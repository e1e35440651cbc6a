package renderer

import (
	"math"

	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/random"
	"github.com/matteoilardi/goray/pkg/shapes"
)

// PathTracer is an unbiased Monte Carlo path tracer: at each bounce it
// importance-samples the hit BRDF, recurses, and terminates stochastically
// past RRLim bounces via Russian roulette.
type PathTracer struct {
	World      *shapes.World
	RNG        *random.PCG
	NRays      int
	RRLim      int
	MaxDepth   int
	Background colors.Color
}

func NewPathTracer(world *shapes.World, rng *random.PCG, nRays, rrLim, maxDepth int, background colors.Color) *PathTracer {
	if rng == nil {
		rng = random.NewDefaultPCG()
	}
	return &PathTracer{World: world, RNG: rng, NRays: nRays, RRLim: rrLim, MaxDepth: maxDepth, Background: background}
}

func (t *PathTracer) Trace(ray geometry.Ray) colors.Color {
	if ray.Depth > t.MaxDepth {
		return colors.Black
	}

	hit, ok := t.World.RayIntersection(ray)
	if !ok {
		return t.Background
	}

	reflectedColor := hit.Material.BRDF.Pigment().At(hit.SurfacePoint)
	emittedRadiance := hit.Material.EmittedRadiance.At(hit.SurfacePoint)
	hitLum := math.Max(reflectedColor.R, math.Max(reflectedColor.G, reflectedColor.B))

	survivalFactor := 1.0
	if ray.Depth > t.RRLim {
		q := math.Max(1-hitLum, 0.05)
		if t.RNG.RandomFloat() <= q {
			return emittedRadiance
		}
		survivalFactor = 1 / (1 - q)
	}

	cumRadiance := colors.Black
	if hitLum > 0 {
		for i := 0; i < t.NRays; i++ {
			scattered := hit.Material.BRDF.ScatterRay(t.RNG, ray.Direction, hit.WorldPoint, hit.Normal, ray.Depth)
			cumRadiance = cumRadiance.Add(t.Trace(scattered))
		}
		cumRadiance = cumRadiance.Scale(survivalFactor / float64(t.NRays)).Multiply(reflectedColor)
	}

	return cumRadiance.Add(emittedRadiance)
}
