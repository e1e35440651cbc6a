package shapes

import (
	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
)

// PointLightSource is a point-like light used by the point-light renderer.
// Distance attenuation is (r0/d)^2 when EmissionRadius > 0, else 1 (a true
// point source with no falloff model).
type PointLightSource struct {
	Point          geometry.Point
	Color          colors.Color
	EmissionRadius float64
}

func NewPointLightSource(p geometry.Point, c colors.Color, emissionRadius float64) *PointLightSource {
	return &PointLightSource{Point: p, Color: c, EmissionRadius: emissionRadius}
}
