// Package material implements pigments (uv -> color functors) and BRDFs
// (diffuse, specular), combined into a Material that also carries emitted
// radiance.
package material

import (
	"math"

	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
)

// Pigment maps surface coordinates to a color.
type Pigment interface {
	At(uv geometry.Vec2d) colors.Color
}

// UniformPigment returns the same color everywhere.
type UniformPigment struct {
	Color colors.Color
}

func NewUniformPigment(c colors.Color) *UniformPigment { return &UniformPigment{Color: c} }

func (p *UniformPigment) At(uv geometry.Vec2d) colors.Color { return p.Color }

// CheckeredPigment alternates between two colors over an n x n grid.
type CheckeredPigment struct {
	Color1, Color2 colors.Color
	NIntervals     int
}

func NewCheckeredPigment(c1, c2 colors.Color, n int) *CheckeredPigment {
	return &CheckeredPigment{Color1: c1, Color2: c2, NIntervals: n}
}

func (p *CheckeredPigment) At(uv geometry.Vec2d) colors.Color {
	col := int(math.Floor(uv.U * float64(p.NIntervals)))
	row := int(math.Floor(uv.V * float64(p.NIntervals)))
	if (col+row)%2 == 0 {
		return p.Color1
	}
	return p.Color2
}

// ImagePigment reads the color off an HDR buffer, treating it as a simple
// nearest-pixel texture map. This is the optional Image pigment variant;
// the core renderer never depends on it.
type ImagePigment struct {
	Image *colors.HdrImage
}

func NewImagePigment(img *colors.HdrImage) *ImagePigment { return &ImagePigment{Image: img} }

func (p *ImagePigment) At(uv geometry.Vec2d) colors.Color {
	col := int(uv.U * float64(p.Image.Width))
	if col >= p.Image.Width {
		col = p.Image.Width - 1
	}
	if col < 0 {
		col = 0
	}
	row := int(uv.V * float64(p.Image.Height))
	if row >= p.Image.Height {
		row = p.Image.Height - 1
	}
	if row < 0 {
		row = 0
	}
	return p.Image.GetPixel(col, row)
}
