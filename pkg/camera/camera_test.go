package camera

import (
	"testing"

	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestOrthogonalCameraCornerRays(t *testing.T) {
	cam := NewOrthogonalCamera(2, geometry.Identity())

	cases := []struct {
		u, v float64
		want geometry.Point
	}{
		{0, 0, geometry.NewPoint(0, 2, -1)},
		{1, 0, geometry.NewPoint(0, -2, -1)},
		{0, 1, geometry.NewPoint(0, 2, 1)},
		{1, 1, geometry.NewPoint(0, -2, 1)},
	}
	for _, c := range cases {
		ray := cam.FireRay(c.u, c.v)
		got := ray.At(1)
		assert.InDelta(t, c.want.X, got.X, 1e-9)
		assert.InDelta(t, c.want.Y, got.Y, 1e-9)
		assert.InDelta(t, c.want.Z, got.Z, 1e-9)
	}
}

func TestImageOrientationWithPerspectiveCamera(t *testing.T) {
	img := colors.NewHdrImage(4, 2)
	cam := NewPerspectiveCamera(1, 2, geometry.Identity())
	tracer := NewImageTracer(img, cam)

	topLeft := tracer.FireRay(0, 0, 0, 0).At(1)
	assert.InDelta(t, 0.0, topLeft.X, 1e-9)
	assert.InDelta(t, 2.0, topLeft.Y, 1e-9)
	assert.InDelta(t, 1.0, topLeft.Z, 1e-9)

	bottomRight := tracer.FireRay(3, 1, 1, 1).At(1)
	assert.InDelta(t, 0.0, bottomRight.X, 1e-9)
	assert.InDelta(t, -2.0, bottomRight.Y, 1e-9)
	assert.InDelta(t, -1.0, bottomRight.Z, 1e-9)
}

func TestFireAllRaysAveragesStratifiedSamples(t *testing.T) {
	img := colors.NewHdrImage(2, 2)
	cam := NewOrthogonalCamera(1, geometry.Identity())
	tracer := NewImageTracer(img, cam)
	tracer.SamplesPerPixelEdge = 4

	var columnsSeen []float64
	completed := tracer.FireAllRays(func(ray geometry.Ray) colors.Color {
		return colors.White
	}, func(progress float64) bool {
		columnsSeen = append(columnsSeen, progress)
		return true
	})
	assert.True(t, completed)

	for col := 0; col < img.Width; col++ {
		for row := 0; row < img.Height; row++ {
			assert.Equal(t, colors.White, img.GetPixel(col, row))
		}
	}
	assert.Equal(t, []float64{0.5, 1.0}, columnsSeen)
}

func TestFireAllRaysStopsWhenProgressRequestsCancellation(t *testing.T) {
	img := colors.NewHdrImage(4, 1)
	cam := NewOrthogonalCamera(1, geometry.Identity())
	tracer := NewImageTracer(img, cam)

	completed := tracer.FireAllRays(func(ray geometry.Ray) colors.Color {
		return colors.White
	}, func(progress float64) bool {
		return progress < 0.5
	})
	assert.False(t, completed)

	assert.Equal(t, colors.White, img.GetPixel(0, 0))
	assert.Equal(t, colors.White, img.GetPixel(1, 0))
	assert.Equal(t, colors.Black, img.GetPixel(2, 0))
	assert.Equal(t, colors.Black, img.GetPixel(3, 0))
}
