package camera

import (
	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/random"
)

// RaySolver evaluates the color carried back along a fired ray; renderers
// implement this to drive ImageTracer.FireAllRays.
type RaySolver func(ray geometry.Ray) colors.Color

// ProgressFunc is invoked once per completed column with the fraction of
// columns completed, (col+1)/width for the 0-based column col. It
// returns false to request cancellation: the tracer stops before the next
// column. It must not reenter the tracer.
type ProgressFunc func(progress float64) bool

// ImageTracer owns an HdrImage and a Camera and fires one ray per pixel
// (or k^2 stratified rays, when SamplesPerPixelEdge > 1, averaged together).
type ImageTracer struct {
	Image               *colors.HdrImage
	Camera              Camera
	SamplesPerPixelEdge int
	RNG                 *random.PCG
}

func NewImageTracer(image *colors.HdrImage, cam Camera) *ImageTracer {
	return &ImageTracer{Image: image, Camera: cam, SamplesPerPixelEdge: 1, RNG: random.NewDefaultPCG()}
}

// screenUV converts pixel indices and a sub-pixel offset into the camera's
// screen coordinates. (col+u_p)/width maps increasing columns to increasing
// u; the v mapping is flipped (1 - (row+v_p)/height) so that increasing row
// (downward in the image) corresponds to decreasing world-Z, matching the
// camera's convention that v rises toward +Z.
func (t *ImageTracer) screenUV(col, row int, uPixel, vPixel float64) (u, v float64) {
	u = (float64(col) + uPixel) / float64(t.Image.Width)
	v = 1 - (float64(row)+vPixel)/float64(t.Image.Height)
	return u, v
}

// FireRay returns the world-space ray through pixel (col, row) at sub-pixel
// offset (uPixel, vPixel), both nominally in [0,1).
func (t *ImageTracer) FireRay(col, row int, uPixel, vPixel float64) geometry.Ray {
	u, v := t.screenUV(col, row, uPixel, vPixel)
	return t.Camera.FireRay(u, v)
}

// FireAllRays evaluates solve at every pixel, averaging k^2 stratified
// sub-pixel samples when SamplesPerPixelEdge = k > 1, and reports progress
// after each completed column. It returns false if the progress callback
// requested cancellation, leaving the remaining columns black.
func (t *ImageTracer) FireAllRays(solve RaySolver, progress ProgressFunc) bool {
	k := t.SamplesPerPixelEdge
	if k < 1 {
		k = 1
	}

	for col := 0; col < t.Image.Width; col++ {
		for row := 0; row < t.Image.Height; row++ {
			var sum colors.Color
			if k == 1 {
				sum = solve(t.FireRay(col, row, 0.5, 0.5))
			} else {
				for i := 0; i < k; i++ {
					for j := 0; j < k; j++ {
						uOffset := (float64(i) + t.RNG.RandomFloat()) / float64(k)
						vOffset := (float64(j) + t.RNG.RandomFloat()) / float64(k)
						sum = sum.Add(solve(t.FireRay(col, row, uOffset, vOffset)))
					}
				}
				sum = sum.Scale(1 / float64(k*k))
			}
			t.Image.SetPixel(col, row, sum)
		}
		if progress != nil && !progress(float64(col+1)/float64(t.Image.Width)) {
			return false
		}
	}
	return true
}
