package colors

import (
	"fmt"
	"math"
)

// HdrImage is a width x height row-major float-RGB pixel grid. Pixels are
// stored in row-major order, row 0 first.
type HdrImage struct {
	Width, Height int
	pixels        []Color
}

// NewHdrImage allocates a black image of the given dimensions.
func NewHdrImage(width, height int) *HdrImage {
	return &HdrImage{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
	}
}

func (img *HdrImage) validCoordinates(col, row int) bool {
	return col >= 0 && col < img.Width && row >= 0 && row < img.Height
}

func (img *HdrImage) pixelOffset(col, row int) int {
	return row*img.Width + col
}

// SetPixel stores c at (col, row). It panics on an out-of-bounds index, as
// this always indicates a programming error in the caller.
func (img *HdrImage) SetPixel(col, row int, c Color) {
	if !img.validCoordinates(col, row) {
		panic(fmt.Sprintf("hdrimage: pixel (%d, %d) out of bounds for %dx%d image", col, row, img.Width, img.Height))
	}
	img.pixels[img.pixelOffset(col, row)] = c
}

// GetPixel returns the color stored at (col, row).
func (img *HdrImage) GetPixel(col, row int) Color {
	if !img.validCoordinates(col, row) {
		panic(fmt.Sprintf("hdrimage: pixel (%d, %d) out of bounds for %dx%d image", col, row, img.Width, img.Height))
	}
	return img.pixels[img.pixelOffset(col, row)]
}

// ForEachPixel calls fn once per pixel in row-major order with its
// coordinates and current color.
func (img *HdrImage) ForEachPixel(fn func(col, row int, c Color)) {
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			fn(col, row, img.GetPixel(col, row))
		}
	}
}

// AverageLuminosity computes the average luminosity of the image using a
// logarithmic mean with floor delta (to avoid log(0)).
func (img *HdrImage) AverageLuminosity(delta float64) float64 {
	if delta <= 0 {
		delta = 1e-10
	}
	sum := 0.0
	for _, c := range img.pixels {
		sum += math.Log10(delta + c.Luminosity())
	}
	return math.Pow(10, sum/float64(len(img.pixels)))
}

// Normalize rescales every pixel by a/average, where average is the image's
// AverageLuminosity(delta).
func (img *HdrImage) Normalize(a, delta float64) {
	avg := img.AverageLuminosity(delta)
	if avg == 0 {
		return
	}
	factor := a / avg
	for i, c := range img.pixels {
		img.pixels[i] = c.Scale(factor)
	}
}

// ClampChannels applies the x/(1+x) tone-compression curve to every
// channel of every pixel.
func (img *HdrImage) ClampChannels() {
	clamp := func(x float64) float64 { return x / (1 + x) }
	for i, c := range img.pixels {
		img.pixels[i] = Color{clamp(c.R), clamp(c.G), clamp(c.B)}
	}
}
