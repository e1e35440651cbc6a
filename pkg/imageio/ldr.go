package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/matteoilardi/goray/pkg/colors"
)

// WriteLDR normalizes img by aFactor against its average luminosity
// (floored by delta), clamps every channel through x/(1+x), gamma-corrects
// with the given gamma, and PNG-encodes the result. img itself is left
// untouched; normalization and clamping run on a private copy.
func WriteLDR(w io.Writer, img *colors.HdrImage, aFactor, gamma, delta float64) error {
	toneMapped := cloneImage(img)
	toneMapped.Normalize(aFactor, delta)
	toneMapped.ClampChannels()

	ldr := image.NewRGBA(image.Rect(0, 0, toneMapped.Width, toneMapped.Height))
	invGamma := 1 / gamma
	toneMapped.ForEachPixel(func(col, row int, c colors.Color) {
		ldr.Set(col, row, color.RGBA{
			R: gammaByte(c.R, invGamma),
			G: gammaByte(c.G, invGamma),
			B: gammaByte(c.B, invGamma),
			A: 255,
		})
	})
	return png.Encode(w, ldr)
}

// WriteLDRFile creates path and writes the tone-mapped, gamma-corrected
// PNG for img to it.
func WriteLDRFile(path string, img *colors.HdrImage, aFactor, gamma, delta float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteLDR(f, img, aFactor, gamma, delta)
}

func gammaByte(x, invGamma float64) uint8 {
	v := math.Pow(x, invGamma)*255 + 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func cloneImage(img *colors.HdrImage) *colors.HdrImage {
	clone := colors.NewHdrImage(img.Width, img.Height)
	img.ForEachPixel(func(col, row int, c colors.Color) { clone.SetPixel(col, row, c) })
	return clone
}
