// Package imageio is the HDR/LDR I/O collaborator the core renderer never
// imports directly: a PFM reader/writer (both endiannesses) and an
// LDR tone-map + gamma + PNG encode path.
package imageio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/matteoilardi/goray/pkg/colors"
)

// readPfmToken reads the next whitespace-delimited token from the PFM
// text header (magic number, width, height, scale line).
func readPfmToken(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if sb.Len() == 0 {
				continue
			}
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// ReadPFM parses a PFM stream into an HdrImage. It accepts both the
// big-endian (scale > 0) and little-endian (scale < 0) conventions and
// un-flips the bottom-up pixel order PFM stores scanlines in.
func ReadPFM(r io.Reader) (*colors.HdrImage, error) {
	br := bufio.NewReader(r)

	magic, err := readPfmToken(br)
	if err != nil {
		return nil, newPfmFormatError("cannot read magic number: %v", err)
	}
	if magic != "PF" {
		return nil, newPfmFormatError("invalid magic number %q, expected \"PF\"", magic)
	}

	widthTok, err := readPfmToken(br)
	if err != nil {
		return nil, newPfmFormatError("cannot read width: %v", err)
	}
	width, err := strconv.Atoi(widthTok)
	if err != nil || width <= 0 {
		return nil, newPfmFormatError("invalid width %q", widthTok)
	}

	heightTok, err := readPfmToken(br)
	if err != nil {
		return nil, newPfmFormatError("cannot read height: %v", err)
	}
	height, err := strconv.Atoi(heightTok)
	if err != nil || height <= 0 {
		return nil, newPfmFormatError("invalid height %q", heightTok)
	}

	scaleTok, err := readPfmToken(br)
	if err != nil {
		return nil, newPfmFormatError("cannot read scale line: %v", err)
	}
	scale, err := strconv.ParseFloat(scaleTok, 64)
	if err != nil || scale == 0 {
		return nil, newPfmFormatError("invalid scale factor %q", scaleTok)
	}
	littleEndian := scale < 0

	img := colors.NewHdrImage(width, height)
	pixelBytes := make([]byte, 4)
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			var channel [3]float64
			for k := 0; k < 3; k++ {
				if _, err := io.ReadFull(br, pixelBytes); err != nil {
					return nil, newPfmFormatError("truncated pixel data at row %d col %d: %v", row, col, err)
				}
				var bits uint32
				if littleEndian {
					bits = binary.LittleEndian.Uint32(pixelBytes)
				} else {
					bits = binary.BigEndian.Uint32(pixelBytes)
				}
				channel[k] = float64(math.Float32frombits(bits))
			}
			img.SetPixel(col, row, colors.New(channel[0], channel[1], channel[2]))
		}
	}
	return img, nil
}

// ReadPFMFile opens path and parses it as a PFM image.
func ReadPFMFile(path string) (*colors.HdrImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPFM(f)
}

// WritePFM writes img in PFM format: magic "PF", a "W H" line, a scale
// line (+1.0 big-endian, -1.0 little-endian), then H scanlines of W RGB
// triples of 32-bit floats, stored bottom-up.
func WritePFM(w io.Writer, img *colors.HdrImage, littleEndian bool) error {
	scale := 1.0
	if littleEndian {
		scale = -1.0
	}
	if _, err := fmt.Fprintf(w, "PF\n%d %d\n%g\n", img.Width, img.Height, scale); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for row := img.Height - 1; row >= 0; row-- {
		for col := 0; col < img.Width; col++ {
			c := img.GetPixel(col, row)
			for _, ch := range [3]float64{c.R, c.G, c.B} {
				bits := math.Float32bits(float32(ch))
				if littleEndian {
					binary.LittleEndian.PutUint32(buf, bits)
				} else {
					binary.BigEndian.PutUint32(buf, bits)
				}
				if _, err := w.Write(buf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WritePFMFile creates path and writes img to it in PFM format.
func WritePFMFile(path string, img *colors.HdrImage, littleEndian bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WritePFM(f, img, littleEndian)
}
