// Package raster turns divergence fields into 8-bit grayscale images.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/amorison/juliaset"
)

// Preset selects the PNG compression level.
type Preset int

const (
	// Best produces the smallest files.
	Best Preset = iota
	// Fast trades file size for encoding speed.
	Fast
)

func (p Preset) String() string {
	switch p {
	case Best:
		return "best"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

func (p Preset) compressionLevel() png.CompressionLevel {
	switch p {
	case Best:
		return png.BestCompression
	case Fast:
		return png.BestSpeed
	default:
		panic(fmt.Sprintf("invalid preset %d", int(p)))
	}
}

// Luminance maps an intensity in [0, 1] to an 8-bit value by scaling it by
// 255 and truncating.
func Luminance(v float64) uint8 {
	return uint8(v * 255)
}

// Gray converts a field to an image. Axis 0 of the field becomes the image's
// columns and axis 1 its rows, so that element (i, j) is the pixel at x = i,
// y = j.
//
// It fails with [juliaset.ErrUnrepresentable] if the image's width or height
// doesn't fit in 32 bits.
func Gray(field juliaset.Intensity) (*image.Gray, error) {
	s := field.Shape()
	if uint64(s.X) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: image width %d doesn't fit in 32 bits", juliaset.ErrUnrepresentable, s.X)
	}
	if uint64(s.Y) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: image height %d doesn't fit in 32 bits", juliaset.ErrUnrepresentable, s.Y)
	}

	// The transposed field is row-major in image coordinates, which is the
	// layout of image.Gray.
	t := field.Transpose()
	img := image.NewGray(image.Rect(0, 0, s.X, s.Y))
	for k, v := range t.Values() {
		img.Pix[k] = Luminance(v)
	}
	return img, nil
}

// Encode writes img to w as a PNG, compressed according to preset.
func Encode(w io.Writer, img image.Image, preset Preset) error {
	enc := png.Encoder{CompressionLevel: preset.compressionLevel()}
	return enc.Encode(w, img)
}
