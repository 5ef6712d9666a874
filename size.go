package juliaset

import (
	"fmt"
	"math"
)

// Size is the extent of a region of the complex plane, measured along the
// real (Width) and imaginary (Height) axes.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Abs returns a new size with non-negative width and height.
func (sz Size) Abs() Size {
	return Size{
		Width:  math.Abs(sz.Width),
		Height: math.Abs(sz.Height),
	}
}

// AspectRatio returns the height divided by the width.
//
// If the width is 0 the output will be "sign(height) * infinity". If the width
// and height are 0, the result will be NaN.
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}

// Round returns a new size with width and height rounded to the nearest
// integers, halves rounded away from zero.
func (sz Size) Round() Size {
	return Size{
		Width:  math.Round(sz.Width),
		Height: math.Round(sz.Height),
	}
}
