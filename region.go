package juliaset

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateRegion is returned when a region has zero width or zero
	// height, or when one of its bounds isn't finite.
	ErrDegenerateRegion = errors.New("degenerate region")

	// ErrUnrepresentable is returned when a computed dimension doesn't fit in
	// the integer type it has to be stored in.
	ErrUnrepresentable = errors.New("dimension not representable")
)

// Region is a rectangle in the complex plane. XLeft and XRight bound the real
// part, YLeft and YRight the imaginary part.
//
// The bounds are ordered: sampling starts at XLeft and YLeft and proceeds
// towards XRight and YRight, which may be smaller than their counterparts.
// Swapping two bounds thus mirrors the sampled grid along that axis.
type Region struct {
	XLeft, XRight float64
	YLeft, YRight float64
}

// NewRegion returns the region spanning [xLeft, xRight) × [yLeft, yRight).
// It returns an error wrapping [ErrDegenerateRegion] if the region has no
// area or isn't finite.
func NewRegion(xLeft, xRight, yLeft, yRight float64) (Region, error) {
	r := Region{
		XLeft:  xLeft,
		XRight: xRight,
		YLeft:  yLeft,
		YRight: yRight,
	}
	if err := r.validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// validate checks the invariants established by [NewRegion]. Regions built
// as struct literals are checked again by [Region.GridShape].
func (r Region) validate() error {
	switch {
	case r.IsNaN() || r.IsInf():
		return fmt.Errorf("%w: bounds of %v must be finite", ErrDegenerateRegion, r)
	case math.IsInf(r.Width(), 0) || math.IsInf(r.Height(), 0):
		return fmt.Errorf("%w: extents of %v overflow", ErrDegenerateRegion, r)
	case r.XLeft == r.XRight:
		return fmt.Errorf("%w: real bounds are both %g", ErrDegenerateRegion, r.XLeft)
	case r.YLeft == r.YRight:
		return fmt.Errorf("%w: imaginary bounds are both %g", ErrDegenerateRegion, r.YLeft)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g)×[%g, %g)i", r.XLeft, r.XRight, r.YLeft, r.YRight)
}

// Width returns the region's signed width, defined as XRight − XLeft.
func (r Region) Width() float64 {
	return r.XRight - r.XLeft
}

// Height returns the region's signed height, defined as YRight − YLeft.
func (r Region) Height() float64 {
	return r.YRight - r.YLeft
}

// XSpan returns the absolute width of the region.
func (r Region) XSpan() float64 { return math.Abs(r.Width()) }

// YSpan returns the absolute height of the region.
func (r Region) YSpan() float64 { return math.Abs(r.Height()) }

// Span returns the absolute extents of the region.
func (r Region) Span() Size {
	return Sz(r.Width(), r.Height()).Abs()
}

// AspectRatio returns YSpan / XSpan.
func (r Region) AspectRatio() float64 {
	return r.Span().AspectRatio()
}

// Center returns the center point of the region.
func (r Region) Center() complex128 {
	return complex(0.5*(r.XLeft+r.XRight), 0.5*(r.YLeft+r.YRight))
}

// Contains reports whether z lies in the region. Like the sampling done by
// [Region.Build], the starting bounds are included and the far bounds are
// excluded, whichever their numerical order.
func (r Region) Contains(z complex128) bool {
	return between(real(z), r.XLeft, r.XRight) && between(imag(z), r.YLeft, r.YRight)
}

func between(v, from, to float64) bool {
	if from <= to {
		return v >= from && v < to
	}
	return v <= from && v > to
}

// IsInf returns true if any of the region's bounds is infinite.
func (r Region) IsInf() bool {
	return math.IsInf(r.XLeft, 0) ||
		math.IsInf(r.XRight, 0) ||
		math.IsInf(r.YLeft, 0) ||
		math.IsInf(r.YRight, 0)
}

// IsNaN returns true if any of the region's bounds is NaN.
func (r Region) IsNaN() bool {
	return math.IsNaN(r.XLeft) ||
		math.IsNaN(r.XRight) ||
		math.IsNaN(r.YLeft) ||
		math.IsNaN(r.YRight)
}

// GridShape returns the shape of the grid that [Region.Build] produces for
// the given resolution along the real axis. The resolution along the
// imaginary axis preserves the region's aspect ratio and is rounded to the
// nearest integer, with halves rounded away from zero.
//
// It returns an error wrapping [ErrDegenerateRegion] if r doesn't satisfy the
// invariants checked by [NewRegion].
func (r Region) GridShape(resolutionX int) (Shape, error) {
	if err := r.validate(); err != nil {
		return Shape{}, err
	}
	if resolutionX < 0 {
		return Shape{}, fmt.Errorf("%w: negative resolution %d", ErrUnrepresentable, resolutionX)
	}
	if resolutionX == 0 {
		return Shape{}, nil
	}
	ny := Sz(float64(resolutionX), float64(resolutionX)*r.AspectRatio()).Round().Height
	// float64(math.MaxInt) rounds up to 2⁶³, which itself isn't representable.
	if math.IsNaN(ny) || ny >= float64(math.MaxInt) {
		return Shape{}, fmt.Errorf("%w: %d samples along the real axis of %v need %g along the imaginary axis",
			ErrUnrepresentable, resolutionX, r, ny)
	}
	s := Shape{X: resolutionX, Y: int(ny)}
	if s.Y != 0 && s.X > math.MaxInt/s.Y {
		return Shape{}, fmt.Errorf("%w: grid of %v elements", ErrUnrepresentable, s)
	}
	return s, nil
}

// Build samples the region on an evenly spaced grid with resolutionX points
// along the real axis. Element (i, j) of the result is
//
//	XLeft + i/X·(XRight − XLeft) + (YLeft + j/Y·(YRight − YLeft))i
//
// where X×Y is the grid's shape as computed by [Region.GridShape]. The
// starting bounds are sampled, the far bounds are not.
func (r Region) Build(resolutionX int) (Grid, error) {
	shape, err := r.GridShape(resolutionX)
	if err != nil {
		return Grid{}, err
	}
	g := newArray[complex128](shape)
	nx, ny := float64(shape.X), float64(shape.Y)
	dx, dy := r.Width(), r.Height()
	for i := range shape.X {
		x := float64(i)/nx*dx + r.XLeft
		row := g.row(i)
		for j := range row {
			y := float64(j)/ny*dy + r.YLeft
			row[j] = complex(x, y)
		}
	}
	return g, nil
}
