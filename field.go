package juliaset

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
)

var (
	// ErrInvalidIterRange is returned when an iteration range is empty or
	// starts below zero.
	ErrInvalidIterRange = errors.New("invalid iteration range")

	// ErrInvalidThreshold is returned when an escape radius isn't a positive,
	// finite number.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInvalidResolution is returned when a field's resolution is negative.
	ErrInvalidResolution = errors.New("invalid resolution")
)

// IterRange bounds the number of iterations counted by a [Field]. Points
// escaping after at most Min iterations map to 0, points that haven't escaped
// after Max iterations map to 1.
type IterRange struct {
	Min, Max int
}

func (r IterRange) String() string {
	return fmt.Sprintf("(%d, %d)", r.Min, r.Max)
}

// normalize maps an iteration count in [0, Max] to [0, 1].
func (r IterRange) normalize(i int) float64 {
	return float64(max(i, r.Min)-r.Min) / float64(r.Max-r.Min)
}

// Field describes the escape-time divergence of the quadratic map
// f(z) = z² + C0, as used to draw filled Julia sets.
type Field struct {
	// C0 is the constant of the map.
	C0 complex128
	// Threshold is the escape radius. A point has escaped once |z| exceeds it.
	Threshold float64
	// Iterations is the range of iteration counts that get normalized.
	Iterations IterRange
	// Resolution is the number of samples along the real axis used by
	// [Field.Over].
	Resolution int
}

// NewField returns a validated field. It fails with [ErrInvalidIterRange] if
// iterations.Min >= iterations.Max or iterations.Min < 0, with
// [ErrInvalidThreshold] if threshold isn't positive and finite, and with
// [ErrInvalidResolution] if resolution is negative.
func NewField(c0 complex128, threshold float64, iterations IterRange, resolution int) (Field, error) {
	f := Field{
		C0:         c0,
		Threshold:  threshold,
		Iterations: iterations,
		Resolution: resolution,
	}
	if err := f.validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// DefaultField returns the field of constant c0 with an escape radius of 2,
// iterations counted in [0, 50] and a resolution of 1000 samples.
func DefaultField(c0 complex128) Field {
	return Field{
		C0:         c0,
		Threshold:  2,
		Iterations: IterRange{Min: 0, Max: 50},
		Resolution: 1000,
	}
}

// validate checks the invariants established by [NewField].
func (f Field) validate() error {
	switch {
	case f.Iterations.Min < 0:
		return fmt.Errorf("%w: minimum of %v is negative", ErrInvalidIterRange, f.Iterations)
	case f.Iterations.Min >= f.Iterations.Max:
		return fmt.Errorf("%w: minimum of %v isn't below its maximum", ErrInvalidIterRange, f.Iterations)
	case !(f.Threshold > 0) || math.IsInf(f.Threshold, 0):
		return fmt.Errorf("%w: %g", ErrInvalidThreshold, f.Threshold)
	case f.Resolution < 0:
		return fmt.Errorf("%w: %d", ErrInvalidResolution, f.Resolution)
	}
	return nil
}

func (f Field) mustValidate() {
	if err := f.validate(); err != nil {
		panic(err)
	}
}

func normSquared(z complex128) float64 {
	x, y := real(z), imag(z)
	return x*x + y*y
}

// escape iterates the map starting from z and returns the normalized number
// of iterations after which |z|² exceeded thresholdSq.
//
// The map is applied before the first test, so every point is iterated at
// least once, and the count saturates at Iterations.Max.
func (f Field) escape(z complex128, thresholdSq float64) float64 {
	iterMax := f.Iterations.Max
	i := 0
	for {
		z = z*z + f.C0
		if i == iterMax || normSquared(z) > thresholdSq {
			break
		}
		i++
	}
	return f.Iterations.normalize(i)
}

// Escape returns the normalized escape time of a single point, in [0, 1].
// It panics if f doesn't satisfy the invariants checked by [NewField].
func (f Field) Escape(z complex128) float64 {
	f.mustValidate()
	return f.escape(z, f.Threshold*f.Threshold)
}

// Eval computes the normalized escape time of every point of g. The result
// has the same shape as g. It is equivalent to EvalOpt(g, 0), and panics if
// f doesn't satisfy the invariants checked by [NewField].
func (f Field) Eval(g Grid) Intensity {
	return f.EvalOpt(g, 0)
}

// EvalOpt is like [Field.Eval] but distributes the work over the given number
// of goroutines. Each goroutine handles a contiguous range of indices along
// axis 0. A non-positive number of workers uses [runtime.GOMAXPROCS].
//
// The result doesn't depend on the number of workers.
func (f Field) EvalOpt(g Grid, workers int) Intensity {
	f.mustValidate()
	out := newArray[float64](g.shape)
	if g.shape.Len() == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, g.shape.X)
	thresholdSq := f.Threshold * f.Threshold

	eval := func(from, to int) {
		for i := from; i < to; i++ {
			dst := out.row(i)
			for j, z := range g.row(i) {
				dst[j] = f.escape(z, thresholdSq)
			}
		}
	}
	if workers == 1 {
		eval(0, g.shape.X)
		return out
	}

	var wg sync.WaitGroup
	chunk := (g.shape.X + workers - 1) / workers
	for from := 0; from < g.shape.X; from += chunk {
		to := min(from+chunk, g.shape.X)
		wg.Add(1)
		go func() {
			defer wg.Done()
			eval(from, to)
		}()
	}
	wg.Wait()
	return out
}

// Over samples r with f.Resolution points along the real axis and computes
// the escape time of every sample. The grid is built exactly once.
//
// Unlike [Field.Eval], it reports a field or region that doesn't satisfy the
// invariants of [NewField] and [NewRegion] as an error.
func (f Field) Over(r Region) (Intensity, error) {
	return f.OverOpt(r, 0)
}

// OverOpt is like [Field.Over] but uses the given number of goroutines, as
// described for [Field.EvalOpt].
func (f Field) OverOpt(r Region, workers int) (Intensity, error) {
	if err := f.validate(); err != nil {
		return Intensity{}, err
	}
	g, err := r.Build(f.Resolution)
	if err != nil {
		return Intensity{}, err
	}
	return f.EvalOpt(g, workers), nil
}
