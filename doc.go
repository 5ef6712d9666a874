// Package juliaset computes escape-time divergence fields of the quadratic
// map f(z) = z² + c₀ over rectangular regions of the complex plane. Rendered as
// grayscale images, these fields show filled Julia sets.
//
// # Regions and grids
//
// A [Region] is a rectangle in the complex plane described by four bounds.
// [Region.Build] discretizes it into a [Grid], a two-dimensional array of
// evenly spaced sample points. Axis 0 of the grid runs along the real
// direction and has the requested resolution; the length of axis 1 follows
// from the region's aspect ratio (see [Region.GridShape]).
//
// The bounds of a region are ordered. Sampling starts at XLeft and YLeft,
// includes them, and stops short of XRight and YRight. Passing the bounds of
// an axis in decreasing order mirrors the grid along that axis. Image writers
// use this to put the top of the picture, the largest imaginary part, in the
// first row:
//
//	r, err := juliaset.NewRegion(-1.6, 1.6, 1.0, -1.0)
//
// # Divergence fields
//
// A [Field] holds the constant c₀, the escape radius, the range of iteration
// counts to normalize and the resolution to sample regions at. For a starting
// point z, the map is applied repeatedly, and the number of iterations i
// completed before |z| exceeded the escape radius is recorded, up to
// Iterations.Max. Note that the map is applied once before the first test.
// The count is then clamped and normalized:
//
//	(max(i, Min) − Min) / (Max − Min)
//
// Points that escape early map to 0, points that never escape map to 1.
//
// [Field.Over] combines both steps. Since every point is independent,
// evaluation is spread over several goroutines; see [Field.EvalOpt].
//
// # Errors
//
// Invalid configurations are rejected when values are constructed by
// [NewRegion] and [NewField]. The errors they return wrap
// [ErrDegenerateRegion], [ErrInvalidIterRange], [ErrInvalidThreshold] and
// [ErrInvalidResolution]. Dimensions that can't be represented as an int,
// such as the grid shape of a very narrow region, wrap [ErrUnrepresentable].
//
// Both types export their fields, so values can also be written as struct
// literals. [Region.Build], [Region.GridShape] and [Field.Over] check such
// values again and return the same errors. [Field.Escape] and [Field.Eval]
// have no error result and panic instead.
//
// # Rounding
//
// The number of samples along the imaginary axis is resolutionX·YSpan/XSpan
// rounded with [math.Round], which rounds halves away from zero. A 2×1
// region sampled with a resolution of 5 thus has a 5×3 grid.
package juliaset
