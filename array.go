package juliaset

import (
	"fmt"
	"iter"
)

// Shape is the number of elements of a two-dimensional array along each of
// its axes. X is the length of axis 0 (the real direction), Y the length of
// axis 1 (the imaginary direction).
type Shape struct {
	X, Y int
}

func (s Shape) String() string {
	return fmt.Sprintf("%d×%d", s.X, s.Y)
}

// Len returns the total number of elements, X·Y.
func (s Shape) Len() int { return s.X * s.Y }

// Transpose returns the shape with its axes swapped.
func (s Shape) Transpose() Shape { return Shape{X: s.Y, Y: s.X} }

// Index addresses one element of an [Array].
type Index struct {
	I, J int
}

// Array is a dense two-dimensional array. Element (i, j) lives at position
// i*Y+j of the backing slice, so that all elements sharing an index along
// axis 0 are contiguous.
//
// Arrays are returned by value and expose no mutating methods; every Array
// produced by this package owns its backing storage.
type Array[T any] struct {
	shape Shape
	data  []T
}

// Grid is an array of sample points in the complex plane, as produced by
// [Region.Build].
type Grid = Array[complex128]

// Intensity is an array of normalized escape times in [0, 1], as produced by
// [Field.Eval] and [Field.Over].
type Intensity = Array[float64]

func newArray[T any](shape Shape) Array[T] {
	return Array[T]{
		shape: shape,
		data:  make([]T, shape.Len()),
	}
}

func (a Array[T]) Shape() Shape { return a.shape }
func (a Array[T]) Len() int     { return len(a.data) }

// At returns the element at (i, j). It panics if the index is out of range.
func (a Array[T]) At(i, j int) T {
	if i < 0 || i >= a.shape.X || j < 0 || j >= a.shape.Y {
		panic(fmt.Sprintf("index (%d, %d) out of range for shape %v", i, j, a.shape))
	}
	return a.data[i*a.shape.Y+j]
}

// row returns the backing storage of all elements with index i along axis 0.
func (a Array[T]) row(i int) []T {
	return a.data[i*a.shape.Y : (i+1)*a.shape.Y]
}

// Values returns a copy of all elements, ordered by index along axis 0 first.
func (a Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// All returns an iterator over all indices and elements of a, in the same
// order as [Array.Values].
func (a Array[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := range a.shape.X {
			for j, v := range a.row(i) {
				if !yield(Index{i, j}, v) {
					return
				}
			}
		}
	}
}

// Transpose returns a new array with the axes swapped, so that element (i, j)
// of a is element (j, i) of the result.
func (a Array[T]) Transpose() Array[T] {
	out := newArray[T](a.shape.Transpose())
	for i := range a.shape.X {
		for j, v := range a.row(i) {
			out.data[j*out.shape.Y+i] = v
		}
	}
	return out
}
