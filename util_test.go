package juliaset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustRegion(t testing.TB, xLeft, xRight, yLeft, yRight float64) Region {
	t.Helper()
	r, err := NewRegion(xLeft, xRight, yLeft, yRight)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func mustField(t testing.TB, c0 complex128, threshold float64, iterations IterRange, resolution int) Field {
	t.Helper()
	f, err := NewField(c0, threshold, iterations, resolution)
	if err != nil {
		t.Fatal(err)
	}
	return f
}
