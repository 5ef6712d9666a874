package raster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/amorison/juliaset"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func over(t *testing.T, c0 complex128, resolution int, xLeft, xRight, yLeft, yRight float64) juliaset.Intensity {
	t.Helper()
	r, err := juliaset.NewRegion(xLeft, xRight, yLeft, yRight)
	if err != nil {
		t.Fatal(err)
	}
	f, err := juliaset.NewField(c0, 2, juliaset.IterRange{Min: 0, Max: 10}, resolution)
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Over(r)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestLuminance(t *testing.T) {
	f := func(v float64, want uint8) {
		t.Helper()
		if got := Luminance(v); got != want {
			t.Errorf("got %d for %v, want %d", got, v, want)
		}
	}
	f(0, 0)
	f(1, 255)
	f(0.1, 25)
	f(0.5, 127)
	f(0.999, 254)
}

func TestGray(t *testing.T) {
	field := over(t, 0, 4, -1, 1, -1, 1)
	img, err := Gray(field)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, image.Rect(0, 0, 4, 4), img.Bounds())
	if v := img.GrayAt(0, 0).Y; v != 25 {
		t.Errorf("got %d at (0, 0), want 25", v)
	}
	if v := img.GrayAt(2, 2).Y; v != 255 {
		t.Errorf("got %d at (2, 2), want 255", v)
	}
}

func TestGrayAxes(t *testing.T) {
	// 8 samples along the real axis, 4 along the imaginary axis.
	field := over(t, complex(-0.4, 0.6), 8, -2, 2, 1, -1)
	img, err := Gray(field)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, image.Rect(0, 0, 8, 4), img.Bounds())
	for idx, v := range field.All() {
		if got, want := img.GrayAt(idx.I, idx.J).Y, Luminance(v); got != want {
			t.Errorf("got %d at (%d, %d), want %d", got, idx.I, idx.J, want)
		}
	}
}

func TestGrayEmpty(t *testing.T) {
	img, err := Gray(over(t, 0, 0, -1, 1, -1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !img.Bounds().Empty() {
		t.Errorf("got bounds %v, want empty", img.Bounds())
	}
}

func TestEncode(t *testing.T) {
	img, err := Gray(over(t, complex(-0.835, -0.2321), 40, -1.6, 1.6, 1, -1))
	if err != nil {
		t.Fatal(err)
	}
	for _, preset := range []Preset{Best, Fast} {
		t.Run(preset.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, preset); err != nil {
				t.Fatal(err)
			}
			decoded, err := png.Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}
			gray, ok := decoded.(*image.Gray)
			if !ok {
				t.Fatalf("decoded %T, want *image.Gray", decoded)
			}
			diff(t, img.Bounds(), gray.Bounds())
			diff(t, img.Pix, gray.Pix)
		})
	}
}

func TestPresetString(t *testing.T) {
	diff(t, []string{"best", "fast", "Preset(7)"}, []string{Best.String(), Fast.String(), Preset(7).String()})
}
