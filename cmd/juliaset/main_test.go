package main

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/amorison/juliaset"
	"github.com/amorison/juliaset/internal/raster"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, defaultConfig(), cfg, cmp.AllowUnexported(config{}))
}

func TestParseArgs(t *testing.T) {
	args := []string{
		"-R", "64",
		"-xleft=-2", "-X", "2",
		"-ybot", "-1.5", "-Y", "1.5",
		"-r", "-0.4", "-imag", "0.6",
		"-t", "4",
		"-m", "0", "-itermax", "20",
		"-fast", "-o", "out.png", "-workers", "3", "-v",
	}
	cfg, err := parseArgs(args, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		resolution: 64,
		xLeft:      -2,
		xRight:     2,
		yBot:       -1.5,
		yTop:       1.5,
		real:       -0.4,
		imag:       0.6,
		threshold:  4,
		iterMin:    0,
		iterMax:    20,
		fast:       true,
		output:     "out.png",
		workers:    3,
		verbose:    true,
	}
	diff(t, want, cfg, cmp.AllowUnexported(config{}))
	if p := cfg.preset(); p != raster.Fast {
		t.Errorf("got preset %v, want %v", p, raster.Fast)
	}
}

func TestParseArgsErrors(t *testing.T) {
	var stderr bytes.Buffer
	if _, err := parseArgs([]string{"-h"}, &stderr); err != flag.ErrHelp {
		t.Errorf("got error %v for -h, want %v", err, flag.ErrHelp)
	}
	if !strings.Contains(stderr.String(), "-itermax") {
		t.Errorf("usage doesn't mention -itermax:\n%s", stderr.String())
	}
	if _, err := parseArgs([]string{"-R", "many"}, io.Discard); err == nil {
		t.Error("expected error for non-numeric resolution")
	}
	if _, err := parseArgs([]string{"extra"}, io.Discard); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRegionTopFirst(t *testing.T) {
	cfg := defaultConfig()
	r, err := cfg.region()
	if err != nil {
		t.Fatal(err)
	}
	want := juliaset.Region{XLeft: -1.6, XRight: 1.6, YLeft: 1, YRight: -1}
	if r != want {
		t.Errorf("got region %v, want %v", r, want)
	}
}

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.resolution = 32
	cfg.real, cfg.imag = -0.4, 0.6
	cfg.output = filepath.Join(t.TempDir(), "plot.png")
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	img, ok := decoded.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", decoded)
	}
	// 32 · 2/3.2 = 20 rows
	diff(t, image.Rect(0, 0, 32, 20), img.Bounds())

	// The first row holds the top of the region, the largest imaginary part.
	field, err := cfg.field()
	if err != nil {
		t.Fatal(err)
	}
	for y := range 20 {
		for x := range 32 {
			re := float64(x)/32*(cfg.xRight-cfg.xLeft) + cfg.xLeft
			im := float64(y)/20*(cfg.yBot-cfg.yTop) + cfg.yTop
			want := raster.Luminance(field.Escape(complex(re, im)))
			if got := img.GrayAt(x, y).Y; got != want {
				t.Errorf("got %d at (%d, %d), want %d", got, x, y, want)
			}
		}
	}
}

func TestRunInvalid(t *testing.T) {
	f := func(mod func(*config), want error) {
		t.Helper()
		cfg := defaultConfig()
		cfg.output = filepath.Join(t.TempDir(), "plot.png")
		mod(&cfg)
		err := run(cfg)
		if !errors.Is(err, want) {
			t.Errorf("got error %v, want %v", err, want)
		}
		if _, err := os.Stat(cfg.output); !os.IsNotExist(err) {
			t.Errorf("output was written despite invalid configuration")
		}
	}
	f(func(c *config) { c.iterMin = 80 }, juliaset.ErrInvalidIterRange)
	f(func(c *config) { c.yTop = c.yBot }, juliaset.ErrDegenerateRegion)
	f(func(c *config) { c.threshold = 0 }, juliaset.ErrInvalidThreshold)
	f(func(c *config) { c.resolution = -1 }, juliaset.ErrInvalidResolution)
}

func TestRunEncodeFailureRemovesOutput(t *testing.T) {
	cfg := defaultConfig()
	// 10 · 1/100 rounds to no rows at all, which PNG can't represent.
	cfg.resolution = 10
	cfg.xLeft, cfg.xRight = 0, 100
	cfg.yBot, cfg.yTop = 0, 1
	cfg.output = filepath.Join(t.TempDir(), "plot.png")
	if err := run(cfg); err == nil {
		t.Fatal("expected error for an image without rows")
	}
	if _, err := os.Stat(cfg.output); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: %v", err)
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		log.SetFlags(log.LstdFlags)
	})

	setupLogging(false, os.Stderr)
	if w := log.Writer(); w != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", w)
	}

	var buf bytes.Buffer
	setupLogging(true, &buf)
	log.Print("hello")
	if got := buf.String(); got != "juliaset: hello\n" {
		t.Errorf("got log output %q", got)
	}
}
