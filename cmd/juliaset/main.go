// Command juliaset renders the escape-time divergence of z ↦ z² + c₀ over a
// rectangle of the complex plane as a grayscale PNG.
//
// Usage examples:
//
//	# Default region and constant, written to plot.png
//	juliaset
//
//	# Higher resolution with a different constant
//	juliaset -R 2000 -r -0.4 -i 0.6 -o julia.png
//
//	# Quick look in the terminal, faster PNG compression
//	juliaset -fast -preview
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/amorison/juliaset"
	"github.com/amorison/juliaset/internal/preview"
	"github.com/amorison/juliaset/internal/raster"
)

type config struct {
	resolution    int
	xLeft, xRight float64
	yBot, yTop    float64
	real, imag    float64
	threshold     float64
	iterMin       int
	iterMax       int
	fast          bool

	output  string
	workers int
	preview bool
	verbose bool
}

func defaultConfig() config {
	return config{
		resolution: 500,
		xLeft:      -1.6,
		xRight:     1.6,
		yBot:       -1.0,
		yTop:       1.0,
		real:       -0.835,
		imag:       -0.2321,
		threshold:  2.0,
		iterMin:    5,
		iterMax:    80,
		output:     "plot.png",
	}
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("juliaset", flag.ContinueOnError)
	fs.SetOutput(stderr)

	intVar := func(p *int, long, short string, usage string) {
		fs.IntVar(p, long, *p, usage)
		fs.IntVar(p, short, *p, "Shorthand for -"+long)
	}
	floatVar := func(p *float64, long, short string, usage string) {
		fs.Float64Var(p, long, *p, usage)
		fs.Float64Var(p, short, *p, "Shorthand for -"+long)
	}
	intVar(&cfg.resolution, "resolution", "R", "Number of pixels in real (x) direction")
	floatVar(&cfg.xLeft, "xleft", "x", "Real (x) value on left side of image")
	floatVar(&cfg.xRight, "xright", "X", "Real (x) value on right side of image")
	floatVar(&cfg.yBot, "ybot", "y", "Imaginary (y) value on bottom side of image")
	floatVar(&cfg.yTop, "ytop", "Y", "Imaginary (y) value on top side of image")
	floatVar(&cfg.real, "real", "r", "Real part of constant")
	floatVar(&cfg.imag, "imag", "i", "Imaginary part of constant")
	floatVar(&cfg.threshold, "threshold", "t", "Threshold for divergence")
	intVar(&cfg.iterMin, "itermin", "m", "Minimum number of iterations for coloring")
	intVar(&cfg.iterMax, "itermax", "M", "Maximum number of iterations")
	fs.BoolVar(&cfg.fast, "fast", cfg.fast, "Faster PNG encoding with a lower compression ratio")
	fs.StringVar(&cfg.output, "o", cfg.output, "Output PNG file ('-' for stdout)")
	fs.IntVar(&cfg.workers, "workers", cfg.workers, "Number of goroutines computing the field (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.preview, "preview", cfg.preview, "Display the result in the terminal")
	fs.BoolVar(&cfg.verbose, "v", cfg.verbose, "Log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %q\n", fs.Args())
		fs.Usage()
		return config{}, errors.Errorf("unexpected arguments %q", fs.Args())
	}
	return cfg, nil
}

// region returns the rectangle to sample. The imaginary bounds are passed
// top first so that increasing grid indices along the imaginary axis walk
// down the image, row by row.
func (c config) region() (juliaset.Region, error) {
	return juliaset.NewRegion(c.xLeft, c.xRight, c.yTop, c.yBot)
}

func (c config) field() (juliaset.Field, error) {
	return juliaset.NewField(
		complex(c.real, c.imag),
		c.threshold,
		juliaset.IterRange{Min: c.iterMin, Max: c.iterMax},
		c.resolution,
	)
}

func (c config) preset() raster.Preset {
	if c.fast {
		return raster.Fast
	}
	return raster.Best
}

func setupLogging(verbose bool, w io.Writer) {
	log.SetPrefix("juliaset: ")
	log.SetFlags(0)
	if verbose {
		log.SetOutput(w)
	} else {
		log.SetOutput(io.Discard)
	}
}

func run(cfg config) error {
	region, err := cfg.region()
	if err != nil {
		return errors.Wrap(err, "invalid region")
	}
	field, err := cfg.field()
	if err != nil {
		return errors.Wrap(err, "invalid field")
	}

	t := time.Now()
	out, err := field.OverOpt(region, cfg.workers)
	if err != nil {
		return errors.Wrapf(err, "sampling %v", region)
	}
	log.Printf("computed %v samples over %v in %v", out.Shape(), region, time.Since(t))

	img, err := raster.Gray(out)
	if err != nil {
		return errors.Wrap(err, "converting to image")
	}
	t = time.Now()
	if err := writeImage(cfg.output, img, cfg.preset()); err != nil {
		return err
	}
	log.Printf("wrote %v image to %s (%v compression) in %v", img.Bounds().Size(), cfg.output, cfg.preset(), time.Since(t))

	if cfg.preview {
		if err := preview.Show(out); err != nil {
			return errors.Wrap(err, "preview")
		}
	}
	return nil
}

func writeImage(path string, img image.Image, preset raster.Preset) error {
	if path == "-" {
		return errors.Wrap(raster.Encode(os.Stdout, img, preset), "encoding image")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := raster.Encode(f, img, preset); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}
	setupLogging(cfg.verbose, os.Stderr)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "juliaset: %v\n", err)
		os.Exit(1)
	}
}
