// Package preview displays divergence fields in a terminal, one grayscale
// cell per sample region.
package preview

import (
	"errors"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/amorison/juliaset"
	"github.com/amorison/juliaset/internal/raster"
)

// ErrNotTerminal is returned by [Show] when standard output isn't a
// terminal.
var ErrNotTerminal = errors.New("standard output is not a terminal")

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 0.5

// Fit returns the number of columns and rows needed to display a field of
// the given shape within a termW×termH terminal, preserving its aspect ratio.
// Fields are never upsampled.
func Fit(shape juliaset.Shape, termW, termH int) (w, h int) {
	if shape.X <= 0 || shape.Y <= 0 || termW <= 0 || termH <= 0 {
		return 0, 0
	}
	rowsPerCol := float64(shape.Y) / float64(shape.X) * cellAspect
	w = min(termW, shape.X)
	h = int(math.Round(float64(w) * rowsPerCol))
	if h > termH {
		h = termH
		w = int(math.Round(float64(h) / rowsPerCol))
	}
	return min(max(w, 1), termW), min(max(h, 1), termH)
}

// Sample reduces field to w×h luminance values by nearest-neighbour sampling
// at the center of each cell. Cell (x, y) is at index y*w+x; x runs along
// axis 0 of the field.
func Sample(field juliaset.Intensity, w, h int) []uint8 {
	shape := field.Shape()
	if w <= 0 || h <= 0 || shape.Len() == 0 {
		return nil
	}
	out := make([]uint8, w*h)
	for y := range h {
		j := min((y*shape.Y+shape.Y/2)/h, shape.Y-1)
		for x := range w {
			i := min((x*shape.X+shape.X/2)/w, shape.X-1)
			out[y*w+x] = raster.Luminance(field.At(i, j))
		}
	}
	return out
}

// Draw clears s and paints field centered on it. It doesn't call Show.
func Draw(s tcell.Screen, field juliaset.Intensity) {
	s.Clear()
	termW, termH := s.Size()
	w, h := Fit(field.Shape(), termW, termH)
	lum := Sample(field, w, h)
	offX, offY := (termW-w)/2, (termH-h)/2
	for y := range h {
		for x := range w {
			v := int32(lum[y*w+x])
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(v, v, v))
			s.SetContent(offX+x, offY+y, ' ', nil, style)
		}
	}
}

// Show displays field in the terminal until q, Escape or Ctrl-C is pressed.
func Show(field juliaset.Intensity) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	run(s, field)
	return nil
}

func run(s tcell.Screen, field juliaset.Intensity) {
	Draw(s, field)
	s.Show()
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				return
			}
		case *tcell.EventResize:
			s.Sync()
			Draw(s, field)
			s.Show()
		}
	}
}
