package display

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"tinygo.org/x/tinyfont"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

type fakeScreen struct {
	w, h   int16
	pixels map[[2]int16]color.RGBA
	shown  int
	err    error
}

func newFakeScreen(w, h int16) *fakeScreen {
	return &fakeScreen{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (s *fakeScreen) Size() (x, y int16) {
	return s.w, s.h
}

func (s *fakeScreen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.pixels[[2]int16{x, y}] = c
}

func (s *fakeScreen) Display() error {
	s.shown++
	return s.err
}

func (s *fakeScreen) lit() (n int, maxX, maxY int16) {
	for p, c := range s.pixels {
		if c == white {
			n++
			maxX, maxY = max(maxX, p[0]), max(maxY, p[1])
		}
	}
	return n, maxX, maxY
}

func TestPixelDriver(t *testing.T) {
	a := assert.New(t)
	s := newFakeScreen(128, 32)
	pd := NewPixelDriver(s, &tinyfont.TomThumb, white, black)
	opts := pd.Opts()
	a.Greater(opts.Width, uint8(0))
	a.Greater(opts.Height, uint8(0))
	a.Equal(DefaultOpts.FracDigits, opts.FracDigits)

	l := New(pd, opts)
	a.NoError(l.PrintLabeledFixed(0, 0, "", -81920, 16, true))
	n, maxX, maxY := s.lit()
	a.Greater(n, 0)
	a.Less(maxX, 5*pd.cellW)
	a.Less(maxY, 2*pd.cellH)
	a.Equal(2, s.shown)
	a.NoError(pd.Err())

	pd.ClearDisplay()
	n, _, _ = s.lit()
	a.Equal(0, n)

	s.err = errors.New("bus error")
	pd.Print([]byte("1"))
	a.Error(pd.Err())
}
