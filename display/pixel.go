package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// PixelDriver draws a character grid on a pixel display with a monospace font.
type PixelDriver struct {
	d      drivers.Displayer
	font   tinyfont.Fonter
	fg, bg color.RGBA

	cellW, cellH int16
	x, y         int16
	err          error
}

// NewPixelDriver returns a driver, which draws with font in fg over bg.
// The cell size is the width of "0" by the line advance of the font.
func NewPixelDriver(d drivers.Displayer, font tinyfont.Fonter, fg, bg color.RGBA) *PixelDriver {
	_, w := tinyfont.LineWidth(font, "0")
	return &PixelDriver{
		d:     d,
		font:  font,
		fg:    fg,
		bg:    bg,
		cellW: int16(w),
		cellH: int16(font.GetYAdvance()),
	}
}

// Opts returns DefaultOpts with the grid size of the display.
func (p *PixelDriver) Opts() Opts {
	opts := DefaultOpts
	w, h := p.d.Size()
	if p.cellW > 0 && p.cellH > 0 {
		opts.Width = uint8(min(w/p.cellW, 255))
		opts.Height = uint8(min(h/p.cellH, 255))
	}
	return opts
}

// Err returns the last error of the underlying display.
func (p *PixelDriver) Err() error {
	return p.err
}

func (p *PixelDriver) fill(x, y, w, h int16) {
	if f, ok := p.d.(rectFiller); ok {
		if err := f.FillRectangle(x, y, w, h, p.bg); err != nil {
			p.err = err
		}
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			p.d.SetPixel(px, py, p.bg)
		}
	}
}

func (p *PixelDriver) flush() {
	if err := p.d.Display(); err != nil {
		p.err = err
	}
}

// ClearDisplay fills the display with the background color.
func (p *PixelDriver) ClearDisplay() {
	w, h := p.d.Size()
	p.fill(0, 0, w, h)
	p.x, p.y = 0, 0
	p.flush()
}

// SetCursor moves the cursor to the cell (x, y).
func (p *PixelDriver) SetCursor(x, y uint8) {
	p.x, p.y = int16(x), int16(y)
}

// Print draws data from the cursor over blanked cells and advances the cursor.
func (p *PixelDriver) Print(data []byte) {
	if len(data) == 0 {
		return
	}
	px, py := p.x*p.cellW, p.y*p.cellH
	p.fill(px, py, int16(len(data))*p.cellW, p.cellH)
	// y is the baseline.
	tinyfont.WriteLine(p.d, p.font, px, py+p.cellH-1, string(data), p.fg)
	p.x += int16(len(data))
	p.flush()
}
