// Package display renders fixed-point readouts on a character display.
//
// The printer does not own a global display: it writes through the Driver it is given,
// which may be a HD44780 LCD on an I2C bus (see NewHD44780), a pixel display with
// a font (see PixelDriver), or an in-memory grid (see TextDriver).
package display

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	fixed "github.com/avdva/binfixed"
	su "github.com/avdva/binfixed/internal/strutil"
)

// ErrOutOfBounds is returned for cursor positions outside the display.
var ErrOutOfBounds = errors.New("position out of bounds")

// Driver is a character display.
// It is the method set of hd44780i2c.Device.
type Driver interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// Opts describes the display.
type Opts struct {
	// The I²C address of the display's backpack, used by NewHD44780.
	Address uint8
	// Width and Height are the numbers of columns and lines.
	Width, Height uint8
	// PageDelay is a pause after every printed page, so that it can be read.
	PageDelay time.Duration
	// FracDigits is the number of fractional digits for fixed-point values.
	FracDigits int
}

// DefaultOpts describes a 16x2 LCD with a PCF8574 backpack.
var DefaultOpts = Opts{
	Address:    0x27,
	Width:      16,
	Height:     2,
	FracDigits: 2,
}

// WithDefaults returns o with zero fields taken from DefaultOpts.
func (o Opts) WithDefaults() Opts {
	if o.Address == 0 {
		o.Address = DefaultOpts.Address
	}
	if o.Width == 0 {
		o.Width = DefaultOpts.Width
	}
	if o.Height == 0 {
		o.Height = DefaultOpts.Height
	}
	if o.FracDigits <= 0 {
		o.FracDigits = DefaultOpts.FracDigits
	}
	return o
}

// LCD prints labeled values on a Driver.
// It is not safe for concurrent use.
type LCD struct {
	drv   Driver
	opts  Opts
	sleep func(time.Duration)
	buf   []byte
}

// New returns an LCD printing on drv. Zero fields of opts are taken from DefaultOpts.
func New(drv Driver, opts Opts) *LCD {
	return &LCD{
		drv:   drv,
		opts:  opts.WithDefaults(),
		sleep: time.Sleep,
	}
}

// Opts returns the options of the display.
func (l *LCD) Opts() Opts {
	return l.opts
}

// Write prints text at (x, y), optionally clearing the display first.
// The text is clipped at the right edge.
func (l *LCD) Write(x, y uint8, text string, clear bool) error {
	return l.write(x, y, append(l.buf[:0], text...), clear)
}

func (l *LCD) write(x, y uint8, text []byte, clear bool) error {
	l.buf = text
	if x >= l.opts.Width || y >= l.opts.Height {
		return fmt.Errorf("(%d, %d) on %dx%d: %w", x, y, l.opts.Width, l.opts.Height, ErrOutOfBounds)
	}
	if clear {
		l.drv.ClearDisplay()
	}
	if room := int(l.opts.Width - x); len(text) > room {
		text = text[:room]
	}
	l.drv.SetCursor(x, y)
	l.drv.Print(text)
	return nil
}

func (l *LCD) page(err error) error {
	if err == nil && l.opts.PageDelay > 0 {
		l.sleep(l.opts.PageDelay)
	}
	return err
}

// PrintString prints text and waits for PageDelay.
func (l *LCD) PrintString(x, y uint8, text string, clear bool) error {
	return l.page(l.Write(x, y, text, clear))
}

// PrintLabeledString prints "<label><text>".
func (l *LCD) PrintLabeledString(x, y uint8, label, text string, clear bool) error {
	b := append(append(l.buf[:0], label...), text...)
	return l.page(l.write(x, y, b, clear))
}

// PrintLabeledInt prints "<label><value>".
func (l *LCD) PrintLabeledInt(x, y uint8, label string, value int32, clear bool) error {
	b := strconv.AppendInt(append(l.buf[:0], label...), int64(value), 10)
	return l.page(l.write(x, y, b, clear))
}

// PrintLabeledFloat prints "<label><value>" with two decimals, the same precision as fixed-point values.
func (l *LCD) PrintLabeledFloat(x, y uint8, label string, value float32, clear bool) error {
	b := strconv.AppendFloat(append(l.buf[:0], label...), float64(value), 'f', 2, 32)
	return l.page(l.write(x, y, b, clear))
}

// PrintLabeledFixed prints "<label><integer>.<fraction>", where the fraction has
// FracDigits truncated digits. The sign is printed once, so -1.25 is printed as "-1.25".
func (l *LCD) PrintLabeledFixed(x, y uint8, label string, value fixed.Value, shift uint, clear bool) error {
	b, err := AppendFixed(append(l.buf[:0], label...), value, shift, l.opts.FracDigits)
	if err != nil {
		return err
	}
	return l.page(l.write(x, y, b, clear))
}

// PrintUptime prints the uptime on two lines, like "UP: 01 d 02 h" and "UP: 03 m 04 s".
func (l *LCD) PrintUptime(uptime time.Duration) error {
	uptime = uptime.Truncate(time.Second)
	days := uptime / (24 * time.Hour)
	uptime -= days * 24 * time.Hour
	hours := uptime / time.Hour
	uptime -= hours * time.Hour
	minutes := uptime / time.Minute
	uptime -= minutes * time.Minute
	seconds := uptime / time.Second

	if err := l.Write(0, 0, fmt.Sprintf("UP: %02d d %02d h", days, hours), true); err != nil {
		return err
	}
	return l.PrintString(0, 1, fmt.Sprintf("UP: %02d m %02d s", minutes, seconds), false)
}

// AppendFixed appends value as "[-]<integer>.<fraction>" with 'digits' truncated fractional digits.
func AppendFixed(dst []byte, value fixed.Value, shift uint, digits int) ([]byte, error) {
	neg, integ, frac, err := value.Split(shift, digits)
	if err != nil {
		return dst, err
	}
	return su.AppendFixed(dst, neg, uint64(integ), uint64(frac), digits), nil
}

// FormatFixed returns value as "[-]<integer>.<fraction>", see AppendFixed.
func FormatFixed(value fixed.Value, shift uint, digits int) (string, error) {
	b, err := AppendFixed(nil, value, shift, digits)
	return string(b), err
}
