package display

import (
	"fmt"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// NewHD44780 configures a HD44780 LCD behind a PCF8574 backpack at opts.Address.
// The returned device is a Driver.
func NewHD44780(bus drivers.I2C, opts Opts) (*hd44780i2c.Device, error) {
	opts = opts.WithDefaults()
	dev := hd44780i2c.New(bus, opts.Address)
	if err := dev.Configure(hd44780i2c.Config{
		Width:  opts.Width,
		Height: opts.Height,
	}); err != nil {
		return nil, fmt.Errorf("lcd at 0x%02x: %w", opts.Address, err)
	}
	return &dev, nil
}
