package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBus struct {
	addrs  []uint16
	writes int
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	b.addrs = append(b.addrs, addr)
	b.writes += len(w)
	return nil
}

func (b *fakeBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{r}, buf)
}

func (b *fakeBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

func TestNewHD44780(t *testing.T) {
	a := assert.New(t)
	bus := &fakeBus{}
	dev, err := NewHD44780(bus, Opts{})
	if !a.NoError(err) {
		return
	}
	a.NotEmpty(bus.addrs)
	configured := bus.writes

	l := New(dev, Opts{})
	a.NoError(l.PrintLabeledFixed(0, 1, "V=", 81920, 16, true))
	a.Greater(bus.writes, configured)
	for _, addr := range bus.addrs {
		a.Equal(uint16(0x27), addr)
	}

	bus = &fakeBus{}
	_, err = NewHD44780(bus, Opts{Address: 0x3f})
	a.NoError(err)
	for _, addr := range bus.addrs {
		a.Equal(uint16(0x3f), addr)
	}
}
