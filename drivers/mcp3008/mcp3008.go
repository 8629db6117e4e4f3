// Package mcp3008 reads the Microchip MCP3008 10-bit SPI ADC through the
// hal.OneShotADC contract. The conversion happens inside the SPI transfer
// itself, so reads complete immediately and never report hal.ErrNotReady.
package mcp3008

import (
	"errors"

	"tinygo.org/x/drivers"

	"joystick-go/hal"
)

// Resolution is the resolution to declare for axes wired to this chip.
const Resolution = 10

// Errors returned by the driver.
var ErrInvalidChannel = errors.New("mcp3008: invalid channel")

// Device wraps an SPI connection to an MCP3008. Chip select is assumed to be
// handled by the bus implementation.
type Device struct {
	bus drivers.SPI
	tx  [3]byte
	rx  [3]byte
}

// New creates a new MCP3008 connection. The SPI bus must already be
// configured (mode 0, up to 1.35 MHz at 2.7V).
func New(bus drivers.SPI) *Device {
	return &Device{bus: bus}
}

// ReadChannel performs one single-ended conversion on ch (0..7).
func (d *Device) ReadChannel(ch hal.Channel) (hal.Word, error) {
	if ch > 7 {
		return 0, ErrInvalidChannel
	}
	d.tx[0] = 1                   // start bit
	d.tx[1] = byte(8+ch) << 4     // single-ended mode, channel select
	d.tx[2] = 0                   // clock out the low bits of the result
	if err := d.bus.Tx(d.tx[:], d.rx[:]); err != nil {
		return 0, err
	}
	return hal.Word(d.rx[1]&0x3)<<8 | hal.Word(d.rx[2]), nil
}
