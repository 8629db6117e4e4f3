// Package ads1115 provides a single-shot driver for the TI ADS1115 16-bit
// I²C ADC, exposed through the hal.OneShotADC contract:
//
//	d.ReadChannel(ch)   // starts a conversion, returns hal.ErrNotReady
//	d.ReadChannel(ch)   // poll until the OS bit reports the result
//
// The chip multiplexes one converter across four single-ended inputs, so a
// read for a different channel than the one in flight restarts the
// conversion on the new channel.
package ads1115

import (
	"errors"

	"tinygo.org/x/drivers"

	"joystick-go/hal"
)

// DefaultAddress is the ADDR-to-GND I²C address.
const DefaultAddress = 0x48

// Resolution is the resolution to declare for axes wired to this chip:
// single-ended conversions at the ±4.096V range span codes 0..32767.
const Resolution = 15

// Register pointers.
const (
	pointerConv   = 0x00
	pointerConfig = 0x01
)

// Config word fields (see datasheet table 8).
const (
	configStart      = 0x8000 // OS: start a single conversion / conversion done
	configPGA4096    = 0x1 << 9
	configSingleShot = 1 << 8
	configCompOff    = 0x3
)

// Errors returned by the driver.
var ErrInvalidChannel = errors.New("ads1115: invalid channel")

// Config controls optional device parameters.
type Config struct {
	// Address defaults to 0x48 if zero.
	Address uint16
	// DataRate in samples per second; one of 8, 16, 32, 64, 128, 250, 475,
	// 860. Default 128.
	DataRate int
}

// Device wraps an I²C connection to an ADS1115. One conversion can be in
// flight at a time; results that complete while another channel is being
// asked for are latched per channel so alternating readers of one shared
// chip all make progress.
type Device struct {
	bus  drivers.I2C
	addr uint16
	dr   uint16

	buf      [3]byte // reuse buffer to avoid allocations
	inflight int8    // channel with a conversion running, -1 when idle
	latched  [4]bool
	values   [4]hal.Word
}

// New creates a new ADS1115 connection. The I²C bus must already be
// configured. This function only creates the Device object; it does not
// touch the device.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:      bus,
		addr:     DefaultAddress,
		dr:       drBits(128),
		inflight: -1,
	}
}

// Configure applies optional config. It may be called with no cfg.
func (d *Device) Configure(cfgs ...Config) {
	if len(cfgs) == 0 {
		return
	}
	c := cfgs[0]
	if c.Address != 0 {
		d.addr = c.Address
	}
	if c.DataRate != 0 {
		d.dr = drBits(c.DataRate)
	}
}

// ReadChannel implements hal.OneShotADC. The first call for a channel writes
// the config register and returns hal.ErrNotReady; later calls poll the OS
// bit until the conversion register holds the result. Negative codes (a
// single-ended input pulled slightly below ground) clamp to 0.
//
// The chip has one converter, so a conversion another channel started is
// never discarded: it runs to completion and its result is latched, then the
// requested channel's conversion begins. A caller that polls its channels in
// a fixed order therefore always converges on values for all of them.
func (d *Device) ReadChannel(ch hal.Channel) (hal.Word, error) {
	if ch > 3 {
		return 0, ErrInvalidChannel
	}

	if d.latched[ch] {
		d.latched[ch] = false
		return d.values[ch], nil
	}

	if d.inflight >= 0 {
		busy, err := d.conversionBusy()
		if err != nil {
			d.inflight = -1
			return 0, err
		}
		if busy {
			return 0, hal.ErrNotReady
		}
		raw, err := d.readConversion()
		if err != nil {
			d.inflight = -1
			return 0, err
		}
		done := hal.Channel(d.inflight)
		d.inflight = -1
		if done == ch {
			return clampCode(raw), nil
		}
		d.values[done] = clampCode(raw)
		d.latched[done] = true
	}

	if err := d.startConversion(ch); err != nil {
		return 0, err
	}
	d.inflight = int8(ch)
	return 0, hal.ErrNotReady
}

// clampCode maps a signed conversion code to the unsigned word convention.
func clampCode(raw int16) hal.Word {
	if raw < 0 {
		return 0
	}
	return hal.Word(raw)
}

func (d *Device) startConversion(ch hal.Channel) error {
	// MUX 1xx selects single-ended AINx vs GND.
	mux := uint16(0x4+ch) << 12
	cfg := uint16(configStart) | mux | configPGA4096 | configSingleShot | d.dr<<5 | configCompOff
	d.buf[0] = pointerConfig
	d.buf[1] = byte(cfg >> 8)
	d.buf[2] = byte(cfg)
	return d.bus.Tx(d.addr, d.buf[:3], nil)
}

func (d *Device) conversionBusy() (bool, error) {
	d.buf[0] = pointerConfig
	if err := d.bus.Tx(d.addr, d.buf[:1], d.buf[1:3]); err != nil {
		return false, err
	}
	// OS reads 0 while a conversion is running.
	return d.buf[1]&0x80 == 0, nil
}

func (d *Device) readConversion() (int16, error) {
	d.buf[0] = pointerConv
	if err := d.bus.Tx(d.addr, d.buf[:1], d.buf[1:3]); err != nil {
		return 0, err
	}
	return int16(d.buf[1])<<8 | int16(d.buf[2]), nil
}

func drBits(sps int) uint16 {
	switch sps {
	case 8:
		return 0x0
	case 16:
		return 0x1
	case 32:
		return 0x2
	case 64:
		return 0x3
	case 128:
		return 0x4
	case 250:
		return 0x5
	case 475:
		return 0x6
	case 860:
		return 0x7
	default:
		return 0x4
	}
}
