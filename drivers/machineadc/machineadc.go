//go:build tinygo

// Package machineadc implements hal.OneShotADC on the on-chip ADC of TinyGo
// targets. machine.ADC.Get blocks for the (short) conversion, so reads
// complete immediately and never report hal.ErrNotReady.
package machineadc

import (
	"errors"
	"machine"

	"joystick-go/hal"
)

// Resolution is the resolution to declare for axes on this backend:
// machine.ADC.Get returns a 16-bit left-aligned value on all targets.
const Resolution = 16

// ErrUnknownChannel is returned for a channel with no configured pin.
var ErrUnknownChannel = errors.New("machineadc: unknown channel")

// Device maps logical channels onto machine ADC pins.
type Device struct {
	channels map[hal.Channel]machine.ADC
}

// New powers up the ADC peripheral and configures one analog input per
// entry in pins.
func New(pins map[hal.Channel]machine.Pin) (*Device, error) {
	machine.InitADC()
	channels := make(map[hal.Channel]machine.ADC, len(pins))
	for ch, pin := range pins {
		a := machine.ADC{Pin: pin}
		if err := a.Configure(machine.ADCConfig{}); err != nil {
			return nil, err
		}
		channels[ch] = a
	}
	return &Device{channels: channels}, nil
}

// ReadChannel implements hal.OneShotADC.
func (d *Device) ReadChannel(ch hal.Channel) (hal.Word, error) {
	a, ok := d.channels[ch]
	if !ok {
		return 0, ErrUnknownChannel
	}
	return hal.Word(a.Get()), nil
}
