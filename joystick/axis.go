package joystick

import (
	"joystick-go/hal"
	"joystick-go/x/mathx"
)

// Axis reads one analog channel and scales the raw sample into [0, 1).
//
// The scale factor is derived once, at construction, from the resolution the
// converter is configured for. Resolution is declared by the caller rather
// than queried from the driver: how many bits a conversion carries is a
// property of how the ADC was set up, not something every driver can report.
type Axis struct {
	adc   *hal.SharedADC
	ch    hal.Channel
	scale float32
}

// NewAxis binds a channel on a shared ADC to its scale factor. No hardware
// is touched. resolutionBits is clamped to [0, 31] so the scale factor stays
// a finite positive float.
func NewAxis(adc *hal.SharedADC, ch hal.Channel, resolutionBits uint8) Axis {
	bits := mathx.Clamp(resolutionBits, 0, 31)
	return Axis{
		adc:   adc,
		ch:    ch,
		scale: 1 / float32(uint32(1)<<bits),
	}
}

// ReadRaw performs exactly one exclusive-access conversion poll on the axis
// channel. hal.ErrNotReady passes through unchanged; call again until the
// conversion completes.
func (a *Axis) ReadRaw() (hal.Word, error) {
	return a.adc.ReadChannel(a.ch)
}

// Read returns the normalized position. A raw sample s at resolution r maps
// to s / 2^r, so an in-range sample lands in [0, 1): raw 128 at resolution 8
// reads as 0.5.
func (a *Axis) Read() (float32, error) {
	raw, err := a.ReadRaw()
	if err != nil {
		return 0, err
	}
	return float32(raw) * a.scale, nil
}
