// Package joystick drives a two-axis analog stick with a push-button switch
// over the hal capability contracts. It performs one linear scaling per
// sample and nothing else: no smoothing, no debounce, no calibration.
//
// ADC reads follow the non-blocking poll contract: hal.ErrNotReady means the
// conversion is still running and the caller is the retry driver.
package joystick

import (
	"errors"

	"joystick-go/hal"
)

// Position is one combined reading, both values in [0, 1).
type Position struct {
	Vertical   float32
	Horizontal float32
}

// Joystick owns two axes and the stick's push-button switch. The two axes
// may share one physical ADC or use separate ones; either way each sample is
// taken under the shared handle's exclusive access.
type Joystick struct {
	vertical   Axis
	horizontal Axis
	sw         hal.DigitalInput
}

// New wires a joystick from two channel/ADC/resolution triples and a switch
// input. vADC and hADC may be the same *hal.SharedADC. No hardware access is
// performed.
func New(
	vADC *hal.SharedADC, vCh hal.Channel, vRes uint8,
	hADC *hal.SharedADC, hCh hal.Channel, hRes uint8,
	sw hal.DigitalInput,
) *Joystick {
	return &Joystick{
		vertical:   NewAxis(vADC, vCh, vRes),
		horizontal: NewAxis(hADC, hCh, hRes),
		sw:         sw,
	}
}

// Vertical reads the vertical axis. hal.ErrNotReady and driver errors pass
// through untagged.
func (j *Joystick) Vertical() (float32, error) { return j.vertical.Read() }

// Horizontal reads the horizontal axis.
func (j *Joystick) Horizontal() (float32, error) { return j.horizontal.Read() }

// SwitchPressed reports whether the stick is pushed down: pressed means the
// input pin reads the active/high level. The call is synchronous and has no
// retry semantics.
func (j *Joystick) SwitchPressed() (bool, error) { return j.sw.Get() }

// Position samples the vertical axis, then the horizontal axis, always in
// that order. If vertical is not ready the horizontal axis is not touched
// this call and hal.ErrNotReady comes back untagged; a real failure on
// either axis returns a *Error naming it. No retry state is kept between
// calls: after any non-nil result the next call starts over at vertical.
//
// Because each axis reports readiness independently, the two raw samples of
// a successful pair may be taken a short interval apart.
func (j *Joystick) Position() (Position, error) {
	v, err := j.vertical.Read()
	if err != nil {
		return Position{}, tagAxisErr(AxisVertical, err)
	}
	h, err := j.horizontal.Read()
	if err != nil {
		return Position{}, tagAxisErr(AxisHorizontal, err)
	}
	return Position{Vertical: v, Horizontal: h}, nil
}

// tagAxisErr wraps real failures with the axis that produced them.
// Not-ready is transient, not a failure, and stays untagged.
func tagAxisErr(axis AxisID, err error) error {
	if errors.Is(err, hal.ErrNotReady) {
		return err
	}
	return &Error{Axis: axis, Err: err}
}
