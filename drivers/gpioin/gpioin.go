// Package gpioin implements hal.DigitalInput on Raspberry Pi GPIO via
// /dev/gpiomem. Joystick switch lines are usually wired active-low against
// the configured pull-up, so most callers want Invert set.
package gpioin

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"

	"joystick-go/hal"
)

// The gpiomem mapping is process-global in go-rpio, so it is refcounted
// here: the first Switch maps it, the last Close unmaps it. Swappable for
// tests.
var (
	openGPIO     = rpio.Open
	closeGPIO    = rpio.Close
	configurePin = func(pin rpio.Pin) {
		pin.Input()
		pin.PullUp()
	}

	refMu sync.Mutex
	refs  int
)

func acquire() error {
	refMu.Lock()
	defer refMu.Unlock()
	if refs == 0 {
		if err := openGPIO(); err != nil {
			return err
		}
	}
	refs++
	return nil
}

func release() error {
	refMu.Lock()
	defer refMu.Unlock()
	refs--
	if refs == 0 {
		return closeGPIO()
	}
	return nil
}

// Switch is one input pin read as a push-button.
type Switch struct {
	pin    rpio.Pin
	invert bool

	closeOnce sync.Once
	closeErr  error
}

// Config selects the BCM pin and its polarity.
type Config struct {
	Pin uint8
	// Invert treats the low level as pressed (pull-up wiring).
	Invert bool
}

// NewSwitch maps the GPIO range and configures the pin as a pulled-up input.
// Switches share one mapping; each must be Closed to release it.
func NewSwitch(cfg Config) (*Switch, error) {
	if err := acquire(); err != nil {
		return nil, errors.Wrap(err, "gpioin: failed to open gpio memory range")
	}
	pin := rpio.Pin(cfg.Pin)
	configurePin(pin)
	return &Switch{pin: pin, invert: cfg.Invert}, nil
}

// Get implements hal.DigitalInput.
func (s *Switch) Get() (bool, error) {
	state := s.pin.Read() == rpio.High
	if s.invert {
		state = !state
	}
	return state, nil
}

// Close drops this switch's hold on the GPIO mapping, unmapping it once the
// last switch is closed. Safe to call more than once.
func (s *Switch) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = errors.Wrap(release(), "gpioin: failed to close gpio memory range")
	})
	return s.closeErr
}

var _ hal.DigitalInput = (*Switch)(nil)
