//go:build rp2040 || rp2350

package telemetry

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Link streams frames over one of the RP2 UARTs.
type Link struct {
	u       *uartx.UART
	scratch [FrameSize]byte
}

// LinkConfig selects the UART wiring. Defaults inside uartx apply for zero
// values.
type LinkConfig struct {
	BaudRate uint32
	TX       machine.Pin
	RX       machine.Pin
}

// NewLink configures u and returns a frame writer bound to it.
func NewLink(u *uartx.UART, cfg LinkConfig) (*Link, error) {
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: cfg.BaudRate,
		TX:       cfg.TX,
		RX:       cfg.RX,
	}); err != nil {
		return nil, err
	}
	return &Link{u: u}, nil
}

// Send writes one encoded frame.
func (l *Link) Send(f Frame) error {
	buf := f.AppendTo(l.scratch[:0])
	_, err := l.u.Write(buf)
	return err
}
