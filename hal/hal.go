// Package hal defines the hardware capability contracts the joystick core
// consumes: a single-shot ADC, a digital input, and the exclusive-access
// wrapper used when one physical ADC is shared between consumers.
//
// ADC reads are non-blocking polls. A driver that needs conversion time
// returns ErrNotReady until the sample is available; the caller retries.
package hal

import "errors"

// ErrNotReady signals that a single-shot conversion has not completed yet.
// It is not a failure: the correct response is to call again later.
var ErrNotReady = errors.New("hal: not ready")

// Channel identifies one analog input line on an ADC. The mapping from
// Channel to a physical mux setting or pin belongs to the driver.
type Channel uint8

// Word is the raw sample convention used across the module: a 16-bit value
// even where the underlying converter produces fewer bits. How many of those
// bits are meaningful is declared by the consumer as a resolution.
type Word uint16

// OneShotADC performs single conversions on demand.
type OneShotADC interface {
	// ReadChannel starts or polls one conversion on ch. It returns
	// ErrNotReady while the conversion is pending and must be safe to call
	// repeatedly until it yields a value or a real error.
	ReadChannel(ch Channel) (Word, error)
}

// DigitalInput reports a logic level. The call is synchronous; there is no
// not-ready state for a plain input pin.
type DigitalInput interface {
	Get() (bool, error)
}
