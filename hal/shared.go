package hal

import (
	"sync"

	"joystick-go/x/critical"
)

// SharedADC guards an OneShotADC that may be referenced from more than one
// place: two joystick axes, or foreground code and an interrupt handler.
// Every access goes through a critical section so at most one accessor
// touches the peripheral at a time.
//
// On host builds the mutex alone excludes; on MCU builds the critical
// package additionally masks interrupts for the duration of the one read.
type SharedADC struct {
	mu  sync.Mutex
	adc OneShotADC
}

// NewSharedADC wraps adc for shared use. The wrapper holds a reference only;
// the caller keeps ownership of the underlying driver.
func NewSharedADC(adc OneShotADC) *SharedADC {
	return &SharedADC{adc: adc}
}

// ReadChannel performs one exclusive-access conversion poll on ch. The
// critical section covers exactly the driver call, nothing more, so a
// not-ready poll loop does not starve other users of the peripheral.
func (s *SharedADC) ReadChannel(ch Channel) (Word, error) {
	s.mu.Lock()
	st := critical.Enter()
	v, err := s.adc.ReadChannel(ch)
	critical.Exit(st)
	s.mu.Unlock()
	return v, err
}
