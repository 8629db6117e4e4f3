// Package haltest provides scripted in-memory implementations of the hal
// contracts for driver and consumer tests. Each double plays back a fixed
// list of steps and records what was actually asked of it, so tests can
// assert both results and call order.
package haltest

import (
	"fmt"
	"sync"
	"testing"

	"joystick-go/hal"
)

// ADCStep is one expected ReadChannel call and its scripted outcome.
// Exactly one of Value, NotReady or Err applies.
type ADCStep struct {
	Channel  hal.Channel
	Value    hal.Word
	NotReady bool
	Err      error
}

// ADC is a scripted hal.OneShotADC.
type ADC struct {
	mu    sync.Mutex
	steps []ADCStep
	pos   int
	calls []hal.Channel
}

// NewADC returns an ADC that expects exactly the given steps, in order.
func NewADC(steps ...ADCStep) *ADC {
	return &ADC{steps: steps}
}

// ReadChannel plays back the next scripted step. A call beyond the script or
// on the wrong channel fails with a descriptive error.
func (m *ADC) ReadChannel(ch hal.Channel) (hal.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ch)
	if m.pos >= len(m.steps) {
		return 0, fmt.Errorf("haltest: unexpected ReadChannel(%d) after script end", ch)
	}
	step := m.steps[m.pos]
	m.pos++
	if step.Channel != ch {
		return 0, fmt.Errorf("haltest: ReadChannel(%d), script expects channel %d", ch, step.Channel)
	}
	if step.Err != nil {
		return 0, step.Err
	}
	if step.NotReady {
		return 0, hal.ErrNotReady
	}
	return step.Value, nil
}

// Calls returns the channels requested so far, in order.
func (m *ADC) Calls() []hal.Channel {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]hal.Channel, len(m.calls))
	copy(out, m.calls)
	return out
}

// Done fails the test if any scripted step was not consumed.
func (m *ADC) Done(t testing.TB) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pos != len(m.steps) {
		t.Errorf("haltest: %d of %d ADC steps consumed", m.pos, len(m.steps))
	}
}

// PinStep is one expected Get call on a digital input.
type PinStep struct {
	Level bool
	Err   error
}

// Pin is a scripted hal.DigitalInput.
type Pin struct {
	mu    sync.Mutex
	steps []PinStep
	pos   int
}

// NewPin returns a Pin that expects exactly the given steps, in order.
func NewPin(steps ...PinStep) *Pin {
	return &Pin{steps: steps}
}

// Get plays back the next scripted level.
func (p *Pin) Get() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pos >= len(p.steps) {
		return false, fmt.Errorf("haltest: unexpected Get after script end")
	}
	step := p.steps[p.pos]
	p.pos++
	if step.Err != nil {
		return false, step.Err
	}
	return step.Level, nil
}

// Done fails the test if any scripted step was not consumed.
func (p *Pin) Done(t testing.TB) {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos != len(p.steps) {
		t.Errorf("haltest: %d of %d pin steps consumed", p.pos, len(p.steps))
	}
}
