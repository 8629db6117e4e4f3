package joystick

import (
	"errors"
	"testing"

	"joystick-go/hal"
	"joystick-go/hal/haltest"
)

const (
	vCh hal.Channel = 0
	hCh hal.Channel = 1
)

// newSharedStick builds a joystick with both axes on one scripted ADC at
// 8-bit resolution, mirroring a stick wired to two channels of one chip.
func newSharedStick(adc *haltest.ADC, pin *haltest.Pin) *Joystick {
	shared := hal.NewSharedADC(adc)
	return New(shared, vCh, 8, shared, hCh, 8, pin)
}

func TestPositionReadsVerticalFirst(t *testing.T) {
	adc := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, Value: 128},
		haltest.ADCStep{Channel: hCh, Value: 128},
	)
	j := newSharedStick(adc, haltest.NewPin())

	if _, err := j.Position(); err != nil {
		t.Fatalf("Position failed: %v", err)
	}
	calls := adc.Calls()
	if len(calls) != 2 || calls[0] != vCh || calls[1] != hCh {
		t.Fatalf("call order %v, want [%d %d]", calls, vCh, hCh)
	}
	adc.Done(t)
}

func TestPositionShortCircuitsOnNotReady(t *testing.T) {
	adc := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, NotReady: true},
	)
	j := newSharedStick(adc, haltest.NewPin())

	_, err := j.Position()
	if !errors.Is(err, hal.ErrNotReady) {
		t.Fatalf("got %v, want hal.ErrNotReady", err)
	}
	if calls := adc.Calls(); len(calls) != 1 || calls[0] != vCh {
		t.Fatalf("horizontal sampled on vertical not-ready: calls %v", calls)
	}
	adc.Done(t)
}

func TestPositionRetryAcrossCalls(t *testing.T) {
	// First call: vertical pending. Second call: vertical done, horizontal
	// pending. Third call: both ready. Every call re-enters at vertical.
	adc := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, NotReady: true},
		haltest.ADCStep{Channel: vCh, Value: 128},
		haltest.ADCStep{Channel: hCh, NotReady: true},
		haltest.ADCStep{Channel: vCh, Value: 128},
		haltest.ADCStep{Channel: hCh, Value: 64},
	)
	j := newSharedStick(adc, haltest.NewPin())

	for i := 0; i < 2; i++ {
		if _, err := j.Position(); !errors.Is(err, hal.ErrNotReady) {
			t.Fatalf("call %d: got %v, want hal.ErrNotReady", i, err)
		}
	}
	pos, err := j.Position()
	if err != nil {
		t.Fatalf("final Position failed: %v", err)
	}
	if pos.Vertical != 0.5 || pos.Horizontal != 0.25 {
		t.Fatalf("got %+v, want {0.5 0.25}", pos)
	}
	adc.Done(t)
}

func TestPositionTagsVerticalError(t *testing.T) {
	fault := errors.New("mux fault")
	adc := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, Err: fault},
	)
	j := newSharedStick(adc, haltest.NewPin())

	_, err := j.Position()
	var jerr *Error
	if !errors.As(err, &jerr) {
		t.Fatalf("got %T, want *Error", err)
	}
	if jerr.Axis != AxisVertical {
		t.Fatalf("tagged %v, want vertical", jerr.Axis)
	}
	if !errors.Is(err, fault) {
		t.Fatalf("wrapped error does not unwrap to the driver fault")
	}
	adc.Done(t)
}

func TestPositionTagsHorizontalError(t *testing.T) {
	fault := errors.New("conversion fault")
	adc := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, Value: 10},
		haltest.ADCStep{Channel: hCh, Err: fault},
	)
	j := newSharedStick(adc, haltest.NewPin())

	_, err := j.Position()
	var jerr *Error
	if !errors.As(err, &jerr) {
		t.Fatalf("got %T, want *Error", err)
	}
	if jerr.Axis != AxisHorizontal {
		t.Fatalf("tagged %v, want horizontal", jerr.Axis)
	}
	adc.Done(t)
}

func TestSwitchPressed(t *testing.T) {
	pin := haltest.NewPin(
		haltest.PinStep{Level: false},
		haltest.PinStep{Level: true},
	)
	j := newSharedStick(haltest.NewADC(), pin)

	pressed, err := j.SwitchPressed()
	if err != nil || pressed {
		t.Fatalf("got (%v, %v), want (false, nil)", pressed, err)
	}
	pressed, err = j.SwitchPressed()
	if err != nil || !pressed {
		t.Fatalf("got (%v, %v), want (true, nil)", pressed, err)
	}
	pin.Done(t)
}

func TestSwitchErrorPassthrough(t *testing.T) {
	fault := errors.New("pin fault")
	pin := haltest.NewPin(haltest.PinStep{Err: fault})
	j := newSharedStick(haltest.NewADC(), pin)

	if _, err := j.SwitchPressed(); !errors.Is(err, fault) {
		t.Fatalf("got %v, want pin fault untagged", err)
	}
}

func TestJoystickEndToEnd(t *testing.T) {
	adc := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, Value: 128},
		haltest.ADCStep{Channel: hCh, Value: 64},
	)
	pin := haltest.NewPin(haltest.PinStep{Level: false})
	j := newSharedStick(adc, pin)

	pos, err := j.Position()
	if err != nil {
		t.Fatalf("Position failed: %v", err)
	}
	if pos.Vertical != 0.5 || pos.Horizontal != 0.25 {
		t.Fatalf("got %+v, want {0.5 0.25}", pos)
	}
	pressed, err := j.SwitchPressed()
	if err != nil || pressed {
		t.Fatalf("switch got (%v, %v), want (false, nil)", pressed, err)
	}
	adc.Done(t)
	pin.Done(t)
}

func TestDistinctADCsDoNotInterfere(t *testing.T) {
	vADC := haltest.NewADC(
		haltest.ADCStep{Channel: vCh, Value: 64},
		haltest.ADCStep{Channel: vCh, Value: 64},
	)
	hADC := haltest.NewADC(
		haltest.ADCStep{Channel: hCh, Value: 192},
		haltest.ADCStep{Channel: hCh, Value: 192},
	)
	j := New(hal.NewSharedADC(vADC), vCh, 8, hal.NewSharedADC(hADC), hCh, 8, haltest.NewPin())

	for i := 0; i < 2; i++ {
		pos, err := j.Position()
		if err != nil {
			t.Fatalf("read %d failed: %v", i, err)
		}
		if pos.Vertical != 0.25 || pos.Horizontal != 0.75 {
			t.Fatalf("read %d: got %+v, want {0.25 0.75}", i, pos)
		}
	}
	vADC.Done(t)
	hADC.Done(t)
}
