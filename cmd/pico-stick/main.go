//go:build rp2040 || rp2350

// Command pico-stick reads a joystick on the Pico's on-chip ADC (GP26/GP27)
// with the switch on GP22, and streams position frames over UART0.
package main

import (
	"errors"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"joystick-go/drivers/machineadc"
	"joystick-go/hal"
	"joystick-go/joystick"
	"joystick-go/telemetry"
)

const (
	verticalChannel   hal.Channel = 0
	horizontalChannel hal.Channel = 1
)

// switchPin reads the stick switch as active-low against the pull-up.
type switchPin struct{ pin machine.Pin }

func (s switchPin) Get() (bool, error) { return !s.pin.Get(), nil }

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	adc, err := machineadc.New(map[hal.Channel]machine.Pin{
		verticalChannel:   machine.ADC0, // GP26
		horizontalChannel: machine.ADC1, // GP27
	})
	if err != nil {
		println("adc:", err.Error())
		return
	}
	shared := hal.NewSharedADC(adc)

	sw := machine.GP22
	sw.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	stick := joystick.New(
		shared, verticalChannel, machineadc.Resolution,
		shared, horizontalChannel, machineadc.Resolution,
		switchPin{pin: sw},
	)

	link, err := telemetry.NewLink(uartx.UART0, telemetry.LinkConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	if err != nil {
		println("uart:", err.Error())
		return
	}

	for {
		pos, err := stick.Position()
		if errors.Is(err, hal.ErrNotReady) {
			continue
		}
		if err != nil {
			println("read:", err.Error())
			time.Sleep(100 * time.Millisecond)
			continue
		}
		pressed, err := stick.SwitchPressed()
		if err != nil {
			println("switch:", err.Error())
			continue
		}
		if err := link.Send(telemetry.Frame{
			Vertical:   pos.Vertical,
			Horizontal: pos.Horizontal,
			Pressed:    pressed,
		}); err != nil {
			println("send:", err.Error())
		}
		time.Sleep(20 * time.Millisecond)
	}
}
