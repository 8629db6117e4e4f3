// Command joystick-mqtt polls an analog joystick wired to an ADS1115 on a
// Raspberry Pi and publishes positions to the configured outputs.
package main

import (
	"errors"
	"log"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"joystick-go/drivers/ads1115"
	"joystick-go/drivers/gpioin"
	"joystick-go/hal"
	"joystick-go/joystick"
	"joystick-go/output"
	"joystick-go/output/console"
	"joystick-go/output/mqttout"
)

// positionTimeout bounds the not-ready retry loop for one sample.
const positionTimeout = 250 * time.Millisecond

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	adc := ads1115.New(periphI2C{dev: &i2c.Dev{Addr: uint16(cfg.I2CAddress), Bus: bus}})
	adc.Configure(ads1115.Config{Address: uint16(cfg.I2CAddress), DataRate: cfg.SampleRate})
	shared := hal.NewSharedADC(adc)

	sw, err := gpioin.NewSwitch(gpioin.Config{Pin: uint8(cfg.SwitchPin), Invert: cfg.SwitchInvert})
	if err != nil {
		log.Fatal(err)
	}
	defer sw.Close()

	stick := joystick.New(
		shared, hal.Channel(cfg.VerticalChannel), ads1115.Resolution,
		shared, hal.Channel(cfg.HorizontalChannel), ads1115.Resolution,
		sw,
	)

	outs, err := buildOutputs(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		for _, o := range outs {
			_ = o.Close()
		}
	}()

	ticker := time.NewTicker(time.Duration(cfg.IntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		pos, err := readPosition(stick)
		if err != nil {
			log.Printf("position read: %v", err)
			continue
		}
		pressed, err := stick.SwitchPressed()
		if err != nil {
			log.Printf("switch read: %v", err)
			continue
		}
		sample := output.Sample{
			Vertical:   pos.Vertical,
			Horizontal: pos.Horizontal,
			Pressed:    pressed,
			Timestamp:  time.Now(),
		}
		for _, o := range outs {
			if err := o.Publish(sample); err != nil {
				log.Printf("publish: %v", err)
			}
		}
	}
}

// readPosition drives the not-ready retry loop until a full pair is ready or
// the timeout elapses.
func readPosition(stick *joystick.Joystick) (joystick.Position, error) {
	deadline := time.Now().Add(positionTimeout)
	for {
		pos, err := stick.Position()
		if err == nil {
			return pos, nil
		}
		if !errors.Is(err, hal.ErrNotReady) {
			return joystick.Position{}, err
		}
		if time.Now().After(deadline) {
			return joystick.Position{}, pkgerrors.New("timed out waiting for conversion")
		}
		time.Sleep(time.Millisecond)
	}
}

func buildOutputs(cfg Config) ([]output.Output, error) {
	var outs []output.Output
	for _, name := range cfg.Outputs {
		switch name {
		case "console":
			outs = append(outs, console.NewConsole())
		case "mqtt":
			o, err := mqttout.NewMQTT(cfg.MQTT)
			if err != nil {
				return nil, err
			}
			outs = append(outs, o)
		}
	}
	return outs, nil
}

// periphI2C adapts a periph.io device handle to the tinygo driver Tx shape.
// The device carries its own address, so the addr argument is unused.
type periphI2C struct{ dev *i2c.Dev }

func (p periphI2C) Tx(_ uint16, w, r []byte) error { return p.dev.Tx(w, r) }
