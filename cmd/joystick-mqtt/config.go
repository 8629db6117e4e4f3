package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"joystick-go/output/mqttout"
)

// Config wires the demo: one ADS1115 carrying both axes and a GPIO switch.
type Config struct {
	I2CBus            string `json:"i2c_bus"`
	I2CAddress        int    `json:"i2c_address"`
	SampleRate        int    `json:"sample_rate"`
	VerticalChannel   int    `json:"vertical_channel"`
	HorizontalChannel int    `json:"horizontal_channel"`
	SwitchPin         int    `json:"switch_pin"`
	SwitchInvert      bool   `json:"switch_invert"`
	IntervalMs        int    `json:"interval_ms"`

	Outputs []string       `json:"outputs"` // "console", "mqtt"
	MQTT    mqttout.Config `json:"mqtt"`
}

func DefaultConfig() Config {
	return Config{
		I2CBus:            "1",
		I2CAddress:        0x48,
		SampleRate:        860,
		VerticalChannel:   0,
		HorizontalChannel: 1,
		SwitchPin:         17,
		SwitchInvert:      true,
		IntervalMs:        100,
		Outputs:           []string{"console"},
		MQTT: mqttout.Config{
			Server:   mqttout.DefaultServer,
			ClientID: mqttout.DefaultClientID,
			Topic:    mqttout.DefaultTopic,
		},
	}
}

// LoadConfig loads configuration from an optional JSON file and flags.
// Flags override values present in the JSON file.
func LoadConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("joystick-mqtt", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to JSON config file")
	i2cBus := fs.String("i2c-bus", "", "I2C bus (e.g. '1' -> /dev/i2c-1)")
	i2cAddr := fs.String("i2c-address", "", "I2C address (decimal or 0x hex)")
	sampleRate := fs.Int("sample-rate", -1, "ADS1115 data rate (SPS)")
	vChan := fs.Int("vertical-channel", -1, "ADC channel for the vertical axis")
	hChan := fs.Int("horizontal-channel", -1, "ADC channel for the horizontal axis")
	swPin := fs.Int("switch-pin", -1, "BCM pin of the stick switch")
	interval := fs.Int("interval-ms", -1, "publish interval in ms")
	outputs := fs.String("outputs", "", "comma-separated outputs (console,mqtt)")
	mqttServer := fs.String("mqtt-server", "", "MQTT server (tcp://host:port)")
	mqttUser := fs.String("mqtt-user", "", "MQTT username")
	mqttPass := fs.String("mqtt-pass", "", "MQTT password")
	mqttClientID := fs.String("mqtt-client-id", "", "MQTT client id")
	mqttTopic := fs.String("mqtt-topic", "", "MQTT topic")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse config file")
		}
	}

	if *i2cBus != "" {
		cfg.I2CBus = *i2cBus
	}
	if *i2cAddr != "" {
		addr, err := strconv.ParseInt(*i2cAddr, 0, 32)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid i2c address %q", *i2cAddr)
		}
		cfg.I2CAddress = int(addr)
	}
	if *sampleRate >= 0 {
		cfg.SampleRate = *sampleRate
	}
	if *vChan >= 0 {
		cfg.VerticalChannel = *vChan
	}
	if *hChan >= 0 {
		cfg.HorizontalChannel = *hChan
	}
	if *swPin >= 0 {
		cfg.SwitchPin = *swPin
	}
	if *interval >= 0 {
		cfg.IntervalMs = *interval
	}
	if *outputs != "" {
		cfg.Outputs = splitList(*outputs)
	}
	if *mqttServer != "" {
		cfg.MQTT.Server = *mqttServer
	}
	if *mqttUser != "" {
		cfg.MQTT.Username = *mqttUser
	}
	if *mqttPass != "" {
		cfg.MQTT.Password = *mqttPass
	}
	if *mqttClientID != "" {
		cfg.MQTT.ClientID = *mqttClientID
	}
	if *mqttTopic != "" {
		cfg.MQTT.Topic = *mqttTopic
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.VerticalChannel < 0 || c.VerticalChannel > 3 {
		return errors.Errorf("vertical channel %d out of range 0..3", c.VerticalChannel)
	}
	if c.HorizontalChannel < 0 || c.HorizontalChannel > 3 {
		return errors.Errorf("horizontal channel %d out of range 0..3", c.HorizontalChannel)
	}
	if c.VerticalChannel == c.HorizontalChannel {
		return errors.New("vertical and horizontal channels must differ")
	}
	if c.SwitchPin < 0 || c.SwitchPin > 255 {
		return errors.Errorf("switch pin %d out of range", c.SwitchPin)
	}
	if c.IntervalMs <= 0 {
		return errors.New("interval must be positive")
	}
	for _, o := range c.Outputs {
		if o != "console" && o != "mqtt" {
			return errors.Errorf("unknown output %q", o)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
