package console

import (
	"fmt"
	"time"

	"joystick-go/output"
)

type ConsoleOutput struct{}

func NewConsole() output.Output { return &ConsoleOutput{} }

func (c *ConsoleOutput) Publish(s output.Sample) error {
	fmt.Printf("%s vertical=%.6f horizontal=%.6f pressed=%v\n",
		s.Timestamp.Format(time.RFC3339), s.Vertical, s.Horizontal, s.Pressed)
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }
