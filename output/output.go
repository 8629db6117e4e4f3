// Package output defines where polled joystick samples go. Concrete
// destinations live in subpackages.
package output

import "time"

// Sample is one published joystick reading.
type Sample struct {
	Vertical   float32   `json:"vertical"`
	Horizontal float32   `json:"horizontal"`
	Pressed    bool      `json:"pressed"`
	Timestamp  time.Time `json:"timestamp"`
}

// Output publishes samples to one destination.
type Output interface {
	Publish(Sample) error
	Close() error
}
