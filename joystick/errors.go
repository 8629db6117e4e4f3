package joystick

// AxisID names one of the two joystick axes in a combined-read error.
type AxisID uint8

const (
	AxisVertical AxisID = iota
	AxisHorizontal
)

func (a AxisID) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Error wraps an ADC failure from a combined Position read with the axis it
// came from. Single-axis reads return the underlying error untagged; only
// Position produces *Error, and never stores one.
type Error struct {
	Axis AxisID
	Err  error
}

func (e *Error) Error() string {
	return "joystick: " + e.Axis.String() + " adc: " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
