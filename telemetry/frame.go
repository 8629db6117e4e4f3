// Package telemetry encodes joystick readings into small fixed-size frames
// for streaming over a serial link. The wire form is 7 bytes: a sync byte,
// both axes quantized to Q16 big-endian words, a flags byte, and an XOR
// checksum over the payload.
package telemetry

import (
	"errors"

	"joystick-go/x/mathx"
)

const (
	frameSync = 0xA5

	// FrameSize is the encoded length of one Frame.
	FrameSize = 7

	flagPressed = 1 << 0
)

// Decode errors.
var (
	ErrShortFrame  = errors.New("telemetry: short frame")
	ErrBadSync     = errors.New("telemetry: bad sync byte")
	ErrBadChecksum = errors.New("telemetry: bad checksum")
)

// Frame is one joystick reading, axes in [0, 1].
type Frame struct {
	Vertical   float32
	Horizontal float32
	Pressed    bool
}

// AppendTo appends the encoded frame to dst and returns the result.
func (f Frame) AppendTo(dst []byte) []byte {
	v := quantize(f.Vertical)
	h := quantize(f.Horizontal)
	var flags byte
	if f.Pressed {
		flags |= flagPressed
	}
	payload := [5]byte{byte(v >> 8), byte(v), byte(h >> 8), byte(h), flags}
	dst = append(dst, frameSync)
	dst = append(dst, payload[:]...)
	return append(dst, xorSum(payload[:]))
}

// Decode parses one frame from the start of buf.
func Decode(buf []byte) (Frame, error) {
	if len(buf) < FrameSize {
		return Frame{}, ErrShortFrame
	}
	if buf[0] != frameSync {
		return Frame{}, ErrBadSync
	}
	if xorSum(buf[1:6]) != buf[6] {
		return Frame{}, ErrBadChecksum
	}
	v := uint16(buf[1])<<8 | uint16(buf[2])
	h := uint16(buf[3])<<8 | uint16(buf[4])
	return Frame{
		Vertical:   float32(v) / 65535,
		Horizontal: float32(h) / 65535,
		Pressed:    buf[5]&flagPressed != 0,
	}, nil
}

// quantize maps a normalized value to Q16, clamping anything out of range.
func quantize(v float32) uint16 {
	return uint16(mathx.Clamp(v, 0, 1) * 65535)
}

func xorSum(b []byte) byte {
	var s byte
	for _, x := range b {
		s ^= x
	}
	return s
}
