package telemetry

import (
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	cases := []Frame{
		{Vertical: 0, Horizontal: 0, Pressed: false},
		{Vertical: 0.5, Horizontal: 0.25, Pressed: true},
		{Vertical: 1, Horizontal: 0.99609375, Pressed: false},
	}
	for _, in := range cases {
		buf := in.AppendTo(nil)
		if len(buf) != FrameSize {
			t.Fatalf("encoded %d bytes, want %d", len(buf), FrameSize)
		}
		out, err := Decode(buf)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		// Q16 quantization loses at most one step per axis.
		const step = 1.0 / 65535
		if d := out.Vertical - in.Vertical; d < -step || d > step {
			t.Fatalf("vertical %v -> %v exceeds one quantization step", in.Vertical, out.Vertical)
		}
		if d := out.Horizontal - in.Horizontal; d < -step || d > step {
			t.Fatalf("horizontal %v -> %v exceeds one quantization step", in.Horizontal, out.Horizontal)
		}
		if out.Pressed != in.Pressed {
			t.Fatalf("pressed %v -> %v", in.Pressed, out.Pressed)
		}
	}
}

func TestQuantizeClamps(t *testing.T) {
	if q := quantize(-0.5); q != 0 {
		t.Fatalf("quantize(-0.5) = %d, want 0", q)
	}
	if q := quantize(2); q != 65535 {
		t.Fatalf("quantize(2) = %d, want 65535", q)
	}
}

func TestDecodeRejectsDamage(t *testing.T) {
	good := Frame{Vertical: 0.5, Horizontal: 0.5, Pressed: true}.AppendTo(nil)

	if _, err := Decode(good[:FrameSize-1]); !errors.Is(err, ErrShortFrame) {
		t.Fatalf("short: got %v", err)
	}

	badSync := append([]byte(nil), good...)
	badSync[0] = 0x00
	if _, err := Decode(badSync); !errors.Is(err, ErrBadSync) {
		t.Fatalf("sync: got %v", err)
	}

	badSum := append([]byte(nil), good...)
	badSum[2] ^= 0xFF
	if _, err := Decode(badSum); !errors.Is(err, ErrBadChecksum) {
		t.Fatalf("checksum: got %v", err)
	}
}

func TestAppendToReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, FrameSize)
	out := Frame{}.AppendTo(buf)
	if &out[0] != &buf[:1][0] {
		t.Fatal("AppendTo reallocated despite sufficient capacity")
	}
}
