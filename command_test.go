package st7032

import (
	"errors"
	"testing"
)

func TestEncodeFunctionSet(t *testing.T) {
	tests := []struct {
		name         string
		table        InstructionTable
		twoLine      bool
		doubleHeight bool
		want         byte
	}{
		{"normal two-line", Normal, true, false, 0x38},
		{"extended two-line", Extended, true, false, 0x39},
		{"normal one-line", Normal, false, false, 0x30},
		{"extended one-line", Extended, false, false, 0x31},
		{"normal double height", Normal, false, true, 0x34},
		{"extended two-line double height", Extended, true, true, 0x3D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeFunctionSet(tt.table, tt.twoLine, tt.doubleHeight); got != tt.want {
				t.Errorf("encodeFunctionSet() = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestEncodeEntryMode(t *testing.T) {
	tests := []struct {
		name             string
		increment, shift bool
		want             byte
	}{
		{"increment", true, false, 0x06},
		{"decrement", false, false, 0x04},
		{"increment with shift", true, true, 0x07},
		{"decrement with shift", false, true, 0x05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeEntryMode(tt.increment, tt.shift); got != tt.want {
				t.Errorf("encodeEntryMode() = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestEncodeDisplayControl(t *testing.T) {
	tests := []struct {
		name                   string
		display, cursor, blink bool
		want                   byte
	}{
		{"all off", false, false, false, 0x08},
		{"display on", true, false, false, 0x0C},
		{"display and cursor", true, true, false, 0x0E},
		{"everything on", true, true, true, 0x0F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeDisplayControl(tt.display, tt.cursor, tt.blink); got != tt.want {
				t.Errorf("encodeDisplayControl() = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestEncodeShift(t *testing.T) {
	tests := []struct {
		name           string
		display, right bool
		want           byte
	}{
		{"cursor left", false, false, 0x10},
		{"cursor right", false, true, 0x14},
		{"display left", true, false, 0x18},
		{"display right", true, true, 0x1C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeShift(tt.display, tt.right); got != tt.want {
				t.Errorf("encodeShift() = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

// Fixture bytes from the AQM0802 (ST7032 core) power-up stream:
// 0x38 0x39 0x14 0x56 0x6C 0x70.
func TestEncodeExtendedInstructions(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (byte, error)
		want byte
	}{
		{"bias 1/5 osc 4", func() (byte, error) { return encodeBiasOsc(false, 4) }, 0x14},
		{"bias 1/4 osc 0", func() (byte, error) { return encodeBiasOsc(true, 0) }, 0x18},
		{"power booster contrast 32", func() (byte, error) { return encodePowerIconContrast(false, true, 32) }, 0x56},
		{"power icon contrast 63", func() (byte, error) { return encodePowerIconContrast(true, false, 63) }, 0x5B},
		{"contrast set 0", func() (byte, error) { return encodeContrastSet(0) }, 0x70},
		{"contrast set 40", func() (byte, error) { return encodeContrastSet(40) }, 0x78},
		{"follower on gain 4", func() (byte, error) { return encodeFollower(true, 4) }, 0x6C},
		{"follower off", func() (byte, error) { return encodeFollower(false, 0) }, 0x60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestEncodeAddresses(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (byte, error)
		want byte
	}{
		{"ddram origin", func() (byte, error) { return encodeDDRAMAddr(0x00) }, 0x80},
		{"ddram row 1", func() (byte, error) { return encodeDDRAMAddr(0x40) }, 0xC0},
		{"cgram slot 1", func() (byte, error) { return encodeCGRAMAddr(0x08) }, 0x48},
		{"icon last row", func() (byte, error) { return encodeIconAddr(0x0F) }, 0x4F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestEncodeRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (byte, error)
	}{
		{"contrast high fragment", func() (byte, error) { return encodePowerIconContrast(false, false, 64) }},
		{"contrast low fragment", func() (byte, error) { return encodeContrastSet(64) }},
		{"follower gain", func() (byte, error) { return encodeFollower(true, 8) }},
		{"oscillator frequency", func() (byte, error) { return encodeBiasOsc(false, 8) }},
		{"ddram address", func() (byte, error) { return encodeDDRAMAddr(0x80) }},
		{"cgram address", func() (byte, error) { return encodeCGRAMAddr(0x40) }},
		{"icon address", func() (byte, error) { return encodeIconAddr(0x10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			var enc *EncodingError
			if !errors.As(err, &enc) {
				t.Fatalf("got %v, want *EncodingError", err)
			}
		})
	}
}

// The 6-bit contrast value is transmitted as two fragments. Reassembling
// them must reproduce the original value for the whole range.
func TestContrastFragmentsRoundTrip(t *testing.T) {
	for v := uint8(0); v <= maxContrast; v++ {
		power, err := encodePowerIconContrast(false, true, v)
		if err != nil {
			t.Fatalf("contrast %d: %v", v, err)
		}
		low, err := encodeContrastSet(v)
		if err != nil {
			t.Fatalf("contrast %d: %v", v, err)
		}
		if got := (power&0x03)<<4 | low&0x0F; got != v {
			t.Errorf("contrast %d: fragments reassemble to %d", v, got)
		}
	}
}
