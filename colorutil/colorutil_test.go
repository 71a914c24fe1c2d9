package colorutil

import (
	"errors"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b int
	}{
		{"f0a", 255, 0, 170},
		{"ff00aa", 255, 0, 170},
		{"#f0a", 255, 0, 170},
		{"#FFFFFF", 255, 255, 255},
		{"000000", 0, 0, 0},
		{"#1a2B3c", 26, 43, 60},
	}
	for _, c := range cases {
		r, g, b, err := HexToRGB(c.in)
		if err != nil {
			t.Fatalf("HexToRGB(%q) failed: %v", c.in, err)
		}
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("HexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", c.in, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestHexToRGBMalformed(t *testing.T) {
	for _, in := range []string{"", "12", "zzzzzz", "#12345", "1234567", "#ggg"} {
		_, _, _, err := HexToRGB(in)
		if err == nil {
			t.Errorf("HexToRGB(%q) succeeded, want error", in)
		}
		var ferr *HexFormatError
		if !errors.As(err, &ferr) {
			t.Errorf("HexToRGB(%q) error = %v, want *HexFormatError", in, err)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	s, err := RGBToHex(255, 0, 170)
	if err != nil {
		t.Fatalf("RGBToHex(255,0,170) failed: %v", err)
	}
	if s != "#ff00aa" {
		t.Errorf("RGBToHex(255,0,170) = %q, want #ff00aa", s)
	}

	// Hex output round-trips through HexToRGB.
	r, g, b, err := HexToRGB(s)
	if err != nil {
		t.Fatalf("HexToRGB(%q) failed: %v", s, err)
	}
	if r != 255 || g != 0 || b != 170 {
		t.Errorf("round trip = (%d,%d,%d), want (255,0,170)", r, g, b)
	}
}

// TestRGBToHexOutOfRange pins the decided policy for the extended color
// domain: components above 255 (or negative) error instead of truncating.
func TestRGBToHexOutOfRange(t *testing.T) {
	for _, c := range [][3]int{{999, 0, 0}, {0, 256, 0}, {0, 0, -1}} {
		_, err := RGBToHex(c[0], c[1], c[2])
		if err == nil {
			t.Errorf("RGBToHex(%v) succeeded, want error", c)
			continue
		}
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			t.Errorf("RGBToHex(%v) error = %v, want *RangeError", c, err)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(255, 0, 0, 255, 0, 0); d != 0 {
		t.Errorf("Distance identical = %d, want 0", d)
	}
	if d := Distance(250, 0, 0, 255, 0, 0); d != 5 {
		t.Errorf("Distance = %d, want 5", d)
	}
	if d := Distance(0, 999, 10, 999, 0, 10); d != 1998 {
		t.Errorf("Distance = %d, want 1998", d)
	}
}
