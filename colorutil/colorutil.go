package colorutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Distance computes the Manhattan distance between two RGB triples:
// |r1-r2| + |g1-g2| + |b1-b2|. It mirrors the color_dist SQL function the
// store evaluates during similarity scans.
func Distance(r1, g1, b1, r2, g2, b2 int) int {
	return abs(r1-r2) + abs(g1-g2) + abs(b1-b2)
}

// HexToRGB converts a hex color code into its RGB components. The leading
// '#' is optional, and both the 3-digit and 6-digit forms are accepted;
// the 3-digit form expands each digit by duplication (e.g. "f0a" becomes
// "ff00aa"). Any other length or non-hex character yields a
// *HexFormatError.
func HexToRGB(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	case 6:
	default:
		return 0, 0, 0, &HexFormatError{Input: s, cause: fmt.Errorf("expected 3 or 6 hex digits, got %d", len(hex))}
	}
	var vals [3]int
	for i := 0; i < 3; i++ {
		v, perr := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, &HexFormatError{Input: s, cause: perr}
		}
		vals[i] = int(v)
	}
	return vals[0], vals[1], vals[2], nil
}

// RGBToHex formats an RGB triple as "#rrggbb" with two lowercase hex
// digits per component. The color domain permits components up to 999,
// but hex notation only represents 0-255; out-of-range components return
// a *RangeError rather than silently aliasing another color.
func RGBToHex(r, g, b int) (string, error) {
	for _, c := range []struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if c.value < 0 || c.value > 255 {
			return "", &RangeError{Component: c.name, Value: c.value, Min: 0, Max: 255}
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
