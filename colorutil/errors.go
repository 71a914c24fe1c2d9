package colorutil

import (
	"fmt"
)

// HexFormatError indicates a hex color code that is not in the 3- or
// 6-digit form, or contains a non-hex character.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type HexFormatError struct {
	Input string
	cause error
}

func (e *HexFormatError) Error() string {
	return fmt.Sprintf("colorutil: malformed hex color %q", e.Input)
}

func (e *HexFormatError) Unwrap() error { return e.cause }

// RangeError indicates a color component outside its permitted interval.
// The resolver uses it for the [0, 999] key domain; RGBToHex uses it for
// the [0, 255] hex-representable range.
type RangeError struct {
	Component string
	Value     int
	Min       int
	Max       int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("colorutil: component %s = %d outside [%d, %d]", e.Component, e.Value, e.Min, e.Max)
}
