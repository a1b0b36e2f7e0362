// Package color converts between hex sRGB strings and the HSL triples
// consumed by the theme style variables.
package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColorFormat is returned for anything that is not "#" followed by
// exactly six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is an 8-bit per channel sRGB color
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" string. Hex digits are case-insensitive.
func ParseHex(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ValidHex reports whether hex would parse
func ValidHex(hex string) bool {
	_, err := ParseHex(hex)
	return err == nil
}

// Hex renders the color as lowercase "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Sum returns the raw channel sum (0-765)
func (c RGB) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}
