package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages
// [0,100]. Values keep full precision; Rounded and String quantize.
type HSL struct {
	H, S, L float64
}

// HexToHSL parses hex and converts it to HSL
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return rgb.HSL(), nil
}

// HSL converts the color using the standard max/min formulation.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	// Achromatic
	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// Rounded returns the color with each component rounded to a whole
// degree/percent. A hue that rounds up to 360 wraps to 0.
func (c HSL) Rounded() HSL {
	h := math.Round(c.H)
	if h >= 360 {
		h -= 360
	}
	return HSL{H: h, S: math.Round(c.S), L: math.Round(c.L)}
}

// String renders the "H S% L%" form used by the style variables
func (c HSL) String() string {
	r := c.Rounded()
	return fmt.Sprintf("%d %d%% %d%%", int(r.H), int(r.S), int(r.L))
}

// RGB converts back to 8-bit sRGB
func (c HSL) RGB() RGB {
	r, g, b := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex converts back to a "#rrggbb" string
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// ParseHSL parses the "H S% L%" form produced by String
func ParseHSL(s string) (HSL, error) {
	var c HSL
	if _, err := fmt.Sscanf(s, "%g %g%% %g%%", &c.H, &c.S, &c.L); err != nil {
		return HSL{}, fmt.Errorf("invalid hsl value %q: %w", s, err)
	}
	if c.H < 0 || c.H >= 360 || c.S < 0 || c.S > 100 || c.L < 0 || c.L > 100 {
		return HSL{}, fmt.Errorf("hsl value out of range: %q", s)
	}
	return c, nil
}
