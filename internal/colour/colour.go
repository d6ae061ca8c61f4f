// Package colour provides the palette model for terminal colour presets:
// 8-bit sRGB colours keyed by a fixed set of slots, with luminance, contrast
// and interpolation calculations performed in linear-light space.
package colour

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an sRGB colour with 8-bit integer channels.
type Colour struct {
	R uint8
	G uint8
	B uint8
}

// ParseHex parses a colour from a hex string such as "#1a2b3c" or "1a2b3c".
func ParseHex(s string) (Colour, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return Colour{}, fmt.Errorf("%q: invalid hex colour", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(trimmed, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Colour{}, fmt.Errorf("%q: invalid hex colour", s)
	}
	return Colour{R: r, G: g, B: b}, nil
}

// Hex returns the colour as a hex string (e.g. "#1a2b3c").
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// colorful converts the colour to a go-colorful colour with sRGB channels
// in [0, 1].
func (c Colour) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful converts a go-colorful colour back to 8-bit channels.
func fromColorful(c colorful.Color) Colour {
	r, g, b := c.Clamped().RGB255()
	return Colour{R: r, G: g, B: b}
}

// RelativeLuminance returns the colour's relative luminance per WCAG 2.0.
func (c Colour) RelativeLuminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Interpolate linearly interpolates between two colours at position t in
// [0, 1]. Blending happens in linear-light RGB so mid-transition frames do
// not dip in perceived brightness. The endpoints are returned exactly.
func (c Colour) Interpolate(other Colour, t float64) Colour {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	r1, g1, b1 := c.colorful().LinearRgb()
	r2, g2, b2 := other.colorful().LinearRgb()
	return fromColorful(colorful.LinearRgb(
		r1+t*(r2-r1),
		g1+t*(g2-g1),
		b1+t*(b2-b1),
	))
}
