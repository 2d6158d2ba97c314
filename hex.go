package colorenc

import (
	"fmt"
	"math"
)

// ParseHex parses a CSS-style hex color code into 8-bit sRGB.
// Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with or without a
// leading '#'. Alpha defaults to 255.
func ParseHex(s string) (SrgbAU8, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return SrgbAU8{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		digits[i] = d
	}

	switch len(hex) {
	case 3:
		return SrgbAU8{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}, nil
	case 4:
		return SrgbAU8{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: digits[3] * 17}, nil
	case 6:
		return SrgbAU8{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}, nil
	case 8:
		return SrgbAU8{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: digits[6]<<4 | digits[7],
		}, nil
	default:
		return SrgbAU8{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(hex))
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Hex formats the color as "#rrggbb".
func (c SrgbU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex formats the color as "#rrggbbaa", or "#rrggbb" when opaque.
func (c SrgbAU8) Hex() string {
	if c.A == 255 {
		return c.WithoutAlpha().Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// HSL creates a non-linear sRGB color from hue, saturation and lightness.
// h is hue in degrees (wrapped into [0, 360)), s and l are in [0, 1].
// HSL is defined on sRGB-encoded values, not linear light.
func HSL(h, s, l float32) SrgbF32 {
	hh := math.Mod(float64(h), 360)
	if hh < 0 {
		hh += 360
	}
	hh /= 360
	ss, ll := float64(s), float64(l)

	c := (1 - math.Abs(2*ll-1)) * ss
	x := c * (1 - math.Abs(math.Mod(hh*6, 2)-1))
	m := ll - c/2

	var r, g, b float64
	switch {
	case hh < 1.0/6:
		r, g, b = c, x, 0
	case hh < 2.0/6:
		r, g, b = x, c, 0
	case hh < 3.0/6:
		r, g, b = 0, c, x
	case hh < 4.0/6:
		r, g, b = 0, x, c
	case hh < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return SrgbF32{R: float32(r + m), G: float32(g + m), B: float32(b + m)}
}
