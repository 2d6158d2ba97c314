package colorenc

import (
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// RGBA implements color.Color. sRGB bytes are passed through unchanged,
// as the image package treats its colors as sRGB-encoded.
func (c SrgbU8) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// RGBA implements color.Color. The image package premultiplies in encoded
// space, which this follows for compatibility.
func (c SrgbAU8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromStdColor converts any color.Color to SrgbAU8, treating it as sRGB
// the way the image package does.
func FromStdColor(c color.Color) SrgbAU8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SrgbAU8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ClearColor converts c to the linear RGBA value a render pass clear
// expects. GPUs store clear values for sRGB targets in linear space and
// encode them on write.
func ClearColor(c Color) gputypes.Color {
	l := Convert[LinearSrgbA](c)
	return gputypes.Color{R: float64(l.R), G: float64(l.G), B: float64(l.B), A: float64(l.A)}
}

// Named returns an SVG 1.1 named color such as "cornflowerblue".
// Matching ignores case.
func Named(name string) (SrgbAU8, bool) {
	c, ok := colornames.Map[cases.Fold().String(name)]
	if !ok {
		return SrgbAU8{}, false
	}
	return SrgbAU8{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// Common colors.
var (
	Black       = SrgbAU8{A: 255}
	White       = SrgbAU8{R: 255, G: 255, B: 255, A: 255}
	Transparent = SrgbAU8{}
)
