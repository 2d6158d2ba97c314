package colorenc

import "github.com/gogpu/colorenc/internal/transfer"

// SrgbU8 is non-linear sRGB with three 8-bit channels.
//
// This is what most image files, CSS and hex codes hold. Do not do math
// on it; convert to a working encoding such as LinearSrgb first.
type SrgbU8 struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// NewSrgbU8 constructs an SrgbU8 from three 8-bit components.
func NewSrgbU8(r, g, b uint8) SrgbU8 { return SrgbU8{R: r, G: g, B: b} }

// SrgbU8FromArray constructs an SrgbU8 from an [R, G, B] array.
func SrgbU8FromArray(a [3]uint8) SrgbU8 { return SrgbU8{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c SrgbU8) Array() [3]uint8 { return [3]uint8{c.R, c.G, c.B} }

// Encoding returns EncodingSrgbU8.
func (SrgbU8) Encoding() Encoding { return EncodingSrgbU8 }

func (c SrgbU8) pixel() pixel {
	return opaque(transfer.U8ToUnit(c.R), transfer.U8ToUnit(c.G), transfer.U8ToUnit(c.B))
}

func (SrgbU8) fromPixel(p pixel) SrgbU8 {
	return SrgbU8{R: transfer.UnitToU8(p.c[0]), G: transfer.UnitToU8(p.c[1]), B: transfer.UnitToU8(p.c[2])}
}

// WithAlpha adds an alpha channel.
func (c SrgbU8) WithAlpha(a uint8) SrgbAU8 { return SrgbAU8{R: c.R, G: c.G, B: c.B, A: a} }

// Float returns the same color with float32 storage: each channel is v/255.
func (c SrgbU8) Float() SrgbF32 { return Convert[SrgbF32](c) }

// Linear decodes the color to linear sRGB.
func (c SrgbU8) Linear() LinearSrgb { return Convert[LinearSrgb](c) }

func (c SrgbU8) String() string { return ToDynamic(c).String() }

// SrgbAU8 is non-linear sRGB with separate linear alpha, four 8-bit
// channels. The layout of 8-bit RGBA textures and PNG pixels.
type SrgbAU8 struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// NewSrgbAU8 constructs an SrgbAU8 from four 8-bit components.
func NewSrgbAU8(r, g, b, a uint8) SrgbAU8 { return SrgbAU8{R: r, G: g, B: b, A: a} }

// SrgbAU8FromArray constructs an SrgbAU8 from an [R, G, B, A] array.
func SrgbAU8FromArray(a [4]uint8) SrgbAU8 { return SrgbAU8{R: a[0], G: a[1], B: a[2], A: a[3]} }

// Array returns the components as [R, G, B, A].
func (c SrgbAU8) Array() [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }

// Encoding returns EncodingSrgbAU8.
func (SrgbAU8) Encoding() Encoding { return EncodingSrgbAU8 }

func (c SrgbAU8) pixel() pixel {
	return rgba(transfer.U8ToUnit(c.R), transfer.U8ToUnit(c.G), transfer.U8ToUnit(c.B), transfer.U8ToUnit(c.A))
}

func (SrgbAU8) fromPixel(p pixel) SrgbAU8 {
	return SrgbAU8{
		R: transfer.UnitToU8(p.c[0]),
		G: transfer.UnitToU8(p.c[1]),
		B: transfer.UnitToU8(p.c[2]),
		A: transfer.UnitToU8(p.a),
	}
}

// WithoutAlpha drops the alpha channel.
func (c SrgbAU8) WithoutAlpha() SrgbU8 { return SrgbU8{R: c.R, G: c.G, B: c.B} }

// Float returns the same color with float32 storage.
func (c SrgbAU8) Float() SrgbAF32 { return Convert[SrgbAF32](c) }

// Linear decodes the color to linear sRGB, keeping alpha.
func (c SrgbAU8) Linear() LinearSrgbA { return Convert[LinearSrgbA](c) }

func (c SrgbAU8) String() string { return ToDynamic(c).String() }

// SrgbF32 is non-linear sRGB with three float32 channels, nominally [0,1].
type SrgbF32 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewSrgbF32 constructs an SrgbF32 from three float components.
func NewSrgbF32(r, g, b float32) SrgbF32 { return SrgbF32{R: r, G: g, B: b} }

// SrgbF32FromArray constructs an SrgbF32 from an [R, G, B] array.
func SrgbF32FromArray(a [3]float32) SrgbF32 { return SrgbF32{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c SrgbF32) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingSrgbF32.
func (SrgbF32) Encoding() Encoding { return EncodingSrgbF32 }

func (c SrgbF32) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (SrgbF32) fromPixel(p pixel) SrgbF32 {
	return SrgbF32{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

// WithAlpha adds an alpha channel.
func (c SrgbF32) WithAlpha(a float32) SrgbAF32 { return SrgbAF32{R: c.R, G: c.G, B: c.B, A: a} }

// U8 quantizes the color to 8 bits, clamping to [0,1] and rounding.
func (c SrgbF32) U8() SrgbU8 { return Convert[SrgbU8](c) }

// Linear decodes the color to linear sRGB.
func (c SrgbF32) Linear() LinearSrgb { return Convert[LinearSrgb](c) }

// Saturate clamps every channel to [0,1].
func (c SrgbF32) Saturate() SrgbF32 {
	return SrgbF32{R: transfer.Clamp(c.R, 0, 1), G: transfer.Clamp(c.G, 0, 1), B: transfer.Clamp(c.B, 0, 1)}
}

func (c SrgbF32) String() string { return ToDynamic(c).String() }

// SrgbAF32 is non-linear sRGB with separate linear alpha, four float32
// channels.
type SrgbAF32 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

// NewSrgbAF32 constructs an SrgbAF32 from four float components.
func NewSrgbAF32(r, g, b, a float32) SrgbAF32 { return SrgbAF32{R: r, G: g, B: b, A: a} }

// SrgbAF32FromArray constructs an SrgbAF32 from an [R, G, B, A] array.
func SrgbAF32FromArray(a [4]float32) SrgbAF32 { return SrgbAF32{R: a[0], G: a[1], B: a[2], A: a[3]} }

// Array returns the components as [R, G, B, A].
func (c SrgbAF32) Array() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

// Encoding returns EncodingSrgbAF32.
func (SrgbAF32) Encoding() Encoding { return EncodingSrgbAF32 }

func (c SrgbAF32) pixel() pixel {
	return rgba(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

func (SrgbAF32) fromPixel(p pixel) SrgbAF32 {
	return SrgbAF32{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2]), A: float32(p.a)}
}

// WithoutAlpha drops the alpha channel.
func (c SrgbAF32) WithoutAlpha() SrgbF32 { return SrgbF32{R: c.R, G: c.G, B: c.B} }

// U8 quantizes the color to 8 bits.
func (c SrgbAF32) U8() SrgbAU8 { return Convert[SrgbAU8](c) }

// Linear decodes the color to linear sRGB, keeping alpha.
func (c SrgbAF32) Linear() LinearSrgbA { return Convert[LinearSrgbA](c) }

// Saturate clamps every channel, alpha included, to [0,1].
func (c SrgbAF32) Saturate() SrgbAF32 {
	return SrgbAF32{
		R: transfer.Clamp(c.R, 0, 1),
		G: transfer.Clamp(c.G, 0, 1),
		B: transfer.Clamp(c.B, 0, 1),
		A: transfer.Clamp(c.A, 0, 1),
	}
}

func (c SrgbAF32) String() string { return ToDynamic(c).String() }

// SrgbAU8Premultiplied is 8-bit non-linear sRGB whose color channels were
// multiplied by alpha in linear space before sRGB encoding.
type SrgbAU8Premultiplied struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// NewSrgbAU8Premultiplied constructs an SrgbAU8Premultiplied from four
// already premultiplied 8-bit components.
func NewSrgbAU8Premultiplied(r, g, b, a uint8) SrgbAU8Premultiplied {
	return SrgbAU8Premultiplied{R: r, G: g, B: b, A: a}
}

// SrgbAU8PremultipliedFromArray constructs a value from an [R, G, B, A] array.
func SrgbAU8PremultipliedFromArray(a [4]uint8) SrgbAU8Premultiplied {
	return SrgbAU8Premultiplied{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// Array returns the components as [R, G, B, A].
func (c SrgbAU8Premultiplied) Array() [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }

// Encoding returns EncodingSrgbAU8Premultiplied.
func (SrgbAU8Premultiplied) Encoding() Encoding { return EncodingSrgbAU8Premultiplied }

func (c SrgbAU8Premultiplied) pixel() pixel {
	return SrgbAU8(c).pixel()
}

func (SrgbAU8Premultiplied) fromPixel(p pixel) SrgbAU8Premultiplied {
	return SrgbAU8Premultiplied(SrgbAU8{}.fromPixel(p))
}

func (c SrgbAU8Premultiplied) String() string { return ToDynamic(c).String() }
