package colorenc

import (
	"encoding/json"
	"math"

	"github.com/gogpu/colorenc/internal/transfer"
	"github.com/x448/float16"
	"gopkg.in/yaml.v3"
)

// LinearSrgb is linear light with sRGB (BT.709) primaries and D65 white.
// Components are float32 and may exceed [0,1] for HDR values.
//
// LinearSrgb is a working encoding: Add, Scale, Lerp and Mix are
// physically meaningful on it.
type LinearSrgb struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewLinearSrgb constructs a LinearSrgb from three float components.
func NewLinearSrgb(r, g, b float32) LinearSrgb { return LinearSrgb{R: r, G: g, B: b} }

// LinearSrgbFromArray constructs a LinearSrgb from an [R, G, B] array.
func LinearSrgbFromArray(a [3]float32) LinearSrgb { return LinearSrgb{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c LinearSrgb) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingLinearSrgb.
func (LinearSrgb) Encoding() Encoding { return EncodingLinearSrgb }

func (c LinearSrgb) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (LinearSrgb) fromPixel(p pixel) LinearSrgb {
	return LinearSrgb{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (LinearSrgb) working() {}

// WithAlpha adds an alpha channel.
func (c LinearSrgb) WithAlpha(a float32) LinearSrgbA {
	return LinearSrgbA{R: c.R, G: c.G, B: c.B, A: a}
}

// Saturate clamps every channel to [0,1].
func (c LinearSrgb) Saturate() LinearSrgb {
	return LinearSrgb{R: transfer.Clamp(c.R, 0, 1), G: transfer.Clamp(c.G, 0, 1), B: transfer.Clamp(c.B, 0, 1)}
}

// Luminance returns the relative luminance (CIE Y).
func (c LinearSrgb) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func (c LinearSrgb) String() string { return ToDynamic(c).String() }

// LinearSrgbA is LinearSrgb with a separate alpha channel.
type LinearSrgbA struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

// NewLinearSrgbA constructs a LinearSrgbA from four float components.
func NewLinearSrgbA(r, g, b, a float32) LinearSrgbA { return LinearSrgbA{R: r, G: g, B: b, A: a} }

// LinearSrgbAFromArray constructs a LinearSrgbA from an [R, G, B, A] array.
func LinearSrgbAFromArray(a [4]float32) LinearSrgbA {
	return LinearSrgbA{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// Array returns the components as [R, G, B, A].
func (c LinearSrgbA) Array() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

// Encoding returns EncodingLinearSrgbA.
func (LinearSrgbA) Encoding() Encoding { return EncodingLinearSrgbA }

func (c LinearSrgbA) pixel() pixel {
	return rgba(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

func (LinearSrgbA) fromPixel(p pixel) LinearSrgbA {
	return LinearSrgbA{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2]), A: float32(p.a)}
}

func (LinearSrgbA) working() {}

// WithoutAlpha drops the alpha channel.
func (c LinearSrgbA) WithoutAlpha() LinearSrgb { return LinearSrgb{R: c.R, G: c.G, B: c.B} }

// Premultiply multiplies the color channels by alpha.
func (c LinearSrgbA) Premultiply() LinearSrgbAPremultiplied {
	return LinearSrgbAPremultiplied{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Saturate clamps every channel, alpha included, to [0,1].
func (c LinearSrgbA) Saturate() LinearSrgbA {
	return LinearSrgbA{
		R: transfer.Clamp(c.R, 0, 1),
		G: transfer.Clamp(c.G, 0, 1),
		B: transfer.Clamp(c.B, 0, 1),
		A: transfer.Clamp(c.A, 0, 1),
	}
}

func (c LinearSrgbA) String() string { return ToDynamic(c).String() }

// LinearSrgbAPremultiplied is linear sRGB whose color channels are
// multiplied by alpha. Compositing operators work on this encoding.
type LinearSrgbAPremultiplied struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

// NewLinearSrgbAPremultiplied constructs a value from four already
// premultiplied components.
func NewLinearSrgbAPremultiplied(r, g, b, a float32) LinearSrgbAPremultiplied {
	return LinearSrgbAPremultiplied{R: r, G: g, B: b, A: a}
}

// LinearSrgbAPremultipliedFromArray constructs a value from an
// [R, G, B, A] array.
func LinearSrgbAPremultipliedFromArray(a [4]float32) LinearSrgbAPremultiplied {
	return LinearSrgbAPremultiplied{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// Array returns the components as [R, G, B, A].
func (c LinearSrgbAPremultiplied) Array() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

// Encoding returns EncodingLinearSrgbAPremultiplied.
func (LinearSrgbAPremultiplied) Encoding() Encoding { return EncodingLinearSrgbAPremultiplied }

func (c LinearSrgbAPremultiplied) pixel() pixel {
	return LinearSrgbA(c).pixel()
}

func (LinearSrgbAPremultiplied) fromPixel(p pixel) LinearSrgbAPremultiplied {
	return LinearSrgbAPremultiplied(LinearSrgbA{}.fromPixel(p))
}

// Unpremultiply divides the color channels by alpha. Fully transparent
// colors become transparent black.
func (c LinearSrgbAPremultiplied) Unpremultiply() LinearSrgbA {
	if c.A == 0 {
		return LinearSrgbA{}
	}
	return LinearSrgbA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

func (c LinearSrgbAPremultiplied) String() string { return ToDynamic(c).String() }

// LinearSrgbF16 is linear sRGB radiance stored as IEEE 754 half floats,
// the layout of RGB16F render targets. Values are unbounded; typical scene
// radiance goes well past 1 and is brought into display range by a
// tonemapper.
type LinearSrgbF16 struct {
	R float16.Float16
	G float16.Float16
	B float16.Float16
}

// NewLinearSrgbF16 constructs a LinearSrgbF16, rounding each component to
// the nearest half float. Magnitudes past 65504 saturate and NaN becomes 0.
func NewLinearSrgbF16(r, g, b float32) LinearSrgbF16 {
	return LinearSrgbF16{R: toHalf(r), G: toHalf(g), B: toHalf(b)}
}

// maxHalf is the largest finite half float.
const maxHalf = 65504

func toHalf(v float32) float16.Float16 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return float16.Fromfloat32(transfer.Clamp(v, -maxHalf, maxHalf))
}

// LinearSrgbF16FromArray constructs a LinearSrgbF16 from an [R, G, B] array.
func LinearSrgbF16FromArray(a [3]float16.Float16) LinearSrgbF16 {
	return LinearSrgbF16{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [R, G, B].
func (c LinearSrgbF16) Array() [3]float16.Float16 { return [3]float16.Float16{c.R, c.G, c.B} }

// Float32 widens the components to float32 as LinearSrgb.
func (c LinearSrgbF16) Float32() LinearSrgb {
	return LinearSrgb{R: c.R.Float32(), G: c.G.Float32(), B: c.B.Float32()}
}

// Encoding returns EncodingLinearSrgbF16.
func (LinearSrgbF16) Encoding() Encoding { return EncodingLinearSrgbF16 }

func (c LinearSrgbF16) pixel() pixel {
	return c.Float32().pixel()
}

func (LinearSrgbF16) fromPixel(p pixel) LinearSrgbF16 {
	return NewLinearSrgbF16(float32(p.c[0]), float32(p.c[1]), float32(p.c[2]))
}

func (LinearSrgbF16) working() {}

func (c LinearSrgbF16) String() string { return ToDynamic(c).String() }

// MarshalJSON encodes the components as JSON numbers.
func (c LinearSrgbF16) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Float32())
}

// UnmarshalJSON decodes JSON numbers, rounding to half precision.
func (c *LinearSrgbF16) UnmarshalJSON(data []byte) error {
	var wide LinearSrgb
	if err := json.Unmarshal(data, &wide); err != nil {
		return err
	}
	*c = NewLinearSrgbF16(wide.R, wide.G, wide.B)
	return nil
}

// MarshalYAML encodes the components as float32 numbers.
func (c LinearSrgbF16) MarshalYAML() (any, error) {
	return c.Float32(), nil
}

// UnmarshalYAML decodes numbers, rounding to half precision.
func (c *LinearSrgbF16) UnmarshalYAML(value *yaml.Node) error {
	var wide LinearSrgb
	if err := value.Decode(&wide); err != nil {
		return err
	}
	*c = NewLinearSrgbF16(wide.R, wide.G, wide.B)
	return nil
}
