package colorenc

// DisplayP3 is Display P3 with the sRGB transfer curve, the form CSS
// color(display-p3 r g b) and wide-gamut Apple displays use. In-gamut
// components are in [0,1].
type DisplayP3 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewDisplayP3 constructs a DisplayP3 color from encoded components.
func NewDisplayP3(r, g, b float32) DisplayP3 { return DisplayP3{R: r, G: g, B: b} }

// DisplayP3FromArray constructs a color from an [R, G, B] array.
func DisplayP3FromArray(a [3]float32) DisplayP3 { return DisplayP3{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c DisplayP3) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingDisplayP3.
func (DisplayP3) Encoding() Encoding { return EncodingDisplayP3 }

func (c DisplayP3) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (DisplayP3) fromPixel(p pixel) DisplayP3 {
	return DisplayP3{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (c DisplayP3) String() string { return ToDynamic(c).String() }

// Bt2020 is BT.2020 primaries with the BT.601 camera curve, the SDR
// wide-gamut broadcast signal.
type Bt2020 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewBt2020 constructs a Bt2020 color from encoded components.
func NewBt2020(r, g, b float32) Bt2020 { return Bt2020{R: r, G: g, B: b} }

// Bt2020FromArray constructs a color from an [R, G, B] array.
func Bt2020FromArray(a [3]float32) Bt2020 { return Bt2020{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c Bt2020) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingBt2020.
func (Bt2020) Encoding() Encoding { return EncodingBt2020 }

func (c Bt2020) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (Bt2020) fromPixel(p pixel) Bt2020 {
	return Bt2020{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (c Bt2020) String() string { return ToDynamic(c).String() }

// Bt2100PQ is BT.2020 primaries with the SMPTE ST 2084 PQ curve, the
// HDR10 signal. Linear 1.0 encodes to 1.0 (10000 cd/m²); 100 cd/m²,
// linear 0.01, encodes to about 0.508.
type Bt2100PQ struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewBt2100PQ constructs a Bt2100PQ color from encoded components.
func NewBt2100PQ(r, g, b float32) Bt2100PQ { return Bt2100PQ{R: r, G: g, B: b} }

// Bt2100PQFromArray constructs a color from an [R, G, B] array.
func Bt2100PQFromArray(a [3]float32) Bt2100PQ { return Bt2100PQ{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c Bt2100PQ) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingBt2100PQ.
func (Bt2100PQ) Encoding() Encoding { return EncodingBt2100PQ }

func (c Bt2100PQ) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (Bt2100PQ) fromPixel(p pixel) Bt2100PQ {
	return Bt2100PQ{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (c Bt2100PQ) String() string { return ToDynamic(c).String() }

// AcesCgSrgb is ACES AP1 primaries with the sRGB transfer curve, for
// viewing or storing ACEScg data in 8-bit-friendly form.
type AcesCgSrgb struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewAcesCgSrgb constructs an AcesCgSrgb color from encoded components.
func NewAcesCgSrgb(r, g, b float32) AcesCgSrgb { return AcesCgSrgb{R: r, G: g, B: b} }

// AcesCgSrgbFromArray constructs a color from an [R, G, B] array.
func AcesCgSrgbFromArray(a [3]float32) AcesCgSrgb { return AcesCgSrgb{R: a[0], G: a[1], B: a[2]} }

// Array returns the components as [R, G, B].
func (c AcesCgSrgb) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingAcesCgSrgb.
func (AcesCgSrgb) Encoding() Encoding { return EncodingAcesCgSrgb }

func (c AcesCgSrgb) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (AcesCgSrgb) fromPixel(p pixel) AcesCgSrgb {
	return AcesCgSrgb{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (c AcesCgSrgb) String() string { return ToDynamic(c).String() }
