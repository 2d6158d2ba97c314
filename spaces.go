package colorenc

// Oklab is Björn Ottosson's perceptual color space. L is lightness in
// [0,1] for SDR colors; A and B are the green-red and blue-yellow axes.
// A is not alpha.
//
// Euclidean distance in Oklab approximates perceived difference, which
// makes it the encoding of choice for perceptual blends and gradients.
type Oklab struct {
	L float32 `json:"l" yaml:"l"`
	A float32 `json:"a" yaml:"a"`
	B float32 `json:"b" yaml:"b"`
}

// NewOklab constructs an Oklab color.
func NewOklab(l, a, b float32) Oklab { return Oklab{L: l, A: a, B: b} }

// OklabFromArray constructs an Oklab color from an [L, A, B] array.
func OklabFromArray(a [3]float32) Oklab { return Oklab{L: a[0], A: a[1], B: a[2]} }

// Array returns the components as [L, A, B].
func (c Oklab) Array() [3]float32 { return [3]float32{c.L, c.A, c.B} }

// Encoding returns EncodingOklab.
func (Oklab) Encoding() Encoding { return EncodingOklab }

func (c Oklab) pixel() pixel {
	return opaque(float64(c.L), float64(c.A), float64(c.B))
}

func (Oklab) fromPixel(p pixel) Oklab {
	return Oklab{L: float32(p.c[0]), A: float32(p.c[1]), B: float32(p.c[2])}
}

func (Oklab) working() {}

// PerceptualBlend interpolates toward other in Oklab. t=0 returns c, t=1
// returns other.
func (c Oklab) PerceptualBlend(other Oklab, t float32) Oklab {
	return Lerp(c, other, t)
}

func (c Oklab) String() string { return ToDynamic(c).String() }

// CieXYZ is CIE 1931 XYZ tristimulus with a D65 white point normalized so
// reference white has Y=1. It is the hub every space conversion passes
// through.
type CieXYZ struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// NewCieXYZ constructs a CieXYZ color.
func NewCieXYZ(x, y, z float32) CieXYZ { return CieXYZ{X: x, Y: y, Z: z} }

// CieXYZFromArray constructs a CieXYZ color from an [X, Y, Z] array.
func CieXYZFromArray(a [3]float32) CieXYZ { return CieXYZ{X: a[0], Y: a[1], Z: a[2]} }

// Array returns the components as [X, Y, Z].
func (c CieXYZ) Array() [3]float32 { return [3]float32{c.X, c.Y, c.Z} }

// Encoding returns EncodingCieXYZ.
func (CieXYZ) Encoding() Encoding { return EncodingCieXYZ }

func (c CieXYZ) pixel() pixel {
	return opaque(float64(c.X), float64(c.Y), float64(c.Z))
}

func (CieXYZ) fromPixel(p pixel) CieXYZ {
	return CieXYZ{X: float32(p.c[0]), Y: float32(p.c[1]), Z: float32(p.c[2])}
}

func (CieXYZ) working() {}

func (c CieXYZ) String() string { return ToDynamic(c).String() }

// LinearDisplayP3 is linear light with Display P3 primaries and D65 white.
// sRGB colors land inside [0,1]; P3-only colors fall outside sRGB.
type LinearDisplayP3 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewLinearDisplayP3 constructs a LinearDisplayP3 color.
func NewLinearDisplayP3(r, g, b float32) LinearDisplayP3 { return LinearDisplayP3{R: r, G: g, B: b} }

// LinearDisplayP3FromArray constructs a color from an [R, G, B] array.
func LinearDisplayP3FromArray(a [3]float32) LinearDisplayP3 {
	return LinearDisplayP3{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [R, G, B].
func (c LinearDisplayP3) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingLinearDisplayP3.
func (LinearDisplayP3) Encoding() Encoding { return EncodingLinearDisplayP3 }

func (c LinearDisplayP3) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (LinearDisplayP3) fromPixel(p pixel) LinearDisplayP3 {
	return LinearDisplayP3{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (LinearDisplayP3) working() {}

func (c LinearDisplayP3) String() string { return ToDynamic(c).String() }

// LinearBt2020 is linear light with ITU-R BT.2020 primaries and D65 white,
// the gamut of HDR10 signals before the PQ curve.
type LinearBt2020 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewLinearBt2020 constructs a LinearBt2020 color.
func NewLinearBt2020(r, g, b float32) LinearBt2020 { return LinearBt2020{R: r, G: g, B: b} }

// LinearBt2020FromArray constructs a color from an [R, G, B] array.
func LinearBt2020FromArray(a [3]float32) LinearBt2020 {
	return LinearBt2020{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [R, G, B].
func (c LinearBt2020) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingLinearBt2020.
func (LinearBt2020) Encoding() Encoding { return EncodingLinearBt2020 }

func (c LinearBt2020) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (LinearBt2020) fromPixel(p pixel) LinearBt2020 {
	return LinearBt2020{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (LinearBt2020) working() {}

func (c LinearBt2020) String() string { return ToDynamic(c).String() }

// LinearAcesCg is linear light with ACES AP1 primaries and the ACES white
// point (~D60). AP1 is slightly wider than BT.2020 and is the usual
// rendering space of ACES pipelines.
type LinearAcesCg struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewLinearAcesCg constructs a LinearAcesCg color.
func NewLinearAcesCg(r, g, b float32) LinearAcesCg { return LinearAcesCg{R: r, G: g, B: b} }

// LinearAcesCgFromArray constructs a color from an [R, G, B] array.
func LinearAcesCgFromArray(a [3]float32) LinearAcesCg {
	return LinearAcesCg{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [R, G, B].
func (c LinearAcesCg) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingLinearAcesCg.
func (LinearAcesCg) Encoding() Encoding { return EncodingLinearAcesCg }

func (c LinearAcesCg) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (LinearAcesCg) fromPixel(p pixel) LinearAcesCg {
	return LinearAcesCg{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (LinearAcesCg) working() {}

func (c LinearAcesCg) String() string { return ToDynamic(c).String() }

// LinearAces2065 is linear light with ACES AP0 primaries, the ACES2065-1
// interchange space. AP0 encloses the spectral locus, so every visible
// color has non-negative components.
type LinearAces2065 struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

// NewLinearAces2065 constructs a LinearAces2065 color.
func NewLinearAces2065(r, g, b float32) LinearAces2065 { return LinearAces2065{R: r, G: g, B: b} }

// LinearAces2065FromArray constructs a color from an [R, G, B] array.
func LinearAces2065FromArray(a [3]float32) LinearAces2065 {
	return LinearAces2065{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [R, G, B].
func (c LinearAces2065) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Encoding returns EncodingLinearAces2065.
func (LinearAces2065) Encoding() Encoding { return EncodingLinearAces2065 }

func (c LinearAces2065) pixel() pixel {
	return opaque(float64(c.R), float64(c.G), float64(c.B))
}

func (LinearAces2065) fromPixel(p pixel) LinearAces2065 {
	return LinearAces2065{R: float32(p.c[0]), G: float32(p.c[1]), B: float32(p.c[2])}
}

func (LinearAces2065) working() {}

func (c LinearAces2065) String() string { return ToDynamic(c).String() }

// Oklch is Oklab in cylindrical form. L is Oklab lightness, C is chroma
// (distance from the neutral axis) and H is hue in degrees [0,360).
//
// Oklch is not a working encoding: hue is an angle, so component-wise
// interpolation takes the wrong way around the circle half the time.
// Blend in Oklab instead.
type Oklch struct {
	L float32 `json:"l" yaml:"l"`
	C float32 `json:"c" yaml:"c"`
	H float32 `json:"h" yaml:"h"`
}

// NewOklch constructs an Oklch color.
func NewOklch(l, c, h float32) Oklch { return Oklch{L: l, C: c, H: h} }

// OklchFromArray constructs an Oklch color from an [L, C, H] array.
func OklchFromArray(a [3]float32) Oklch { return Oklch{L: a[0], C: a[1], H: a[2]} }

// Array returns the components as [L, C, H].
func (c Oklch) Array() [3]float32 { return [3]float32{c.L, c.C, c.H} }

// Encoding returns EncodingOklch.
func (Oklch) Encoding() Encoding { return EncodingOklch }

func (c Oklch) pixel() pixel {
	return opaque(float64(c.L), float64(c.C), float64(c.H))
}

func (Oklch) fromPixel(p pixel) Oklch {
	return Oklch{L: float32(p.c[0]), C: float32(p.c[1]), H: float32(p.c[2])}
}

func (c Oklch) String() string { return ToDynamic(c).String() }

// ICtCpPQ is the ITU-R BT.2100 ICtCp space: BT.2020 linear light through
// an LMS cone matrix, the PQ curve, then an opponent matrix. I is
// intensity; Ct and Cp are the blue-yellow and red-green axes.
//
// Linear 1.0 maps to the PQ peak, so SDR white lands at I=1. ICtCp is
// perceptually uniform across a wide luminance range and is where the
// perceptual tonemapper does its work.
type ICtCpPQ struct {
	I  float32 `json:"i" yaml:"i"`
	Ct float32 `json:"ct" yaml:"ct"`
	Cp float32 `json:"cp" yaml:"cp"`
}

// NewICtCpPQ constructs an ICtCpPQ color.
func NewICtCpPQ(i, ct, cp float32) ICtCpPQ { return ICtCpPQ{I: i, Ct: ct, Cp: cp} }

// ICtCpPQFromArray constructs a color from an [I, Ct, Cp] array.
func ICtCpPQFromArray(a [3]float32) ICtCpPQ { return ICtCpPQ{I: a[0], Ct: a[1], Cp: a[2]} }

// Array returns the components as [I, Ct, Cp].
func (c ICtCpPQ) Array() [3]float32 { return [3]float32{c.I, c.Ct, c.Cp} }

// Encoding returns EncodingICtCpPQ.
func (ICtCpPQ) Encoding() Encoding { return EncodingICtCpPQ }

func (c ICtCpPQ) pixel() pixel {
	return opaque(float64(c.I), float64(c.Ct), float64(c.Cp))
}

func (ICtCpPQ) fromPixel(p pixel) ICtCpPQ {
	return ICtCpPQ{I: float32(p.c[0]), Ct: float32(p.c[1]), Cp: float32(p.c[2])}
}

func (ICtCpPQ) working() {}

func (c ICtCpPQ) String() string { return ToDynamic(c).String() }
