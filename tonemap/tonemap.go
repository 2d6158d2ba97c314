// Package tonemap maps unbounded scene-referred linear light into the
// displayable [0, 1] range.
//
// A Tonemapper works on linear sRGB. Lottes shapes each channel around the
// brightest one; Perceptual works on intensity in ICtCp and preserves hue.
// Display combines tone mapping with a conversion into an output encoding:
//
//	tm := tonemap.NewLottes(tonemap.DefaultLottesParams())
//	px := tonemap.Display[colorenc.SrgbAU8](tm, hdr)
package tonemap

import (
	"math"

	"github.com/gogpu/colorenc"
	"github.com/gogpu/colorenc/internal/transfer"
)

// Tonemapper maps a linear HDR color into [0, 1].
//
// Implementations must be safe for concurrent use.
type Tonemapper interface {
	Tonemap(c colorenc.LinearSrgb) colorenc.LinearSrgb
}

// LottesParams configures the Lottes curve.
type LottesParams struct {
	// Contrast controls the strength of the toe and shoulder.
	Contrast float32 `yaml:"contrast" json:"contrast"`
	// Shoulder controls the shape of the shoulder.
	Shoulder float32 `yaml:"shoulder" json:"shoulder"`
	// MaxLuminance is the scene value mapped to 1.
	MaxLuminance float32 `yaml:"max_luminance" json:"max_luminance"`
	// GrayPointIn is the scene middle gray. Lower it to raise exposure.
	GrayPointIn float32 `yaml:"gray_point_in" json:"gray_point_in"`
	// GrayPointOut is the display value middle gray maps to.
	GrayPointOut float32 `yaml:"gray_point_out" json:"gray_point_out"`
	// Crosstalk controls how fast bright saturated colors move to white.
	Crosstalk float32 `yaml:"crosstalk" json:"crosstalk"`
	// Saturation applies over the full tonal range.
	Saturation float32 `yaml:"saturation" json:"saturation"`
	// CrossSaturation applies within the crosstalk region.
	CrossSaturation float32 `yaml:"cross_saturation" json:"cross_saturation"`
}

// DefaultLottesParams returns parameters suited to an SDR display and a
// scene with highlights up to 150 times middle gray.
func DefaultLottesParams() LottesParams {
	return LottesParams{
		Contrast:        2.35,
		Shoulder:        1.0,
		MaxLuminance:    150,
		GrayPointIn:     0.18,
		GrayPointOut:    0.18,
		Crosstalk:       1.0,
		Saturation:      1.0,
		CrossSaturation: 1.2,
	}
}

// Lottes is the tone curve from Timothy Lottes' "Advanced Techniques and
// Optimization of HDR Color Pipelines" (GDC 2016). The curve is shaped so
// that GrayPointIn maps to GrayPointOut and MaxLuminance maps to 1.
type Lottes struct {
	a, b, c, d float64

	crosstalk       float64
	saturation      float64
	crossSaturation float64
}

// NewLottes bakes the curve coefficients for p.
func NewLottes(p LottesParams) *Lottes {
	a := float64(p.Contrast)
	d := float64(p.Shoulder)
	midIn := float64(p.GrayPointIn)
	midOut := float64(p.GrayPointOut)
	hdrMax := float64(p.MaxLuminance)

	midInA := math.Pow(midIn, a)
	midInAD := math.Pow(midIn, a*d)
	maxA := math.Pow(hdrMax, a)
	maxAD := math.Pow(hdrMax, a*d)

	denom := (maxAD - midInAD) * midOut
	b := (maxA*midOut - midInA) / denom
	c := (maxAD*midInA - maxA*midInAD*midOut) / denom

	colorenc.LoggerFor("tonemap").Debug("lottes curve", "a", a, "b", b, "c", c, "d", d)

	return &Lottes{
		a:               a,
		b:               b,
		c:               c,
		d:               d,
		crosstalk:       float64(p.Crosstalk),
		saturation:      float64(p.Saturation),
		crossSaturation: float64(p.CrossSaturation),
	}
}

func (l *Lottes) curve(x float64) float64 {
	z := math.Pow(x, l.a)
	if math.IsInf(z, 1) {
		return 1
	}
	return z / (math.Pow(z, l.d)*l.b + l.c)
}

// Tonemap applies the curve to the brightest channel and rescales the
// others around it, desaturating toward white as the peak rises. Black
// and non-positive colors map to black. Output is clamped to [0, 1].
func (l *Lottes) Tonemap(c colorenc.LinearSrgb) colorenc.LinearSrgb {
	in := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	peak := max(in[0], in[1], in[2])
	if !(peak > 0) {
		return colorenc.LinearSrgb{}
	}

	mapped := l.curve(peak)
	toWhite := math.Pow(mapped, l.crosstalk)

	var out [3]float32
	for i, v := range in {
		ratio := transfer.Clamp(v/peak, 0, 1)
		ratio = math.Pow(ratio, l.saturation/l.crossSaturation)
		ratio = transfer.Lerp(ratio, 1, toWhite)
		ratio = math.Pow(ratio, l.crossSaturation)
		out[i] = float32(transfer.Clamp(ratio*mapped, 0, 1))
	}
	return colorenc.LinearSrgbFromArray(out)
}

// PerceptualParams configures the perceptual tonemapper.
type PerceptualParams struct {
	// Desaturation is the exponent applied to the chroma-driven
	// desaturation amount. Smaller values desaturate more.
	Desaturation float32 `yaml:"desaturation" json:"desaturation"`
	// Crosstalk controls how fast bright colors move to the neutral axis.
	Crosstalk float32 `yaml:"crosstalk" json:"crosstalk"`
}

// DefaultPerceptualParams returns the neutral look.
func DefaultPerceptualParams() PerceptualParams {
	return PerceptualParams{Desaturation: 0.1, Crosstalk: 1.95}
}

// Perceptual is a neutral tonemapper that works in ICtCp PQ. It maps
// intensity through a filmic curve and leaves hue alone, pulling chroma
// toward neutral as the mapped luminance approaches white. The approach
// follows the Frostbite HDR pipeline.
type Perceptual struct {
	desaturation float64
	crosstalk    float64
}

// NewPerceptual returns a perceptual tonemapper for p.
func NewPerceptual(p PerceptualParams) *Perceptual {
	colorenc.LoggerFor("tonemap").Debug("perceptual curve",
		"desaturation", p.Desaturation, "crosstalk", p.Crosstalk)
	return &Perceptual{
		desaturation: float64(p.Desaturation),
		crosstalk:    float64(p.Crosstalk),
	}
}

// perceptualCurve is x/(1+x) applied to v+v²+v³/2. It maps [0,∞) onto
// [0,1) with a slope of 1 at the origin.
func perceptualCurve(v float64) float64 {
	c := v + v*v + 0.5*v*v*v
	if math.IsInf(c, 1) {
		return 1
	}
	return c / (1 + c)
}

// Tonemap converts c to ICtCp, tone maps it and converts back, clipping
// the result to [0, 1]. Colors with non-positive or undefined intensity
// map to black.
func (p *Perceptual) Tonemap(c colorenc.LinearSrgb) colorenc.LinearSrgb {
	v := p.TonemapICtCp(colorenc.Convert[colorenc.ICtCpPQ](c))
	if v == (colorenc.ICtCpPQ{}) {
		return colorenc.LinearSrgb{}
	}
	return colorenc.Convert[colorenc.LinearSrgb](v).Saturate()
}

// TonemapICtCp tone maps a scene-referred ICtCp color. The zero color is
// returned when the intensity does not decode to a positive luminance.
func (p *Perceptual) TonemapICtCp(c colorenc.ICtCpPQ) colorenc.ICtCpPQ {
	lum := transfer.PQToLinear(float64(c.I))
	if !(lum > 0) {
		return colorenc.ICtCpPQ{}
	}
	ct, cp := float64(c.Ct), float64(c.Cp)

	desat := perceptualCurve(math.Hypot(ct, cp) * 2.4)
	mapped := perceptualCurve(lum)
	toNeutral := math.Pow(desat, p.desaturation) * math.Pow(transfer.Clamp(mapped, 0, 1), p.crosstalk)
	keep := 1 - toNeutral

	return colorenc.NewICtCpPQ(
		float32(transfer.LinearToPQ(mapped)),
		float32(ct*keep),
		float32(cp*keep),
	)
}

// Clamp is the identity tone curve: it only clips to [0, 1].
type Clamp struct{}

// Tonemap clips each channel to [0, 1].
func (Clamp) Tonemap(c colorenc.LinearSrgb) colorenc.LinearSrgb {
	return c.Saturate()
}

// Display tone maps c and converts the result into Dst. Alpha, if c has
// one, is dropped; Dst encodings with alpha receive 1.
func Display[Dst colorenc.Target[Dst]](tm Tonemapper, c colorenc.Color) Dst {
	return colorenc.Convert[Dst](tm.Tonemap(colorenc.Convert[colorenc.LinearSrgb](c)))
}

// DisplaySlice tone maps and converts min(len(dst), len(src)) colors and
// returns the number converted.
func DisplaySlice[Dst colorenc.Target[Dst]](tm Tonemapper, dst []Dst, src []colorenc.LinearSrgb) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = colorenc.Convert[Dst](tm.Tonemap(src[i]))
	}
	return n
}
