// Package space converts linear tristimulus values between the color spaces
// colorenc supports. Every conversion goes through CIE XYZ (D65).
//
// sRGB, Oklab and Oklch math comes from go-colorful. Display P3 and BT.2020
// use the matrices published in CSS Color Module Level 4. The ACES spaces
// are derived from their primaries at init and adapted from the ACES white
// point to D65 with the Bradford transform.
package space

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/colorenc/internal/transfer"
)

// ID identifies a color space.
type ID uint8

const (
	// Srgb is linear sRGB / BT.709 primaries, D65 white.
	Srgb ID = iota
	// CieXYZ is CIE 1931 XYZ, D65 white, Y=1 for reference white.
	CieXYZ
	// DisplayP3 is linear Display P3 (DCI-P3 primaries, D65 white).
	DisplayP3
	// Bt2020 is linear ITU-R BT.2020 primaries, D65 white.
	Bt2020
	// Oklab is Björn Ottosson's perceptual space.
	Oklab
	// AcesCg is linear ACES AP1 primaries, ACES (~D60) white.
	AcesCg
	// Aces2065 is linear ACES AP0 primaries, ACES (~D60) white. AP0 encloses
	// the whole spectral locus.
	Aces2065
	// Oklch is Oklab in polar form: lightness, chroma and hue in degrees.
	Oklch
	// ICtCpPQ is the ITU-R BT.2100 ICtCp space on the PQ curve. Linear 1.0
	// maps to the PQ peak.
	ICtCpPQ
)

var names = [...]string{
	Srgb:      "sRGB",
	CieXYZ:    "CIE XYZ",
	DisplayP3: "Display P3",
	Bt2020:    "BT.2020",
	Oklab:     "Oklab",
	AcesCg:    "ACEScg",
	Aces2065:  "ACES2065-1",
	Oklch:     "Oklch",
	ICtCpPQ:   "ICtCp PQ",
}

// String returns a human-readable name.
func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return "Unknown"
}

// Tristimulus is three components in some space.
type Tristimulus [3]float64

type matrix [3][3]float64

func (m *matrix) apply(v Tristimulus) Tristimulus {
	return Tristimulus{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m *matrix) mul(n *matrix) matrix {
	var out matrix
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

func (m *matrix) inverse() matrix {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	return matrix{
		{(e*i - f*h) / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{(f*g - d*i) / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{(d*h - e*g) / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

// chromaticity is a CIE 1931 xy pair.
type chromaticity struct{ x, y float64 }

func (c chromaticity) xyz() Tristimulus {
	return Tristimulus{c.x / c.y, 1, (1 - c.x - c.y) / c.y}
}

// primariesToXYZ builds the RGB to XYZ matrix of an additive space from its
// primaries and white point.
func primariesToXYZ(r, g, b, white chromaticity) matrix {
	pr, pg, pb := r.xyz(), g.xyz(), b.xyz()
	p := matrix{
		{pr[0], pg[0], pb[0]},
		{pr[1], pg[1], pb[1]},
		{pr[2], pg[2], pb[2]},
	}
	inv := p.inverse()
	s := inv.apply(white.xyz())
	for row := range 3 {
		for col := range 3 {
			p[row][col] *= s[col]
		}
	}
	return p
}

var bradford = matrix{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// adapt returns the Bradford chromatic adaptation from one white to another.
func adapt(from, to chromaticity) matrix {
	src := bradford.apply(from.xyz())
	dst := bradford.apply(to.xyz())
	scale := matrix{
		{dst[0] / src[0], 0, 0},
		{0, dst[1] / src[1], 0},
		{0, 0, dst[2] / src[2]},
	}
	inv := bradford.inverse()
	m := scale.mul(&bradford)
	return inv.mul(&m)
}

var (
	whiteD65  = chromaticity{0.3127, 0.3290}
	whiteACES = chromaticity{0.32168, 0.33767}
)

var (
	p3ToXYZ = matrix{
		{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
		{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
		{0.0, 0.04511338185890264, 1.043944368900976},
	}
	xyzToP3 = matrix{
		{2.493496911941425, -0.9313836179191239, -0.40271078445071684},
		{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
		{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
	}
	bt2020ToXYZ = matrix{
		{0.6369580483012914, 0.14461690358620832, 0.1688809751641721},
		{0.2627002120112671, 0.6779980715188708, 0.05930171646986196},
		{0.0, 0.028072693049087428, 1.060985057710791},
	}
	xyzToBt2020 = matrix{
		{1.716651187971268, -0.355670783776392, -0.253366281373660},
		{-0.666684351832489, 1.616481236634939, 0.0157685458139111},
		{0.017639857445311, -0.042770613257809, 0.942103121235474},
	}

	acesCgToXYZ, xyzToAcesCg     matrix
	aces2065ToXYZ, xyzToAces2065 matrix

	// BT.2100 ICtCp, integer coefficients over 4096.
	bt2020ToLMS = matrix{
		{1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096},
		{683.0 / 4096, 2951.0 / 4096, 462.0 / 4096},
		{99.0 / 4096, 309.0 / 4096, 3688.0 / 4096},
	}
	lmsToICtCp = matrix{
		{2048.0 / 4096, 2048.0 / 4096, 0},
		{6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096},
		{17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096},
	}
	lmsToBt2020, ictcpToLMS matrix
)

func init() {
	toD65 := adapt(whiteACES, whiteD65)

	ap1 := primariesToXYZ(
		chromaticity{0.713, 0.293}, chromaticity{0.165, 0.830}, chromaticity{0.128, 0.044}, whiteACES)
	acesCgToXYZ = toD65.mul(&ap1)
	xyzToAcesCg = acesCgToXYZ.inverse()

	ap0 := primariesToXYZ(
		chromaticity{0.7347, 0.2653}, chromaticity{0.0, 1.0}, chromaticity{0.0001, -0.0770}, whiteACES)
	aces2065ToXYZ = toD65.mul(&ap0)
	xyzToAces2065 = aces2065ToXYZ.inverse()

	lmsToBt2020 = bt2020ToLMS.inverse()
	ictcpToLMS = lmsToICtCp.inverse()
}

// Convert maps v from one space to another. Same-space conversion returns
// v unchanged.
func Convert(from, to ID, v Tristimulus) Tristimulus {
	if from == to {
		return v
	}
	return FromXYZ(to, ToXYZ(from, v))
}

// ToXYZ maps v in space id to CIE XYZ.
func ToXYZ(id ID, v Tristimulus) Tristimulus {
	switch id {
	case Srgb:
		x, y, z := colorful.LinearRgbToXyz(v[0], v[1], v[2])
		return Tristimulus{x, y, z}
	case DisplayP3:
		return p3ToXYZ.apply(v)
	case Bt2020:
		return bt2020ToXYZ.apply(v)
	case Oklab:
		x, y, z := colorful.OkLabToXyz(v[0], v[1], v[2])
		return Tristimulus{x, y, z}
	case Oklch:
		l, a, b := colorful.OkLchToOkLab(v[0], v[1], v[2])
		x, y, z := colorful.OkLabToXyz(l, a, b)
		return Tristimulus{x, y, z}
	case AcesCg:
		return acesCgToXYZ.apply(v)
	case Aces2065:
		return aces2065ToXYZ.apply(v)
	case ICtCpPQ:
		lms := ictcpToLMS.apply(v)
		for i := range lms {
			lms[i] = transfer.PQToLinear(lms[i])
		}
		rgb := lmsToBt2020.apply(lms)
		return bt2020ToXYZ.apply(rgb)
	default:
		return v
	}
}

// FromXYZ maps CIE XYZ to space id.
func FromXYZ(id ID, v Tristimulus) Tristimulus {
	switch id {
	case Srgb:
		r, g, b := colorful.XyzToLinearRgb(v[0], v[1], v[2])
		return Tristimulus{r, g, b}
	case DisplayP3:
		return xyzToP3.apply(v)
	case Bt2020:
		return xyzToBt2020.apply(v)
	case Oklab:
		l, a, b := colorful.XyzToOkLab(v[0], v[1], v[2])
		return Tristimulus{l, a, b}
	case Oklch:
		l, a, b := colorful.XyzToOkLab(v[0], v[1], v[2])
		l, c, h := colorful.OkLabToOkLch(l, a, b)
		return Tristimulus{l, c, h}
	case AcesCg:
		return xyzToAcesCg.apply(v)
	case Aces2065:
		return xyzToAces2065.apply(v)
	case ICtCpPQ:
		lms := bt2020ToLMS.apply(xyzToBt2020.apply(v))
		for i := range lms {
			lms[i] = transfer.LinearToPQ(lms[i])
		}
		return lmsToICtCp.apply(lms)
	default:
		return v
	}
}

// Luminance returns relative luminance (CIE Y) of v in space id.
func Luminance(id ID, v Tristimulus) float64 {
	return ToXYZ(id, v)[1]
}
