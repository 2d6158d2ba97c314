// Package transfer implements the sRGB transfer curves and the 8-bit
// quantization rules shared by every colorenc encoding.
//
// The curves follow IEC 61966-2-1. Decoding (EOTF) maps non-linear sRGB
// values to linear light; encoding (OETF) is its inverse.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package transfer

import "math"

// sRGB curve constants. The shader package embeds the same values.
const (
	DecodeThreshold = 0.04045
	EncodeThreshold = 0.0031308
	LinearSlope     = 12.92
	Offset          = 0.055
	Scale           = 1.055
	Gamma           = 2.4
)

// SRGBToLinear converts an sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// Values outside [0,1] are not clamped. Negative values stay on the linear
// segment.
func SRGBToLinear(s float64) float64 {
	if s <= DecodeThreshold {
		return s / LinearSlope
	}
	return math.Pow((s+Offset)/Scale, Gamma)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= EncodeThreshold {
		return l * LinearSlope
	}
	return Scale*math.Pow(l, 1/Gamma) - Offset
}
