// Package colorenc provides color values tagged with their encoding and
// the conversions between them.
//
// # Overview
//
// A color is only meaningful together with the rule for reading its
// numbers. 128 in an 8-bit sRGB texture is about 0.216 in linear light,
// not 0.5. colorenc gives every encoding its own Go type so the compiler
// rejects mixing them up, and converts between encodings explicitly.
//
// # Quick Start
//
//	import "github.com/gogpu/colorenc"
//
//	orange := colorenc.NewSrgbU8(255, 128, 0)
//
//	// Decode to linear light before doing math
//	lin := colorenc.Convert[colorenc.LinearSrgb](orange)
//	dim := colorenc.Scale(lin, 0.5)
//
//	// Encode back for display
//	out := colorenc.Convert[colorenc.SrgbU8](dim)
//
// # Encodings
//
// Non-linear sRGB: SrgbU8, SrgbAU8, SrgbF32, SrgbAF32, SrgbAU8Premultiplied.
// Linear: LinearSrgb, LinearSrgbA, LinearSrgbAPremultiplied, LinearSrgbF16,
// LinearDisplayP3, LinearBt2020, LinearAcesCg, LinearAces2065, CieXYZ.
// Perceptual: Oklab, Oklch, ICtCpPQ. Wide-gamut signals: DisplayP3 (sRGB
// curve), Bt2020 (BT.601 curve), Bt2100PQ (PQ curve) and AcesCgSrgb.
//
// The 8-bit and float forms of an encoding differ by the factor 255 only:
// SrgbU8{127, 0, 0} and SrgbF32{127.0/255, 0, 0} are the same color.
//
// # Working encodings
//
// Add, Sub, Mul, Scale, Lerp, Mix and Gradient only accept working
// encodings (linear and perceptual floats), where arithmetic has physical or
// perceptual meaning.
//
// # Interop
//
// Every color type has an Array method and a FromArray constructor, JSON
// and YAML field tags, and a flat memory layout that Bytes and FromBytes
// reinterpret without copying. Dynamic carries an encoding chosen at
// runtime. SrgbU8 and SrgbAU8 implement image/color.Color.
//
// # Logging
//
// colorenc is silent by default. See SetLogger.
package colorenc
