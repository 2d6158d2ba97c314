package colorenc

import (
	"fmt"
	"sync"

	"github.com/gogpu/colorenc/internal/space"
	"github.com/gogpu/gputypes"
	"golang.org/x/text/cases"
)

// Encoding identifies how the components of a color value are interpreted:
// storage type, channel layout, transfer function, linear space and alpha
// mode. Each Encoding has exactly one Go color type.
//
// The zero value is not a valid encoding.
type Encoding uint8

const (
	// EncodingSrgbU8 is non-linear sRGB, three 8-bit channels. The format of
	// most 8-bit images and hex color codes.
	EncodingSrgbU8 Encoding = iota + 1
	// EncodingSrgbAU8 is non-linear sRGB with separate linear alpha, four
	// 8-bit channels.
	EncodingSrgbAU8
	// EncodingSrgbF32 is non-linear sRGB, three float32 channels.
	EncodingSrgbF32
	// EncodingSrgbAF32 is non-linear sRGB with separate linear alpha, four
	// float32 channels.
	EncodingSrgbAF32
	// EncodingSrgbAU8Premultiplied is non-linear sRGB, 8-bit, with alpha
	// premultiplied in linear space before encoding.
	EncodingSrgbAU8Premultiplied
	// EncodingLinearSrgb is linear light with sRGB primaries, float32.
	EncodingLinearSrgb
	// EncodingLinearSrgbA is EncodingLinearSrgb with separate alpha.
	EncodingLinearSrgbA
	// EncodingLinearSrgbAPremultiplied is linear sRGB with premultiplied
	// alpha. The encoding compositing math operates on.
	EncodingLinearSrgbAPremultiplied
	// EncodingLinearSrgbF16 is linear sRGB radiance stored as half floats.
	// Components are unbounded and usually exceed 1.
	EncodingLinearSrgbF16
	// EncodingOklab is the Oklab perceptual space, float32.
	EncodingOklab
	// EncodingCieXYZ is CIE 1931 XYZ with a D65 white point, float32.
	EncodingCieXYZ
	// EncodingLinearDisplayP3 is linear light with Display P3 primaries.
	EncodingLinearDisplayP3
	// EncodingLinearBt2020 is linear light with ITU-R BT.2020 primaries.
	EncodingLinearBt2020
	// EncodingLinearAcesCg is linear light with ACES AP1 primaries, the
	// common rendering space of VFX pipelines.
	EncodingLinearAcesCg
	// EncodingLinearAces2065 is linear light with ACES AP0 primaries, the
	// ACES interchange and archival space.
	EncodingLinearAces2065
	// EncodingOklch is Oklab in polar form: lightness, chroma and hue in
	// degrees.
	EncodingOklch
	// EncodingICtCpPQ is the BT.2100 ICtCp space built on the PQ curve.
	EncodingICtCpPQ
	// EncodingDisplayP3 is Display P3 primaries with the sRGB curve, as
	// used by CSS color(display-p3 ...) and Apple displays.
	EncodingDisplayP3
	// EncodingBt2020 is BT.2020 primaries with the BT.601 camera curve.
	EncodingBt2020
	// EncodingBt2100PQ is BT.2020 primaries with the PQ curve, the HDR10
	// signal.
	EncodingBt2100PQ
	// EncodingAcesCgSrgb is ACES AP1 primaries with the sRGB curve.
	EncodingAcesCgSrgb

	encodingCount
)

// Storage is the numeric type of stored components.
type Storage uint8

const (
	StorageU8 Storage = iota + 1
	StorageF16
	StorageF32
)

// Transfer is the transfer function applied to color channels.
// Alpha is never transfer-encoded.
type Transfer uint8

const (
	// TransferLinear stores linear light (or a perceptual space) directly.
	TransferLinear Transfer = iota + 1
	// TransferSRGB is the piecewise sRGB curve of IEC 61966-2-1.
	TransferSRGB
	// TransferBT601 is the camera curve of ITU-R BT.601, BT.709 and BT.2020.
	TransferBT601
	// TransferPQ is the SMPTE ST 2084 perceptual quantizer. Linear 1.0 is
	// the 10000 cd/m² peak.
	TransferPQ
)

// AlphaMode describes whether and how an encoding carries alpha.
type AlphaMode uint8

const (
	AlphaNone AlphaMode = iota + 1
	// AlphaSeparate stores alpha next to unassociated color channels.
	AlphaSeparate
	// AlphaPremultiplied stores color channels multiplied by alpha in linear
	// space (then transfer-encoded for non-linear encodings).
	AlphaPremultiplied
)

// Space identifies the linear color space of an encoding.
type Space = space.ID

const (
	SpaceSrgb      = space.Srgb
	SpaceCieXYZ    = space.CieXYZ
	SpaceDisplayP3 = space.DisplayP3
	SpaceBt2020    = space.Bt2020
	SpaceOklab     = space.Oklab
	SpaceAcesCg    = space.AcesCg
	SpaceAces2065  = space.Aces2065
	SpaceOklch     = space.Oklch
	SpaceICtCpPQ   = space.ICtCpPQ
)

type encodingInfo struct {
	name       string
	channels   int
	storage    Storage
	transfer   Transfer
	space      Space
	alpha      AlphaMode
	working    bool
	perceptual bool

	withAlpha    Encoding
	withoutAlpha Encoding
	float        Encoding
	integer      Encoding

	format gputypes.TextureFormat
}

var encodings = [encodingCount]encodingInfo{
	EncodingSrgbU8: {
		name: "SrgbU8", channels: 3, storage: StorageU8, transfer: TransferSRGB,
		space: SpaceSrgb, alpha: AlphaNone,
		withAlpha: EncodingSrgbAU8, float: EncodingSrgbF32,
	},
	EncodingSrgbAU8: {
		name: "SrgbAU8", channels: 4, storage: StorageU8, transfer: TransferSRGB,
		space: SpaceSrgb, alpha: AlphaSeparate,
		withoutAlpha: EncodingSrgbU8, float: EncodingSrgbAF32,
		format: gputypes.TextureFormatRGBA8UnormSrgb,
	},
	EncodingSrgbF32: {
		name: "SrgbF32", channels: 3, storage: StorageF32, transfer: TransferSRGB,
		space: SpaceSrgb, alpha: AlphaNone,
		withAlpha: EncodingSrgbAF32, integer: EncodingSrgbU8,
	},
	EncodingSrgbAF32: {
		name: "SrgbAF32", channels: 4, storage: StorageF32, transfer: TransferSRGB,
		space: SpaceSrgb, alpha: AlphaSeparate,
		withoutAlpha: EncodingSrgbF32, integer: EncodingSrgbAU8,
	},
	EncodingSrgbAU8Premultiplied: {
		name: "SrgbAU8Premultiplied", channels: 4, storage: StorageU8, transfer: TransferSRGB,
		space: SpaceSrgb, alpha: AlphaPremultiplied,
		format: gputypes.TextureFormatRGBA8UnormSrgb,
	},
	EncodingLinearSrgb: {
		name: "LinearSrgb", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceSrgb, alpha: AlphaNone, working: true,
		withAlpha: EncodingLinearSrgbA,
	},
	EncodingLinearSrgbA: {
		name: "LinearSrgbA", channels: 4, storage: StorageF32, transfer: TransferLinear,
		space: SpaceSrgb, alpha: AlphaSeparate, working: true,
		withoutAlpha: EncodingLinearSrgb,
		format:       gputypes.TextureFormatRGBA32Float,
	},
	EncodingLinearSrgbAPremultiplied: {
		name: "LinearSrgbAPremultiplied", channels: 4, storage: StorageF32, transfer: TransferLinear,
		space: SpaceSrgb, alpha: AlphaPremultiplied,
		format: gputypes.TextureFormatRGBA32Float,
	},
	EncodingLinearSrgbF16: {
		name: "LinearSrgbF16", channels: 3, storage: StorageF16, transfer: TransferLinear,
		space: SpaceSrgb, alpha: AlphaNone, working: true,
	},
	EncodingOklab: {
		name: "Oklab", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceOklab, alpha: AlphaNone, working: true, perceptual: true,
	},
	EncodingCieXYZ: {
		name: "CieXYZ", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceCieXYZ, alpha: AlphaNone, working: true,
	},
	EncodingLinearDisplayP3: {
		name: "LinearDisplayP3", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceDisplayP3, alpha: AlphaNone, working: true,
	},
	EncodingLinearBt2020: {
		name: "LinearBt2020", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceBt2020, alpha: AlphaNone, working: true,
	},
	EncodingLinearAcesCg: {
		name: "LinearAcesCg", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceAcesCg, alpha: AlphaNone, working: true,
	},
	EncodingLinearAces2065: {
		name: "LinearAces2065", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceAces2065, alpha: AlphaNone, working: true,
	},
	EncodingOklch: {
		name: "Oklch", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceOklch, alpha: AlphaNone, perceptual: true,
	},
	EncodingICtCpPQ: {
		name: "ICtCpPQ", channels: 3, storage: StorageF32, transfer: TransferLinear,
		space: SpaceICtCpPQ, alpha: AlphaNone, working: true, perceptual: true,
	},
	EncodingDisplayP3: {
		name: "DisplayP3", channels: 3, storage: StorageF32, transfer: TransferSRGB,
		space: SpaceDisplayP3, alpha: AlphaNone,
	},
	EncodingBt2020: {
		name: "Bt2020", channels: 3, storage: StorageF32, transfer: TransferBT601,
		space: SpaceBt2020, alpha: AlphaNone,
	},
	EncodingBt2100PQ: {
		name: "Bt2100PQ", channels: 3, storage: StorageF32, transfer: TransferPQ,
		space: SpaceBt2020, alpha: AlphaNone,
	},
	EncodingAcesCgSrgb: {
		name: "AcesCgSrgb", channels: 3, storage: StorageF32, transfer: TransferSRGB,
		space: SpaceAcesCg, alpha: AlphaNone,
	},
}

// foldedNames maps case-folded encoding names to encodings.
var foldedNames = sync.OnceValue(func() map[string]Encoding {
	fold := cases.Fold()
	m := make(map[string]Encoding, encodingCount-1)
	for e := EncodingSrgbU8; e < encodingCount; e++ {
		m[fold.String(encodings[e].name)] = e
	}
	return m
})

// folders recycles casers; a Caser is stateful and not safe for concurrent
// use.
var folders = sync.Pool{New: func() any {
	c := cases.Fold()
	return &c
}}

// Encodings returns every valid encoding in declaration order.
func Encodings() []Encoding {
	out := make([]Encoding, 0, encodingCount-1)
	for e := EncodingSrgbU8; e < encodingCount; e++ {
		out = append(out, e)
	}
	return out
}

// Valid reports whether e names a known encoding.
func (e Encoding) Valid() bool {
	return e > 0 && e < encodingCount
}

func (e Encoding) info() *encodingInfo {
	if !e.Valid() {
		return &encodings[0]
	}
	return &encodings[e]
}

// String returns the encoding name, e.g. "SrgbAU8".
func (e Encoding) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
	return encodings[e].name
}

// Channels returns the number of stored components including alpha.
func (e Encoding) Channels() int { return e.info().channels }

// Storage returns the component storage type.
func (e Encoding) Storage() Storage { return e.info().storage }

// Transfer returns the transfer function of the color channels.
func (e Encoding) Transfer() Transfer { return e.info().transfer }

// Space returns the linear color space.
func (e Encoding) Space() Space { return e.info().space }

// Alpha returns the alpha mode.
func (e Encoding) Alpha() AlphaMode { return e.info().alpha }

// IsWorking reports whether arithmetic on the components is meaningful
// (linear or perceptual float encodings).
func (e Encoding) IsWorking() bool { return e.info().working }

// IsPerceptual reports whether distances in the encoding approximate
// perceived differences.
func (e Encoding) IsPerceptual() bool { return e.info().perceptual }

// WithAlpha returns the counterpart of e that carries a separate alpha
// channel. ok is false if there is none.
func (e Encoding) WithAlpha() (Encoding, bool) {
	c := e.info().withAlpha
	return c, c != 0
}

// WithoutAlpha returns the counterpart of e without alpha.
func (e Encoding) WithoutAlpha() (Encoding, bool) {
	c := e.info().withoutAlpha
	return c, c != 0
}

// Float returns the float-storage counterpart of an 8-bit encoding.
func (e Encoding) Float() (Encoding, bool) {
	c := e.info().float
	return c, c != 0
}

// Integer returns the 8-bit counterpart of a float encoding.
func (e Encoding) Integer() (Encoding, bool) {
	c := e.info().integer
	return c, c != 0
}

// TextureFormat returns the WebGPU texture format whose texels hold this
// encoding's components. sRGB formats are decoded to linear by the sampler.
// Three-channel encodings have no texel format; ok is false for them.
func (e Encoding) TextureFormat() (gputypes.TextureFormat, bool) {
	f := e.info().format
	return f, f != gputypes.TextureFormatUndefined
}

// ParseEncoding looks up an encoding by name, ignoring case.
func ParseEncoding(name string) (Encoding, error) {
	fold := folders.Get().(*cases.Caser)
	key := fold.String(name)
	folders.Put(fold)
	if e, ok := foldedNames()[key]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// String returns the storage name.
func (s Storage) String() string {
	switch s {
	case StorageU8:
		return "u8"
	case StorageF16:
		return "f16"
	case StorageF32:
		return "f32"
	default:
		return "unknown"
	}
}

// String returns the transfer function name.
func (t Transfer) String() string {
	switch t {
	case TransferLinear:
		return "linear"
	case TransferSRGB:
		return "sRGB"
	case TransferBT601:
		return "BT.601"
	case TransferPQ:
		return "PQ"
	default:
		return "unknown"
	}
}

// String returns the alpha mode name.
func (a AlphaMode) String() string {
	switch a {
	case AlphaNone:
		return "none"
	case AlphaSeparate:
		return "separate"
	case AlphaPremultiplied:
		return "premultiplied"
	default:
		return "unknown"
	}
}
