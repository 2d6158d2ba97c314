package colorenc

import (
	"github.com/gogpu/colorenc/internal/parallel"
	"github.com/gogpu/colorenc/internal/space"
	"github.com/gogpu/colorenc/internal/transfer"
)

// Convert converts src to the encoding of Dst.
//
//	lin := colorenc.Convert[colorenc.LinearSrgb](colorenc.NewSrgbU8(255, 128, 0))
//
// The pipeline decodes src to linear light with separate alpha, changes
// linear space through CIE XYZ, then encodes into Dst. Encodings that share
// transfer function and space skip the curve: 8-bit and float forms are
// related by the factor 255 only.
//
// Quantizing to 8 bits clamps to [0,1] and rounds to nearest. Float
// destinations are not clamped. Missing alpha reads as opaque; alpha is
// dropped when Dst has none. Premultiplied colors with zero alpha decode to
// transparent black.
func Convert[Dst Target[Dst], Src Color](src Src) Dst {
	var dst Dst
	return dst.fromPixel(convertPixel(src.pixel(), src.Encoding().info(), dst.Encoding().info()))
}

func convertPixel(p pixel, from, to *encodingInfo) pixel {
	if from.transfer == to.transfer && from.space == to.space &&
		(from.alpha == AlphaPremultiplied) == (to.alpha == AlphaPremultiplied) {
		return p
	}
	lin, a := decode(p, from)
	lin = space.Convert(from.space, to.space, lin)
	return encode(lin, a, to)
}

// decode returns linear components in the encoding's own space and
// unassociated alpha.
func decode(p pixel, info *encodingInfo) (space.Tristimulus, float64) {
	v := p.c
	switch info.transfer {
	case TransferSRGB:
		for i := range v {
			if info.storage == StorageU8 {
				v[i] = transfer.DecodeU8(transfer.UnitToU8(v[i]))
			} else {
				v[i] = transfer.SRGBToLinear(v[i])
			}
		}
	case TransferBT601:
		for i := range v {
			v[i] = transfer.BT601ToLinear(v[i])
		}
	case TransferPQ:
		for i := range v {
			v[i] = transfer.PQToLinear(v[i])
		}
	}
	if info.alpha == AlphaPremultiplied {
		if p.a == 0 {
			return space.Tristimulus{}, 0
		}
		for i := range v {
			v[i] /= p.a
		}
	}
	return v, p.a
}

func encode(v space.Tristimulus, a float64, info *encodingInfo) pixel {
	switch info.alpha {
	case AlphaPremultiplied:
		for i := range v {
			v[i] *= a
		}
	case AlphaNone:
		a = 1
	}
	var oetf func(float64) float64
	switch info.transfer {
	case TransferSRGB:
		oetf = transfer.LinearToSRGB
	case TransferBT601:
		oetf = transfer.LinearToBT601
	case TransferPQ:
		oetf = transfer.LinearToPQ
	default:
		return pixel{c: v, a: a}
	}
	for i := range v {
		v[i] = oetf(v[i])
	}
	return pixel{c: v, a: a}
}

// ConvertSlice converts min(len(dst), len(src)) colors from src into dst
// and returns the number converted, like the copy builtin. dst and src
// must not overlap.
//
// Slices at least DefaultParallelThreshold long are split across a worker
// pool; see WithWorkers and WithParallelThreshold.
func ConvertSlice[Dst Target[Dst], Src Color](dst []Dst, src []Src, opts ...ConvertOption) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}

	o := defaultConvertOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var zero Dst
	to := zero.Encoding().info()
	convertRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = zero.fromPixel(convertPixel(src[i].pixel(), src[i].Encoding().info(), to))
		}
	}

	if o.workers == 1 || n < o.threshold {
		convertRange(0, n)
		return n
	}

	pool := parallel.Shared()
	if o.workers > 1 {
		pool = parallel.NewPool(o.workers)
		defer pool.Close()
	}
	LoggerFor("colorenc").Debug("parallel conversion",
		"from", src[0].Encoding(), "to", to.name, "count", n, "workers", pool.Workers())
	pool.Range(n, o.chunk, convertRange)
	return n
}
