package colorenc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/colorenc/internal/transfer"
	"gopkg.in/yaml.v3"
)

// Dynamic is a color whose encoding is only known at runtime, such as one
// read from a config file. Components are kept in storage units: 0 to 255
// for 8-bit encodings, the float value otherwise.
//
// Use Downcast to recover the static type when the encoding is expected,
// or ConvertDynamic to convert whatever arrived. Dynamic also implements
// Color, so Convert accepts it directly; the zero Dynamic then converts as
// opaque black. Dynamic values are comparable with ==.
type Dynamic struct {
	enc  Encoding
	vals [4]float64
}

// NewDynamic validates components against enc and returns a Dynamic.
//
// Errors: ErrUnknownEncoding, ErrComponentCount, ErrNotFinite, and
// ErrOutOfRange for 8-bit values that are not integers in [0,255] or float
// values the storage type cannot represent. Float components are rounded to
// the storage precision, so a Dynamic equals the ToDynamic of its static
// counterpart.
func NewDynamic(enc Encoding, components ...float64) (Dynamic, error) {
	if !enc.Valid() {
		return Dynamic{}, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
	info := enc.info()
	if len(components) != info.channels {
		return Dynamic{}, fmt.Errorf("%w: %s takes %d, got %d",
			ErrComponentCount, enc, info.channels, len(components))
	}

	d := Dynamic{enc: enc}
	for i, v := range components {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Dynamic{}, fmt.Errorf("%w: %s component %d is %v", ErrNotFinite, enc, i, v)
		}
		if err := checkStorage(info.storage, v); err != nil {
			return Dynamic{}, fmt.Errorf("%w: %s component %d", err, enc, i)
		}
		d.vals[i] = roundToStorage(info.storage, v)
	}
	return d, nil
}

func checkStorage(s Storage, v float64) error {
	switch s {
	case StorageU8:
		if v < 0 || v > 255 || v != math.Trunc(v) {
			return fmt.Errorf("%w: %v is not a byte", ErrOutOfRange, v)
		}
	case StorageF16:
		if math.Abs(v) > 65504 {
			return fmt.Errorf("%w: %v exceeds half float range", ErrOutOfRange, v)
		}
	case StorageF32:
		if math.Abs(v) > math.MaxFloat32 {
			return fmt.Errorf("%w: %v exceeds float32 range", ErrOutOfRange, v)
		}
	}
	return nil
}

// roundToStorage rounds v to the precision of s. Values past the range
// saturate to the largest finite value and NaN becomes 0.
func roundToStorage(s Storage, v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	switch s {
	case StorageF16:
		return float64(toHalf(float32(transfer.Clamp(v, -maxHalf, maxHalf))).Float32())
	case StorageF32:
		return float64(float32(transfer.Clamp(v, -math.MaxFloat32, math.MaxFloat32)))
	}
	return v
}

// ToDynamic erases the static type of c.
//
// The result always holds finite components: ±Inf saturates to the largest
// value the storage type holds and NaN becomes 0, the same rule 8-bit
// quantization follows. A Dynamic therefore always marshals.
func ToDynamic(c Color) Dynamic {
	return dynamicFromPixel(c.Encoding(), c.pixel())
}

// dynamicFromPixel quantizes p to enc's storage.
func dynamicFromPixel(enc Encoding, p pixel) Dynamic {
	info := enc.info()
	d := Dynamic{enc: enc}
	for i := range info.channels {
		v := p.channel(i)
		switch info.storage {
		case StorageU8:
			v = float64(transfer.UnitToU8(v))
		default:
			v = roundToStorage(info.storage, v)
		}
		d.vals[i] = v
	}
	return d
}

func (d Dynamic) pixel() pixel {
	info := d.enc.info()
	var p pixel
	p.a = 1
	for i := range info.channels {
		v := d.vals[i]
		if info.storage == StorageU8 {
			v /= 255
		}
		p.setChannel(i, v)
	}
	return p
}

// Encoding returns the runtime encoding. It is 0 (invalid) for the zero
// Dynamic.
func (d Dynamic) Encoding() Encoding { return d.enc }

// Components returns a copy of the components in storage units.
func (d Dynamic) Components() []float64 {
	return append([]float64(nil), d.vals[:d.enc.Channels()]...)
}

// Downcast returns the color as T if d is stored in T's encoding.
// Otherwise it returns a *DowncastError.
func Downcast[T Target[T]](d Dynamic) (T, error) {
	var zero T
	if d.enc != zero.Encoding() {
		return zero, &DowncastError{Actual: d.enc, Expected: zero.Encoding()}
	}
	return zero.fromPixel(d.pixel()), nil
}

// ConvertDynamic converts d, whatever its encoding, to T.
func ConvertDynamic[T Target[T]](d Dynamic) (T, error) {
	var zero T
	if !d.enc.Valid() {
		return zero, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(d.enc))
	}
	return zero.fromPixel(convertPixel(d.pixel(), d.enc.info(), zero.Encoding().info())), nil
}

// Convert converts d to another runtime encoding.
func (d Dynamic) Convert(to Encoding) (Dynamic, error) {
	if !d.enc.Valid() {
		return Dynamic{}, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(d.enc))
	}
	if !to.Valid() {
		return Dynamic{}, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(to))
	}
	return dynamicFromPixel(to, convertPixel(d.pixel(), d.enc.info(), to.info())), nil
}

// String formats d as "Encoding(c0, c1, c2[, c3])".
func (d Dynamic) String() string {
	if !d.enc.Valid() {
		return "Dynamic(invalid)"
	}
	info := d.enc.info()
	var b strings.Builder
	b.WriteString(info.name)
	b.WriteByte('(')
	for i := range info.channels {
		if i > 0 {
			b.WriteString(", ")
		}
		if info.storage == StorageU8 {
			b.WriteString(strconv.Itoa(int(d.vals[i])))
		} else {
			b.WriteString(strconv.FormatFloat(d.vals[i], 'g', -1, 32))
		}
	}
	b.WriteByte(')')
	return b.String()
}

type dynamicDoc struct {
	Encoding   Encoding  `json:"encoding" yaml:"encoding"`
	Components []float64 `json:"components" yaml:"components,flow"`
}

func (d Dynamic) doc() dynamicDoc {
	return dynamicDoc{Encoding: d.enc, Components: d.Components()}
}

// MarshalJSON encodes d as {"encoding": "...", "components": [...]}.
func (d Dynamic) MarshalJSON() ([]byte, error) {
	if !d.enc.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(d.enc))
	}
	return json.Marshal(d.doc())
}

// UnmarshalJSON decodes and validates a Dynamic.
func (d *Dynamic) UnmarshalJSON(data []byte) error {
	var doc dynamicDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed, err := NewDynamic(doc.Encoding, doc.Components...)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes d as a mapping with encoding and components keys.
func (d Dynamic) MarshalYAML() (any, error) {
	if !d.enc.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(d.enc))
	}
	return d.doc(), nil
}

// UnmarshalYAML decodes and validates a Dynamic.
func (d *Dynamic) UnmarshalYAML(value *yaml.Node) error {
	var doc dynamicDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	parsed, err := NewDynamic(doc.Encoding, doc.Components...)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
