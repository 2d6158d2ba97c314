package colorenc

import (
	"errors"
	"fmt"
)

// Errors returned for invalid runtime input.
var (
	// ErrUnknownEncoding is returned for encoding names or ids that do not
	// name a known encoding.
	ErrUnknownEncoding = errors.New("colorenc: unknown encoding")

	// ErrComponentCount is returned when the number of components does not
	// match the encoding's channel count.
	ErrComponentCount = errors.New("colorenc: wrong number of components")

	// ErrNotFinite is returned for NaN or infinite components.
	ErrNotFinite = errors.New("colorenc: component is not finite")

	// ErrOutOfRange is returned for components the encoding cannot store,
	// such as 300 for an 8-bit channel.
	ErrOutOfRange = errors.New("colorenc: component out of range")

	// ErrEncodingMismatch is wrapped by *DowncastError.
	ErrEncodingMismatch = errors.New("colorenc: encoding mismatch")

	// ErrInvalidHex is returned by ParseHex for malformed color codes.
	ErrInvalidHex = errors.New("colorenc: invalid hex color")

	// ErrByteLength is returned by FromBytes when the buffer is not a whole
	// number of colors.
	ErrByteLength = errors.New("colorenc: byte length is not a multiple of the color size")

	// ErrMisaligned is returned by FromBytes when the buffer is not aligned
	// for the color type.
	ErrMisaligned = errors.New("colorenc: buffer is misaligned for the color type")

	// ErrNoStops is returned by NewGradient without color stops.
	ErrNoStops = errors.New("colorenc: gradient needs at least one stop")
)

// DowncastError reports a Dynamic color whose encoding differs from the
// requested static type.
type DowncastError struct {
	Actual   Encoding
	Expected Encoding
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf("colorenc: cannot downcast %s color to %s", e.Actual, e.Expected)
}

// Unwrap returns ErrEncodingMismatch.
func (e *DowncastError) Unwrap() error {
	return ErrEncodingMismatch
}
