package colorenc

import (
	"fmt"
	"unsafe"
)

// Every color type is a struct of one scalar type with no padding, so a
// slice of colors has the byte layout of a flat component array and can be
// uploaded to vertex buffers or textures as-is.

// Bytes reinterprets s as its underlying bytes without copying. The result
// aliases s.
func Bytes[T Target[T]](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}

// FromBytes reinterprets b as a slice of colors without copying. The result
// aliases b. b must hold a whole number of colors and be aligned for T;
// buffers from make([]byte) are aligned for every color type.
func FromBytes[T Target[T]](b []byte) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %d-byte %s", ErrByteLength, len(b), size, zero.Encoding())
	}
	if len(b) == 0 {
		return nil, nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, fmt.Errorf("%w: %s needs %d-byte alignment", ErrMisaligned, zero.Encoding(), unsafe.Alignof(zero))
	}
	return unsafe.Slice((*T)(p), len(b)/size), nil
}
