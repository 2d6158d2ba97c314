package transfer

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// U8ToUnit maps a byte [0,255] to [0,1] by the integer scale factor only.
func U8ToUnit(v uint8) float64 {
	return float64(v) / 255
}

// UnitToU8 clamps v to [0,1] and rounds to the nearest byte.
func UnitToU8(v float64) uint8 {
	v = Clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}
