package colorenc

import "github.com/gogpu/colorenc/internal/transfer"

// Add returns a + b per color channel. Alpha, if any, is taken from a.
func Add[T Working[T]](a, b T) T {
	pa, pb := a.pixel(), b.pixel()
	for i := range pa.c {
		pa.c[i] += pb.c[i]
	}
	return a.fromPixel(pa)
}

// Sub returns a - b per color channel. Alpha, if any, is taken from a.
func Sub[T Working[T]](a, b T) T {
	pa, pb := a.pixel(), b.pixel()
	for i := range pa.c {
		pa.c[i] -= pb.c[i]
	}
	return a.fromPixel(pa)
}

// Mul returns a * b per color channel, e.g. light times albedo.
// Alpha, if any, is taken from a.
func Mul[T Working[T]](a, b T) T {
	pa, pb := a.pixel(), b.pixel()
	for i := range pa.c {
		pa.c[i] *= pb.c[i]
	}
	return a.fromPixel(pa)
}

// Scale multiplies the color channels by f. Alpha is unchanged.
func Scale[T Working[T]](c T, f float32) T {
	p := c.pixel()
	for i := range p.c {
		p.c[i] *= float64(f)
	}
	return c.fromPixel(p)
}

// Lerp interpolates every channel, alpha included, from a (t=0) to
// b (t=1). t is not clamped.
func Lerp[T Working[T]](a, b T, t float32) T {
	pa, pb := a.pixel(), b.pixel()
	tt := float64(t)
	for i := range pa.c {
		pa.c[i] = transfer.Lerp(pa.c[i], pb.c[i], tt)
	}
	pa.a = transfer.Lerp(pa.a, pb.a, tt)
	return a.fromPixel(pa)
}
