package colorenc

import "github.com/gogpu/colorenc/internal/space"

// Color is a color value tagged with its encoding.
//
// The set of implementations is closed: every Color is one of the struct
// types in this package, one per Encoding. Values are immutable; all
// operations return new values.
type Color interface {
	// Encoding returns the encoding the components are stored in.
	Encoding() Encoding

	pixel() pixel
}

// Target is the constraint for type parameters that name a destination
// color type, as in Convert[LinearSrgb](c). Every color type satisfies it.
type Target[T any] interface {
	Color
	fromPixel(p pixel) T
}

// Working is the constraint for color types whose components can be added,
// scaled and interpolated meaningfully: the linear and perceptual float
// encodings.
type Working[T any] interface {
	Target[T]
	working()
}

// pixel is a color's components as float64. 8-bit components are divided
// by 255; float components are stored as-is. Alpha is 1 for encodings
// without alpha. Transfer, space and alpha mode are given by the encoding.
type pixel struct {
	c space.Tristimulus
	a float64
}

func (p pixel) channel(i int) float64 {
	if i == 3 {
		return p.a
	}
	return p.c[i]
}

func (p *pixel) setChannel(i int, v float64) {
	if i == 3 {
		p.a = v
		return
	}
	p.c[i] = v
}

func opaque(r, g, b float64) pixel {
	return pixel{c: space.Tristimulus{r, g, b}, a: 1}
}

func rgba(r, g, b, a float64) pixel {
	return pixel{c: space.Tristimulus{r, g, b}, a: a}
}
