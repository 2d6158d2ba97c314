package colorenc

// Blender interpolates a single channel between start (t=0) and end (t=1).
type Blender interface {
	Blend(start, end, t float32) float32
}

// LinearBlender interpolates linearly.
type LinearBlender struct{}

// Blend returns start + (end-start)*t.
func (LinearBlender) Blend(start, end, t float32) float32 {
	return start + (end-start)*t
}

// BSplineParams weights the two phantom control points a BSplineBlender
// extrapolates beyond start and end:
//
//	prev = PrevCloser*start - PrevFurther*end
//	next = NextCloser*end - NextFurther*start
type BSplineParams struct {
	PrevCloser  float32
	PrevFurther float32
	NextCloser  float32
	NextFurther float32
}

// DefaultBSplineParams mirrors start and end across each other, which
// makes the curve pass through both.
func DefaultBSplineParams() BSplineParams {
	return BSplineParams{PrevCloser: 2, PrevFurther: 1, NextCloser: 2, NextFurther: 1}
}

// NewBSplineParams derives weights from the ratio closer/further of each
// control point. The weights always differ by one. A bias of 2 gives the
// defaults; bias must not be 1.
func NewBSplineParams(prevBias, nextBias float32) BSplineParams {
	pc, pf := biasWeights(prevBias)
	nc, nf := biasWeights(nextBias)
	return BSplineParams{PrevCloser: pc, PrevFurther: pf, NextCloser: nc, NextFurther: nf}
}

func biasWeights(bias float32) (closer, further float32) {
	bm1 := bias - 1
	return bias / bm1, 1 / bm1
}

// BSplineBlender interpolates along a uniform cubic B-spline through
// phantom control points, easing in and out of the endpoints.
type BSplineBlender struct {
	Params BSplineParams
}

// NewBSplineBlender returns a BSplineBlender with default params.
func NewBSplineBlender() BSplineBlender {
	return BSplineBlender{Params: DefaultBSplineParams()}
}

// Blend evaluates the spline at t.
func (b BSplineBlender) Blend(start, end, t float32) float32 {
	p := b.Params
	prev := p.PrevCloser*start - p.PrevFurther*end
	next := p.NextCloser*end - p.NextFurther*start

	t2 := t * t
	t3 := t * t2
	return ((1-3*t+3*t2-t3)*prev +
		(4-6*t2+3*t3)*start +
		(1+3*t+3*t2-3*t3)*end +
		t3*next) / 6
}

// Mix blends every channel of two working colors, alpha included, with
// blender.
func Mix[T Working[T]](blender Blender, start, end T, t float32) T {
	ps, pe := start.pixel(), end.pixel()
	for i := range 4 {
		v := blender.Blend(float32(ps.channel(i)), float32(pe.channel(i)), t)
		ps.setChannel(i, float64(v))
	}
	return start.fromPixel(ps)
}
