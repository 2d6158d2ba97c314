package colorenc

// CompositeOp is a Porter-Duff compositing operator.
//
// Operators work on premultiplied linear colors, where each one reduces to
// result = S*Fa + D*Fb for per-operator factors Fa and Fb.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
type CompositeOp uint8

const (
	OpClear           CompositeOp = iota // 0
	OpSource                             // S
	OpDestination                        // D
	OpSourceOver                         // S + D*(1-Sa)
	OpDestinationOver                    // S*(1-Da) + D
	OpSourceIn                           // S*Da
	OpDestinationIn                      // D*Sa
	OpSourceOut                          // S*(1-Da)
	OpDestinationOut                     // D*(1-Sa)
	OpSourceAtop                         // S*Da + D*(1-Sa)
	OpDestinationAtop                    // S*(1-Da) + D*Sa
	OpXor                                // S*(1-Da) + D*(1-Sa)
	OpPlus                               // min(S + D, 1)
	OpModulate                           // S*D
)

var compositeOpNames = [...]string{
	OpClear:           "Clear",
	OpSource:          "Source",
	OpDestination:     "Destination",
	OpSourceOver:      "SourceOver",
	OpDestinationOver: "DestinationOver",
	OpSourceIn:        "SourceIn",
	OpDestinationIn:   "DestinationIn",
	OpSourceOut:       "SourceOut",
	OpDestinationOut:  "DestinationOut",
	OpSourceAtop:      "SourceAtop",
	OpDestinationAtop: "DestinationAtop",
	OpXor:             "Xor",
	OpPlus:            "Plus",
	OpModulate:        "Modulate",
}

func (op CompositeOp) String() string {
	if int(op) < len(compositeOpNames) {
		return compositeOpNames[op]
	}
	return "Unknown"
}

// factors returns Fa and Fb for the operators of the form S*Fa + D*Fb.
func (op CompositeOp) factors(sa, da float32) (fa, fb float32) {
	switch op {
	case OpClear:
		return 0, 0
	case OpSource:
		return 1, 0
	case OpDestination:
		return 0, 1
	case OpDestinationOver:
		return 1 - da, 1
	case OpSourceIn:
		return da, 0
	case OpDestinationIn:
		return 0, sa
	case OpSourceOut:
		return 1 - da, 0
	case OpDestinationOut:
		return 0, 1 - sa
	case OpSourceAtop:
		return da, 1 - sa
	case OpDestinationAtop:
		return 1 - da, sa
	case OpXor:
		return 1 - da, 1 - sa
	default:
		return 1, 1 - sa
	}
}

// Composite combines src over dst with op. Unknown operators behave as
// OpSourceOver.
func Composite(src, dst LinearSrgbAPremultiplied, op CompositeOp) LinearSrgbAPremultiplied {
	switch op {
	case OpPlus:
		return LinearSrgbAPremultiplied{
			R: min(src.R+dst.R, 1),
			G: min(src.G+dst.G, 1),
			B: min(src.B+dst.B, 1),
			A: min(src.A+dst.A, 1),
		}
	case OpModulate:
		return LinearSrgbAPremultiplied{R: src.R * dst.R, G: src.G * dst.G, B: src.B * dst.B, A: src.A * dst.A}
	}
	fa, fb := op.factors(src.A, dst.A)
	return LinearSrgbAPremultiplied{
		R: src.R*fa + dst.R*fb,
		G: src.G*fa + dst.G*fb,
		B: src.B*fa + dst.B*fb,
		A: src.A*fa + dst.A*fb,
	}
}

// Over composites c over under: c + under*(1-c.A).
func (c LinearSrgbAPremultiplied) Over(under LinearSrgbAPremultiplied) LinearSrgbAPremultiplied {
	return Composite(c, under, OpSourceOver)
}

// Over composites c over under in premultiplied linear space.
func (c LinearSrgbA) Over(under LinearSrgbA) LinearSrgbA {
	return c.Premultiply().Over(under.Premultiply()).Unpremultiply()
}

// Over composites c over under in premultiplied linear space and
// re-encodes the result to 8-bit sRGB.
func (c SrgbAU8Premultiplied) Over(under SrgbAU8Premultiplied) SrgbAU8Premultiplied {
	top := Convert[LinearSrgbAPremultiplied](c)
	bottom := Convert[LinearSrgbAPremultiplied](under)
	return Convert[SrgbAU8Premultiplied](top.Over(bottom))
}
