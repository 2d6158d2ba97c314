package colorenc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/colorenc/internal/transfer"
)

const f32eps = 1e-7

// 8-bit value v and float value v/255 are the same color in all four
// sRGB encodings.
func TestU8FloatEquivalenceAllValues(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		want := float32(v) / 255

		f := Convert[SrgbF32](NewSrgbU8(v, v, v))
		fa := Convert[SrgbAF32](NewSrgbAU8(v, v, v, v))
		for _, got := range []float32{f.R, f.G, f.B, fa.R, fa.G, fa.B, fa.A} {
			if math.Abs(float64(got-want)) > f32eps {
				t.Fatalf("v=%d: float component %v, want %v", v, got, want)
			}
		}

		if got := Convert[SrgbU8](NewSrgbF32(want, want, want)); got != NewSrgbU8(v, v, v) {
			t.Fatalf("v=%d: SrgbF32 -> SrgbU8 = %v", v, got)
		}
		if got := Convert[SrgbAU8](NewSrgbAF32(want, want, want, want)); got != NewSrgbAU8(v, v, v, v) {
			t.Fatalf("v=%d: SrgbAF32 -> SrgbAU8 = %v", v, got)
		}
	}
}

func TestU8FloatU8RoundTripAllValues(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		c := NewSrgbU8(v, 255-v, v/2)
		if got := c.Float().U8(); got != c {
			t.Errorf("SrgbU8 %v -> %v", c, got)
		}
		ca := NewSrgbAU8(v, 255-v, v/3, v)
		if got := ca.Float().U8(); got != ca {
			t.Errorf("SrgbAU8 %v -> %v", ca, got)
		}
	}
}

func TestAlphaDropAndReaddPreservesRGB(t *testing.T) {
	for i := 0; i <= 255; i += 5 {
		v := uint8(i)
		c := NewSrgbAU8(v, 255-v, 128, 77)
		if got := Convert[SrgbU8](c).WithAlpha(c.A); got != c {
			t.Errorf("SrgbAU8 via Convert: %v -> %v", c, got)
		}
		if got := c.WithoutAlpha().WithAlpha(c.A); got != c {
			t.Errorf("SrgbAU8 via WithoutAlpha: %v -> %v", c, got)
		}

		f := NewSrgbAF32(float32(v)/255, 0.25, 1.5, 0.3)
		if got := Convert[SrgbF32](f).WithAlpha(f.A); got != f {
			t.Errorf("SrgbAF32: %v -> %v", f, got)
		}

		l := NewLinearSrgbA(float32(v)/7, -0.5, 3, 0.9)
		if got := Convert[LinearSrgb](l).WithAlpha(l.A); got != l {
			t.Errorf("LinearSrgbA: %v -> %v", l, got)
		}
	}
}

func TestAddingAlphaIsOpaque(t *testing.T) {
	if got := Convert[SrgbAU8](NewSrgbU8(1, 2, 3)); got != NewSrgbAU8(1, 2, 3, 255) {
		t.Errorf("SrgbU8 -> SrgbAU8 = %v", got)
	}
	if got := Convert[LinearSrgbA](NewSrgbU8(0, 0, 0)); got.A != 1 {
		t.Errorf("alpha = %v, want 1", got.A)
	}
}

func TestSrgbDecodeKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   SrgbU8
		want LinearSrgb
	}{
		{"black", NewSrgbU8(0, 0, 0), NewLinearSrgb(0, 0, 0)},
		{"white", NewSrgbU8(255, 255, 255), NewLinearSrgb(1, 1, 1)},
		{"mid", NewSrgbU8(128, 128, 128), NewLinearSrgb(0.21586, 0.21586, 0.21586)},
		{"linear segment", NewSrgbU8(10, 0, 0), NewLinearSrgb(0.0030353, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert[LinearSrgb](tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
				t.Errorf("decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSrgbEncodeKnownValues(t *testing.T) {
	if got := Convert[SrgbU8](NewLinearSrgb(0.5, 0, 1)); got != NewSrgbU8(188, 0, 255) {
		t.Errorf("encode = %v, want SrgbU8(188, 0, 255)", got)
	}
	if got := Convert[SrgbU8](NewLinearSrgb(-1, 2, float32(math.NaN()))); got != NewSrgbU8(0, 255, 0) {
		t.Errorf("out of range encode = %v", got)
	}
}

// Every byte survives decoding to linear float32 and back.
func TestLinearRoundTripAllValues(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		c := NewSrgbAU8(v, v, v, v)
		if got := Convert[SrgbAU8](c.Linear()); got != c {
			t.Errorf("%v -> %v", c, got)
		}
	}
}

func TestFloatEncodingsAreNotClamped(t *testing.T) {
	got := Convert[SrgbF32](NewLinearSrgb(4, -0.001, 0))
	if got.R <= 1 {
		t.Errorf("R = %v, want > 1", got.R)
	}
	if got.G >= 0 {
		t.Errorf("G = %v, want < 0", got.G)
	}
}

func TestCrossSpaceRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := NewSrgbU8(uint8(r), uint8(g), uint8(b))
				checks := map[string]SrgbU8{
					"Oklab":           Convert[SrgbU8](Convert[Oklab](c)),
					"CieXYZ":          Convert[SrgbU8](Convert[CieXYZ](c)),
					"LinearDisplayP3": Convert[SrgbU8](Convert[LinearDisplayP3](c)),
					"LinearBt2020":    Convert[SrgbU8](Convert[LinearBt2020](c)),
					"LinearAcesCg":    Convert[SrgbU8](Convert[LinearAcesCg](c)),
					"LinearAces2065":  Convert[SrgbU8](Convert[LinearAces2065](c)),
					"Oklch":           Convert[SrgbU8](Convert[Oklch](c)),
					"ICtCpPQ":         Convert[SrgbU8](Convert[ICtCpPQ](c)),
					"DisplayP3":       Convert[SrgbU8](Convert[DisplayP3](c)),
					"Bt2020":          Convert[SrgbU8](Convert[Bt2020](c)),
					"Bt2100PQ":        Convert[SrgbU8](Convert[Bt2100PQ](c)),
					"AcesCgSrgb":      Convert[SrgbU8](Convert[AcesCgSrgb](c)),
				}
				for name, got := range checks {
					if got != c {
						t.Errorf("%v via %s = %v", c, name, got)
					}
				}
			}
		}
	}
}

func TestOklabKnownValues(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 2e-3)
	if diff := cmp.Diff(NewOklab(1, 0, 0), Convert[Oklab](NewSrgbU8(255, 255, 255)), approx); diff != "" {
		t.Errorf("white (-want +got):\n%s", diff)
	}
	// Reference value from Björn Ottosson's post for sRGB red.
	if diff := cmp.Diff(NewOklab(0.628, 0.2249, 0.1258), Convert[Oklab](NewSrgbU8(255, 0, 0)), approx); diff != "" {
		t.Errorf("red (-want +got):\n%s", diff)
	}
}

func TestWideGamutKnownValues(t *testing.T) {
	red := NewLinearSrgb(1, 0, 0)
	tests := []struct {
		name string
		got  Color
		want Color
		tol  float64
	}{
		// CSS Color 4 gives color(display-p3 0.9175 0.2003 0.1386) for sRGB red.
		{"DisplayP3 red", Convert[DisplayP3](red), NewDisplayP3(0.9175, 0.2003, 0.1386), 1e-3},
		{"ACEScg red", Convert[LinearAcesCg](red), NewLinearAcesCg(0.6131, 0.0702, 0.0206), 1e-3},
		{"ACES2065-1 red", Convert[LinearAces2065](red), NewLinearAces2065(0.4397, 0.0898, 0.0175), 1e-3},
		{"Oklch red", Convert[Oklch](red), NewOklch(0.628, 0.2577, 29.23), 1e-2},
		{"AcesCgSrgb white", Convert[AcesCgSrgb](NewLinearSrgb(1, 1, 1)), NewAcesCgSrgb(1, 1, 1), 1e-3},
		{"Bt2100PQ 100 nits", Convert[Bt2100PQ](NewLinearBt2020(0.01, 0.01, 0.01)), NewBt2100PQ(0.5081, 0.5081, 0.5081), 1e-3},
		{"Bt2020 mid", Convert[Bt2020](NewLinearBt2020(0.5, 0.01, 1)),
			NewBt2020(float32(1.099*math.Pow(0.5, 0.45)-0.099), 0.045, 1), 1e-6},
		{"ICtCp white", Convert[ICtCpPQ](NewLinearSrgb(1, 1, 1)), NewICtCpPQ(1, 0, 0), 1e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, cmpopts.EquateApprox(0, tt.tol)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodedSpacesShareLinearForm(t *testing.T) {
	// Changing only the curve leaves the linear values alone.
	p3 := NewDisplayP3(0.5, 0.25, 1)
	lin := Convert[LinearDisplayP3](p3)
	want := NewLinearDisplayP3(float32(transfer.SRGBToLinear(0.5)), float32(transfer.SRGBToLinear(0.25)), 1)
	if diff := cmp.Diff(want, lin, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("DisplayP3 decode (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p3, Convert[DisplayP3](lin), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("DisplayP3 encode (-want +got):\n%s", diff)
	}

	hdr := NewLinearBt2020(4, 0.5, 0)
	if diff := cmp.Diff(hdr, Convert[LinearBt2020](Convert[Bt2100PQ](hdr)), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("PQ round trip (-want +got):\n%s", diff)
	}
}

func TestXYZLuminance(t *testing.T) {
	xyz := Convert[CieXYZ](NewLinearSrgb(0.2, 0.5, 0.1))
	want := NewLinearSrgb(0.2, 0.5, 0.1).Luminance()
	if math.Abs(float64(xyz.Y-want)) > 1e-4 {
		t.Errorf("Y = %v, want %v", xyz.Y, want)
	}
}

func TestPremultipliedConversions(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	c := NewLinearSrgbA(0.5, 0.25, 1, 0.5)
	p := Convert[LinearSrgbAPremultiplied](c)
	if diff := cmp.Diff(NewLinearSrgbAPremultiplied(0.25, 0.125, 0.5, 0.5), p, approx); diff != "" {
		t.Errorf("premultiply (-want +got):\n%s", diff)
	}
	if p != c.Premultiply() {
		t.Errorf("Convert and Premultiply disagree: %v vs %v", p, c.Premultiply())
	}
	if diff := cmp.Diff(c, Convert[LinearSrgbA](p), approx); diff != "" {
		t.Errorf("unpremultiply (-want +got):\n%s", diff)
	}

	// Premultiplication happens in linear space, before the sRGB curve.
	s := Convert[SrgbAU8Premultiplied](NewSrgbAU8(255, 255, 255, 128))
	wantR := Convert[SrgbU8](NewLinearSrgb(128.0/255, 0, 0)).R
	if s.R != wantR || s.A != 128 {
		t.Errorf("SrgbAU8Premultiplied = %v, want R=%d A=128", s, wantR)
	}
}

func TestPremultipliedOpaqueIsIdentity(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		c := NewSrgbAU8(v, 255-v, v/2, 255)
		p := Convert[SrgbAU8Premultiplied](c)
		if p.Array() != c.Array() {
			t.Errorf("opaque %v premultiplied to %v", c, p)
		}
		if got := Convert[SrgbAU8](p); got != c {
			t.Errorf("opaque %v round-tripped to %v", c, got)
		}
	}
}

func TestPremultipliedZeroAlpha(t *testing.T) {
	if got := Convert[SrgbAU8](NewSrgbAU8Premultiplied(10, 20, 30, 0)); got != (SrgbAU8{}) {
		t.Errorf("got %v, want transparent black", got)
	}
	if got := Convert[LinearSrgbA](NewLinearSrgbAPremultiplied(0.1, 0.2, 0.3, 0)); got != (LinearSrgbA{}) {
		t.Errorf("got %v, want transparent black", got)
	}
	if got := NewLinearSrgbAPremultiplied(0.1, 0.2, 0.3, 0).Unpremultiply(); got != (LinearSrgbA{}) {
		t.Errorf("Unpremultiply = %v, want transparent black", got)
	}
}

func TestLinearSrgbF16(t *testing.T) {
	c := Convert[LinearSrgbF16](NewLinearSrgb(1.5, 1000, 0.1))
	got := c.Float32()
	if got.R != 1.5 || got.G != 1000 {
		t.Errorf("exact halves changed: %v", got)
	}
	if math.Abs(float64(got.B)-0.1) > 1e-4 {
		t.Errorf("B = %v, want ~0.1", got.B)
	}

	// Display encodings clamp HDR values.
	if s := Convert[SrgbU8](c); s != NewSrgbU8(255, 255, 89) {
		t.Errorf("SrgbU8 = %v", s)
	}
}

func TestConvertFromInterface(t *testing.T) {
	var c Color = NewSrgbU8(255, 0, 0)
	got := Convert[LinearSrgbA](c)
	if got != NewLinearSrgbA(1, 0, 0, 1) {
		t.Errorf("got %v", got)
	}
}

func TestConvertSlice(t *testing.T) {
	src := make([]SrgbAU8, 20000)
	for i := range src {
		src[i] = NewSrgbAU8(uint8(i), uint8(i>>8), uint8(i*7), uint8(i*13))
	}

	want := make([]LinearSrgbA, len(src))
	for i, c := range src {
		want[i] = Convert[LinearSrgbA](c)
	}

	tests := []struct {
		name string
		opts []ConvertOption
	}{
		{"default", nil},
		{"serial", []ConvertOption{WithWorkers(1)}},
		{"shared pool", []ConvertOption{WithParallelThreshold(1)}},
		{"own pool", []ConvertOption{WithWorkers(3), WithParallelThreshold(1), WithChunkSize(100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]LinearSrgbA, len(src))
			if n := ConvertSlice(dst, src, tt.opts...); n != len(src) {
				t.Fatalf("ConvertSlice = %d, want %d", n, len(src))
			}
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertSliceLengths(t *testing.T) {
	src := []SrgbU8{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	dst := make([]SrgbF32, 2)
	if n := ConvertSlice(dst, src); n != 2 {
		t.Errorf("ConvertSlice = %d, want 2", n)
	}
	if dst[1] != NewSrgbU8(4, 5, 6).Float() {
		t.Errorf("dst[1] = %v", dst[1])
	}
	if n := ConvertSlice(dst, []SrgbU8(nil)); n != 0 {
		t.Errorf("ConvertSlice(nil) = %d", n)
	}
}

func TestConvertSliceMixedInterfaces(t *testing.T) {
	src := []Color{NewSrgbU8(255, 255, 255), NewLinearSrgb(1, 1, 1), NewOklab(1, 0, 0)}
	dst := make([]SrgbU8, len(src))
	ConvertSlice(dst, src)
	for i, c := range dst {
		if c != NewSrgbU8(255, 255, 255) {
			t.Errorf("dst[%d] = %v, want white", i, c)
		}
	}
}

func BenchmarkConvertSrgbU8ToLinear(b *testing.B) {
	c := NewSrgbAU8(200, 100, 50, 255)
	var sink LinearSrgbA
	for b.Loop() {
		sink = Convert[LinearSrgbA](c)
	}
	_ = sink
}

func BenchmarkConvertSlice(b *testing.B) {
	src := make([]SrgbAU8, 1<<16)
	dst := make([]LinearSrgbA, len(src))
	for b.Loop() {
		ConvertSlice(dst, src)
	}
}
