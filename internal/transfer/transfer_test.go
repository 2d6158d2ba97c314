package transfer

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative stays linear", -0.02, -0.02 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1.0/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// All 256 bytes must survive decode, encode and requantize.
func TestRoundTripAllBytes(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		got := UnitToU8(LinearToSRGB(DecodeU8(v)))
		if got != v {
			t.Errorf("byte %d round-tripped to %d", v, got)
		}
	}
}

func TestDecodeU8MatchesCurve(t *testing.T) {
	for i := 0; i <= 255; i++ {
		want := SRGBToLinear(float64(i) / 255)
		if got := DecodeU8(uint8(i)); got != want {
			t.Errorf("DecodeU8(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestUnitToU8(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"below range", -0.5, 0},
		{"above range", 7, 255},
		{"NaN", math.NaN(), 0},
		{"rounds up", 127.6 / 255, 128},
		{"rounds down", 127.4 / 255, 127},
		{"+Inf", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitToU8(tt.in); got != tt.want {
				t.Errorf("UnitToU8(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// u8 -> unit -> u8 is exact, also through float32 storage.
func TestQuantizeRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		if got := UnitToU8(U8ToUnit(v)); got != v {
			t.Errorf("float64 path: %d -> %d", v, got)
		}
		f := float32(U8ToUnit(v))
		if got := UnitToU8(float64(f)); got != v {
			t.Errorf("float32 path: %d -> %d", v, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(float32(1.5), 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v", got)
	}
	if got := Clamp(-2.0, -1, 1); got != -1 {
		t.Errorf("Clamp(-2) = %v", got)
	}
	if got := Clamp(float32(math.NaN()), 0, 1); got != 0 {
		t.Errorf("Clamp(NaN) = %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2.0, 4.0, 0.25); got != 2.5 {
		t.Errorf("Lerp = %v, want 2.5", got)
	}
	if got := Lerp(float32(1), 3, 1.5); got != 4 {
		t.Errorf("Lerp extrapolated = %v, want 4", got)
	}
}

func BenchmarkDecodeU8(b *testing.B) {
	var sum float64
	for b.Loop() {
		for i := 0; i < 256; i++ {
			sum += DecodeU8(uint8(i))
		}
	}
	_ = sum
}

func BenchmarkSRGBToLinear(b *testing.B) {
	var sum float64
	for b.Loop() {
		for i := 0; i < 256; i++ {
			sum += SRGBToLinear(float64(i) / 255)
		}
	}
	_ = sum
}
