package colorenc

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want SrgbAU8
	}{
		{"#fff", NewSrgbAU8(255, 255, 255, 255)},
		{"f80", NewSrgbAU8(255, 136, 0, 255)},
		{"#f808", NewSrgbAU8(255, 136, 0, 136)},
		{"#FF8000", NewSrgbAU8(255, 128, 0, 255)},
		{"ff800080", NewSrgbAU8(255, 128, 0, 128)},
		{"#000000", NewSrgbAU8(0, 0, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#ff", "#ff80001", "#gg0000", "ff 000", "#ff8000001"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
}

func TestHexFormat(t *testing.T) {
	if got := NewSrgbU8(255, 128, 0).Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q", got)
	}
	if got := NewSrgbAU8(1, 2, 3, 255).Hex(); got != "#010203" {
		t.Errorf("opaque Hex() = %q", got)
	}
	if got := NewSrgbAU8(1, 2, 3, 4).Hex(); got != "#01020304" {
		t.Errorf("Hex() = %q", got)
	}

	c := NewSrgbAU8(18, 52, 86, 120)
	back, err := ParseHex(c.Hex())
	if err != nil || back != c {
		t.Errorf("ParseHex(Hex()) = %v, %v", back, err)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    SrgbF32
	}{
		{"red", 0, 1, 0.5, NewSrgbF32(1, 0, 0)},
		{"green", 120, 1, 0.5, NewSrgbF32(0, 1, 0)},
		{"blue", 240, 1, 0.5, NewSrgbF32(0, 0, 1)},
		{"wrapped hue", -120, 1, 0.5, NewSrgbF32(0, 0, 1)},
		{"gray", 77, 0, 0.5, NewSrgbF32(0.5, 0.5, 0.5)},
		{"white", 0, 0, 1, NewSrgbF32(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("HSL(%v, %v, %v) (-want +got):\n%s", tt.h, tt.s, tt.l, diff)
			}
		})
	}
}

func TestStdColor(t *testing.T) {
	var _ color.Color = SrgbU8{}
	var _ color.Color = SrgbAU8{}

	r, g, b, a := NewSrgbU8(255, 0, 128).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("SrgbU8.RGBA() = %x %x %x %x", r, g, b, a)
	}

	c := NewSrgbAU8(200, 100, 50, 128)
	if got := FromStdColor(c); got != c {
		t.Errorf("FromStdColor(SrgbAU8) = %v, want %v", got, c)
	}
	if got := FromStdColor(color.RGBA{R: 100, G: 50, B: 0, A: 128}); got.A != 128 || got.R < 198 || got.R > 200 {
		t.Errorf("FromStdColor(premultiplied) = %v", got)
	}
	if got := FromStdColor(color.Gray{Y: 77}); got != NewSrgbAU8(77, 77, 77, 255) {
		t.Errorf("FromStdColor(Gray) = %v", got)
	}
}

func TestClearColor(t *testing.T) {
	got := ClearColor(NewSrgbAU8(255, 128, 0, 255))
	want := gputypes.Color{R: 1, G: 0.2158605, B: 0, A: 1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("ClearColor (-want +got):\n%s", diff)
	}
	if got := ClearColor(NewLinearSrgb(0.25, 0.5, 2)); got != (gputypes.Color{R: 0.25, G: 0.5, B: 2, A: 1}) {
		t.Errorf("ClearColor(LinearSrgb) = %+v", got)
	}
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want SrgbAU8
		ok   bool
	}{
		{"cornflowerblue", NewSrgbAU8(100, 149, 237, 255), true},
		{"CornflowerBlue", NewSrgbAU8(100, 149, 237, 255), true},
		{"rebeccapurple", SrgbAU8{}, false},
		{"", SrgbAU8{}, false},
	}
	for _, tt := range tests {
		got, ok := Named(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Named(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestArrays(t *testing.T) {
	if got := SrgbAU8FromArray(NewSrgbAU8(1, 2, 3, 4).Array()); got != NewSrgbAU8(1, 2, 3, 4) {
		t.Errorf("SrgbAU8 array round trip = %v", got)
	}
	if got := OklabFromArray([3]float32{0.5, 0.1, 0.2}); got.L != 0.5 || got.A != 0.1 || got.B != 0.2 {
		t.Errorf("OklabFromArray = %v", got)
	}
	if got := LinearSrgbF16FromArray(NewLinearSrgbF16(1, 2, 3).Array()).Float32(); got != NewLinearSrgb(1, 2, 3) {
		t.Errorf("LinearSrgbF16 array round trip = %v", got)
	}
	if got := CieXYZFromArray([3]float32{1, 2, 3}).Array(); got != [3]float32{1, 2, 3} {
		t.Errorf("CieXYZ array = %v", got)
	}
}

func TestFieldTags(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		wantJSON string
		wantYAML string
	}{
		{"SrgbAU8", NewSrgbAU8(1, 2, 3, 4), `{"r":1,"g":2,"b":3,"a":4}`, "r: 1\ng: 2\nb: 3\na: 4\n"},
		{"Oklch", NewOklch(0.5, 0.25, 90), `{"l":0.5,"c":0.25,"h":90}`, "l: 0.5\nc: 0.25\nh: 90\n"},
		{"ICtCpPQ", NewICtCpPQ(0.5, 0.25, -0.125), `{"i":0.5,"ct":0.25,"cp":-0.125}`, "i: 0.5\nct: 0.25\ncp: -0.125\n"},
		{"CieXYZ", NewCieXYZ(1, 0.5, 0), `{"x":1,"y":0.5,"z":0}`, "x: 1\n\"y\": 0.5\nz: 0\n"},
		{"LinearSrgbF16", NewLinearSrgbF16(1.5, 2, 0), `{"r":1.5,"g":2,"b":0}`, "r: 1.5\ng: 2\nb: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := json.Marshal(tt.c)
			if err != nil {
				t.Fatal(err)
			}
			if string(j) != tt.wantJSON {
				t.Errorf("JSON = %s, want %s", j, tt.wantJSON)
			}
			y, err := yaml.Marshal(tt.c)
			if err != nil {
				t.Fatal(err)
			}
			if string(y) != tt.wantYAML {
				t.Errorf("YAML = %q, want %q", y, tt.wantYAML)
			}
		})
	}
}
