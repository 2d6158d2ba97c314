package colorenc

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewGradientNoStops(t *testing.T) {
	_, err := NewGradient[LinearSrgb](ExtendPad, nil)
	if !errors.Is(err, ErrNoStops) {
		t.Errorf("error = %v, want ErrNoStops", err)
	}
}

func TestGradientAt(t *testing.T) {
	black, white := NewLinearSrgb(0, 0, 0), NewLinearSrgb(1, 1, 1)
	red := NewLinearSrgb(1, 0, 0)

	// Stops are given out of order on purpose.
	g, err := NewGradient(ExtendPad, nil,
		Stop[LinearSrgb]{Offset: 1, Color: white},
		Stop[LinearSrgb]{Offset: 0, Color: black},
		Stop[LinearSrgb]{Offset: 0.5, Color: red},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		t    float32
		want LinearSrgb
	}{
		{"start", 0, black},
		{"middle stop", 0.5, red},
		{"end", 1, white},
		{"first half", 0.25, NewLinearSrgb(0.5, 0, 0)},
		{"second half", 0.75, NewLinearSrgb(1, 0.5, 0.5)},
		{"pad below", -3, black},
		{"pad above", 3, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, g.At(tt.t), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("At(%v) (-want +got):\n%s", tt.t, diff)
			}
		})
	}
}

func TestGradientExtendModes(t *testing.T) {
	stops := []Stop[CieXYZ]{
		{Offset: 0, Color: NewCieXYZ(0, 0, 0)},
		{Offset: 1, Color: NewCieXYZ(1, 1, 1)},
	}

	tests := []struct {
		mode ExtendMode
		t    float32
		want float32
	}{
		{ExtendPad, 1.25, 1},
		{ExtendRepeat, 1.25, 0.25},
		{ExtendRepeat, -0.25, 0.75},
		{ExtendReflect, 1.25, 0.75},
		{ExtendReflect, -0.25, 0.25},
		{ExtendReflect, 2.25, 0.25},
	}

	for _, tt := range tests {
		g, err := NewGradient(tt.mode, nil, stops...)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.At(tt.t).Y; got < tt.want-1e-6 || got > tt.want+1e-6 {
			t.Errorf("mode %d At(%v) = %v, want %v", tt.mode, tt.t, got, tt.want)
		}
	}
}

func TestGradientPadReachesStopsOutsideUnitRange(t *testing.T) {
	g, err := NewGradient(ExtendPad, nil,
		Stop[LinearSrgb]{Offset: 0, Color: NewLinearSrgb(0, 0, 0)},
		Stop[LinearSrgb]{Offset: 2, Color: NewLinearSrgb(1, 1, 1)},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		t    float32
		want LinearSrgb
	}{
		{-1, NewLinearSrgb(0, 0, 0)},
		{1, NewLinearSrgb(0.5, 0.5, 0.5)},
		{2, NewLinearSrgb(1, 1, 1)},
		{3, NewLinearSrgb(1, 1, 1)},
		{float32(math.NaN()), NewLinearSrgb(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := g.At(tt.t); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}

	// Padding holds the end stops, not offsets 0 and 1.
	inner, err := NewGradient(ExtendPad, nil,
		Stop[LinearSrgb]{Offset: 0.25, Color: NewLinearSrgb(1, 0, 0)},
		Stop[LinearSrgb]{Offset: 0.75, Color: NewLinearSrgb(0, 0, 1)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := inner.At(0); got != NewLinearSrgb(1, 0, 0) {
		t.Errorf("At(0) = %v, want first stop", got)
	}
	if got := inner.At(1); got != NewLinearSrgb(0, 0, 1) {
		t.Errorf("At(1) = %v, want last stop", got)
	}
}

func TestGradientHardEdge(t *testing.T) {
	a, b := NewOklab(0.2, 0, 0), NewOklab(0.8, 0, 0)
	g, err := NewGradient(ExtendPad, nil,
		Stop[Oklab]{Offset: 0, Color: a},
		Stop[Oklab]{Offset: 0.5, Color: a},
		Stop[Oklab]{Offset: 0.5, Color: b},
		Stop[Oklab]{Offset: 1, Color: b},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.At(0.49); got != a {
		t.Errorf("At(0.49) = %v, want %v", got, a)
	}
	if got := g.At(0.51); got != b {
		t.Errorf("At(0.51) = %v, want %v", got, b)
	}
}

func TestGradientSingleStopAndSample(t *testing.T) {
	c := NewLinearSrgbA(0.1, 0.2, 0.3, 0.4)
	g, err := NewGradient(ExtendRepeat, NewBSplineBlender(), Stop[LinearSrgbA]{Offset: 0.3, Color: c})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range g.Sample(5) {
		if s != c {
			t.Errorf("sample = %v, want %v", s, c)
		}
	}
	if n := len(g.Sample(0)); n != 0 {
		t.Errorf("Sample(0) has %d entries", n)
	}
	if got := g.Sample(1); len(got) != 1 || got[0] != c {
		t.Errorf("Sample(1) = %v", got)
	}
	if got := g.Stops(); len(got) != 1 || got[0].Offset != 0.3 {
		t.Errorf("Stops() = %v", got)
	}
}

func TestGradientSampleEndpoints(t *testing.T) {
	g, err := NewGradient(ExtendPad, nil,
		Stop[LinearSrgb]{Offset: 0, Color: NewLinearSrgb(0, 0, 0)},
		Stop[LinearSrgb]{Offset: 1, Color: NewLinearSrgb(1, 1, 1)},
	)
	if err != nil {
		t.Fatal(err)
	}
	s := g.Sample(3)
	want := []LinearSrgb{NewLinearSrgb(0, 0, 0), NewLinearSrgb(0.5, 0.5, 0.5), NewLinearSrgb(1, 1, 1)}
	if diff := cmp.Diff(want, s, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("Sample(3) (-want +got):\n%s", diff)
	}
}
