package scale

import (
	"math"
	"testing"
)

func TestDeltaEOKIdentity(t *testing.T) {
	colors := []OKLCH{
		{L: 0.5, C: 0.1, H: DefinedHue(30)},
		{L: 0.9, C: 0, H: UndefinedHue},
		{L: 0.2, C: 0.25, H: DefinedHue(200)},
	}
	for _, c := range colors {
		if d := deltaEOK(c, c); math.Abs(d) > 1e-9 {
			t.Errorf("deltaEOK(%+v, %+v) = %v, want 0", c, c, d)
		}
	}
}

func TestDeltaEOKSymmetric(t *testing.T) {
	a := OKLCH{L: 0.4, C: 0.15, H: DefinedHue(10)}
	b := OKLCH{L: 0.6, C: 0.2, H: DefinedHue(250)}
	if d1, d2 := deltaEOK(a, b), deltaEOK(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("deltaEOK not symmetric: %v vs %v", d1, d2)
	}
}

func TestDeltaEOKNonNegative(t *testing.T) {
	a := OKLCH{L: 0.1, C: 0.3, H: DefinedHue(359)}
	b := OKLCH{L: 0.95, C: 0.02, H: DefinedHue(1)}
	if d := deltaEOK(a, b); d < 0 {
		t.Errorf("deltaEOK(%+v, %+v) = %v, want >= 0", a, b, d)
	}
}

func TestWrapHueDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{181, -179},
		{-180, 180},
		{-181, 179},
		{350, -10},
		{-350, 10},
	}
	for _, tt := range tests {
		if got := wrapHueDelta(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapHueDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
