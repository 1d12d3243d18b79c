package scale

import (
	"math"
	"testing"
)

func TestMixEndpoints(t *testing.T) {
	a := OKLCH{L: 0.2, C: 0.05, H: DefinedHue(40)}
	b := OKLCH{L: 0.8, C: 0.25, H: DefinedHue(300)}

	if got := mix(a, b, 0); got != a {
		t.Errorf("mix(a, b, 0) = %+v, want %+v", got, a)
	}
	if got := mix(a, b, 1); got != b {
		t.Errorf("mix(a, b, 1) = %+v, want %+v", got, b)
	}
}

func TestMixShortestArc(t *testing.T) {
	a := OKLCH{L: 0.5, C: 0.1, H: DefinedHue(350)}
	b := OKLCH{L: 0.5, C: 0.1, H: DefinedHue(10)}

	got := mix(a, b, 0.5)
	if !got.H.Defined {
		t.Fatal("mix result has undefined hue")
	}
	// The short way from 350 to 10 passes through 0/360, landing at 0.
	if math.Abs(got.H.Value) > 1e-6 && math.Abs(got.H.Value-360) > 1e-6 {
		t.Errorf("mix hue at t=0.5 = %v, want ~0 (shortest arc, not ~180)", got.H.Value)
	}
}

func TestMixUndefinedHuePropagation(t *testing.T) {
	defined := OKLCH{L: 0.5, C: 0.2, H: DefinedHue(120)}
	undefined := OKLCH{L: 0.3, C: 0, H: UndefinedHue}

	t.Run("both undefined", func(t *testing.T) {
		got := mix(undefined, undefined, 0.5)
		if got.H.Defined {
			t.Errorf("mix(undefined, undefined, 0.5).H.Defined = true, want false")
		}
	})

	t.Run("a undefined inherits b's hue", func(t *testing.T) {
		got := mix(undefined, defined, 0.3)
		if !got.H.Defined || got.H.Value != defined.H.Value {
			t.Errorf("mix(undefined, defined, 0.3).H = %+v, want %+v", got.H, defined.H)
		}
	})

	t.Run("b undefined inherits a's hue", func(t *testing.T) {
		got := mix(defined, undefined, 0.7)
		if !got.H.Defined || got.H.Value != defined.H.Value {
			t.Errorf("mix(defined, undefined, 0.7).H = %+v, want %+v", got.H, defined.H)
		}
	})
}

func TestMixLightnessChromaLinear(t *testing.T) {
	a := OKLCH{L: 0, C: 0, H: UndefinedHue}
	b := OKLCH{L: 1, C: 0.4, H: UndefinedHue}

	got := mix(a, b, 0.25)
	if math.Abs(got.L-0.25) > 1e-9 {
		t.Errorf("mix L at t=0.25 = %v, want 0.25", got.L)
	}
	if math.Abs(got.C-0.1) > 1e-9 {
		t.Errorf("mix C at t=0.25 = %v, want 0.1", got.C)
	}
}
