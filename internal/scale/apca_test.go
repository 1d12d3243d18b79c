package scale

import (
	"math"
	"testing"
)

func TestApcaLcBlackOnWhiteIsLargePositive(t *testing.T) {
	white := OKLCH{L: 1, C: 0, H: UndefinedHue}
	black := OKLCH{L: 0, C: 0, H: UndefinedHue}

	lc := apcaLc(black, white)
	if lc <= 0 {
		t.Errorf("apcaLc(black, white) = %v, want positive (dark text on light bg)", lc)
	}
	if math.Abs(lc) < 40 {
		t.Errorf("apcaLc(black, white) = %v, want |Lc| >= 40 for max contrast", lc)
	}
}

func TestApcaLcSameColorIsZero(t *testing.T) {
	c := OKLCH{L: 0.5, C: 0.1, H: DefinedHue(200)}
	if lc := apcaLc(c, c); math.Abs(lc) > 1e-6 {
		t.Errorf("apcaLc(c, c) = %v, want 0", lc)
	}
}

func TestPickTextColorWhiteOnDark(t *testing.T) {
	dark := OKLCH{L: 0.1, C: 0.05, H: DefinedHue(250)}
	got := pickTextColor(dark)
	if got.C != 0 || got.H.Defined {
		t.Errorf("pickTextColor(dark) = %+v, want pure white", got)
	}
	if got.L != 1 {
		t.Errorf("pickTextColor(dark).L = %v, want 1", got.L)
	}
}

func TestPickTextColorDarkOnLight(t *testing.T) {
	light := OKLCH{L: 0.95, C: 0.02, H: DefinedHue(90)}
	got := pickTextColor(light)
	if got.L != 0.25 {
		t.Errorf("pickTextColor(light).L = %v, want 0.25", got.L)
	}
	if !got.H.Defined {
		t.Error("pickTextColor(light).H.Defined = false, want true (inherits bg hue)")
	}
}

func TestPickTextColorUndefinedHueFallsBackToZero(t *testing.T) {
	gray := OKLCH{L: 0.9, C: 0, H: UndefinedHue}
	got := pickTextColor(gray)
	if got.L == 1 {
		// Contrast against this particular gray cleared the white
		// threshold; the undefined-hue fallback path isn't exercised.
		return
	}
	if got.H.Value != 0 {
		t.Errorf("pickTextColor(gray).H.Value = %v, want 0 when source hue is undefined", got.H.Value)
	}
}
