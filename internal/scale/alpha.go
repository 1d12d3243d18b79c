package scale

import "math"

// reverseAlpha solves for a foreground color and alpha such that
// compositing (r,g,b) at opacity alpha over background bg recovers
// target as closely as possible under 8-bit rounding (spec.md §4.9).
// If aForced is non-nil, that alpha is used instead of the derived one
// (used for the surface color, which pins alpha to a fixed opacity);
// the pure-gray shortcut ignores aForced and returns its own alpha.
func reverseAlpha(target, bg RGB, aForced *float64) RGBA {
	if target == bg {
		return RGBA{0, 0, 0, 0}
	}

	desired := uint8(0)
	if int(target.R) > int(bg.R) || int(target.G) > int(bg.G) || int(target.B) > int(bg.B) {
		desired = 255
	}

	channelAlpha := func(t, b uint8) (float64, bool) {
		denom := float64(int(desired) - int(b))
		if denom != 0 {
			return (float64(t) - float64(b)) / denom, true
		}
		if t == b {
			return 0, true
		}
		return 0, false
	}

	aR, okR := channelAlpha(target.R, bg.R)
	aG, okG := channelAlpha(target.G, bg.G)
	aB, okB := channelAlpha(target.B, bg.B)
	if !okR || !okG || !okB {
		// Denominator zero with an unreachable target on that channel;
		// fall back to treating that channel's alpha as 0.
		if !okR {
			aR = 0
		}
		if !okG {
			aG = 0
		}
		if !okB {
			aB = 0
		}
	}

	if aR == aG && aG == aB {
		a := clamp01(aR)
		return RGBA{R: desired, G: desired, B: desired, A: uint8(math.Round(a * 255))}
	}

	var alpha float64
	if aForced != nil {
		alpha = *aForced
	} else {
		alpha = clamp01(math.Max(aR, math.Max(aG, aB)))
	}

	solveChannel := func(t, b uint8) uint8 {
		if alpha == 0 {
			return 0
		}
		f := (-float64(b)*(1-alpha) + float64(t)) / alpha
		return uint8(clamp(math.Round(f), 0, 255))
	}

	fr := solveChannel(target.R, bg.R)
	fg := solveChannel(target.G, bg.G)
	fb := solveChannel(target.B, bg.B)

	fr, fg, fb = roundingCorrection(target, bg, RGB{fr, fg, fb}, alpha, desired)

	return RGBA{R: fr, G: fg, B: fb, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// roundingCorrection nudges each foreground channel by +/-1 toward the
// target when the round-tripped composite doesn't land exactly on it,
// per spec.md §4.9 step 6. Only channels on the "expected" side of the
// background (below it when we darkened, above it when we lightened)
// are nudged.
func roundingCorrection(target, bg, fg RGB, alpha float64, desired uint8) (uint8, uint8, uint8) {
	blend := func(b, f uint8) uint8 {
		return uint8(clamp(math.Round(float64(b)*(1-alpha))+math.Round(float64(f)*alpha), 0, 255))
	}

	nudge := func(t, b, f uint8) uint8 {
		bl := blend(b, f)
		if t == bl {
			return f
		}
		if desired == 0 {
			if t <= b {
				return nudgeToward(f, t, bl)
			}
			return f
		}
		if t >= b {
			return nudgeToward(f, t, bl)
		}
		return f
	}

	return nudge(target.R, bg.R, fg.R), nudge(target.G, bg.G, fg.G), nudge(target.B, bg.B, fg.B)
}

// nudgeToward moves f by one step in the direction that brings the
// round-tripped blend bl closer to target t, clamped to [0,255].
func nudgeToward(f uint8, t, bl uint8) uint8 {
	if bl < t {
		return uint8(clamp(float64(f)+1, 0, 255))
	}
	if bl > t {
		return uint8(clamp(float64(f)-1, 0, 255))
	}
	return f
}
