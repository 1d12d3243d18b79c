package scale

// mix linearly interpolates two OKLCH colors in L and C. Hue takes the
// shortest arc: the hue delta is folded into [-180,180] before scaling
// by t, so a blend from 350° to 10° passes through 0°/360° rather than
// the long way round through 180°. If both hues are undefined the
// result is undefined; if exactly one is defined, the result inherits
// it unchanged regardless of t.
func mix(a, b OKLCH, t float64) OKLCH {
	l := a.L + (b.L-a.L)*t
	c := a.C + (b.C-a.C)*t

	switch {
	case !a.H.Defined && !b.H.Defined:
		return OKLCH{L: l, C: c, H: UndefinedHue}
	case !a.H.Defined:
		return OKLCH{L: l, C: c, H: b.H}
	case !b.H.Defined:
		return OKLCH{L: l, C: c, H: a.H}
	default:
		dh := wrapHueDelta(b.H.Value - a.H.Value)
		return OKLCH{L: l, C: c, H: DefinedHue(a.H.Value + dh*t)}
	}
}
