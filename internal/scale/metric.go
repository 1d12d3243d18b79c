package scale

import "math"

// deltaEOK computes the perceptual distance between two OKLCH colors.
// Hue difference is chroma-weighted and wrapped into (-180, 180] before
// being folded into the hue term; an undefined hue on either side
// contributes zero hue delta rather than an arbitrary angle.
func deltaEOK(a, b OKLCH) float64 {
	dL := a.L - b.L
	dC := a.C - b.C

	var dH float64
	if a.H.Defined && b.H.Defined {
		dh := a.H.Value - b.H.Value
		dh = wrapHueDelta(dh)
		dH = 2 * math.Sqrt(a.C*b.C) * math.Sin(dh*math.Pi/360)
	}

	return math.Sqrt(dL*dL + dC*dC + dH*dH)
}

// wrapHueDelta folds a hue difference into (-180, 180].
func wrapHueDelta(dh float64) float64 {
	for dh > 180 {
		dh -= 360
	}
	for dh <= -180 {
		dh += 360
	}
	return dh
}
