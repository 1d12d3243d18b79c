package scale

import "math"

// bezierCurve is the (p1x,p1y,p2x,p2y) control-point pair of a cubic
// Bézier easing with implicit endpoints p0=(0,0) and p3=(1,1).
type bezierCurve struct {
	p1x, p1y, p2x, p2y float64
}

// bezierCoeffs returns the cubic polynomial coefficients for X(t) and
// Y(t) given a curve's control points.
func bezierCoeffs(c bezierCurve) (ax, bx, cx, ay, by, cy float64) {
	cx = 3 * c.p1x
	bx = 3*(c.p2x-c.p1x) - cx
	ax = 1 - cx - bx

	cy = 3 * c.p1y
	by = 3*(c.p2y-c.p1y) - cy
	ay = 1 - cy - by
	return
}

// ease evaluates the cubic-Bézier easing function at x by solving for
// the parametric t via Newton's method (up to 8 iterations, clamped to
// [0,1] at each step, aborting early if the derivative vanishes) and
// returning Y(t).
func ease(x float64, curve bezierCurve) float64 {
	ax, bx, cx, ay, by, cy := bezierCoeffs(curve)

	xAt := func(t float64) float64 { return ((ax*t+bx)*t+cx)*t }
	xDerivAt := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }
	yAt := func(t float64) float64 { return ((ay*t+by)*t+cy)*t }

	t := x
	for i := 0; i < 8; i++ {
		deriv := xDerivAt(t)
		if math.Abs(deriv) < 1e-6 {
			break
		}
		t -= (xAt(t) - x) / deriv
		t = clamp01(t)
	}
	return yAt(t)
}

// transposeLightness shifts an array of lightnesses so the first value
// becomes exactly `to`, with subsequent steps shifted by a diminishing
// amount governed by curve. out[0] == to exactly; the rest interpolate
// between the original curve and the target shift via ease(1-i/n).
func transposeLightness(l []float64, to float64, curve bezierCurve) []float64 {
	diff := l[0] - to
	n := len(l) - 1
	out := make([]float64, len(l))
	for i := range l {
		out[i] = l[i] - diff*ease(1-float64(i)/float64(n), curve)
	}
	return out
}

var (
	lightEaseCurve = bezierCurve{p1x: 0, p1y: 2, p2x: 0, p2y: 2}
	darkEaseCurve  = bezierCurve{p1x: 1, p1y: 0, p2x: 1, p2y: 0}
)

// transposeToBackground applies spec.md §4.6's background-anchored
// lightness shift. Light mode is detected by adjusted[0].L > 0.5: a
// pure-white anchor is prepended so the curve has something to ease
// from, the whole thing is transposed toward the background's
// lightness, and the prepended anchor is dropped. Dark mode transposes
// adjusted's own lightness directly, softening the curve toward linear
// when the background is significantly lighter than the scale's own
// reference (ratioL > 1), collapsing to pure linear past maxRatio.
func transposeToBackground(adjusted [12]OKLCH, bg OKLCH) [12]OKLCH {
	bgL := clamp01(bg.L)

	if adjusted[0].L > 0.5 {
		input := make([]float64, 0, 13)
		input = append(input, 1.0)
		for _, step := range adjusted {
			input = append(input, step.L)
		}
		transposed := transposeLightness(input, bgL, lightEaseCurve)
		return applyLightness(adjusted, transposed[1:])
	}

	curve := darkEaseCurve
	refBgL := adjusted[0].L
	ratioL := bgL / math.Max(refBgL, 1e-3)
	const maxRatio = 1.5
	if ratioL > 1 {
		metaRatio := (ratioL - 1) * (maxRatio / (maxRatio - 1))
		softened := bezierCurve{}
		if ratioL > maxRatio {
			softened = bezierCurve{0, 0, 0, 0}
		} else {
			softened = bezierCurve{
				p1x: clamp01(curve.p1x * (1 - metaRatio)),
				p1y: clamp01(curve.p1y * (1 - metaRatio)),
				p2x: clamp01(curve.p2x * (1 - metaRatio)),
				p2y: clamp01(curve.p2y * (1 - metaRatio)),
			}
		}
		curve = softened
	}

	input := make([]float64, 12)
	for i, step := range adjusted {
		input[i] = step.L
	}
	transposed := transposeLightness(input, bgL, curve)
	return applyLightness(adjusted, transposed)
}

// applyLightness rewrites each step's L from newL, clamped to [0,1],
// leaving C and H untouched.
func applyLightness(adjusted [12]OKLCH, newL []float64) [12]OKLCH {
	var out [12]OKLCH
	for i, step := range adjusted {
		out[i] = OKLCH{L: clamp01(newL[i]), C: step.C, H: step.H}
	}
	return out
}
