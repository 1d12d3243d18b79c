package scale

import (
	"math"
	"sort"
)

// scaleMatch is one template scale's closest step to the source color,
// tagged with the distance and the scale it came from.
type scaleMatch struct {
	scaleName string
	scale     TemplateScale
	color     OKLCH
	dist      float64
}

// synthesizeBase runs spec.md §4.5 steps 1-7: nearest-per-scale search,
// gray de-duplication, law-of-cosines blend-ratio geometry, step-wise
// mixing, and chroma/hue re-identification against the seed color S.
//
// Design: the template catalog is a fixed library of hand-authored
// scales; rather than pick one wholesale, the synthesizer finds the two
// closest candidate families and blends them in the ratio a law-of-
// cosines projection says S sits between them, then re-tunes the
// blended scale's chroma and hue back onto S so the result still reads
// as "S, but as a scale" rather than as an arbitrary template.
func synthesizeBase(source OKLCH, catalog *TemplateCatalog) [12]OKLCH {
	closest := nearestPerScale(source, catalog)
	closest = dedupeGrays(closest)

	if len(closest) < 2 {
		return closest[0].scale.Steps
	}

	a, b := closest[0], closest[1]
	ratio, degenerate := blendRatio(a, b)
	if degenerate {
		return a.scale.Steps
	}

	var mixed [12]OKLCH
	for i := 0; i < 12; i++ {
		mixed[i] = mix(a.scale.Steps[i], b.scale.Steps[i], ratio)
	}

	base := nearestStep(mixed, source)
	return reidentify(mixed, source, base)
}

// nearestPerScale collects, for every template scale, the step with
// minimal ΔE_OK to source, sorted ascending by that distance.
func nearestPerScale(source OKLCH, catalog *TemplateCatalog) []scaleMatch {
	matches := make([]scaleMatch, 0, len(catalog.Scales))
	for name, ts := range catalog.Scales {
		best := ts.Steps[0]
		bestDist := deltaEOK(source, best)
		for _, step := range ts.Steps[1:] {
			d := deltaEOK(source, step)
			if d < bestDist {
				bestDist = d
				best = step
			}
		}
		matches = append(matches, scaleMatch{scaleName: name, scale: ts, color: best, dist: bestDist})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		// Deterministic tie-break: map iteration order is randomized,
		// so equal distances must fall back to name order.
		return matches[i].scaleName < matches[j].scaleName
	})
	return matches
}

// dedupeGrays removes gray-like entries from index 1 onward when the
// nearest match itself is gray-like and not every candidate is,
// preventing the blend partner from being a visually indistinguishable
// neighbor gray.
func dedupeGrays(closest []scaleMatch) []scaleMatch {
	if len(closest) == 0 || !closest[0].scale.GrayLike {
		return closest
	}
	allGray := true
	for _, m := range closest {
		if !m.scale.GrayLike {
			allGray = false
			break
		}
	}
	if allGray {
		return closest
	}
	result := closest[:1]
	for _, m := range closest[1:] {
		if m.scale.GrayLike {
			continue
		}
		result = append(result, m)
	}
	return result
}

// blendRatio computes the fraction of B to mix into A via a law-of-
// cosines projection of the triangle formed by S's distance to A, S's
// distance to B, and A-to-B's own distance. When S projects outside
// segment A-B (an obtuse triangle on A's side), the ratio collapses to
// 0 and A is used alone. The final 0.5 factor damps over-confident
// blends toward the closer scale.
func blendRatio(a, b scaleMatch) (ratio float64, degenerate bool) {
	dA := a.dist
	dB := b.dist
	dAB := deltaEOK(a.color, b.color)

	// a,b,c per spec.md §4.5 step 4 naming: a=B.dist, b=A.dist, c=AB.
	sideA := dB
	sideB := dA
	sideC := dAB

	if sideB == 0 || sideC == 0 || sideA == 0 {
		return 0, true
	}

	cosAlpha := clamp((sideB*sideB+sideC*sideC-sideA*sideA)/(2*sideB*sideC), -1, 1)
	alpha := math.Acos(cosAlpha)
	sinAlpha := math.Sin(alpha)

	cosBeta := clamp((sideA*sideA+sideC*sideC-sideB*sideB)/(2*sideA*sideC), -1, 1)
	beta := math.Acos(cosBeta)
	sinBeta := math.Sin(beta)

	if sinAlpha == 0 || sinBeta == 0 {
		return 0, true
	}

	tanGamma1 := cosAlpha / sinAlpha
	tanGamma2 := cosBeta / sinBeta

	ratio = math.Max(0, tanGamma1/tanGamma2) * 0.5
	return ratio, false
}

// nearestStep returns the step of a mixed scale whose ΔE_OK to source is
// minimal.
func nearestStep(mixed [12]OKLCH, source OKLCH) OKLCH {
	best := mixed[0]
	bestDist := deltaEOK(source, best)
	for _, step := range mixed[1:] {
		d := deltaEOK(source, step)
		if d < bestDist {
			bestDist = d
			best = step
		}
	}
	return best
}

// reidentify rescales every step's chroma toward source's chroma
// (relative to the base step found inside the mixed scale) and
// overwrites every step's hue with source's hue. Lightness is left
// untouched; the lightness transposer (bezier.go) handles that next.
// The 1.5x cap prevents supersaturated extremes at the low end of the
// scale, where a small base chroma would otherwise blow the ratio up.
func reidentify(mixed [12]OKLCH, source OKLCH, base OKLCH) [12]OKLCH {
	ratioC := source.C / math.Max(base.C, 1e-3)

	var out [12]OKLCH
	for i, step := range mixed {
		c := math.Min(source.C*1.5, step.C*ratioC)
		out[i] = OKLCH{L: step.L, C: c, H: source.H}
	}
	return out
}
