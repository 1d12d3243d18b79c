package scale

import "math"

// step9CloseThreshold is the ΔE_OK×100 distance below which the seed
// accent is considered too close to the background to use directly;
// step 9 instead becomes the synthesized scale's own step 9.
const step9CloseThreshold = 25.0

// buttonHoverChromaMultiplier desaturates the hover step slightly when
// darkening a light seed, matching the reference's damping of visual
// vibration on light-mode hover states.
const buttonHoverChromaMultiplier = 0.93

// applyStep9Rule implements spec.md §4.8 step 2: if the seed accent is
// too close to the freshly synthesized background echo (accentScale[0]
// in OKLCH), step 9 falls back to the scale's own step 9 unchanged;
// otherwise step 9 becomes the seed accent itself. Returns the chosen
// step-9 OKLCH and its picked text color.
func applyStep9Rule(scale [12]OKLCH, sourceAccent OKLCH) (step9 OKLCH, contrast OKLCH) {
	distance := deltaEOK(sourceAccent, scale[0]) * 100
	if distance < step9CloseThreshold {
		step9 = scale[8]
	} else {
		step9 = sourceAccent
	}
	contrast = pickTextColor(step9)
	return step9, contrast
}

// buttonHoverStep implements spec.md §4.8 step 3. It derives a
// candidate lightness/chroma near step 9 (darkened when step 9's L is
// above 0.4, lightened otherwise), then steals
// the actual chroma and hue of whichever scale entry is perceptually
// closest to that candidate — searched against the scale as it stands
// *after* the step-9 replacement above, per spec.md §9's ordering note.
func buttonHoverStep(step9 OKLCH, scale [12]OKLCH) OKLCH {
	var lPrime float64
	if step9.L > 0.4 {
		lPrime = step9.L - 0.03/(step9.L+0.1)
	} else {
		lPrime = step9.L + 0.03/(step9.L+0.1)
	}

	cPrime := step9.C
	if step9.L > 0.4 && step9.H.Defined {
		cPrime = step9.C * buttonHoverChromaMultiplier
	}

	candidate := OKLCH{L: lPrime, C: cPrime, H: step9.H}

	bestIdx := 0
	bestDist := deltaEOK(candidate, scale[0])
	for i := 1; i < 12; i++ {
		d := deltaEOK(candidate, scale[i])
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	return OKLCH{L: lPrime, C: scale[bestIdx].C, H: scale[bestIdx].H}
}

// capChromaTail implements spec.md §4.8 step 4: indices 10 and 11 never
// exceed the chroma of whichever of indices 7 and 8 (the most
// saturated, best-established part of the scale) is higher.
func capChromaTail(scale [12]OKLCH) [12]OKLCH {
	cMax := math.Max(scale[7].C, scale[8].C)
	out := scale
	for _, i := range []int{10, 11} {
		if out[i].C > cMax {
			out[i] = OKLCH{L: out[i].L, C: cMax, H: out[i].H}
		}
	}
	return out
}

// isPureBlackOrWhiteHex reports whether a canonical 3- or 6-digit hex
// string (no '#', already validated) is exactly black or white.
func isPureBlackOrWhiteHex(hex6 string) bool {
	switch hex6 {
	case "000000", "FFFFFF", "000", "FFF":
		return true
	default:
		return false
	}
}
