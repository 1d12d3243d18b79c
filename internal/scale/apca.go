package scale

import "math"

// apcaLuminance computes the APCA luminance Y of an sRGB color with
// channels normalized to [0,1]. Below the 0.022 shadow-clamp threshold
// a tiny soft-clamp term is added to Y; the term is deliberately small
// and kept for bit-faithful parity with the reference APCA formula.
func apcaLuminance(c OKLCH) float64 {
	rgb := oklchToRgb(c)
	return apcaLuminanceRGB(rgb)
}

func apcaLuminanceRGB(rgb RGB) float64 {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	y := 0.2126*math.Pow(r, 2.4) + 0.7152*math.Pow(g, 2.4) + 0.0722*math.Pow(b, 2.4)
	if y < 0.022 {
		y += math.Pow(0.022-y, 1.414) * 1e-9
	}
	return y
}

// apcaLc computes the signed APCA contrast Lc between a text color and
// a background color, both OKLCH. Magnitude predicts legibility; sign
// indicates polarity (light text on dark bg vs. dark text on light
// bg).
func apcaLc(text, bg OKLCH) float64 {
	yt := apcaLuminance(text)
	yb := apcaLuminance(bg)

	if yb > yt {
		raw := math.Pow(yb, 0.56) - math.Pow(yt, 0.57)
		if raw < 0.1 {
			return 0
		}
		return raw*100 - 2.7
	}

	raw := math.Pow(yb, 0.62) - math.Pow(yt, 0.65)
	if math.Abs(raw) < 0.1 {
		return 0
	}
	return -math.Abs(raw)*100 + 2.7
}

// pickTextColor selects a foreground for text rendered atop g: pure
// white if its APCA contrast magnitude clears 40, otherwise a dark
// tinted color that keeps g's hue (falling back to 0 when g's hue is
// undefined) so the text still reads as belonging to the same family.
func pickTextColor(g OKLCH) OKLCH {
	white := OKLCH{L: 1, C: 0, H: UndefinedHue}
	if math.Abs(apcaLc(white, g)) >= 40 {
		return white
	}
	return OKLCH{
		L: 0.25,
		C: math.Max(0.08*g.C, 0.04),
		H: DefinedHue(g.H.numeric()),
	}
}
