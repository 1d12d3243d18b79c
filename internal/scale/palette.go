package scale

// Appearance selects which template catalog and lightness-transposition
// path the pipeline uses.
type Appearance int

const (
	Light Appearance = iota
	Dark
)

// ParseAppearance parses "light" or "dark" (case-sensitive, matching
// spec.md §6's literal union type).
func ParseAppearance(s string) (Appearance, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return 0, newError(InvalidHex, s, nil)
	}
}

// Input is the sum type `Rgb(RGB) | Hex(String)` from spec.md §9's
// design note: accent/gray/background accept either an already-typed
// color or a hex string, resolved once at the API boundary.
type Input struct {
	hasRGB bool
	rgb    RGB
	hex    string
}

// FromRGB wraps an already-typed RGB value.
func FromRGB(rgb RGB) Input { return Input{hasRGB: true, rgb: rgb} }

// FromHex wraps a hex string, resolved lazily when the pipeline runs.
func FromHex(hex string) Input { return Input{hex: hex} }

func (in Input) resolve() (RGB, error) {
	if in.hasRGB {
		return in.rgb, nil
	}
	return hexToRGB(in.hex)
}

// Palette is the complete output of Generate: two opaque 12-step
// scales, their pre-blended translucent counterparts, a foreground
// color for step 9, a translucent surface color, and the background
// echo.
type Palette struct {
	AccentScale      [12]RGB
	AccentScaleAlpha [12]RGBA
	GrayScale        [12]RGB
	GrayScaleAlpha   [12]RGBA
	AccentContrast   RGB
	AccentSurface    RGBA
	Background       RGB
}

// ToMap serializes the palette the way spec.md §6 describes: hex-keyed
// scales for the opaque colors, "#RRGGBBAA"-keyed scales for their
// translucent counterparts so the alpha channel survives serialization.
func (p Palette) ToMap() map[string]any {
	hexScale := func(s [12]RGB) []string {
		out := make([]string, 12)
		for i, c := range s {
			out[i] = c.Hex()
		}
		return out
	}
	hexAlphaScale := func(s [12]RGBA) []string {
		out := make([]string, 12)
		for i, c := range s {
			out[i] = c.HexAlpha()
		}
		return out
	}

	return map[string]any{
		"accentScale":      hexScale(p.AccentScale),
		"accentScaleAlpha": hexAlphaScale(p.AccentScaleAlpha),
		"grayScale":        hexScale(p.GrayScale),
		"grayScaleAlpha":   hexAlphaScale(p.GrayScaleAlpha),
		"accentContrast":   p.AccentContrast.Hex(),
		"accentSurface":    p.AccentSurface.HexAlpha(),
		"background":       p.Background.Hex(),
	}
}

// ColorToHexWithAlpha renders an RGBA as "#RRGGBBAA".
func ColorToHexWithAlpha(c RGBA) string { return c.HexAlpha() }

// surfaceAlphaLight and surfaceAlphaDark are the fixed opacities forced
// onto the surface color (spec.md §4.9, invoked from Generate).
const (
	surfaceAlphaLight = 0.8
	surfaceAlphaDark  = 0.5
)

// Generate runs the full pipeline (spec.md §4.10): synthesize both
// scales against the appearance's template catalog, transpose their
// lightness toward the background, substitute a pure white/black accent
// with the gray scale, apply the step-9/hover/chroma-cap post-
// processing rules to the accent scale, then solve reverse-alpha
// variants for every step plus the surface color.
func Generate(appearance Appearance, accent, gray, background Input) (Palette, error) {
	accentRGB, err := accent.resolve()
	if err != nil {
		return Palette{}, err
	}
	grayRGB, err := gray.resolve()
	if err != nil {
		return Palette{}, err
	}
	bgRGB, err := background.resolve()
	if err != nil {
		return Palette{}, err
	}

	isLight := appearance == Light
	catalog := catalogFor(isLight)

	accentOklch := rgbToOklch(accentRGB)
	grayOklch := rgbToOklch(grayRGB)
	bgOklch := rgbToOklch(bgRGB)

	accentScale := synthesizeAndTranspose(accentOklch, catalog, bgOklch)
	grayScale := synthesizeAndTranspose(grayOklch, catalog, bgOklch)

	var contrast OKLCH
	if isPureBlackOrWhiteHex(accentRGB.Hex()[1:]) {
		// A pure white/black seed carries no chroma or hue: fall back to
		// the gray scale wholesale rather than reasoning about how "far"
		// black or white sits from the background. Step 9 stays the
		// gray scale's own step 9 (the close-distance outcome of the
		// step-9 rule), and the hover derivative and chroma cap are
		// skipped, so the accent scale equals the gray scale exactly.
		accentScale = grayScale
		contrast = pickTextColor(accentScale[8])
	} else {
		var step9 OKLCH
		step9, contrast = applyStep9Rule(accentScale, accentOklch)
		accentScale[8] = step9
		accentScale[9] = buttonHoverStep(step9, accentScale)
		accentScale = capChromaTail(accentScale)
	}

	var accentRGBScale, grayRGBScale [12]RGB
	var accentAlpha, grayAlpha [12]RGBA
	for i := 0; i < 12; i++ {
		accentRGBScale[i] = oklchToRgb(accentScale[i])
		grayRGBScale[i] = oklchToRgb(grayScale[i])
		accentAlpha[i] = reverseAlpha(accentRGBScale[i], bgRGB, nil)
		grayAlpha[i] = reverseAlpha(grayRGBScale[i], bgRGB, nil)
	}

	surfaceAlpha := surfaceAlphaDark
	if isLight {
		surfaceAlpha = surfaceAlphaLight
	}
	surface := reverseAlpha(accentRGBScale[1], bgRGB, &surfaceAlpha)

	return Palette{
		AccentScale:      accentRGBScale,
		AccentScaleAlpha: accentAlpha,
		GrayScale:        grayRGBScale,
		GrayScaleAlpha:   grayAlpha,
		AccentContrast:   oklchToRgb(contrast),
		AccentSurface:    surface,
		Background:       bgRGB,
	}, nil
}

// synthesizeAndTranspose runs C5 then C6 for one seed color.
func synthesizeAndTranspose(source OKLCH, catalog *TemplateCatalog, bg OKLCH) [12]OKLCH {
	adjusted := synthesizeBase(source, catalog)
	return transposeToBackground(adjusted, bg)
}
