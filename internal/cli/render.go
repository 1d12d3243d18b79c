package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmylchreest/tonal/internal/scale"
	"gopkg.in/yaml.v3"
)

// renderFormat is the `--format` union: hex (default), json, yaml, swatch.
type renderFormat string

const (
	formatHex    renderFormat = "hex"
	formatJSON   renderFormat = "json"
	formatYAML   renderFormat = "yaml"
	formatSwatch renderFormat = "swatch"
)

func parseRenderFormat(s string) (renderFormat, error) {
	switch renderFormat(s) {
	case formatHex, formatJSON, formatYAML, formatSwatch:
		return renderFormat(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want hex, json, yaml, or swatch)", s)
	}
}

// yamlPalette mirrors scale.Palette but carries yaml tags, matching the
// templater output plugin's config-struct idiom of a dedicated
// serialization type alongside the domain type.
type yamlPalette struct {
	AccentScale      []string `yaml:"accentScale" json:"accentScale"`
	AccentScaleAlpha []string `yaml:"accentScaleAlpha" json:"accentScaleAlpha"`
	GrayScale        []string `yaml:"grayScale" json:"grayScale"`
	GrayScaleAlpha   []string `yaml:"grayScaleAlpha" json:"grayScaleAlpha"`
	AccentContrast   string   `yaml:"accentContrast" json:"accentContrast"`
	AccentSurface    string   `yaml:"accentSurface" json:"accentSurface"`
	Background       string   `yaml:"background" json:"background"`
}

func toYAMLPalette(p scale.Palette) yamlPalette {
	hexScale := func(s [12]scale.RGB) []string {
		out := make([]string, 12)
		for i, c := range s {
			out[i] = c.Hex()
		}
		return out
	}
	hexAlphaScale := func(s [12]scale.RGBA) []string {
		out := make([]string, 12)
		for i, c := range s {
			out[i] = c.HexAlpha()
		}
		return out
	}
	return yamlPalette{
		AccentScale:      hexScale(p.AccentScale),
		AccentScaleAlpha: hexAlphaScale(p.AccentScaleAlpha),
		GrayScale:        hexScale(p.GrayScale),
		GrayScaleAlpha:   hexAlphaScale(p.GrayScaleAlpha),
		AccentContrast:   p.AccentContrast.Hex(),
		AccentSurface:    p.AccentSurface.HexAlpha(),
		Background:       p.Background.Hex(),
	}
}

func render(p scale.Palette, format renderFormat) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(toYAMLPalette(p), "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(data), nil
	case formatYAML:
		data, err := yaml.Marshal(toYAMLPalette(p))
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return string(data), nil
	case formatSwatch:
		return renderSwatch(p), nil
	default:
		return renderHex(p), nil
	}
}

// renderHex is the plain, script-friendly default: one hex value per line.
func renderHex(p scale.Palette) string {
	var b strings.Builder
	for i, c := range p.AccentScale {
		fmt.Fprintf(&b, "accentScale[%d]       %s\n", i+1, c.Hex())
	}
	for i, c := range p.AccentScaleAlpha {
		fmt.Fprintf(&b, "accentScaleAlpha[%d]  %s\n", i+1, c.HexAlpha())
	}
	for i, c := range p.GrayScale {
		fmt.Fprintf(&b, "grayScale[%d]         %s\n", i+1, c.Hex())
	}
	for i, c := range p.GrayScaleAlpha {
		fmt.Fprintf(&b, "grayScaleAlpha[%d]    %s\n", i+1, c.HexAlpha())
	}
	fmt.Fprintf(&b, "accentContrast       %s\n", p.AccentContrast.Hex())
	fmt.Fprintf(&b, "accentSurface        %s\n", p.AccentSurface.HexAlpha())
	fmt.Fprintf(&b, "background           %s\n", p.Background.Hex())
	return b.String()
}

// renderSwatch paints each scale step as a lipgloss block with the
// background set to the step's own color, the way style/palette.go
// composes named swatches from lipgloss.Color values. Step 9 (index 8)
// prints its label in the computed accentContrast color instead of the
// scale's default text color, so the text-contrast pick is visible
// rather than just computed.
func renderSwatch(p scale.Palette) string {
	var b strings.Builder
	contrastStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(p.AccentScale[8].Hex())).
		Foreground(lipgloss.Color(p.AccentContrast.Hex())).
		Padding(0, 1)

	for i, c := range p.AccentScale {
		label := fmt.Sprintf(" accent %2d  %s ", i+1, c.Hex())
		if i == 8 {
			fmt.Fprintln(&b, contrastStyle.Render(label))
			continue
		}
		style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Padding(0, 1)
		fmt.Fprintln(&b, style.Render(label))
	}
	for i, c := range p.GrayScale {
		label := fmt.Sprintf(" gray   %2d  %s ", i+1, c.Hex())
		style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Padding(0, 1)
		fmt.Fprintln(&b, style.Render(label))
	}
	return b.String()
}
