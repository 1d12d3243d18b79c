package cli

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/scale"
	"github.com/spf13/cobra"
)

var (
	generateAppearance string
	generateAccent     string
	generateGray       string
	generateBackground string
	generateFormat     string
)

// generateCmd builds a 12-step accent/gray scale pair from three seed
// colors, the way the teacher's own generateCmd turns an input source
// into a palette and hands it to a rendering step.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize a perceptually uniform 12-step color scale",
	Long: `Synthesize a perceptually uniform, contextually aware 12-step color scale
from three seed colors: an accent, a gray, and a background.

The accent and gray scales are matched against a built-in template
catalog, blended by perceptual distance, then transposed so their first
step lands on the background. The accent scale's ninth step ("solid")
is picked for legibility against the background, and every step gets a
translucent counterpart that recomposites to the same color over the
given background.

Examples:
  tonal generate --accent '#3D63DD' --gray '#8B8D98' --background '#FFFFFF'
  tonal generate --appearance dark --accent '#0090FF' --gray '#8B8D98' --background '#111111' --format json
  tonal generate --accent '#3D63DD' --gray '#8B8D98' --background '#FFFFFF' --format swatch`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateAppearance, "appearance", "light", "appearance (light or dark)")
	generateCmd.Flags().StringVar(&generateAccent, "accent", "", "accent seed color, hex (required)")
	generateCmd.Flags().StringVar(&generateGray, "gray", "", "gray seed color, hex (required)")
	generateCmd.Flags().StringVar(&generateBackground, "background", "", "background color, hex (required)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "hex", "output format: hex, json, yaml, or swatch")

	generateCmd.MarkFlagRequired("accent")
	generateCmd.MarkFlagRequired("gray")
	generateCmd.MarkFlagRequired("background")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newPipelineLogger(verbose)

	appearance, err := scale.ParseAppearance(generateAppearance)
	if err != nil {
		return fmt.Errorf("invalid --appearance: %w", err)
	}
	format, err := parseRenderFormat(generateFormat)
	if err != nil {
		return err
	}

	logger.Debug("resolved inputs", "appearance", generateAppearance, "accent", generateAccent, "gray", generateGray, "background", generateBackground)

	palette, err := scale.Generate(
		appearance,
		scale.FromHex(generateAccent),
		scale.FromHex(generateGray),
		scale.FromHex(generateBackground),
	)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	logger.Debug("synthesis complete",
		"accentContrast", palette.AccentContrast.Hex(),
		"accentStep9", palette.AccentScale[8].Hex(),
		"accentSurface", palette.AccentSurface.HexAlpha(),
	)

	out, err := render(palette, format)
	if err != nil {
		return err
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
