package cli

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tonal",
	Short: "A perceptually uniform color scale synthesizer",
	Long: `Tonal synthesizes perceptually uniform, contextually aware 12-step
color scales from a small set of seed colors, matching them against a
library of hand-tuned template scales and transposing them onto any
background.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the root cobra command, wired with all subcommands.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose diagnostic logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
