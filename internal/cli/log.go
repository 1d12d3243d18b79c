// Package cli provides the command-line interface for Tonal.
package cli

import (
	"io"
	"log"

	"github.com/hashicorp/go-hclog"
)

// newPipelineLogger builds the diagnostic logger used to trace the
// synthesis pipeline's stages. Mirrors the teacher's
// internal/plugin/executor pattern of gating an hclog.Logger on a
// verbose flag rather than configuring log levels from a flag value
// directly.
func newPipelineLogger(verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tonal",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
