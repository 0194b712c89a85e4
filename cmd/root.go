// Package cmd holds the chroma-logger command line, a thin shell around the
// logger package for use from scripts.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/chroma-logger/logger"
)

// NewRootCommand builds the chroma-logger command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "chroma-logger",
		Short: "Write leveled, colorized log lines from the shell.",
		Long: `chroma-logger writes timestamped, colorized log lines to stdout or stderr
depending on severity. Formatting and filtering follow the same
CHROMA_LOGGER_* environment variables as the Go package:

  CHROMA_LOGGER_DISABLE_DATE_FORMAT      "true" or "1" omits the timestamp
  CHROMA_LOGGER_DISABLE_SEVERITY_FORMAT  "true" or "1" omits the label
  CHROMA_LOGGER_DISABLE_COLOR            "true" or "1" omits ANSI codes
  CHROMA_LOGGER_SEVERITY                 minimum severity, or "disable"`,
		SilenceUsage: true,
	}
	root.AddCommand(newEmitCommand(), newColorsCommand())
	return root
}

// Execute runs the command tree. Cobra has already printed the error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// newLogger writes to the command's streams so tests can capture them.
func newLogger(cmd *cobra.Command, cfg logger.Config) *logger.Logger {
	return logger.New(cfg, logger.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

func severityNames() []string {
	all := logger.Severities()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	return names
}
