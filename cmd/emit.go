package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mordilloSan/chroma-logger/logger"
)

func newEmitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit <severity> [message] [args...]",
		Short: "Log a message at the given severity",
		Example: `  chroma-logger emit info "deployed %s in %ds" api 42
  chroma-logger emit error "health check failed"`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return severityNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, a)
			}
			return newLogger(cmd, logger.ConfigFromEnv()).Emit(args[0], values...)
		},
	}
	// Messages may start with a dash; everything after the severity is data.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
