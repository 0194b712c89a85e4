package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mordilloSan/chroma-logger/logger"
)

func newColorsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print one sample line per severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logger.DefaultConfig()
			cfg.Color = !plain
			l := newLogger(cmd, cfg)
			for _, s := range logger.Severities() {
				if err := l.Emit(s.Name, "%s is level %d on %s", s.Name, s.Level, s.Stream); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "omit ANSI color codes")
	return cmd
}
