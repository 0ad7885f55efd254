package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sznuper/benchpost/internal/config"
	"github.com/sznuper/benchpost/internal/report"
	"github.com/sznuper/benchpost/internal/runner"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print parsed results without posting",
		Long:  "Parses the result files and prints them as text, yaml or json. No webhook is needed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			level, _ := cmd.Flags().GetString("log-level")
			if _, err := loggerFor(cmd.ErrOrStderr(), level); err != nil {
				return err
			}

			opts := config.Defaults()
			applyOptionFlags(cmd, &opts)

			dir := opts.ResultsDir
			if dir == "" {
				var err error
				if dir, err = config.DefaultResultsDir(); err != nil {
					return err
				}
			}

			_, rep, err := runner.Collect(dir)
			if err != nil {
				return err
			}
			if err := rep.Encode(cmd.OutOrStdout(), format); err != nil {
				return fmt.Errorf("printing results: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", report.FormatText, "output format: text, yaml, json")
	return cmd
}
