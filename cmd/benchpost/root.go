package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// exitError carries a process exit code for a failure that has already been
// reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchpost",
		Short: "Report benchmark results to Slack",
		Long: "Benchpost gathers *.time files from the results directory, extracts the wall-clock\n" +
			"\"real\" measurement from each, and posts a summary tagged with the run and CPU\n" +
			"to a Slack incoming webhook. Use --dry-run to print the message without posting.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPost,
	}

	registerOptionFlags(cmd)
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().Bool("dry-run", false, "render and print the message without posting it")

	cmd.AddCommand(newShowCmd())
	return cmd
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
