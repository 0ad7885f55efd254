package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/sznuper/benchpost/internal/config"
	"github.com/sznuper/benchpost/internal/hostinfo"
	"github.com/sznuper/benchpost/internal/runner"
)

func runPost(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := loggerFor(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	opts := config.Defaults()
	applyOptionFlags(cmd, &opts)

	cfg, err := config.Resolve(opts)
	if errors.Is(err, config.ErrNoWebhook) {
		fmt.Fprintln(cmd.ErrOrStderr(), config.NoWebhookHint)
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return &exitError{code: 1}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Slack hook URL: [%s]\n", cfg.Webhook)
	fmt.Fprintln(out, "Gathering results files...")

	r := runner.New(cfg, hostinfo.Detect(), logger)
	result := r.Prepare()
	if result.Err != nil {
		return fmt.Errorf("%s: %w", result.ErrStage, result.Err)
	}
	fmt.Fprintln(out, result.Report.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r.Deliver(ctx, &result, dryRun)
	if result.Err != nil {
		return fmt.Errorf("%s: %w", result.ErrStage, result.Err)
	}
	printDelivery(out, result)

	if cfg.FailOnDeliveryError && !result.Delivered() {
		return &exitError{code: 1}
	}
	return nil
}
