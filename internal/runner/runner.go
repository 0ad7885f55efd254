package runner

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sznuper/benchpost/internal/config"
	"github.com/sznuper/benchpost/internal/hostinfo"
	"github.com/sznuper/benchpost/internal/notify"
	"github.com/sznuper/benchpost/internal/report"
	"github.com/sznuper/benchpost/internal/results"
)

// Runner orchestrates the locate → compose → render → notify pipeline.
type Runner struct {
	cfg    *config.Config
	host   hostinfo.Info
	client *http.Client
	logger *slog.Logger
}

// New creates a Runner. host is detected once by the caller and reused for
// every message this Runner renders.
func New(cfg *config.Config, host hostinfo.Info, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		host:   host,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Collect locates and parses the result files in dir.
func Collect(dir string) ([]string, *report.Report, error) {
	files, err := results.Locate(dir)
	if err != nil {
		return nil, nil, err
	}
	rep, err := report.Compose(files)
	if err != nil {
		return files, nil, err
	}
	return files, rep, nil
}

// Prepare runs every stage up to, but not including, delivery.
func (r *Runner) Prepare() Result {
	log := r.logger.With("tag", r.cfg.Tag)
	start := time.Now()

	result := Result{
		Tag:        r.cfg.Tag,
		ResultsDir: r.cfg.ResultsDir,
	}

	// Stage 1: Locate result files.
	log.Info("locating result files", "dir", r.cfg.ResultsDir)
	files, err := results.Locate(r.cfg.ResultsDir)
	if err != nil {
		result.Err = err
		result.ErrStage = "locate"
		result.Duration = time.Since(start)
		log.Error("locate failed", "error", err)
		return result
	}
	result.Files = files
	log.Debug("result files located", "count", len(files))

	// Stage 2: Parse and order results.
	log.Info("composing report")
	rep, err := report.Compose(files)
	if err != nil {
		result.Err = err
		result.ErrStage = "compose"
		result.Duration = time.Since(start)
		log.Error("compose failed", "error", err)
		return result
	}
	result.Report = rep
	for _, res := range rep.Results {
		if !res.OK {
			log.Warn("no real line in result file", "path", res.Path)
		}
	}

	// Stage 3: Render the message.
	log.Info("rendering message")
	data := notify.BuildTemplateData(r.cfg.Tag, r.host, rep)
	msg, err := notify.Render(r.cfg.Template, data)
	if err != nil {
		result.Err = err
		result.ErrStage = "render"
		result.Duration = time.Since(start)
		log.Error("render failed", "error", err)
		return result
	}
	result.Message = msg
	result.Duration = time.Since(start)
	log.Debug("message rendered", "bytes", len(msg))

	return result
}

// Deliver posts the prepared message to the webhook and every extra
// target. Each destination gets a single attempt. With dryRun set nothing is
// sent; extra targets are only validated.
func (r *Runner) Deliver(ctx context.Context, result *Result, dryRun bool) {
	log := r.logger.With("tag", r.cfg.Tag)
	start := time.Now()
	result.DryRun = dryRun

	if result.Err != nil {
		return
	}

	// Stage 4: Resolve extra targets.
	targets, err := notify.ResolveTargets(r.cfg.Notify, r.cfg.NotifyParams, result.Message)
	if err != nil {
		result.Err = err
		result.ErrStage = "notify"
		result.Duration += time.Since(start)
		log.Error("resolving notify targets failed", "error", err)
		return
	}

	// Stage 5: Deliver.
	if dryRun {
		log.Info("dry run, skipping webhook")
	} else {
		log.Info("posting to webhook")
		result.Webhook = notify.PostWebhook(ctx, r.client, r.cfg.Webhook, result.Message)
		if result.Webhook.OK {
			log.Debug("webhook accepted", "status", result.Webhook.StatusCode)
		} else {
			log.Error("webhook delivery failed", "status", result.Webhook.StatusCode, "error", result.Webhook.Err)
		}
	}

	for _, t := range targets {
		if dryRun {
			if err := notify.Validate(t); err != nil {
				result.targetFailed(t.ServiceName, err)
				log.Error("notify validation failed (dry-run)", "service", t.ServiceName, "error", err)
				continue
			}
			result.Notified = append(result.Notified, t.ServiceName)
			log.Debug("would notify (dry-run)", "service", t.ServiceName)
			continue
		}

		log.Info("sending notification", "service", t.ServiceName)
		if err := notify.Send(t); err != nil {
			result.targetFailed(t.ServiceName, err)
			log.Error("notify failed", "service", t.ServiceName, "error", err)
			continue
		}
		result.Notified = append(result.Notified, t.ServiceName)
		log.Debug("notification sent", "service", t.ServiceName)
	}

	result.Duration += time.Since(start)
	log.Info("run completed", "delivered", result.Delivered(), "duration", result.Duration)
}
