package runner

import (
	"time"

	"github.com/sznuper/benchpost/internal/notify"
	"github.com/sznuper/benchpost/internal/report"
)

// Result captures the outcome of one run through the pipeline.
// Errors are stored in Err/ErrStage rather than returned, so the caller always
// has something to display. Delivery failures are not stage errors: they are
// recorded in Webhook and TargetErrs for the caller to act on.
type Result struct {
	Tag        string
	ResultsDir string
	Files      []string
	Report     *report.Report
	Message    string
	Webhook    notify.Delivery
	Notified   []string         // extra targets notified (or would-notify)
	TargetErrs map[string]error // extra target name → failure
	DryRun     bool
	Duration   time.Duration
	Err        error
	ErrStage   string // "locate", "compose", "render", "notify"
}

// Delivered reports whether every delivery attempt succeeded. A dry run
// counts as delivered when all extra targets validated.
func (r *Result) Delivered() bool {
	if r.Err != nil || len(r.TargetErrs) > 0 {
		return false
	}
	return r.DryRun || r.Webhook.OK
}

func (r *Result) targetFailed(name string, err error) {
	if r.TargetErrs == nil {
		r.TargetErrs = make(map[string]error)
	}
	r.TargetErrs[name] = err
}
