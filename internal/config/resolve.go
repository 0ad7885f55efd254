package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sznuper/benchpost/internal/notify"
)

// ResultsDirName is the directory, next to the executable, searched for
// result files when no --results-dir is given.
const ResultsDirName = "results"

// DefaultResultsDir returns ResultsDirName next to the running executable,
// with symlinks resolved.
func DefaultResultsDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ResultsDirName), nil
}

// Resolve turns operator options into a validated Config. The webhook is
// taken from HookEnv first and opts.SlackHook second; ErrNoWebhook is
// returned when both are empty. The webhook and tag are used verbatim; a
// malformed webhook surfaces as a failed delivery, not a config error.
func Resolve(opts Options) (*Config, error) {
	hook := os.Getenv(HookEnv)
	if hook == "" {
		hook = opts.SlackHook
	}
	if hook == "" {
		return nil, ErrNoWebhook
	}

	defaults := Defaults()

	tag := opts.Tag
	if tag == "" {
		tag = defaults.Tag
	}

	dir := opts.ResultsDir
	if dir == "" {
		var err error
		dir, err = DefaultResultsDir()
		if err != nil {
			return nil, err
		}
	}

	tmpl := opts.Template
	if tmpl == "" {
		tmpl = notify.DefaultTemplate
	}

	rawTimeout := opts.Timeout
	if rawTimeout == "" {
		rawTimeout = defaults.Timeout
	}
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing timeout: %w", err)
	}

	cfg := &Config{
		Webhook:             hook,
		Tag:                 tag,
		ResultsDir:          dir,
		Template:            tmpl,
		Timeout:             timeout,
		Notify:              opts.Notify,
		NotifyParams:        opts.NotifyParams,
		FailOnDeliveryError: opts.FailOnDeliveryError,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
