package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// HookEnv is the environment variable that supplies the webhook URL. It
// takes precedence over the --slack-hook flag.
const HookEnv = "SLACK_HOOK"

// ErrNoWebhook is returned when neither HookEnv nor the flag names a webhook.
var ErrNoWebhook = errors.New("no webhook configured")

// NoWebhookHint is the operator-facing diagnostic for ErrNoWebhook.
const NoWebhookHint = "Please specify a slack hook via --slack-hook or " + HookEnv + " env var"

// Options are the raw operator inputs. Every field is exposed as a CLI
// flag named after its yaml tag (snake_case → kebab-case).
type Options struct {
	SlackHook           string            `yaml:"slack_hook" usage:"Slack webhook to post messages. Can also be specified by the SLACK_HOOK env var"`
	Tag                 string            `yaml:"tag" usage:"A tag to identify this run"`
	ResultsDir          string            `yaml:"results_dir" usage:"directory holding *.time files (default: results/ next to the executable)"`
	Template            string            `yaml:"template" usage:"Go text/template for the message body (sprig functions available)"`
	Timeout             string            `yaml:"timeout" usage:"webhook request timeout"`
	Notify              []string          `yaml:"notify" usage:"additional Shoutrrr service URL to notify (repeatable)"`
	NotifyParams        map[string]string `yaml:"notify_params" usage:"key=value params merged into every --notify URL"`
	FailOnDeliveryError bool              `yaml:"fail_on_delivery_error" usage:"exit non-zero when the webhook or a notify target fails"`
}

// Defaults returns the options used when the operator sets nothing.
func Defaults() Options {
	return Options{
		Tag:     "Unknown",
		Timeout: "30s",
	}
}

// Config is the resolved, validated run configuration.
type Config struct {
	Webhook             string            `validate:"required"`
	Tag                 string            `validate:"required"`
	ResultsDir          string            `validate:"required"`
	Template            string            `validate:"required"`
	Timeout             time.Duration     `validate:"gt=0"`
	Notify              []string          `validate:"dive,required"`
	NotifyParams        map[string]string `validate:"dive,keys,required,endkeys"`
	FailOnDeliveryError bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the resolved config against its struct tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q check", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
