package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// Target holds a fully resolved notification target ready to send.
type Target struct {
	ServiceName string
	URL         string
	Message     string
}

// ResolveTargets builds Shoutrrr targets from service URLs. ${VAR}
// references in each URL are expanded from the environment and params are
// merged into the URL query, overriding keys already present. Target names
// are unique: a scheme used more than once is numbered ("slack#1", "slack#2").
func ResolveTargets(serviceURLs []string, params map[string]string, message string) ([]Target, error) {
	var targets []Target

	for _, raw := range serviceURLs {
		expanded, err := envsubst.String(raw)
		if err != nil {
			return nil, fmt.Errorf("expanding env vars in notify url: %w", err)
		}

		full, err := applyParams(expanded, params)
		if err != nil {
			return nil, err
		}

		targets = append(targets, Target{
			ServiceName: serviceName(full),
			URL:         full,
			Message:     message,
		})
	}

	counts := make(map[string]int, len(targets))
	for _, t := range targets {
		counts[t.ServiceName]++
	}
	seen := make(map[string]int, len(counts))
	for i := range targets {
		name := targets[i].ServiceName
		if counts[name] < 2 {
			continue
		}
		seen[name]++
		targets[i].ServiceName = fmt.Sprintf("%s#%d", name, seen[name])
	}

	return targets, nil
}

// Send delivers a notification to a single target via Shoutrrr.
func Send(t Target) error {
	sender, err := shoutrrr.CreateSender(t.URL)
	if err != nil {
		return fmt.Errorf("creating sender for %s: %w", t.ServiceName, err)
	}

	errs := sender.Send(t.Message, &types.Params{})
	for _, e := range errs {
		if e != nil {
			return fmt.Errorf("sending to %s: %w", t.ServiceName, e)
		}
	}

	return nil
}

// Validate checks that Shoutrrr can build a sender for the target without
// sending anything.
func Validate(t Target) error {
	if _, err := shoutrrr.CreateSender(t.URL); err != nil {
		return fmt.Errorf("invalid notify url for %s: %w", t.ServiceName, err)
	}
	return nil
}

// applyParams merges params into the query string of rawURL.
func applyParams(rawURL string, params map[string]string) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing notify url: %w", err)
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func serviceName(rawURL string) string {
	scheme, _, ok := strings.Cut(rawURL, "://")
	if !ok || scheme == "" {
		return "unknown"
	}
	return scheme
}
