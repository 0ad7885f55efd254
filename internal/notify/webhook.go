package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrBody caps how much of a rejected response body is kept in the error.
const maxErrBody = 512

// Delivery is the outcome of a single webhook POST.
type Delivery struct {
	OK         bool
	StatusCode int
	Err        error
}

type webhookPayload struct {
	Text string `json:"text"`
}

// PostWebhook sends text to a Slack-compatible incoming webhook as
// {"text": text}. It makes exactly one attempt. OK is true only for a 200
// response; transport failures are reported in Err and never panic.
func PostWebhook(ctx context.Context, client *http.Client, url, text string) Delivery {
	if client == nil {
		client = http.DefaultClient
	}

	body, err := json.Marshal(webhookPayload{Text: text})
	if err != nil {
		return Delivery{Err: fmt.Errorf("encoding payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Delivery{Err: fmt.Errorf("building webhook request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return Delivery{Err: fmt.Errorf("posting to webhook: %w", err)}
	}
	defer resp.Body.Close()

	d := Delivery{StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		d.OK = true
		return d
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	msg := strings.TrimSpace(string(snippet))
	if msg == "" {
		d.Err = fmt.Errorf("webhook returned %s", resp.Status)
	} else {
		d.Err = fmt.Errorf("webhook returned %s: %s", resp.Status, msg)
	}
	return d
}
