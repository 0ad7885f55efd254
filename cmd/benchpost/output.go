package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sznuper/benchpost/internal/runner"
)

type styles struct {
	ok   lipgloss.Style
	fail lipgloss.Style
	dim  lipgloss.Style
}

// newStyles binds styles to w so color is only emitted to terminals.
func newStyles(w io.Writer) styles {
	re := lipgloss.NewRenderer(w)
	return styles{
		ok:   re.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail: re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dim:  re.NewStyle().Faint(true),
	}
}

func printDelivery(w io.Writer, r runner.Result) {
	st := newStyles(w)

	switch {
	case r.DryRun:
		fmt.Fprintf(w, "%s Would post to webhook (dry run)\n", st.dim.Render("-"))
	case r.Webhook.OK:
		fmt.Fprintf(w, "%s Posted to webhook (%d)\n", st.ok.Render("✓"), r.Webhook.StatusCode)
	default:
		fmt.Fprintf(w, "%s Webhook delivery failed: %v\n", st.fail.Render("✗"), r.Webhook.Err)
	}

	if len(r.Notified) > 0 {
		label := "Notified"
		if r.DryRun {
			label = "Would notify"
		}
		fmt.Fprintf(w, "%s %s: %s\n", st.ok.Render("✓"), label, strings.Join(r.Notified, ", "))
	}

	names := make([]string, 0, len(r.TargetErrs))
	for name := range r.TargetErrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s Notify %s failed: %v\n", st.fail.Render("✗"), name, r.TargetErrs[name])
	}
}
