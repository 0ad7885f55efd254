package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sznuper/benchpost/internal/hostinfo"
	"github.com/sznuper/benchpost/internal/report"
	"github.com/sznuper/benchpost/internal/results"
)

// DefaultTemplate renders the run header followed by one line per result.
const DefaultTemplate = "Run tag: {{ .Tag }}\n" +
	"CPU Brand: {{ .Host.Brand }}\n" +
	"CPU Count: {{ .Host.Count }}\n" +
	"{{ .Report }}"

// TemplateData holds all data available to message templates.
type TemplateData struct {
	Tag     string
	Host    hostinfo.Info
	Report  string
	Results []results.Result
}

// BuildTemplateData constructs template data for one run.
func BuildTemplateData(tag string, host hostinfo.Info, rep *report.Report) TemplateData {
	data := TemplateData{Tag: tag, Host: host}
	if rep != nil {
		data.Report = rep.String()
		data.Results = rep.Results
	}
	return data
}

func resultEmoji(ok bool) string {
	if ok {
		return "\u2705" // ✅
	}
	return "\u26a0\ufe0f" // ⚠️
}

// Render executes a Go text/template string with Sprig functions and the
// accessor functions run, host and emoji.
func Render(tmplStr string, data TemplateData) (string, error) {
	funcMap := sprig.TxtFuncMap()

	// {{run.tag}}, {{host.brand}} and {{host.count}} mirror the dotted fields.
	funcMap["run"] = func() map[string]string { return map[string]string{"tag": data.Tag} }
	funcMap["host"] = func() map[string]any {
		return map[string]any{"brand": data.Host.Brand, "count": data.Host.Count}
	}
	funcMap["emoji"] = resultEmoji

	t, err := template.New("message").Funcs(funcMap).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
