package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sznuper/benchpost/internal/results"
)

// Supported encodings for Report.Encode.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Report is the ordered set of parsed results, one per result file.
type Report struct {
	Results []results.Result `json:"results" yaml:"results"`
}

// Compose sorts paths lexicographically and parses each file in that order.
// An unreadable file fails the whole report.
func Compose(paths []string) (*Report, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	r := &Report{Results: make([]results.Result, 0, len(sorted))}
	for _, p := range sorted {
		res, err := results.Parse(p)
		if err != nil {
			return nil, err
		}
		r.Results = append(r.Results, res)
	}
	return r, nil
}

// Lines returns one formatted line per result.
func (r *Report) Lines() []string {
	lines := make([]string, len(r.Results))
	for i, res := range r.Results {
		lines[i] = res.Line()
	}
	return lines
}

// String joins the report lines with newlines. An empty report is "".
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		if len(r.Results) == 0 {
			return nil
		}
		_, err := io.WriteString(w, r.String()+"\n")
		return err
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
