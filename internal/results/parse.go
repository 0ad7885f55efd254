package results

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Key is the line key whose value is reported.
const Key = "real"

// Result holds the measurement extracted from one result file.
type Result struct {
	Tag   string `json:"tag" yaml:"tag"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	OK    bool   `json:"ok" yaml:"ok"`
}

// Line formats the result as a single report line.
func (r Result) Line() string {
	if !r.OK {
		return r.Tag + ": could not parse output!"
	}
	return r.Tag + ": " + r.Value + " seconds"
}

// TagFor returns the tag of a result file: its base name without extension.
func TagFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parse reads the result file at path. A file without a "real" line is not
// an error; the returned Result has OK set to false.
func Parse(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening result file: %w", err)
	}
	defer f.Close()

	res, err := ParseReader(TagFor(path), f)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// ParseReader reads all of r and returns the first line keyed "real". Each
// line is split on its first run of whitespace into a key and the remainder.
// Line length is unbounded.
func ParseReader(tag string, r io.Reader) (Result, error) {
	res := Result{Tag: tag}

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	for line := range strings.Lines(string(data)) {
		key, value, ok := splitLine(line)
		if !ok || key != Key {
			continue
		}
		res.Value = value
		res.OK = true
		return res, nil
	}

	return res, nil
}

func splitLine(line string) (key, value string, ok bool) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace), true
}
