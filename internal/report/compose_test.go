package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func writeResult(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompose_Empty(t *testing.T) {
	r, err := Compose(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestCompose_SortedByPath(t *testing.T) {
	dir := t.TempDir()
	b := writeResult(t, dir, "b.time", "real 2.0\n")
	a := writeResult(t, dir, "a.time", "real 1.0\n")

	r, err := Compose([]string{b, a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a: 1.0 seconds\nb: 2.0 seconds"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompose_DoesNotReorderInput(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeResult(t, dir, "z.time", "real 1\n"),
		writeResult(t, dir, "y.time", "real 1\n"),
	}
	first := paths[0]

	if _, err := Compose(paths); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths[0] != first {
		t.Error("Compose mutated its input slice")
	}
}

func TestCompose_MixedParseOutcomes(t *testing.T) {
	dir := t.TempDir()
	foo := writeResult(t, dir, "foo.time", "real 1.5\n")
	bar := writeResult(t, dir, "bar.time", "user 0.1\n")

	r, err := Compose([]string{foo, bar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "bar: could not parse output!\nfoo: 1.5 seconds"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompose_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeResult(t, dir, "ok.time", "real 1\n")

	_, err := Compose([]string{ok, filepath.Join(dir, "missing.time")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEncode_Text(t *testing.T) {
	dir := t.TempDir()
	r, err := Compose([]string{writeResult(t, dir, "a.time", "real 1\n")})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf, FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "a: 1 seconds\n" {
		t.Errorf("text = %q", buf.String())
	}
}

func TestEncode_YAML(t *testing.T) {
	dir := t.TempDir()
	r, err := Compose([]string{
		writeResult(t, dir, "a.time", "real 1.25\n"),
		writeResult(t, dir, "b.time", "nothing here\n"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf, FormatYAML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding yaml: %v\n%s", err, buf.String())
	}
	if len(decoded.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(decoded.Results))
	}
	if decoded.Results[0].Tag != "a" || decoded.Results[0].Value != "1.25" || !decoded.Results[0].OK {
		t.Errorf("results[0] = %+v", decoded.Results[0])
	}
	if decoded.Results[1].OK {
		t.Errorf("results[1].ok = true, want false")
	}
}

func TestEncode_JSON(t *testing.T) {
	dir := t.TempDir()
	r, err := Compose([]string{writeResult(t, dir, "a.time", "real 3\n")})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf, FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string][]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding json: %v", err)
	}
	if decoded["results"][0]["tag"] != "a" {
		t.Errorf("json = %s", buf.String())
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	r := &Report{}
	err := r.Encode(&bytes.Buffer{}, "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("error = %v, want unsupported format", err)
	}
}
