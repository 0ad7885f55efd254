package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the suffix that marks a result file.
const Ext = ".time"

// Locate lists the result files in dir. Only regular entries whose name
// ends in Ext are returned, as absolute paths with symlinks resolved.
// The order of the returned paths is unspecified.
func Locate(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}

		path, err := realPath(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("result file not found: %s", path)
		}
		if info.IsDir() {
			continue
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return resolved, nil
}
