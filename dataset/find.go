// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvPath names the environment variable that overrides data discovery.
const EnvPath = "ISOMAP_DATA_PATH"

// FileName is the data file Find looks for.
const FileName = "isomap.dat"

// ErrNotFound is returned by Find when no candidate is a regular file.
var ErrNotFound = errors.New("dataset: data file not found")

// Candidates lists where Find looks, in order: $ISOMAP_DATA_PATH (when
// set), then FileName in base, its parent and its grandparent.
func Candidates(base string) []string {
	var out []string
	if env := os.Getenv(EnvPath); env != "" {
		out = append(out, env)
	}
	dir := base
	for i := 0; i < 3; i++ {
		out = append(out, filepath.Join(dir, FileName))
		dir = filepath.Dir(dir)
	}

	return out
}

// Find returns the first candidate that is an existing regular file.
func Find(base string) (string, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("dataset: %w", err)
	}
	tried := Candidates(abs)
	for _, p := range tried {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w; tried %s (set %s)", ErrNotFound, strings.Join(tried, ", "), EnvPath)
}
