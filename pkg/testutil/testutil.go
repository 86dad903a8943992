// Package testutil provides shared helpers for the framework's tests.
package testutil

import (
	"os"
	"testing"
)

// TempDir creates a temporary directory with a recognizable name pattern
// (e.g. "state-*") and removes it when the test finishes. The pattern makes
// leftover directories attributable when cleanup is skipped by a crash.
func TempDir(t *testing.T, pattern string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
