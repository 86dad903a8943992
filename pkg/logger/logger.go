// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable.
//
// Loggers are silent by default. Setting DEBUG to a comma-separated list of
// namespace patterns enables matching loggers:
//
//	DEBUG=task:run ./myapp          // only the task:run namespace
//	DEBUG=task:*,cli:tree ./myapp   // all task loggers plus cli:tree
//	DEBUG=* ./myapp                 // everything
//
// Output goes to stderr with the namespace as a prefix, so debug output never
// mixes with a command's stdout.
package logger

import (
	"fmt"
	"os"
	"strings"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
}

func debugPatterns() []string {
	raw := os.Getenv("DEBUG")
	if raw == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func matches(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return false
}

// New returns a logger for the given namespace, conventionally
// "package:topic" (for example "task:run" or "cli:tree").
func New(namespace string) *Logger {
	l := &Logger{namespace: namespace}
	for _, p := range debugPatterns() {
		if matches(namespace, p) {
			l.enabled = true
			break
		}
	}
	return l
}

// Enabled reports whether this logger's namespace is selected by DEBUG.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Print writes a debug message if the namespace is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", l.namespace, fmt.Sprint(args...))
}

// Printf writes a formatted debug message if the namespace is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", l.namespace, fmt.Sprintf(format, args...))
}
