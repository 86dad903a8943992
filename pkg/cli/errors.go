package cli

import (
	"fmt"
	"strings"
)

// ConfigError reports a malformed command tree or command spec. These are
// programming errors in the host application: they surface at parser build
// time, before any user input is parsed, and are always fatal.
type ConfigError struct {
	// Path is the command path from the root to the offending entry.
	Path []string

	// Reason describes what is wrong with the entry.
	Reason string
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("invalid command configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid command configuration at %q: %s", strings.Join(e.Path, " "), e.Reason)
}

func configErrorf(path []string, format string, args ...any) *ConfigError {
	return &ConfigError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
