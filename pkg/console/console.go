// Package console provides formatting helpers for user-facing terminal
// output. All output helpers return strings so callers control the
// destination; by convention framework messages go to stderr, keeping stdout
// free for task output.
//
// Message formatting follows one visual scheme across the CLI:
//   - Info messages in blue
//   - Success messages in green with a leading check mark
//   - Warnings in yellow
//   - Errors in red, optionally followed by actionable suggestions
//
// Colors degrade automatically when stderr is not a terminal.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/taskpipe/taskpipe/pkg/sliceutil"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// IsTTY reports whether both stdin and stderr are attached to a terminal.
// Interactive prompts require a TTY and must fail cleanly without one.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// IsAccessibleMode reports whether accessible prompt rendering was requested
// via the ACCESSIBLE environment variable.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render(msg)
}

// FormatSuccessMessage formats a success message.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatErrorMessage formats an error message.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatErrorWithSuggestions formats an error message followed by an
// indented list of suggested next steps. Empty suggestions are dropped.
func FormatErrorWithSuggestions(msg string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(FormatErrorMessage(msg))
	for _, suggestion := range sliceutil.Filter(suggestions, func(s string) bool { return s != "" }) {
		sb.WriteString("\n  • ")
		sb.WriteString(suggestion)
	}
	return sb.String()
}

// LogVerbose prints an info message to stderr when verbose mode is enabled.
func LogVerbose(verbose bool, msg string) {
	if verbose {
		fmt.Fprintln(os.Stderr, FormatInfoMessage(msg))
	}
}
