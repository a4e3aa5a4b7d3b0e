// Package console formats user-facing messages.
//
// Messages are plain text when the destination stream is not a terminal, so
// piped output and CI logs stay grep-friendly. Styling comes from pkg/styles.
package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/solutionops/solutions-check/pkg/styles"
	"github.com/solutionops/solutions-check/pkg/tty"
)

const (
	errorPrefix   = "ERROR:"
	warningPrefix = "WARNING:"
)

var (
	noColor     = os.Getenv("NO_COLOR") != ""
	stdoutIsTTY = !noColor && tty.IsStdoutTerminal()
	stderrIsTTY = !noColor && tty.IsStderrTerminal()
)

// SetPlain turns styling off for both streams.
func SetPlain() {
	stdoutIsTTY = false
	stderrIsTTY = false
}

func applyStyle(style lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return style.Render(text)
}

// FormatErrorMessage formats an error line for stderr as "ERROR: <message>".
// Only the prefix is styled.
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, errorPrefix, stderrIsTTY) + " " + message
}

// FormatWarningMessage formats a warning line for stderr as "WARNING: <message>".
func FormatWarningMessage(message string) string {
	return applyStyle(styles.Warning, warningPrefix, stderrIsTTY) + " " + message
}

// FormatSuccessMessage formats a success line for stdout.
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, message, stdoutIsTTY)
}

// FormatInfoMessage formats an informational line for stdout.
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, message, stdoutIsTTY)
}

// FormatVerboseMessage formats a verbose detail line for stderr.
func FormatVerboseMessage(message string) string {
	return applyStyle(styles.Verbose, message, stderrIsTTY)
}
