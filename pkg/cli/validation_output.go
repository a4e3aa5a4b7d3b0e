package cli

import (
	"fmt"
	"io"

	"github.com/solutionops/solutions-check/pkg/console"
	"github.com/solutionops/solutions-check/pkg/solutions"
)

// FormatValidationError formats a validation error for console output.
//
// Aggregated errors are split so every problem gets its own "ERROR:" line.
// The validation layer keeps its messages plain; styling is applied here.
func FormatValidationError(err error) []string {
	leaves := solutions.LeafErrors(err)
	lines := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		lines = append(lines, console.FormatErrorMessage(leaf.Error()))
	}
	return lines
}

// PrintValidationError writes every problem carried by err to w, one per line.
func PrintValidationError(w io.Writer, err error) {
	for _, line := range FormatValidationError(err) {
		fmt.Fprintln(w, line)
	}
}
