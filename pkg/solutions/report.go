package solutions

import (
	"fmt"
	"strings"
)

// Report is the outcome of one validation pass.
type Report struct {
	Declared    []string          `json:"declared"`
	Directories []string          `json:"directories"`
	Workflows   []*WorkflowResult `json:"workflows"`
	Errors      []string          `json:"errors"`
	Passed      bool              `json:"passed"`
}

func newReport() *Report {
	return &Report{
		Declared:    []string{},
		Directories: []string{},
		Workflows:   []*WorkflowResult{},
		Errors:      []string{},
	}
}

func (r *Report) finish(err error) {
	for _, leaf := range LeafErrors(err) {
		r.Errors = append(r.Errors, leaf.Error())
	}
	r.Passed = err == nil
}

// Summary renders the report as plain text, one section per input.
func (r *Report) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Declared solutions (%d):\n", len(r.Declared))
	writeItems(&sb, r.Declared)

	fmt.Fprintf(&sb, "Solution directories (%d):\n", len(r.Directories))
	writeItems(&sb, r.Directories)

	fmt.Fprintf(&sb, "Workflows (%d):\n", len(r.Workflows))
	for _, wf := range r.Workflows {
		status := "ok"
		if wf.Error != "" {
			status = "FAILED"
		}
		fmt.Fprintf(&sb, "  %s [%s] options=%s\n", wf.Path, status, FormatNames(wf.Options))
	}

	if r.Passed {
		sb.WriteString("Result: passed\n")
	} else {
		fmt.Fprintf(&sb, "Result: failed with %d error(s)\n", len(r.Errors))
	}
	return sb.String()
}

func writeItems(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		sb.WriteString("  - " + item + "\n")
	}
}
