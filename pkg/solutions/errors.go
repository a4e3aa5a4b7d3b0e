package solutions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ConfigErrorKind classifies a ConfigError.
type ConfigErrorKind int

const (
	// ConfigNotFound means the declared-solutions file is absent or not a regular file.
	ConfigNotFound ConfigErrorKind = iota
	// ConfigUnparsable means the file is not valid JSON.
	ConfigUnparsable
	// ConfigInvalidShape means the JSON is not an array of strings.
	ConfigInvalidShape
)

// ConfigError reports a missing or malformed declared-solutions file.
type ConfigError struct {
	Kind ConfigErrorKind
	File string
	Err  error
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case ConfigNotFound:
		return e.File + " not found"
	case ConfigUnparsable:
		return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
	default:
		return e.File + " must be an array of strings"
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ReconciliationKind says which side of the comparison is short.
type ReconciliationKind int

const (
	// MissingDirectories means declared solutions have no directory.
	MissingDirectories ReconciliationKind = iota
	// ExtraDirectories means directories exist that are not declared.
	ExtraDirectories
)

// ReconciliationError reports a mismatch between declared solutions and directories.
type ReconciliationError struct {
	Kind      ReconciliationKind
	Names     []string
	FileLabel string
	DirLabel  string
}

func (e *ReconciliationError) Error() string {
	if e.Kind == MissingDirectories {
		return fmt.Sprintf("solutions listed in %s but missing directories: %s", e.FileLabel, FormatNames(e.Names))
	}
	return fmt.Sprintf("directories present under %s but missing from %s: %s", e.DirLabel, e.FileLabel, FormatNames(e.Names))
}

// MissingWorkflowError reports a synced workflow file that does not exist.
type MissingWorkflowError struct {
	Path string
}

func (e *MissingWorkflowError) Error() string {
	return "missing workflow expected for sync: " + e.Path
}

// MarkerReason says what is wrong with a workflow's marker pair.
type MarkerReason int

const (
	// MarkersMissing means the start or end marker line was not found.
	MarkersMissing MarkerReason = iota
	// MarkersMalformed means the end marker does not follow the start marker.
	MarkersMalformed
)

// MarkerError reports absent or out-of-order generated-options markers.
// StartLine and EndLine are zero-based, or -1 when the marker was not found.
type MarkerError struct {
	Path      string
	Reason    MarkerReason
	StartLine int
	EndLine   int
}

func (e *MarkerError) Error() string {
	if e.Reason == MarkersMissing {
		return "markers missing in " + e.Path
	}
	return "markers malformed in " + e.Path
}

// OptionMismatchError reports a generated options block that differs from
// the declared solutions. Got and Expected are sorted and distinct.
type OptionMismatchError struct {
	Path     string
	Got      []string
	Expected []string
}

func (e *OptionMismatchError) Error() string {
	return fmt.Sprintf("%s options mismatch got=%s expected=%s", e.Path, FormatNames(e.Got), FormatNames(e.Expected))
}

// WorkflowErrors carries every workflow-check failure of one run, in check order.
type WorkflowErrors struct {
	Errs []error
}

func (e *WorkflowErrors) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e *WorkflowErrors) Unwrap() []error {
	return e.Errs
}

// FormatNames renders names as a compact JSON array, e.g. ["a","b"].
func FormatNames(names []string) string {
	if names == nil {
		names = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(names); err != nil {
		return fmt.Sprint(names)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// LeafErrors flattens err into the individual problems it carries, so each
// can be reported on its own line.
func LeafErrors(err error) []error {
	if err == nil {
		return nil
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var leaves []error
		for _, inner := range multi.Unwrap() {
			leaves = append(leaves, LeafErrors(inner)...)
		}
		return leaves
	}
	return []error{err}
}
