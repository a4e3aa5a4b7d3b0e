// Package constants holds the fixed file locations, markers and names the
// validator checks by default.
package constants

import (
	"path"
	"regexp"
)

// CommandPrefix is the command users type to invoke the CLI.
type CommandPrefix string

// CLIName is the binary name used in help text and examples.
const CLIName CommandPrefix = "solutions-check"

// Marker is the sentinel word of a generated-options marker comment.
type Marker string

// String returns the marker word.
func (m Marker) String() string {
	return string(m)
}

// Pattern returns the unanchored regular expression matching a comment line
// carrying the marker, e.g. "  # GENERATED-OPTIONS-START".
func (m Marker) Pattern() string {
	return `#\s*` + regexp.QuoteMeta(string(m))
}

const (
	// GeneratedOptionsStart opens the generated dropdown block in a workflow.
	GeneratedOptionsStart Marker = "GENERATED-OPTIONS-START"
	// GeneratedOptionsEnd closes the generated dropdown block in a workflow.
	GeneratedOptionsEnd Marker = "GENERATED-OPTIONS-END"
)

const (
	// SolutionsFileName is the declared-solutions JSON file at the repository root.
	SolutionsFileName = "solutions.json"

	// SolutionsDirName is the directory holding one folder per solution.
	SolutionsDirName = "solutions"

	// NoneOption is the dropdown placeholder excluded from comparisons.
	NoneOption = "<none>"

	// OptionItemPrefix introduces a list item inside a generated block.
	OptionItemPrefix = "- "

	// HiddenEntryPrefix marks directory entries the scanner skips.
	HiddenEntryPrefix = "."

	// DefaultConfigFile is the optional YAML config, relative to the repository root.
	DefaultConfigFile = ".github/solutions-check.yml"
)

// GetWorkflowDir returns the workflow directory relative to the repository
// root, slash-separated.
func GetWorkflowDir() string {
	return path.Join(".github", "workflows")
}

// SyncedWorkflows lists, in check order, the workflows whose generated
// option blocks must mirror solutions.json.
var SyncedWorkflows = []string{
	path.Join(GetWorkflowDir(), "export-solution-from-dev.yml"),
	path.Join(GetWorkflowDir(), "release-action-call.yml"),
	path.Join(GetWorkflowDir(), "release-solution-manual.yml"),
	path.Join(GetWorkflowDir(), "delete-solution.yml"),
}
