//go:build !integration

package solutions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/solutionops/solutions-check/pkg/config"
	"github.com/solutionops/solutions-check/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidator(t *testing.T, root string, opts ...Option) (*Report, []string, error) {
	t.Helper()
	var info []string
	opts = append([]Option{WithInfo(func(msg string) { info = append(info, msg) })}, opts...)
	report, err := NewValidator(config.Default(root), opts...).Run(context.Background())
	require.NotNil(t, report, "Run should always return a report")
	return report, info, err
}

func TestValidator_AllInSync(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a", "b")

	report, info, err := runValidator(t, repo.root)
	require.NoError(t, err, "Synced repository should pass")

	assert.True(t, report.Passed)
	assert.Equal(t, []string{"a", "b"}, report.Declared)
	assert.Equal(t, []string{"a", "b"}, report.Directories)
	assert.Len(t, report.Workflows, len(constants.SyncedWorkflows), "Every workflow should be checked")
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{
		`solutions.json entries: ["a","b"]`,
		`solution directories: ["a","b"]`,
	}, info, "Declared list and directories should be reported")
}

func TestValidator_ConfigErrorStopsPass(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a")
	repo.solutionsJSON(`{"not": "an array"}`)

	report, info, err := runValidator(t, repo.root)
	require.Error(t, err)

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr), "Error should be a *ConfigError, got %T", err)
	assert.False(t, report.Passed)
	assert.Empty(t, report.Directories, "No directory scan should happen after a config error")
	assert.Empty(t, report.Workflows, "No workflow check should happen after a config error")
	assert.Empty(t, info, "Nothing should be printed before the config error")
	assert.Equal(t, []string{"solutions.json must be an array of strings"}, report.Errors)
}

func TestValidator_MissingDirectory(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a", "b")
	require.NoError(t, os.Remove(filepath.Join(repo.root, "solutions", "b")))
	repo.solutionDirs("extra")

	report, _, err := runValidator(t, repo.root)
	require.Error(t, err)
	assert.Equal(t, `solutions listed in solutions.json but missing directories: ["b"]`, err.Error(), "Missing should be reported, not extra")
	assert.Empty(t, report.Workflows, "Workflow checks should not run after a reconciliation error")
}

func TestValidator_ExtraDirectory(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a")
	repo.solutionDirs("b", "c")

	_, _, err := runValidator(t, repo.root)
	require.Error(t, err)
	assert.Equal(t, `directories present under solutions/ but missing from solutions.json: ["b","c"]`, err.Error())
}

func TestValidator_NoSolutionsDirectory(t *testing.T) {
	repo := newRepoFixture(t)
	repo.solutionsJSON(`[]`)
	for _, wf := range constants.SyncedWorkflows {
		repo.workflow(wf, "<none>")
	}

	report, _, err := runValidator(t, repo.root)
	require.NoError(t, err, "Empty declaration with no solutions dir should pass")
	assert.True(t, report.Passed)
}

func TestValidator_WorkflowErrorsAreBatched(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a", "b")

	mismatched := constants.SyncedWorkflows[1]
	repo.workflow(mismatched, "a", "<none>")
	missing := constants.SyncedWorkflows[3]
	require.NoError(t, os.Remove(filepath.Join(repo.root, missing)))

	report, _, err := runValidator(t, repo.root)
	require.Error(t, err)

	var wfErrs *WorkflowErrors
	require.True(t, errors.As(err, &wfErrs), "Error should be *WorkflowErrors, got %T", err)
	require.Len(t, wfErrs.Errs, 2, "Both failing workflows should be reported")

	var mismatch *OptionMismatchError
	require.True(t, errors.As(err, &mismatch), "Mismatch should be reachable with errors.As")
	assert.Equal(t, mismatched, mismatch.Path)

	var missingErr *MissingWorkflowError
	require.True(t, errors.As(err, &missingErr), "Missing workflow should be reachable with errors.As")
	assert.Equal(t, missing, missingErr.Path)

	assert.Equal(t, []string{
		mismatched + ` options mismatch got=["a"] expected=["a","b"]`,
		"missing workflow expected for sync: " + missing,
	}, report.Errors, "Errors should be listed in workflow order")

	require.Len(t, report.Workflows, 4, "All four workflows should be checked")
	assert.Empty(t, report.Workflows[0].Error)
	assert.NotEmpty(t, report.Workflows[1].Error)
	assert.Empty(t, report.Workflows[2].Error)
	assert.NotEmpty(t, report.Workflows[3].Error)
}

func TestValidator_FailFast(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a")
	repo.writeFile(constants.SyncedWorkflows[0], "no markers here\n")
	repo.workflow(constants.SyncedWorkflows[2], "<none>")

	report, _, err := runValidator(t, repo.root, WithFailFast(true))
	require.Error(t, err)
	assert.Len(t, report.Workflows, 1, "Fail-fast should stop after the first failing workflow")
	assert.Equal(t, []string{"markers missing in " + constants.SyncedWorkflows[0]}, report.Errors)
}

func TestValidator_CancelledContext(t *testing.T) {
	repo := newRepoFixture(t)
	repo.syncedRepo("a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewValidator(config.Default(repo.root)).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Declared, "No check should run with a cancelled context")
	assert.False(t, report.Passed)
}
