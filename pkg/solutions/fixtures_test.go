//go:build !integration

package solutions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solutionops/solutions-check/pkg/constants"
	"github.com/stretchr/testify/require"
)

// repoFixture is a throwaway repository layout for validation tests.
type repoFixture struct {
	t    *testing.T
	root string
}

func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()
	return &repoFixture{t: t, root: t.TempDir()}
}

func (f *repoFixture) writeFile(rel, content string) string {
	f.t.Helper()
	path := filepath.Join(f.root, rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o755), "Should create parent dir for %s", rel)
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0o644), "Should write %s", rel)
	return path
}

func (f *repoFixture) solutionsJSON(content string) {
	f.t.Helper()
	f.writeFile(constants.SolutionsFileName, content)
}

func (f *repoFixture) solutionDirs(names ...string) {
	f.t.Helper()
	for _, name := range names {
		require.NoError(f.t, os.MkdirAll(filepath.Join(f.root, constants.SolutionsDirName, name), 0o755), "Should create solution dir %s", name)
	}
}

func (f *repoFixture) workflow(rel string, options ...string) {
	f.t.Helper()
	f.writeFile(rel, workflowYAML(options...))
}

// syncedRepo builds a repository where every input agrees on names.
func (f *repoFixture) syncedRepo(names ...string) {
	f.t.Helper()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}
	f.solutionsJSON("[" + strings.Join(quoted, ", ") + "]")
	f.solutionDirs(names...)
	options := append(append([]string{}, names...), constants.NoneOption)
	for _, wf := range constants.SyncedWorkflows {
		f.workflow(wf, options...)
	}
}

// workflowYAML renders a dispatch workflow with a generated options block.
func workflowYAML(options ...string) string {
	var sb strings.Builder
	sb.WriteString(`name: Export solution
on:
  workflow_dispatch:
    inputs:
      solution:
        description: Solution to export
        type: choice
        options:
          # GENERATED-OPTIONS-START
`)
	for _, opt := range options {
		sb.WriteString("          - " + opt + "\n")
	}
	sb.WriteString(`          # GENERATED-OPTIONS-END
jobs:
  export:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
`)
	return sb.String()
}
