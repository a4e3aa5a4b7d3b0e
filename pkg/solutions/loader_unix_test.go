//go:build !integration && unix

package solutions

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeclaredSolutions_FifoIsNotAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.json")
	require.NoError(t, syscall.Mkfifo(path, 0o644), "Should create FIFO")

	done := make(chan error, 1)
	go func() {
		_, err := LoadDeclaredSolutions(path)
		done <- err
	}()

	select {
	case err := <-done:
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "Error should be a *ConfigError, got %T", err)
		assert.Equal(t, ConfigNotFound, cfgErr.Kind)
		assert.Equal(t, "solutions.json not found", err.Error(), "A FIFO should count as missing")
	case <-time.After(2 * time.Second):
		t.Fatal("LoadDeclaredSolutions blocked on a FIFO instead of reporting it as missing")
	}
}

func TestCheckWorkflow_FifoIsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wf.yml")
	require.NoError(t, syscall.Mkfifo(path, 0o644), "Should create FIFO")

	done := make(chan error, 1)
	go func() {
		_, err := DefaultBlockSpec().CheckWorkflow("wf.yml", path, []string{"a"})
		done <- err
	}()

	select {
	case err := <-done:
		var missing *MissingWorkflowError
		require.True(t, errors.As(err, &missing), "Error should be a *MissingWorkflowError, got %T", err)
		assert.Equal(t, "missing workflow expected for sync: wf.yml", err.Error())
	case <-time.After(2 * time.Second):
		t.Fatal("CheckWorkflow blocked on a FIFO instead of reporting it as missing")
	}
}
