//go:build !integration

package tty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err, "Should create temp file")
	defer f.Close()

	assert.False(t, IsTerminal(f), "A regular file should not be reported as a terminal")
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil), "A nil file should not be reported as a terminal")
}
