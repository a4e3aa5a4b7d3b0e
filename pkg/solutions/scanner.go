package solutions

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/solutionops/solutions-check/pkg/constants"
	"github.com/solutionops/solutions-check/pkg/fileutil"
	"github.com/solutionops/solutions-check/pkg/logger"
)

var scannerLog = logger.New("solutions:scanner")

// ScanSolutionDirectories returns the sorted names of the non-hidden
// subdirectories of dir. Symlinks to directories count as directories.
// A missing dir yields an empty result rather than an error.
func ScanSolutionDirectories(dir string) ([]string, error) {
	names := []string{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || !fileutil.DirExists(dir) {
			scannerLog.Printf("Solutions directory not present: %s", dir)
			return names, nil
		}
		return nil, err
	}

	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, constants.HiddenEntryPrefix) {
			continue
		}
		if !fileutil.DirExists(filepath.Join(dir, name)) {
			continue
		}
		names = append(names, name)
	}

	scannerLog.Printf("Found %d solution directories in %s", len(names), dir)
	return names, nil
}
