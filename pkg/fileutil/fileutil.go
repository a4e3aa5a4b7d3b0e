// Package fileutil provides small file-system helpers used by the checks.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/solutionops/solutions-check/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// lineEndings normalizes CRLF and bare CR to LF.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FileExists checks if path is a regular file. Symlinks are followed.
// Directories, FIFOs, sockets and devices do not count.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists checks if a directory exists. Symlinks are followed.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadLines reads a whole file and splits it into lines.
// LF, CRLF and bare CR endings are accepted, and a final newline does not
// produce a trailing empty line.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read %s: %v", path, err)
		return nil, err
	}
	return SplitLines(string(content)), nil
}

// SplitLines splits text into lines, dropping line terminators.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = lineEndings.Replace(text)
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Resolve joins path onto root unless path is already absolute.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
