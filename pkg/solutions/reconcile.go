package solutions

import (
	"github.com/solutionops/solutions-check/pkg/logger"
	"github.com/solutionops/solutions-check/pkg/sliceutil"
)

var reconcileLog = logger.New("solutions:reconcile")

// Reconcile compares declared solutions with the scanned directories.
//
// Declared names without a directory are reported first, in declared order.
// Only when none are missing are undeclared directories reported. The two
// are never reported together.
func Reconcile(declared, dirs []string, fileLabel, dirLabel string) error {
	missing := sliceutil.Difference(declared, dirs)
	extra := sliceutil.Difference(dirs, declared)
	reconcileLog.Printf("Reconciled: missing=%v, extra=%v", missing, extra)

	if len(missing) > 0 {
		return &ReconciliationError{Kind: MissingDirectories, Names: missing, FileLabel: fileLabel, DirLabel: dirLabel}
	}
	if len(extra) > 0 {
		return &ReconciliationError{Kind: ExtraDirectories, Names: extra, FileLabel: fileLabel, DirLabel: dirLabel}
	}
	return nil
}
