package cli

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/solutionops/solutions-check/pkg/fileutil"
	"github.com/solutionops/solutions-check/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchDebounce coalesces bursts of events, e.g. an editor's write-then-rename.
var watchDebounce = 300 * time.Millisecond

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// watchInputs calls onChange once per burst of changes under paths until ctx
// is done. Paths that do not exist yet are skipped; they are retried after
// every change so that a newly created directory starts being watched.
// ready, when non-nil, is closed once the initial watches are in place.
func watchInputs(ctx context.Context, paths []string, debounce time.Duration, ready chan<- struct{}, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	addWatches(watcher, paths)
	if ready != nil {
		close(ready)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			watchLog.Print("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(relevantOps) {
				continue
			}
			watchLog.Printf("Event: %s", event)
			pending = time.After(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Printf("Watcher error: %v", err)

		case <-pending:
			pending = nil
			addWatches(watcher, paths)
			onChange()
		}
	}
}

func addWatches(watcher *fsnotify.Watcher, paths []string) {
	for _, p := range paths {
		if !fileutil.DirExists(p) {
			watchLog.Printf("Not watching %s: directory does not exist", p)
			continue
		}
		if err := watcher.Add(p); err != nil {
			watchLog.Printf("Failed to watch %s: %v", p, err)
		}
	}
}
