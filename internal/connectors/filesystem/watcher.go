// Package filesystem watches a local directory of resume JSON files
// and keeps the corpus in sync with it.
package filesystem

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/hiresift/hiresift/internal/core/ports/driving"
	"github.com/hiresift/hiresift/internal/logger"
)

// action is the corpus operation derived from one filesystem event.
type action int

const (
	actionNone action = iota
	actionUpsert
	actionDelete
)

// classify maps a filesystem event to a corpus action.
// Create and Write re-import the file; Remove and Rename drop its
// resumes; Chmod carries no content change.
func classify(op fsnotify.Op) action {
	switch {
	case op.Has(fsnotify.Create) || op.Has(fsnotify.Write):
		return actionUpsert
	case op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename):
		return actionDelete
	default:
		return actionNone
	}
}

// Watcher follows a directory and applies JSON file changes to the
// corpus as they happen.
type Watcher struct {
	dir    string
	corpus driving.CorpusService
}

// NewWatcher creates a watcher for dir feeding the given corpus.
func NewWatcher(dir string, corpus driving.CorpusService) *Watcher {
	return &Watcher{dir: dir, corpus: corpus}
}

// Run blocks, applying events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	logger.Info("Watching %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// handle applies one event. Failures are logged and skipped so a bad
// file never stops the watch loop.
func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return
	}

	switch classify(event.Op) {
	case actionUpsert:
		logger.Debug("Re-importing %s (%s)", event.Name, event.Op)
		if err := w.corpus.RemoveByURI(ctx, event.Name); err != nil {
			logger.Warn("Removing stale resumes for %s: %v", event.Name, err)
		}
		if _, err := w.corpus.ImportFile(ctx, event.Name); err != nil {
			logger.Warn("Skipping %s: %v", event.Name, err)
		}

	case actionDelete:
		logger.Debug("Dropping resumes for %s (%s)", event.Name, event.Op)
		if err := w.corpus.RemoveByURI(ctx, event.Name); err != nil {
			logger.Warn("Removing resumes for %s: %v", event.Name, err)
		}
	}
}
