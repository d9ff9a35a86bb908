// Package watch re-runs agent document validation when documents change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mcpchecker/agentcheck/pkg/agentdoc"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher reports changes to the agent documents of a single directory.
// Bursts of events are collapsed into one notification per debounce window.
type Watcher struct {
	dir      string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
}

// New starts watching dir. The caller must Close the returned Watcher.
func New(dir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch '%s': %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
	}, nil
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run calls onChange after agent documents change, until ctx is done or the
// watcher is closed. onChange runs on the caller's goroutine, never
// concurrently with itself.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]fsnotify.Op)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.logger.Info("Agent document watcher started",
		"dir", w.dir,
		"debounce", w.debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(event) {
				continue
			}
			pending[filepath.Base(event.Name)] |= event.Op
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			for name, op := range pending {
				w.logger.Debug("Agent document changed", "name", name, "op", op.String())
			}
			w.logger.Info("Re-checking agent documents", "changed", len(pending))
			clear(pending)
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", "error", err)
		}
	}
}

func isRelevant(event fsnotify.Event) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	return agentdoc.IsAgentDocumentName(filepath.Base(event.Name))
}
