// Package watch re-runs an analysis every time a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"textlens/internal/domain"
	"textlens/internal/ingest"
	"textlens/internal/logging"
)

// AnalyzeFunc analyzes the text of the watched file.
type AnalyzeFunc func(ctx context.Context, source, text string) (*domain.Analysis, error)

// ResultFunc receives the outcome of every re-analysis.
type ResultFunc func(*domain.Analysis, error)

// Watcher watches a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	analyze  AnalyzeFunc
	onResult ResultFunc
	logger   *slog.Logger
}

// New creates a watcher for path. A zero debounce uses 200ms.
func New(path string, debounce time.Duration, analyze AnalyzeFunc, onResult ResultFunc, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Watcher{path: path, debounce: debounce, analyze: analyze, onResult: onResult, logger: logger}
}

// Run analyzes the file once and then again after every write, until ctx is
// cancelled. The parent directory is watched so editors that replace the
// file on save are followed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w.runOnce(ctx)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev, abs) {
				continue
			}
			w.logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		case <-timer.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event, abs string) bool {
	if filepath.Clean(ev.Name) != abs {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) runOnce(ctx context.Context) {
	doc, err := ingest.ReadFile(w.path)
	if err != nil {
		w.onResult(nil, err)
		return
	}
	w.onResult(w.analyze(ctx, doc.Path, doc.Content))
}
