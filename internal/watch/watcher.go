// Package watch runs the extraction pipeline continuously over a directory of
// report files.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Processor handles one settled report file.
type Processor interface {
	ProcessFile(ctx context.Context, path string) error
}

// Watcher monitors a directory for new or modified report files and hands
// them to the processor once writes have settled. Rapid saves of the same
// file collapse into a single processing run.
type Watcher struct {
	dir       string
	processor Processor
	logger    *slog.Logger
	debounce  time.Duration
	watcher   *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]time.Time
}

// New creates a Watcher over dir. Only *.out files are processed.
func New(dir string, processor Processor, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:       dir,
		processor: processor,
		logger:    logger,
		debounce:  debounce,
		watcher:   fw,
		pending:   make(map[string]time.Time),
	}, nil
}

// Run blocks, dispatching settled files until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watching directory", "dir", w.dir, "debounce", w.debounce)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopping", "reason", ctx.Err())
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)

		case <-ticker.C:
			w.processSettled(ctx)
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.EqualFold(filepath.Ext(event.Name), ".out") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	w.logger.Debug("report file changed", "file", event.Name, "op", event.Op)
	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// processSettled dispatches files whose last event is older than the debounce
// window.
func (w *Watcher) processSettled(ctx context.Context) {
	w.mu.Lock()
	var settled []string
	now := time.Now()
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		if err := w.processor.ProcessFile(ctx, path); err != nil {
			// Already logged with metrics by the pipeline; the watcher
			// keeps running so one bad file cannot stall the directory.
			continue
		}
	}
}
