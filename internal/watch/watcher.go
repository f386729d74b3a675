// Package watch re-highlights source files as they change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler is called for each settled file change.
type Handler func(ctx context.Context, path string) error

// Watcher watches directories for source file changes and invokes a
// handler after changes settle past the debounce window, so rapid
// editor saves trigger one re-highlight instead of many.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	handler     Handler
	extensions  map[string]bool
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	log         *zap.SugaredLogger

	stats Stats
}

// Stats tracks watcher activity for debugging.
type Stats struct {
	FilesCreated  int
	FilesModified int
	FilesDeleted  int
	Handled       int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
	LastEventType string
}

// New creates a Watcher. Extensions filter which files trigger the
// handler; an empty list accepts everything.
func New(extensions []string, debounce time.Duration, handler Handler, log *zap.SugaredLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = true
	}

	return &Watcher{
		watcher:     fsw,
		handler:     handler,
		extensions:  extSet,
		debounceMap: make(map[string]time.Time),
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		log:         log,
	}, nil
}

// Add registers a directory to watch.
func (w *Watcher) Add(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.log.Infow("watching directory", "dir", dir)
	return nil
}

// Start begins watching. Non-blocking; the event loop runs in a
// goroutine until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.log.Errorw("closing watcher", "error", err)
	}
	w.log.Info("watcher stopped")
}

// run is the main event loop.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("watcher context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorw("watch error", "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processSettled(ctx)
		}
	}
}

// handleEvent records a filesystem event for debounced processing.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.wants(event.Name) {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // Ignore chmod, etc.
	}

	w.log.Debugw("file event", "type", eventType, "path", event.Name)

	w.mu.Lock()
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.stats.LastEventType = eventType

	switch eventType {
	case "create":
		w.stats.FilesCreated++
	case "modify":
		w.stats.FilesModified++
	case "delete", "rename":
		w.stats.FilesDeleted++
		// Nothing to re-highlight for a removed file.
		delete(w.debounceMap, event.Name)
		w.mu.Unlock()
		return
	}

	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

// wants reports whether a path's extension is in the filter.
func (w *Watcher) wants(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

// processSettled invokes the handler for files whose last event is
// older than the debounce window.
func (w *Watcher) processSettled(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	toProcess := make([]string, 0)

	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			toProcess = append(toProcess, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	for _, path := range toProcess {
		if _, err := os.Stat(path); err != nil {
			continue // Deleted while debouncing.
		}
		if err := w.handler(ctx, path); err != nil {
			w.log.Errorw("handler failed", "path", path, "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			continue
		}
		w.mu.Lock()
		w.stats.Handled++
		w.mu.Unlock()
	}
}

// GetStats returns the current watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching reports whether the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// WatchedDirs returns the directories being watched.
func (w *Watcher) WatchedDirs() []string {
	return w.watcher.WatchList()
}
