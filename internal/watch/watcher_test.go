package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestWatcher(t *testing.T, extensions []string, handler Handler) *Watcher {
	t.Helper()
	w, err := New(extensions, 50*time.Millisecond, handler, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestWatcherHandlesWrite(t *testing.T) {
	var mu sync.Mutex
	var handled []string
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, path)
		mu.Unlock()
		return nil
	}

	dir := t.TempDir()
	w := newTestWatcher(t, []string{".go"}, handler)
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if w.GetStats().Handled >= 1 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	stats := w.GetStats()
	if stats.Handled < 1 {
		t.Fatalf("handler never ran; stats: %+v", stats)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(handled) == 0 || handled[0] != path {
		t.Fatalf("handled = %v, want %q", handled, path)
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	handler := func(ctx context.Context, path string) error {
		t.Errorf("handler ran for %s", path)
		return nil
	}

	dir := t.TempDir()
	w := newTestWatcher(t, []string{".go"}, handler)
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := w.GetStats().FilesCreated + w.GetStats().FilesModified; got != 0 {
		t.Fatalf("filtered file was recorded: %+v", w.GetStats())
	}
}

func TestWatcherStartStop(t *testing.T) {
	w := newTestWatcher(t, nil, func(ctx context.Context, path string) error { return nil })

	if w.IsWatching() {
		t.Fatal("watcher running before Start")
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !w.IsWatching() {
		t.Fatal("watcher not running after Start")
	}
	// Second Start is a no-op.
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	w.Stop()
	if w.IsWatching() {
		t.Fatal("watcher still running after Stop")
	}
	// Second Stop must not panic or block.
	w.Stop()
}

func TestWatcherWatchedDirs(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, nil, func(ctx context.Context, path string) error { return nil })
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}

	dirs := w.WatchedDirs()
	if len(dirs) != 1 || dirs[0] != dir {
		t.Fatalf("WatchedDirs() = %v, want [%s]", dirs, dir)
	}
}

func TestWatcherDeletedBeforeSettle(t *testing.T) {
	handler := func(ctx context.Context, path string) error {
		t.Errorf("handler ran for deleted file %s", path)
		return nil
	}

	dir := t.TempDir()
	w := newTestWatcher(t, []string{".go"}, handler)
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "gone.go")
	if err := os.WriteFile(path, []byte("package gone\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if w.GetStats().Handled != 0 {
		t.Fatalf("handler ran for a deleted file: %+v", w.GetStats())
	}
}
