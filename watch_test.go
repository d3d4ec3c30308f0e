package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestWatchDirs(t *testing.T) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer watcher.Close()

	dir := t.TempDir()
	sub := filepath.Join(dir, "defs")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]bool{
		filepath.Join(dir, "djbabel.toml"): true,
		filepath.Join(sub, "session.txt"):  true,
		filepath.Join(sub, "user.txt"):     true,
	}

	if err := watchDirs(watcher, files); err != nil {
		t.Fatalf("watchDirs() error: %v", err)
	}
	watched := map[string]bool{}
	for _, d := range watcher.WatchList() {
		watched[d] = true
	}
	if !watched[dir] || !watched[sub] {
		t.Errorf("WatchList() = %v, want %q and %q", watcher.WatchList(), dir, sub)
	}

	// Re-adding the same directories is a no-op.
	if err := watchDirs(watcher, files); err != nil {
		t.Fatalf("watchDirs() second call error: %v", err)
	}

	missing := map[string]bool{filepath.Join(dir, "missing", "x.txt"): true}
	if err := watchDirs(watcher, missing); err == nil {
		t.Error("watchDirs() with missing parent dir expected error")
	}
}
