// Package watch reports changes to a single file, such as the dock's
// configuration.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phanxgames/dock"
)

// PollInterval is how often the file's modification time is checked in
// addition to filesystem notifications.
const PollInterval = 500 * time.Millisecond

// Watcher reports when a file's modification time or size changes.
// Notifications are coalesced: a receiver that falls behind sees one pending
// change, not one per write.
type Watcher struct {
	path     string
	interval time.Duration
	changes  chan struct{}

	mu    sync.Mutex
	mtime time.Time
	size  int64
}

// New creates a watcher for path. The file's current state counts as seen.
func New(path string) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		interval: PollInterval,
		changes:  make(chan struct{}, 1),
	}
	w.Sync()
	return w
}

// Changes delivers a value after each detected change.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Sync records the file's current state as seen, so a write made by the
// caller itself is not reported.
func (w *Watcher) Sync() {
	fi, err := os.Stat(w.path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.mtime, w.size = time.Time{}, -1
		return
	}
	w.mtime, w.size = fi.ModTime(), fi.Size()
}

// check compares the file with the last seen state and reports a change.
func (w *Watcher) check() bool {
	fi, err := os.Stat(w.path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		// Editors may remove and recreate the file; wait for it to reappear.
		return false
	}
	if fi.ModTime().Equal(w.mtime) && fi.Size() == w.size {
		return false
	}
	w.mtime, w.size = fi.ModTime(), fi.Size()
	return true
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// Run watches until ctx is cancelled. The file's directory is watched with
// fsnotify so that replace-on-save editors are seen; polling covers
// filesystems without notifications.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		dock.Logger().Warn("fsnotify unavailable, polling only", "err", err)
		return w.poll(ctx, nil)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	return w.poll(ctx, fw)
}

func (w *Watcher) poll(ctx context.Context, fw *fsnotify.Watcher) error {
	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if fw != nil {
		events, errs = fw.Events, fw.Errors
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && w.check() {
				dock.Logger().Debug("file changed", "path", w.path, "op", ev.Op.String())
				w.notify()
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			dock.Logger().Warn("watch error", "path", w.path, "err", err)
		case <-ticker.C:
			if w.check() {
				dock.Logger().Debug("file changed", "path", w.path, "op", "poll")
				w.notify()
			}
		}
	}
}
