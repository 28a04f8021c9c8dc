package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, body string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	base := time.Unix(1_700_000_000, 0)
	writeFile(t, path, "a", base)

	w := New(path)
	if w.check() {
		t.Fatal("unchanged file reported as changed")
	}

	writeFile(t, path, "b", base.Add(time.Second))
	if !w.check() {
		t.Fatal("new mtime not detected")
	}
	if w.check() {
		t.Fatal("change reported twice")
	}

	writeFile(t, path, "longer", base.Add(time.Second))
	if !w.check() {
		t.Fatal("size change not detected")
	}

	writeFile(t, path, "c", base.Add(2*time.Second))
	w.Sync()
	if w.check() {
		t.Error("synced write reported as changed")
	}
}

func TestCheckMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	w := New(path)
	if w.check() {
		t.Fatal("missing file reported as changed")
	}
	writeFile(t, path, "x", time.Unix(1_700_000_000, 0))
	if !w.check() {
		t.Error("created file not detected")
	}
}

func TestNotifyCoalesces(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "x"))
	w.notify()
	w.notify()
	if got := len(w.changes); got != 1 {
		t.Errorf("pending changes = %d, want 1", got)
	}
}

func TestRunDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	base := time.Unix(1_700_000_000, 0)
	writeFile(t, path, "a", base)

	w := New(path)
	w.interval = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	writeFile(t, path, "bb", base.Add(time.Minute))
	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}
