package cli

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/dock"
	"github.com/phanxgames/dock/config"
)

// runCLI executes the command tree with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer dock.SetLogger(nil)
	root := NewRootCmd(io.Discard)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// tempConfig writes the starter configuration to a temp dir.
func tempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if _, err := runCLI(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	return path
}

func loadItems(t *testing.T, path string) ([]dock.Item, dock.Settings) {
	t.Helper()
	f, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, items := f.Resolve()
	return items, s
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	defer SetVersion("", "", "")
	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("SetVersion = %q %q %q", version, commit, date)
	}
}

func TestInit(t *testing.T) {
	path := tempConfig(t)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := runCLI(t, "init", path); err == nil {
		t.Error("init over an existing file should fail without --force")
	}
	if _, err := runCLI(t, "init", "--force", path); err != nil {
		t.Errorf("init --force: %v", err)
	}

	yml := filepath.Join(t.TempDir(), "dock.yaml")
	if _, err := runCLI(t, "--config", yml, "init"); err != nil {
		t.Fatalf("init yaml: %v", err)
	}
	items, _ := loadItems(t, yml)
	if len(items) != 12 {
		t.Errorf("yaml items = %d, want 12", len(items))
	}
}

func TestItemsList(t *testing.T) {
	path := tempConfig(t)
	out, err := runCLI(t, "-c", path, "items", "list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 13 {
		t.Fatalf("list printed %d lines, want header + 12:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Start Menu") || !strings.Contains(lines[1], "special:start_menu") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[5], "---") {
		t.Errorf("separator row = %q", lines[5])
	}
}

func TestItemsEdit(t *testing.T) {
	path := tempConfig(t)

	if _, err := runCLI(t, "-c", path, "items", "add", "Editor", "/usr/bin/vi", "--arg", "-R"); err != nil {
		t.Fatalf("add: %v", err)
	}
	items, _ := loadItems(t, path)
	if len(items) != 13 {
		t.Fatalf("after add: %d items, want 13", len(items))
	}
	last := items[12]
	if last.Name != "Editor" || last.Path != "/usr/bin/vi" || len(last.Args) != 1 || last.Args[0] != "-R" {
		t.Errorf("added item = %+v", last)
	}

	if _, err := runCLI(t, "-c", path, "items", "add", "Bin", "--special", "Recycle_Bin"); err != nil {
		t.Fatalf("add special: %v", err)
	}
	if _, err := runCLI(t, "-c", path, "items", "separator"); err != nil {
		t.Fatalf("separator: %v", err)
	}
	items, _ = loadItems(t, path)
	if len(items) != 15 || items[13].Special != dock.SpecialRecycleBin || items[13].Name != "Bin" || !items[14].IsSeparator() {
		t.Fatalf("after special + separator: %d items, [13]=%+v", len(items), items[13])
	}

	if _, err := runCLI(t, "-c", path, "items", "move", "12", "0"); err != nil {
		t.Fatalf("move: %v", err)
	}
	items, _ = loadItems(t, path)
	if items[0].Name != "Editor" || items[1].Name != "Start Menu" {
		t.Errorf("after move to front: %q, %q", items[0].Name, items[1].Name)
	}

	if _, err := runCLI(t, "-c", path, "items", "move", "0", "2"); err != nil {
		t.Fatalf("move forward: %v", err)
	}
	items, _ = loadItems(t, path)
	if items[2].Name != "Editor" {
		t.Errorf("after move forward: items[2] = %q, want Editor", items[2].Name)
	}

	if _, err := runCLI(t, "-c", path, "items", "remove", "2"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, _ = loadItems(t, path)
	if len(items) != 14 || items[2].Name == "Editor" {
		t.Errorf("after remove: %d items, [2]=%q", len(items), items[2].Name)
	}
}

func TestItemsErrors(t *testing.T) {
	path := tempConfig(t)
	tests := [][]string{
		{"items", "remove", "99"},
		{"items", "remove", "x"},
		{"items", "move", "1", "1"},
		{"items", "add", "NoPath"},
		{"items", "add", "Bad", "--special", "nope"},
	}
	for _, args := range tests {
		if _, err := runCLI(t, append([]string{"-c", path}, args...)...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
	items, _ := loadItems(t, path)
	if len(items) != 12 {
		t.Errorf("failed edits changed the file: %d items", len(items))
	}
}

func TestLock(t *testing.T) {
	path := tempConfig(t)
	if _, s := loadItems(t, path); !s.Locked {
		t.Fatal("starter config should be locked")
	}
	if _, err := runCLI(t, "-c", path, "lock", "--unlock"); err != nil {
		t.Fatal(err)
	}
	if _, s := loadItems(t, path); s.Locked {
		t.Error("lock --unlock left the dock locked")
	}
	if _, err := runCLI(t, "-c", path, "lock"); err != nil {
		t.Fatal(err)
	}
	if _, s := loadItems(t, path); !s.Locked {
		t.Error("lock left the dock unlocked")
	}
	if _, err := runCLI(t, "-c", path, "lock"); err != nil {
		t.Errorf("locking twice: %v", err)
	}
}

func TestRender(t *testing.T) {
	path := tempConfig(t)
	out := filepath.Join(t.TempDir(), "dock.png")
	if _, err := runCLI(t, "-c", path, "render", "--out", out, "--hover", "2", "--frames", "5", "--running", "0,3"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	_, s := loadItems(t, path)
	w, h := dock.PreferredSize(s, 12)
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("png size = %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestRenderHoverOutOfRange(t *testing.T) {
	path := tempConfig(t)
	out := filepath.Join(t.TempDir(), "dock.png")
	if _, err := runCLI(t, "-c", path, "render", "--out", out, "--hover", "40"); err == nil {
		t.Error("expected error for missing hover item")
	}
}

func TestRenderScript(t *testing.T) {
	path := tempConfig(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "script.json")
	body := `{"steps": [
		{"action": "move", "x": 40, "y": 36},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "hover"}
	]}`
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	shots := filepath.Join(dir, "shots")
	out := filepath.Join(dir, "dock.png")
	if _, err := runCLI(t, "-c", path, "render", "--out", out, "--frames", "1", "--script", script, "--shots", shots); err != nil {
		t.Fatal(err)
	}
	matches, _ := filepath.Glob(filepath.Join(shots, "*-hover.png"))
	if len(matches) != 1 {
		t.Errorf("screenshots = %v, want one *-hover.png", matches)
	}
}

func TestSlotCenter(t *testing.T) {
	lay := dock.Layout{Slots: []dock.Slot{
		{Index: 0, X: 10, Width: 48},
		{Index: -1, X: 58, Width: 48, Gap: true},
		{Index: 1, X: 106, Width: 20},
	}}
	if x, ok := slotCenter(lay, 1); !ok || x != 116 {
		t.Errorf("slotCenter(1) = %v, %v, want 116, true", x, ok)
	}
	if _, ok := slotCenter(lay, 5); ok {
		t.Error("slotCenter(5) should miss")
	}
}
