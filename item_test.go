package dock

import "testing"

func TestItemIsSeparator(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"flag", Item{Separator: true}, true},
		{"legacy name", Item{Name: "---"}, true},
		{"regular", Item{Name: "Terminal", Path: "/usr/bin/xterm"}, false},
		{"constructor", NewSeparator(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.IsSeparator(); got != tt.want {
				t.Errorf("IsSeparator() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemLaunchable(t *testing.T) {
	if (Item{Name: "x"}).Launchable() {
		t.Error("item without path should not be launchable")
	}
	if NewSeparator().Launchable() {
		t.Error("separator should not be launchable")
	}
	if !(Item{Name: "Bin", Special: SpecialRecycleBin}).Launchable() {
		t.Error("special item should be launchable")
	}
}

func TestNewSpecialItem(t *testing.T) {
	it, ok := NewSpecialItem(" Recycle_Bin ")
	if !ok {
		t.Fatal("expected recycle_bin to be known")
	}
	if it.Name != "Recycle Bin" || it.Special != SpecialRecycleBin || !it.IsSpecial() {
		t.Errorf("got %+v", it)
	}
	if _, ok := NewSpecialItem("bogus"); ok {
		t.Error("unknown tag should not resolve")
	}
}

func TestSpecialItemsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range SpecialItems {
		if seen[s.Tag] {
			t.Errorf("duplicate tag %q", s.Tag)
		}
		seen[s.Tag] = true
	}
	if len(SpecialItems) != 16 {
		t.Errorf("len(SpecialItems) = %d, want 16", len(SpecialItems))
	}
}

func TestCloneItemsDeepCopiesArgs(t *testing.T) {
	src := []Item{{Name: "a", Args: []string{"-x"}}}
	dst := cloneItems(src)
	dst[0].Args[0] = "-y"
	if src[0].Args[0] != "-x" {
		t.Error("cloneItems shares Args backing array")
	}
}
