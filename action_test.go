package dock

import "testing"

func TestApplyAction(t *testing.T) {
	base := testItems(3)
	s := DefaultSettings()

	tests := []struct {
		name    string
		action  Action
		want    string
		changed bool
	}{
		{"none", Action{Kind: ActionNone}, "ABC", false},
		{"add item", Action{Kind: ActionAddItem, Item: Item{Name: "Z", Path: "/z"}}, "ABCZ", true},
		{"add empty item", Action{Kind: ActionAddItem}, "ABC", false},
		{"add separator", Action{Kind: ActionAddSeparator}, "ABC---", true},
		{"add special", Action{Kind: ActionAddSpecial, Special: "recycle_bin"}, "ABCRecycle Bin", true},
		{"add unknown special", Action{Kind: ActionAddSpecial, Special: "nope"}, "ABC", false},
		{"remove", Action{Kind: ActionRemoveItem, Index: 1}, "AC", true},
		{"remove out of range", Action{Kind: ActionRemoveItem, Index: 3}, "ABC", false},
		{"edit", Action{Kind: ActionEditItem, Index: 0, Item: Item{Name: "Q"}}, "QBC", true},
		{"edit out of range", Action{Kind: ActionEditItem, Index: -1, Item: Item{Name: "Q"}}, "ABC", false},
		{"host action", Action{Kind: ActionQuit}, "ABC", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, changed := ApplyAction(base, s, tt.action)
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if names(got) != tt.want {
				t.Errorf("items = %q, want %q", names(got), tt.want)
			}
			if names(base) != "ABC" {
				t.Fatalf("input mutated: %q", names(base))
			}
		})
	}
}

func TestApplyActionSettings(t *testing.T) {
	s := DefaultSettings()
	s.IconSize = 64

	_, out, changed := ApplyAction(nil, s, Action{Kind: ActionToggleLock})
	if !changed || !out.Locked {
		t.Errorf("toggle lock: changed=%v locked=%v", changed, out.Locked)
	}
	_, out, _ = ApplyAction(nil, out, Action{Kind: ActionToggleLock})
	if out.Locked {
		t.Error("second toggle should unlock")
	}

	_, out, changed = ApplyAction(nil, s, Action{Kind: ActionResetSettings})
	if !changed || out.IconSize != DefaultIconSize {
		t.Errorf("reset: changed=%v icon=%d", changed, out.IconSize)
	}
}

func TestHostAction(t *testing.T) {
	host := []ActionKind{ActionOpenConfig, ActionSaveConfigAs, ActionLoadConfig, ActionResetAll, ActionEmptyRecycleBin, ActionQuit}
	for _, k := range host {
		if !hostAction(k) {
			t.Errorf("%v should be forwarded to the host", k)
		}
	}
	for _, k := range []ActionKind{ActionNone, ActionAddItem, ActionToggleLock, ActionResetSettings} {
		if hostAction(k) {
			t.Errorf("%v should be handled by the core", k)
		}
	}
}

func TestActionKindString(t *testing.T) {
	if ActionEmptyRecycleBin.String() != "empty-recycle-bin" {
		t.Errorf("String() = %q", ActionEmptyRecycleBin.String())
	}
	if ActionKind(200).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}
