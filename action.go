package dock

// ActionKind identifies a context menu choice.
type ActionKind uint8

const (
	ActionNone            ActionKind = iota // menu dismissed
	ActionAddItem                           // append Action.Item
	ActionAddSeparator                      // append a separator
	ActionAddSpecial                        // append the special item named by Action.Special
	ActionRemoveItem                        // remove the item at Action.Index
	ActionEditItem                          // replace the item at Action.Index with Action.Item
	ActionToggleLock                        // flip Settings.Locked
	ActionResetSettings                     // restore default settings, keep items
	ActionOpenConfig                        // host: open the configuration file
	ActionSaveConfigAs                      // host: save the configuration to Action.Path
	ActionLoadConfig                        // host: load the configuration from Action.Path
	ActionResetAll                          // host: restore the default configuration file
	ActionEmptyRecycleBin                   // host: empty the recycle bin
	ActionQuit                              // host: exit
)

var actionNames = [...]string{
	ActionNone:            "none",
	ActionAddItem:         "add-item",
	ActionAddSeparator:    "add-separator",
	ActionAddSpecial:      "add-special",
	ActionRemoveItem:      "remove-item",
	ActionEditItem:        "edit-item",
	ActionToggleLock:      "toggle-lock",
	ActionResetSettings:   "reset-settings",
	ActionOpenConfig:      "open-config",
	ActionSaveConfigAs:    "save-config-as",
	ActionLoadConfig:      "load-config",
	ActionResetAll:        "reset-all",
	ActionEmptyRecycleBin: "empty-recycle-bin",
	ActionQuit:            "quit",
}

// String returns the action's kebab-case name.
func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Action is the outcome of a context menu. Hosts that show an item editor
// fill Item before returning.
type Action struct {
	Kind    ActionKind
	Index   int
	Item    Item
	Special string
	Path    string
}

// MenuRequest describes what was right-clicked so the host can build a
// matching menu.
type MenuRequest struct {
	Index      int // item under the pointer, or -1 for empty dock space
	Item       Item
	Separator  bool
	RecycleBin bool
	Locked     bool
	X, Y       float64 // surface-local pointer position
}

// ApplyAction applies an item or settings edit and returns the new state.
// changed is false when the action does not touch the item list or
// settings, either because it is a host action or because it was invalid.
func ApplyAction(items []Item, s Settings, a Action) (outItems []Item, outSettings Settings, changed bool) {
	outItems, outSettings = items, s
	switch a.Kind {
	case ActionAddItem:
		if a.Item.IsSeparator() || a.Item.Name != "" || a.Item.Path != "" || a.Item.IsSpecial() {
			return append(cloneItems(items), a.Item), s, true
		}
	case ActionAddSeparator:
		return append(cloneItems(items), NewSeparator()), s, true
	case ActionAddSpecial:
		it, ok := NewSpecialItem(a.Special)
		if !ok {
			Logger().Warn("unknown special item", "tag", a.Special)
			return items, s, false
		}
		if a.Item.Name != "" {
			it.Name = a.Item.Name
		}
		it.Icon = a.Item.Icon
		return append(cloneItems(items), it), s, true
	case ActionRemoveItem:
		if a.Index >= 0 && a.Index < len(items) {
			out := cloneItems(items)
			return append(out[:a.Index], out[a.Index+1:]...), s, true
		}
	case ActionEditItem:
		if a.Index >= 0 && a.Index < len(items) {
			out := cloneItems(items)
			out[a.Index] = a.Item
			return out, s, true
		}
	case ActionToggleLock:
		s.Locked = !s.Locked
		return items, s, true
	case ActionResetSettings:
		return items, DefaultSettings(), true
	}
	return outItems, outSettings, false
}

// hostAction reports whether the core forwards the action to the host.
func hostAction(k ActionKind) bool {
	return k >= ActionOpenConfig && k <= ActionQuit
}
