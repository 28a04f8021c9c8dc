package dock

// Host carries the dock's intents to the platform. All methods are called
// synchronously from the goroutine driving the Dock.
type Host interface {
	// Launch starts the item at index.
	Launch(index int, item Item)
	// ShowTooltip shows text with its anchor at screen position (x, y),
	// the pointer column on the dock's top edge.
	ShowTooltip(text string, x, y int)
	HideTooltip()
	// OpenContextMenu shows a menu for req and returns the user's choice.
	// A host that cannot block returns an ActionNone action and later passes
	// the choice to Dock.Apply.
	OpenContextMenu(req MenuRequest) Action
	// PersistAndReload saves the edited item list and settings. The dock has
	// already applied them.
	PersistAndReload(items []Item, settings Settings)
	SetTaskbarVisible(visible bool)
	// Perform runs an action the dock cannot apply itself, such as opening
	// the configuration file or quitting.
	Perform(a Action)
}

// NopHost ignores every intent and dismisses every menu. Embed it to
// implement only the methods you need.
type NopHost struct{}

func (NopHost) Launch(int, Item) {}
func (NopHost) ShowTooltip(string, int, int) {}
func (NopHost) HideTooltip() {}
func (NopHost) OpenContextMenu(MenuRequest) Action { return Action{} }
func (NopHost) PersistAndReload([]Item, Settings) {}
func (NopHost) SetTaskbarVisible(bool) {}
func (NopHost) Perform(Action) {}
