package dock

import "strings"

// Item is one dock entry. Items are identified by their position in the
// list; two items with the same name are distinct.
type Item struct {
	Name      string
	Path      string
	Icon      string
	Args      []string
	Separator bool
	Special   string // system action tag, see SpecialItems
}

// separatorName is the legacy name that also marks an item as a separator.
const separatorName = "---"

// NewSeparator returns a separator item.
func NewSeparator() Item {
	return Item{Name: separatorName, Separator: true}
}

// IsSeparator reports whether the item renders as a thin divider line.
func (it Item) IsSeparator() bool {
	return it.Separator || it.Name == separatorName
}

// IsSpecial reports whether the item triggers a system action instead of
// launching a program.
func (it Item) IsSpecial() bool {
	return it.Special != ""
}

// Launchable reports whether a click on the item produces a launch intent.
func (it Item) Launchable() bool {
	return !it.IsSeparator() && (it.Path != "" || it.IsSpecial())
}

// Special item tags.
const (
	SpecialStartMenu     = "start_menu"
	SpecialSettings      = "settings"
	SpecialRecycleBin    = "recycle_bin"
	SpecialShowDesktop   = "show_desktop"
	SpecialSystemTray    = "system_tray"
	SpecialQuickSettings = "quick_settings"
	SpecialFileExplorer  = "file_explorer"
	SpecialThisPC        = "this_pc"
	SpecialDocuments     = "documents"
	SpecialDownloads     = "downloads"
	SpecialUserFolder    = "user_folder"
	SpecialNetwork       = "network"
	SpecialControlPanel  = "control_panel"
	SpecialTaskView      = "task_view"
	SpecialActionCenter  = "action_center"
	SpecialRunDialog     = "run_dialog"
)

// SpecialItem pairs a special tag with its display name.
type SpecialItem struct {
	Tag  string
	Name string
}

// SpecialItems lists the special tags offered by the "add special" menu, in
// menu order.
var SpecialItems = []SpecialItem{
	{SpecialStartMenu, "Start Menu"},
	{SpecialSettings, "Settings"},
	{SpecialRecycleBin, "Recycle Bin"},
	{SpecialShowDesktop, "Show Desktop"},
	{SpecialSystemTray, "System Tray (Hidden Icons)"},
	{SpecialQuickSettings, "Quick Settings"},
	{SpecialFileExplorer, "File Explorer"},
	{SpecialThisPC, "This PC"},
	{SpecialDocuments, "Documents"},
	{SpecialDownloads, "Downloads"},
	{SpecialUserFolder, "User Folder"},
	{SpecialNetwork, "Network"},
	{SpecialControlPanel, "Control Panel"},
	{SpecialTaskView, "Task View"},
	{SpecialActionCenter, "Action Center"},
	{SpecialRunDialog, "Run Dialog"},
}

// NewSpecialItem builds an item for a known special tag. The boolean is
// false when the tag is unknown.
func NewSpecialItem(tag string) (Item, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, s := range SpecialItems {
		if s.Tag == tag {
			return Item{Name: s.Name, Special: s.Tag}, true
		}
	}
	return Item{}, false
}

// cloneItems copies the slice and each item's Args.
func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it
		if it.Args != nil {
			out[i].Args = append([]string(nil), it.Args...)
		}
	}
	return out
}
