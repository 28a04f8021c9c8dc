package ebitenhost

import (
	"github.com/phanxgames/dock"
)

// Menu geometry in window pixels.
const (
	menuWidth     = 190
	menuRowHeight = 22
	menuSepHeight = 9
	menuPad       = 4
)

// menuEntry is one row of the context menu. A row with an empty label is a
// separator line.
type menuEntry struct {
	label  string
	action dock.Action
	sub    []menuEntry
}

func (e menuEntry) separator() bool { return e.label == "" }

func (e menuEntry) height() float64 {
	if e.separator() {
		return menuSepHeight
	}
	return menuRowHeight
}

var menuSeparator = menuEntry{}

// menuEntries builds the context menu for req. Editing entries are left out
// while the dock is locked; the recycle bin entry is offered regardless.
func menuEntries(req dock.MenuRequest, configPath string) []menuEntry {
	var out []menuEntry
	if req.Index >= 0 {
		if req.RecycleBin {
			out = append(out,
				menuEntry{label: "Empty Recycle Bin", action: dock.Action{Kind: dock.ActionEmptyRecycleBin, Index: req.Index}},
				menuSeparator)
		}
		if !req.Locked {
			out = append(out,
				menuEntry{label: "Remove", action: dock.Action{Kind: dock.ActionRemoveItem, Index: req.Index}},
				menuSeparator)
		}
	}
	if !req.Locked {
		specials := make([]menuEntry, len(dock.SpecialItems))
		for i, sp := range dock.SpecialItems {
			specials[i] = menuEntry{label: sp.Name, action: dock.Action{Kind: dock.ActionAddSpecial, Special: sp.Tag}}
		}
		out = append(out,
			menuEntry{label: "Add Separator", action: dock.Action{Kind: dock.ActionAddSeparator}},
			menuEntry{label: "Add Special Item  >", sub: specials},
			menuSeparator)
	}
	lock := "Lock Icons"
	if req.Locked {
		lock = "Unlock Icons"
	}
	out = append(out,
		menuEntry{label: lock, action: dock.Action{Kind: dock.ActionToggleLock}},
		menuSeparator,
		menuEntry{label: "Edit Config...", action: dock.Action{Kind: dock.ActionOpenConfig, Path: configPath}},
		menuEntry{label: "Save Config Backup", action: dock.Action{Kind: dock.ActionSaveConfigAs, Path: backupPath(configPath)}},
		menuEntry{label: "Reset Settings", action: dock.Action{Kind: dock.ActionResetSettings}},
		menuEntry{label: "Reset All", action: dock.Action{Kind: dock.ActionResetAll}},
		menuSeparator,
		menuEntry{label: "Quit", action: dock.Action{Kind: dock.ActionQuit}},
	)
	return out
}

// contextMenu is an open menu positioned in window coordinates.
type contextMenu struct {
	entries []menuEntry
	x, y    float64
	hover   int
}

func newContextMenu(entries []menuEntry) *contextMenu {
	return &contextMenu{entries: entries, hover: -1}
}

// size returns the menu's outer width and height.
func (m *contextMenu) size() (w, h float64) {
	h = 2 * menuPad
	for _, e := range m.entries {
		h += e.height()
	}
	return menuWidth, h
}

// place anchors the menu's bottom edge at bottom, with its left edge as
// close to x as the window width allows.
func (m *contextMenu) place(x, bottom, windowW float64) {
	w, h := m.size()
	m.x = min(max(x, 0), max(windowW-w, 0))
	m.y = bottom - h
}

// at returns the selectable entry under (x, y), or -1.
func (m *contextMenu) at(x, y float64) int {
	w, _ := m.size()
	if x < m.x || x >= m.x+w {
		return -1
	}
	top := m.y + menuPad
	for i, e := range m.entries {
		h := e.height()
		if y >= top && y < top+h {
			if e.separator() {
				return -1
			}
			return i
		}
		top += h
	}
	return -1
}

// choose handles a click at (x, y). It reports the picked action and whether
// the menu should close. A click on a submenu row swaps in the submenu.
func (m *contextMenu) choose(x, y float64) (dock.Action, bool) {
	i := m.at(x, y)
	if i < 0 {
		w, h := m.size()
		inside := x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
		return dock.Action{}, !inside
	}
	e := m.entries[i]
	if e.sub != nil {
		_, oldH := m.size()
		m.entries = e.sub
		m.hover = -1
		_, newH := m.size()
		m.y += oldH - newH
		return dock.Action{}, false
	}
	return e.action, true
}
