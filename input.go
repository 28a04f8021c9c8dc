package dock

import (
	"math"
	"time"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary   Button = iota // left button: launch and drag
	ButtonSecondary               // right button: context menu
	ButtonMiddle
)

// DragPhase is the state of the press-and-drag machine.
type DragPhase uint8

const (
	DragIdle    DragPhase = iota // no button held over an item
	DragPending                  // pressed on an item, below the drag threshold
	DragActive                   // reordering
)

func (p DragPhase) String() string {
	switch p {
	case DragPending:
		return "pending"
	case DragActive:
		return "dragging"
	default:
		return "idle"
	}
}

// pointerState is the last known pointer position over the surface.
type pointerState struct {
	inside bool
	x, y   float64
}

// PointerMove handles the pointer moving over the surface to the
// surface-local position (x, y). Entering the surface cancels a pending hide
// and shows the dock.
func (d *Dock) PointerMove(x, y float64, now time.Time) {
	d.now = now
	d.ptr = pointerState{inside: true, x: x, y: y}
	d.hideTimer.disarm()
	d.show()

	if d.phase == DragPending && !d.settings.Locked && math.Abs(x-d.drag.StartX) > d.settings.DragThreshold {
		d.phase = DragActive
		d.drag.Dragging = true
		d.hideTooltip()
		d.emit(Event{Type: EventDragStart, Index: d.drag.Source, From: d.drag.Source, X: x, Y: y})
	}
	if d.phase == DragActive {
		d.drag.CursorX = x
		d.drag.DropIndex = DropIndex(d.metrics(), d.items, x)
		return
	}
	d.updateHover(x, y)
}

// PointerLeave handles the pointer leaving the surface. A drag in progress is
// cancelled without reordering and, with auto-hide on, the hide timer starts
// once the dock is fully shown.
func (d *Dock) PointerLeave(now time.Time) {
	d.now = now
	d.ptr.inside = false
	if d.phase == DragActive {
		d.emit(Event{Type: EventDragCancel, Index: d.drag.Source, From: d.drag.Source, X: d.ptr.x, Y: d.ptr.y})
	}
	d.cancelDrag()
	d.setHover(-1, d.ptr.x, d.ptr.y)
	d.hideTooltip()
	if d.settings.AutoHide && d.anim.NearlyVisible() {
		d.hideTimer.arm(now)
	}
}

// PointerDown handles a button press at the surface-local position (x, y).
// On an unlocked dock the primary button arms a click or drag on the item
// under the pointer; a locked dock ignores it. The secondary button opens
// the context menu.
func (d *Dock) PointerDown(b Button, x, y float64, now time.Time) {
	d.now = now
	switch b {
	case ButtonPrimary:
		if d.settings.Locked {
			return
		}
		idx := HitTest(d.metrics(), d.items, x, y)
		if idx < 0 {
			return
		}
		d.phase = DragPending
		d.drag = DragSession{Source: idx, StartX: x, CursorX: x, DropIndex: idx}
	case ButtonSecondary:
		d.openMenu(x, y)
	}
}

// PointerUp handles a button release. Releasing a drag reorders the items
// when the drop position differs from the source; releasing a press that
// never became a drag launches the item hovered at the release point.
func (d *Dock) PointerUp(b Button, x, y float64, now time.Time) {
	d.now = now
	if b != ButtonPrimary {
		return
	}
	defer d.cancelDrag()

	m := d.metrics()
	switch d.phase {
	case DragActive:
		from, to := d.drag.Source, DropIndex(m, d.items, x)
		if !reorders(len(d.items), from, to) {
			d.emit(Event{Type: EventDragCancel, Index: from, From: from, To: to, X: x, Y: y})
			return
		}
		d.reorder(from, to)
		d.host.PersistAndReload(cloneItems(d.items), d.settings)
		d.emit(Event{Type: EventReorder, Index: gapPosition(from, to), From: from, To: to, X: x, Y: y})
		Logger().Debug("items reordered", "from", from, "to", to)
	case DragPending:
		d.setHover(HitTest(m, d.items, x, y), x, y)
		d.launch(d.hover, x, y)
	}
}

// Launch launches the item at index as if it had been clicked.
func (d *Dock) Launch(index int) {
	d.launch(index, d.ptr.x, d.ptr.y)
}

func (d *Dock) launch(idx int, x, y float64) {
	if idx < 0 || idx >= len(d.items) || !d.items[idx].Launchable() {
		return
	}
	it := d.items[idx]
	d.host.Launch(idx, it)
	d.anim.Bounce(idx, float64(d.settings.IconSize)*bounceHeightFactor)
	d.emit(Event{Type: EventLaunch, Index: idx, X: x, Y: y})
	Logger().Info("launch", "name", it.Name, "path", it.Path, "special", it.Special)
}

// reorder moves the item at from, with its running flag and scale, to the
// pre-removal drop index to.
func (d *Dock) reorder(from, to int) {
	d.items = moveElem(d.items, from, to)
	d.running = moveElem(d.running, from, to)
	d.anim.Scales = moveElem(d.anim.Scales, from, to)
	d.centers = SlotCenters(d.metrics(), d.items)
}

func (d *Dock) openMenu(x, y float64) {
	if d.phase == DragActive {
		d.emit(Event{Type: EventDragCancel, Index: d.drag.Source, From: d.drag.Source, X: x, Y: y})
	}
	d.cancelDrag()
	d.hideTooltip()

	idx := HitTest(d.metrics(), d.items, x, y)
	req := MenuRequest{Index: idx, Locked: d.settings.Locked, X: x, Y: y}
	if idx >= 0 {
		it := d.items[idx]
		req.Item = it
		req.Separator = it.IsSeparator()
		req.RecycleBin = it.Special == SpecialRecycleBin
	}
	a := d.host.OpenContextMenu(req)
	d.emit(Event{Type: EventContextMenu, Index: idx, X: x, Y: y, Action: a.Kind})
	d.Apply(a)
}

// Apply carries out a context menu action. Item and settings edits are
// applied to the dock and then persisted through the host; everything else
// is forwarded to Host.Perform.
func (d *Dock) Apply(a Action) {
	if a.Kind == ActionNone {
		return
	}
	if hostAction(a.Kind) {
		d.host.Perform(a)
		return
	}
	items, s, changed := ApplyAction(d.items, d.settings, a)
	if !changed {
		return
	}
	switch a.Kind {
	case ActionToggleLock, ActionResetSettings:
		d.SetSettings(s)
	default:
		d.SetItems(items)
	}
	Logger().Debug("action applied", "action", a.Kind, "items", len(d.items), "locked", d.settings.Locked)
	d.host.PersistAndReload(cloneItems(d.items), d.settings)
}

// updateHover hit-tests (x, y) and keeps the tooltip in step with the hovered
// item.
func (d *Dock) updateHover(x, y float64) {
	idx := HitTest(d.metrics(), d.items, x, y)
	d.setHover(idx, x, y)
	if idx >= 0 && !d.items[idx].IsSeparator() && d.items[idx].Name != "" {
		d.host.ShowTooltip(d.items[idx].Name, d.DesiredX()+int(x), d.DesiredY())
		d.tooltip = true
		return
	}
	d.hideTooltip()
}

func (d *Dock) setHover(idx int, x, y float64) {
	if idx == d.hover {
		return
	}
	d.hover = idx
	d.emit(Event{Type: EventHover, Index: idx, X: x, Y: y})
}

func (d *Dock) hideTooltip() {
	if d.tooltip {
		d.host.HideTooltip()
		d.tooltip = false
	}
}

func (d *Dock) cancelDrag() {
	d.phase = DragIdle
	d.drag = DragSession{Source: -1}
}
