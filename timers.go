package dock

import "time"

// Host polling cadences.
const (
	// CursorPollInterval is the idle tick interval, and how often hosts
	// should sample the global cursor for PollCursor.
	CursorPollInterval = 50 * time.Millisecond
	// TaskbarInterval is how often a hidden system taskbar is hidden again,
	// since the shell may restore it.
	TaskbarInterval = time.Second
	// RunningPollInterval is how often hosts should refresh running flags.
	RunningPollInterval = 2 * time.Second

	// edgeTrigger is the height in pixels of the bottom screen strip that
	// reveals the dock.
	edgeTrigger = 2
)

// timer is a one-shot deadline started by arm.
type timer struct {
	armed bool
	since time.Time
}

// arm starts the timer unless it is already running.
func (t *timer) arm(now time.Time) {
	if t.armed {
		return
	}
	t.armed = true
	t.since = now
}

func (t *timer) disarm() {
	t.armed = false
}

func (t timer) elapsed(now time.Time, delay time.Duration) bool {
	return t.armed && now.Sub(t.since) >= delay
}

// PollCursor handles a global cursor sample in screen pixels. It does nothing
// unless auto-hide is on. A cursor at the bottom edge reveals the dock,
// immediately or after ShowDelay. A cursor elsewhere and outside the dock
// starts the hide timer; if the pointer was still marked inside, the missed
// leave is applied first. Samples are ignored while a fullscreen window hides
// the dock.
func (d *Dock) PollCursor(screenX, screenY float64, now time.Time) {
	d.now = now
	if !d.settings.AutoHide || d.screenH == 0 || (d.fullscreen && d.settings.HideInFullscreen) {
		return
	}
	if screenY >= float64(d.screenH-edgeTrigger) {
		if d.anim.ShowingTarget() {
			return
		}
		if d.settings.ShowDelay <= 0 {
			d.show()
			return
		}
		d.showTimer.arm(now)
		return
	}

	d.showTimer.disarm()
	if d.screenRect().Contains(screenX, screenY) {
		return
	}
	if d.ptr.inside {
		d.ptr.inside = false
		d.setHover(-1, d.ptr.x, d.ptr.y)
		d.hideTooltip()
	}
	if d.anim.ShowingTarget() {
		d.hideTimer.arm(now)
	}
}

// tickTimers fires the hide and show timers that have run their course.
func (d *Dock) tickTimers(now time.Time) {
	if d.hideTimer.elapsed(now, d.settings.HideDelay) {
		d.hideTimer.disarm()
		if d.settings.AutoHide && !d.ptr.inside {
			d.hide()
		}
	}
	if d.showTimer.elapsed(now, d.settings.ShowDelay) {
		d.showTimer.disarm()
		d.show()
	}
}

// ForceHide hides the dock at once, regardless of auto-hide. Timers are
// cleared and any drag is cancelled.
func (d *Dock) ForceHide() {
	d.hideTimer.disarm()
	d.showTimer.disarm()
	d.cancelDrag()
	d.hide()
}

// SetFullscreen reports whether a fullscreen window is in front. Entering
// fullscreen hides the dock when HideInFullscreen is set.
func (d *Dock) SetFullscreen(on bool) {
	if on == d.fullscreen {
		return
	}
	d.fullscreen = on
	Logger().Debug("fullscreen changed", "fullscreen", on)
	if on && d.settings.HideInFullscreen {
		d.ForceHide()
	}
}

// ShowAt centres the dock horizontally on the screen x position, clamped to
// the screen, and shows it immediately.
func (d *Dock) ShowAt(cursorScreenX float64) {
	d.anchorX = int(cursorScreenX) - d.surface.Width()/2
	d.anchored = true
	d.show()
}

// Recenter drops the anchor set by ShowAt.
func (d *Dock) Recenter() {
	d.anchored = false
}

func (d *Dock) show() {
	d.hideTimer.disarm()
	d.showTimer.disarm()
	if d.anim.ShowingTarget() {
		return
	}
	d.anim.Show()
	d.emit(Event{Type: EventShow, Index: -1})
}

func (d *Dock) hide() {
	if !d.anim.ShowingTarget() {
		return
	}
	d.anim.Hide()
	d.hideTooltip()
	d.emit(Event{Type: EventHide, Index: -1})
}

// Start hides the system taskbar when HideTaskbar is set.
func (d *Dock) Start() {
	if !d.settings.HideTaskbar {
		return
	}
	d.host.SetTaskbarVisible(false)
	d.taskbarHidden = true
	d.taskbarAt = d.now
}

// TaskbarTick hides the taskbar again once TaskbarInterval has passed since
// the last time.
func (d *Dock) TaskbarTick(now time.Time) {
	if !d.taskbarHidden {
		return
	}
	if d.taskbarAt.IsZero() {
		d.taskbarAt = now
		return
	}
	if now.Sub(d.taskbarAt) >= TaskbarInterval {
		d.host.SetTaskbarVisible(false)
		d.taskbarAt = now
	}
}

// Close restores the taskbar and hides the tooltip. Call it once when the
// dock shuts down.
func (d *Dock) Close() {
	d.hideTooltip()
	d.restoreTaskbar()
}

func (d *Dock) restoreTaskbar() {
	if !d.taskbarHidden {
		return
	}
	d.host.SetTaskbarVisible(true)
	d.taskbarHidden = false
}
