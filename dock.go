package dock

import (
	"math"
	"time"
)

// Dock is one dock session: the item list, its settings, the icon cache, the
// animation state and the rendered surface. A Dock is driven from a single
// goroutine; none of its methods are safe for concurrent use.
type Dock struct {
	settings Settings
	items    []Item
	running  []bool
	centers  []float64

	cache   *IconCache
	comp    *Compositor
	anim    *Animator
	surface *Surface
	layout  Layout

	host Host
	sink EventSink

	screenW, screenH int
	anchorX          int
	anchored         bool

	ptr     pointerState
	hover   int
	tooltip bool
	drag    DragSession
	phase   DragPhase

	hideTimer     timer
	showTimer     timer
	fullscreen    bool
	taskbarHidden bool
	taskbarAt     time.Time

	now      time.Time
	lastTick time.Time
	moving   bool

	debug bool
	stats debugStats

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	shotSeq         int
	testRunner      *TestRunner

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// NewDock creates a dock showing items. A nil host is replaced by NopHost.
// Icons are decoded before NewDock returns.
func NewDock(s Settings, items []Item, host Host) *Dock {
	if host == nil {
		host = NopHost{}
	}
	s = s.Validate()
	d := &Dock{
		settings:      s,
		host:          host,
		hover:         -1,
		drag:          DragSession{Source: -1},
		anim:          NewAnimator(0),
		surface:       NewSurface(0, 0),
		ScreenshotDir: "screenshots",
	}
	d.cache = NewIconCache(s.IconCacheSize)
	d.cache.SetSharpenStrength(s.SharpenStrength)
	d.comp = NewCompositor(s, d.cache)
	d.SetItems(items)
	return d
}

// SetHost replaces the intent receiver. A nil host is replaced by NopHost.
func (d *Dock) SetHost(h Host) {
	if h == nil {
		h = NopHost{}
	}
	d.host = h
}

// SetEventSink sets the optional event receiver.
func (d *Dock) SetEventSink(sink EventSink) {
	d.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timings and draw counts are logged at debug level.
func (d *Dock) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Items returns a copy of the current item list.
func (d *Dock) Items() []Item {
	return cloneItems(d.items)
}

// Settings returns the validated settings in use.
func (d *Dock) Settings() Settings {
	return d.settings
}

// Cache returns the dock's icon cache.
func (d *Dock) Cache() *IconCache {
	return d.cache
}

// Surface returns the buffer rendered by the last Tick.
func (d *Dock) Surface() *Surface {
	return d.surface
}

// Layout returns the slot layout used by the last Tick.
func (d *Dock) Layout() Layout {
	return d.layout
}

// Scales returns the current per-item magnification.
func (d *Dock) Scales() []float64 {
	return d.anim.Scales
}

// Hovered returns the index of the hovered item, or -1.
func (d *Dock) Hovered() int {
	return d.hover
}

// Drag returns the drag phase and session.
func (d *Dock) Drag() (DragPhase, DragSession) {
	return d.phase, d.drag
}

// Visible reports whether the dock is showing or heading towards shown.
func (d *Dock) Visible() bool {
	return d.anim.ShowingTarget()
}

// Position returns the dock's current and target top edge in screen pixels.
func (d *Dock) Position() (y, target float64) {
	return d.anim.DockY, d.anim.TargetY
}

// SetItems replaces the item list, rebuilds the icon cache and resizes the
// surface to fit. Any drag in progress is cancelled.
func (d *Dock) SetItems(items []Item) {
	d.items = cloneItems(items)
	running := make([]bool, len(d.items))
	copy(running, d.running)
	d.running = running
	d.anim.SetCount(len(d.items))
	d.cancelDrag()
	d.hover = -1

	if failed := d.cache.Rebuild(d.items, d.settings.IconResolution()); failed > 0 {
		Logger().Warn("icons failed to load", "failed", failed, "items", len(d.items))
	}
	d.fitSurface()
}

// SetSettings applies new settings. Icons are decoded again only when the
// decode resolution or sharpening changed.
func (d *Dock) SetSettings(s Settings) {
	s = s.Validate()
	old := d.settings
	d.settings = s
	d.comp.SetSettings(s)

	rebuild := s.IconResolution() != d.cache.Resolution()
	if s.SharpenStrength != old.SharpenStrength {
		d.cache.SetSharpenStrength(s.SharpenStrength)
		d.cache.Clear()
		rebuild = true
	}
	if rebuild {
		d.cache.Rebuild(d.items, s.IconResolution())
	}
	if !s.AutoHide {
		d.hideTimer.disarm()
		d.show()
	}
	switch {
	case s.HideTaskbar && !old.HideTaskbar:
		d.Start()
	case !s.HideTaskbar && d.taskbarHidden:
		d.restoreTaskbar()
	}
	d.fitSurface()
}

// SetRunning sets the running flag of each item. Missing flags are false.
func (d *Dock) SetRunning(flags []bool) {
	for i := range d.running {
		d.running[i] = i < len(flags) && flags[i]
	}
}

// Resize sets the surface size. The animation keeps its current position and
// retargets to the new size.
func (d *Dock) Resize(w, h int) {
	if w != d.surface.Width() || h != d.surface.Height() {
		d.surface.Resize(w, h)
	}
	d.centers = SlotCenters(d.metrics(), d.items)
	d.updateTargets()
	if d.debug {
		d.debugCheckWidth()
	}
}

// SetScreen sets the size of the screen the dock sits on. The first call
// places the dock at its visible position.
func (d *Dock) SetScreen(w, h int) {
	first := d.screenH == 0
	d.screenW, d.screenH = w, h
	d.updateTargets()
	if first {
		d.anim.Place(d.anim.VisibleY, d.anim.VisibleY)
	}
}

// DesiredX returns the screen x of the surface's left edge: centred on the
// screen, or where ShowAt anchored it.
func (d *Dock) DesiredX() int {
	w := d.surface.Width()
	if d.anchored {
		return clampInt(d.anchorX, 0, max(d.screenW-w, 0))
	}
	return (d.screenW - w) / 2
}

// DesiredY returns the screen y of the surface's top edge.
func (d *Dock) DesiredY() int {
	return int(math.Round(d.anim.DockY))
}

// Tick advances the dock to now: queued input and timers first, then
// animation, then layout and compositing. It reports whether another frame
// should follow soon.
func (d *Dock) Tick(now time.Time) bool {
	dt := NominalFrame
	if !d.lastTick.IsZero() {
		dt = now.Sub(d.lastTick)
	}
	d.lastTick = now
	d.now = now

	var start time.Time
	if d.debug {
		start = time.Now()
	}

	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	d.processInjectedInput(now)
	d.tickTimers(now)
	d.TaskbarTick(now)

	var animStart time.Time
	if d.debug {
		animStart = time.Now()
		d.stats.inputTime = animStart.Sub(start)
	}
	d.moving = d.anim.Step(dt, WaveInput{
		CursorX:  d.ptr.x,
		Inside:   d.ptr.inside,
		Dragging: d.phase == DragActive,
		Centers:  d.centers,
		Radius:   float64(d.settings.IconSize) * MagnifyRadiusFactor,
		MaxScale: d.settings.Magnification,
	})

	var renderStart time.Time
	if d.debug {
		renderStart = time.Now()
		d.stats.animTime = renderStart.Sub(animStart)
	}
	d.layout = d.comp.Render(d.surface, d.frame())
	if d.debug {
		d.stats.renderTime = time.Since(renderStart)
		d.stats.items, d.stats.separators, d.stats.gaps = countSlots(d.layout)
		d.stats.render = d.comp.stats
		d.debugLog(d.stats)
	}

	d.flushScreenshots()
	return d.NeedsAnotherFrame()
}

// NeedsAnotherFrame reports whether the dock is animating: the position or a
// scale is unsettled, a bounce is running, a hide or show timer is armed, the
// pointer is over the dock, or scripted input is pending.
func (d *Dock) NeedsAnotherFrame() bool {
	if d.moving || !d.anim.Settled() {
		return true
	}
	if d.hideTimer.armed || d.showTimer.armed || d.ptr.inside {
		return true
	}
	if len(d.injectQueue) > 0 || len(d.screenshotQueue) > 0 {
		return true
	}
	return d.testRunner != nil && !d.testRunner.Done()
}

// FrameInterval returns how long the host should wait before the next Tick.
func (d *Dock) FrameInterval() time.Duration {
	if d.NeedsAnotherFrame() {
		return NominalFrame
	}
	return CursorPollInterval
}

func (d *Dock) frame() Frame {
	f := Frame{
		Items:   d.items,
		Running: d.running,
		Scales:  d.anim.Scales,
		Lifts:   d.anim.Lifts(),
	}
	if d.phase == DragActive {
		f.Drag = &d.drag
	}
	return f
}

func (d *Dock) metrics() Metrics {
	return MetricsFor(d.settings, d.surface.Width())
}

// fitSurface resizes the surface to the preferred size for the item list.
func (d *Dock) fitSurface() {
	d.Resize(PreferredSize(d.settings, len(d.items)))
}

func (d *Dock) updateTargets() {
	if d.screenH == 0 {
		return
	}
	vis, hid := DockTargets(d.screenH, d.surface.Height(), d.settings.VerticalOffset, d.settings.HiddenSliver)
	d.anim.SetTargets(vis, hid)
}

// screenRect is the surface's current bounds in screen pixels.
func (d *Dock) screenRect() Rect {
	return Rect{
		X:      float64(d.DesiredX()),
		Y:      d.anim.DockY,
		Width:  float64(d.surface.Width()),
		Height: float64(d.surface.Height()),
	}
}

func (d *Dock) emit(ev Event) {
	if d.sink == nil {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = d.now
	}
	d.sink.EmitEvent(ev)
}
