package dock

import "time"

// debugStats holds per-frame timings and draw counts. Only populated when
// debug mode is on.
type debugStats struct {
	inputTime  time.Duration
	animTime   time.Duration
	renderTime time.Duration
	items      int
	separators int
	gaps       int
	render     renderStats
}

// debugLog logs timing and draw stats at debug level.
func (d *Dock) debugLog(stats debugStats) {
	if !d.debug {
		return
	}
	l := Logger()
	l.Debug("frame",
		"input", stats.inputTime,
		"anim", stats.animTime,
		"render", stats.renderTime,
		"total", stats.inputTime+stats.animTime+stats.renderTime)
	l.Debug("draws",
		"items", stats.items,
		"separators", stats.separators,
		"gaps", stats.gaps,
		"icons", stats.render.icons,
		"placeholders", stats.render.placeholders,
		"glows", stats.render.glows,
		"reflections", stats.render.reflections)
}

// debugCheckWidth warns when the surface is wider than the screen.
func (d *Dock) debugCheckWidth() {
	if d.screenW > 0 && d.surface.Width() > d.screenW {
		Logger().Warn("dock wider than screen",
			"width", d.surface.Width(), "screen", d.screenW, "items", len(d.items))
	}
}

// countSlots returns the number of item, separator and gap slots in lay.
func countSlots(lay Layout) (items, separators, gaps int) {
	for _, s := range lay.Slots {
		switch {
		case s.Gap:
			gaps++
		case s.Separator:
			separators++
		default:
			items++
		}
	}
	return items, separators, gaps
}
