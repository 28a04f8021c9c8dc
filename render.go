package dock

import "math"

// Rendering constants.
const (
	liftFactor       = 1.5  // vertical rise per unit of extra scale, in icon sizes
	minIconTop       = 2    // icons never rise above this row
	reflectionGap    = 2    // pixels between an icon and its reflection
	reflectionHeight = 0.35 // reflection height relative to the drawn icon
	reflectionPeak   = 60   // reflection alpha at the top row
)

// Frame is the per-tick input to the compositor.
type Frame struct {
	Items   []Item
	Running []bool
	Scales  []float64
	Lifts   []float64 // extra upward offset in pixels, e.g. launch bounce
	Drag    *DragSession
}

// Compositor draws the dock into a Surface. It keeps scratch buffers between
// frames and is not safe for concurrent use.
type Compositor struct {
	settings Settings
	cache    *IconCache
	slots    []Slot
	draws    []iconDraw
	stats    renderStats
}

// iconDraw records a drawn icon for the reflection pass.
type iconDraw struct {
	icon       *Icon
	x, y, size int
}

// renderStats counts what the last Render call drew.
type renderStats struct {
	icons        int
	placeholders int
	glows        int
	reflections  int
}

// NewCompositor creates a compositor drawing icons from cache.
func NewCompositor(s Settings, cache *IconCache) *Compositor {
	return &Compositor{settings: s.Validate(), cache: cache}
}

// SetSettings replaces the appearance settings.
func (c *Compositor) SetSettings(s Settings) {
	c.settings = s.Validate()
}

// Render overwrites dst with one frame and returns the layout it used.
// Layers, back to front: background, drop indicator and items with their
// glow and running indicators, reflections, then the dragged icon.
func (c *Compositor) Render(dst *Surface, f Frame) Layout {
	s := c.settings
	c.stats = renderStats{}
	dst.Clear()
	drawBackground(dst, s.Background, s.CornerRadius)

	m := MetricsFor(s, dst.Width())
	lay := ComputeLayout(m, f.Items, f.Scales, f.Drag, c.slots)
	c.slots = lay.Slots
	c.draws = c.draws[:0]

	for _, slot := range lay.Slots {
		x := floorInt(slot.X)
		switch {
		case slot.Gap:
			drawDropIndicator(dst, x, s.Padding.Top, s.IconSize, s.Accent)
		case slot.Separator:
			drawSeparator(dst, x, s.Padding.Top, s.IconSize, s.Accent)
		default:
			c.drawItem(dst, f, slot, x)
		}
	}

	for _, d := range c.draws {
		drawReflection(dst, d.icon, d.x, d.y+d.size+reflectionGap, d.size)
		c.stats.reflections++
	}

	if f.Drag != nil && f.Drag.Dragging && f.Drag.Source >= 0 && f.Drag.Source < len(f.Items) {
		c.drawDragged(dst, f.Items[f.Drag.Source], f.Drag.CursorX)
	}
	return lay
}

func (c *Compositor) drawItem(dst *Surface, f Frame, slot Slot, x int) {
	s := c.settings
	size := int(float64(s.IconSize) * slot.Scale)
	lift := (slot.Scale-1)*float64(s.IconSize)*liftFactor + scaleAt0(f.Lifts, slot.Index)
	y := int(math.Max(float64(s.Padding.Top)-lift, minIconTop))

	if slot.Scale > glowScaleThreshold {
		drawGlow(dst, x+size/2, y+size/2, int(float64(size)*glowRadiusFactor),
			glowPeakAlpha*glowIntensity(slot.Scale), s.Accent)
		c.stats.glows++
	}

	it := f.Items[slot.Index]
	if ic, ok := c.icon(it); ok {
		drawIcon(dst, ic, x, y, size)
		c.draws = append(c.draws, iconDraw{icon: ic, x: x, y: y, size: size})
		c.stats.icons++
	} else {
		drawPlaceholder(dst, x, y, size, s.Accent)
		c.stats.placeholders++
	}

	if slot.Index < len(f.Running) && f.Running[slot.Index] {
		drawRunningIndicator(dst, x+size/2, c.indicatorY(dst.Height()), s.Accent)
	}
}

// indicatorY is the running indicator row. A positive vertical offset pushes
// the bottom of the surface off screen, so the dot moves up with it but never
// into the icon row.
func (c *Compositor) indicatorY(height int) int {
	s := c.settings
	if s.VerticalOffset > 0 {
		return max(height-indicatorInset-s.VerticalOffset, s.Padding.Top+s.IconSize)
	}
	return height - indicatorInset
}

// drawDragged draws the dragged item at rest size, centred on the pointer.
func (c *Compositor) drawDragged(dst *Surface, it Item, cursorX float64) {
	s := c.settings
	if it.IsSeparator() {
		sw := int(float64(s.IconSize) / 3)
		drawSeparator(dst, max(floorInt(cursorX)-sw/2, 0), s.Padding.Top, s.IconSize, s.Accent)
		return
	}
	x := max(floorInt(cursorX-float64(s.IconSize)/2), 0)
	if ic, ok := c.icon(it); ok {
		drawIcon(dst, ic, x, s.Padding.Top, s.IconSize)
		return
	}
	drawPlaceholder(dst, x, s.Padding.Top, s.IconSize, s.Accent)
}

func (c *Compositor) icon(it Item) (*Icon, bool) {
	if c.cache == nil || it.Icon == "" {
		return nil, false
	}
	return c.cache.Get(it.Icon)
}

// drawIcon scales ic to size x size with bicubic sampling and blends it at
// (x, y). Fully transparent samples are skipped.
func drawIcon(dst *Surface, ic *Icon, x, y, size int) {
	if size <= 0 {
		return
	}
	scale := float32(ic.Size) / float32(size)
	for iy := 0; iy < size; iy++ {
		for ix := 0; ix < size; ix++ {
			p := BicubicSample(ic.Pix, ic.Size, float32(ix)*scale, float32(iy)*scale)
			if p>>24 != 0 {
				dst.Blend(x+ix, y+iy, p)
			}
		}
	}
}

// drawReflection draws the bottom part of ic flipped vertically, starting
// at (x, y), fading out quadratically over its height.
func drawReflection(dst *Surface, ic *Icon, x, y, size int) {
	h := min(int(float64(size)*reflectionHeight), size)
	if h <= 0 {
		return
	}
	scale := float32(ic.Size) / float32(size)
	for iy := 0; iy < h; iy++ {
		fade := 1 - float64(iy)/float64(h)
		rowAlpha := uint32(fade * fade * reflectionPeak)
		if rowAlpha == 0 {
			continue
		}
		sy := float32(size-1-iy) * scale
		for ix := 0; ix < size; ix++ {
			p := BicubicSample(ic.Pix, ic.Size, float32(ix)*scale, sy)
			sa := p >> 24
			if sa == 0 {
				continue
			}
			a := min(sa*rowAlpha/255, rowAlpha)
			dst.Blend(x+ix, y+iy, p&0x00FFFFFF|a<<24)
		}
	}
}

func scaleAt0(v []float64, i int) float64 {
	if i >= 0 && i < len(v) {
		return v[i]
	}
	return 0
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
