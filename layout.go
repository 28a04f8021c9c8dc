package dock

// Metrics are the layout inputs derived from settings and the surface size.
type Metrics struct {
	IconSize     float64
	Spacing      float64
	PadTop       float64
	SurfaceWidth float64
}

// MetricsFor derives layout metrics for a surface of the given width.
func MetricsFor(s Settings, surfaceWidth int) Metrics {
	return Metrics{
		IconSize:     float64(s.IconSize),
		Spacing:      float64(s.Spacing),
		PadTop:       float64(s.Padding.Top),
		SurfaceWidth: float64(surfaceWidth),
	}
}

// SeparatorWidth is the horizontal space a separator occupies.
func (m Metrics) SeparatorWidth() float64 {
	return m.IconSize / 3
}

// itemWidth returns the slot width for an item at the given scale.
func (m Metrics) itemWidth(it Item, scale float64) float64 {
	if it.IsSeparator() {
		return m.SeparatorWidth()
	}
	return m.IconSize * scale
}

// Slot is the horizontal placement of one item, or of the drop gap while a
// drag is in progress.
type Slot struct {
	Index     int // item index; -1 for the gap
	X         float64
	Width     float64
	Scale     float64
	Separator bool
	Gap       bool
}

// Layout is one frame's horizontal arrangement.
type Layout struct {
	StartX     float64
	TotalWidth float64
	Slots      []Slot
}

// DragSession tracks a press that may become a reorder drag.
type DragSession struct {
	Source    int     // item index under the press
	StartX    float64 // pointer x at press time
	CursorX   float64 // latest pointer x
	Dragging  bool    // threshold crossed
	DropIndex int     // insertion index counted before removing Source
}

// gapPosition converts a drop index into the position of the gap among the
// items that remain once the source is lifted out.
func gapPosition(from, to int) int {
	if to > from {
		return to - 1
	}
	return to
}

// scaleAt returns scales[i], defaulting to 1.
func scaleAt(scales []float64, i int) float64 {
	if i < len(scales) {
		return scales[i]
	}
	return 1
}

// ComputeLayout places items left to right, centred on the surface. While a
// drag is active the source item is omitted and a gap one spacing wide is
// inserted at the drop position. buf is reused for the slot slice when
// non-nil.
func ComputeLayout(m Metrics, items []Item, scales []float64, drag *DragSession, buf []Slot) Layout {
	dragging := drag != nil && drag.Dragging && drag.Source >= 0 && drag.Source < len(items)

	var total float64
	placed := 0
	for i, it := range items {
		if dragging && i == drag.Source {
			continue
		}
		if placed > 0 {
			total += m.Spacing
		}
		total += m.itemWidth(it, scaleAt(scales, i))
		placed++
	}
	gapAt := -1
	if dragging {
		total += m.Spacing
		gapAt = clampInt(gapPosition(drag.Source, drag.DropIndex), 0, placed)
	}

	lay := Layout{
		StartX:     (m.SurfaceWidth - total) / 2,
		TotalWidth: total,
		Slots:      buf[:0],
	}

	x := lay.StartX
	rendered := 0
	addGap := func() {
		lay.Slots = append(lay.Slots, Slot{Index: -1, X: x, Width: m.Spacing, Gap: true})
		x += m.Spacing
	}
	for i, it := range items {
		if dragging && i == drag.Source {
			continue
		}
		if rendered == gapAt {
			addGap()
		}
		sc := scaleAt(scales, i)
		w := m.itemWidth(it, sc)
		lay.Slots = append(lay.Slots, Slot{Index: i, X: x, Width: w, Scale: sc, Separator: it.IsSeparator()})
		x += w + m.Spacing
		rendered++
	}
	if dragging && gapAt >= rendered {
		addGap()
	}
	return lay
}

// SlotCenters returns each item's centre x at scale 1 with no drag active.
func SlotCenters(m Metrics, items []Item) []float64 {
	lay := ComputeLayout(m, items, nil, nil, nil)
	centers := make([]float64, len(items))
	for _, s := range lay.Slots {
		centers[s.Index] = s.X + s.Width/2
	}
	return centers
}

// HitTest returns the index of the item under (x, y), or -1. Items are
// tested at scale 1; each hit area extends half a spacing to either side and
// 30% of the icon size above and below the icon row.
func HitTest(m Metrics, items []Item, x, y float64) int {
	extra := m.IconSize * 0.3
	if y < m.PadTop-extra || y >= m.PadTop+m.IconSize+extra {
		return -1
	}
	half := m.Spacing / 2
	lay := ComputeLayout(m, items, nil, nil, nil)
	for _, s := range lay.Slots {
		if x >= s.X-half && x < s.X+s.Width+half {
			return s.Index
		}
	}
	return -1
}

// DropIndex returns the insertion index for a pointer at x, counted in the
// list before the dragged item is removed. Left of a slot's midpoint inserts
// before it, right of it inserts after.
func DropIndex(m Metrics, items []Item, x float64) int {
	lay := ComputeLayout(m, items, nil, nil, nil)
	for _, s := range lay.Slots {
		if x < s.X+s.Width/2 {
			return s.Index
		}
	}
	return len(items)
}

// Reorder moves the item at from to the drop index to, where to is counted
// before removal. It reports false and leaves items untouched when the move
// would not change the order.
func Reorder(items []Item, from, to int) ([]Item, bool) {
	if !reorders(len(items), from, to) {
		return items, false
	}
	return moveElem(items, from, to), true
}

// reorders reports whether moving from to the pre-removal drop index to
// changes the order of n elements.
func reorders(n, from, to int) bool {
	if from < 0 || from >= n || to < 0 || to > n {
		return false
	}
	return to != from && to != from+1
}

// moveElem returns a copy of s with the element at from moved to the drop
// index to.
func moveElem[T any](s []T, from, to int) []T {
	out := make([]T, 0, len(s))
	moved := s[from]
	out = append(out, s[:from]...)
	out = append(out, s[from+1:]...)
	at := gapPosition(from, to)
	out = append(out[:at], append([]T{moved}, out[at:]...)...)
	return out
}
