package dock

import "testing"

const (
	testRed   = 0xFFFF0000
	testBlack = 0xFF000000
)

func renderSettings() Settings {
	s := DefaultSettings()
	s.IconSize = 16
	s.Spacing = 4
	s.Padding = UniformInsets(4)
	s.CornerRadius = 6
	s.Background = testBlack
	s.Accent = 0xFFCBA6F7
	return s
}

// newTestCompositor returns a compositor whose cache holds a solid red icon
// under the path "red".
func newTestCompositor(s Settings) *Compositor {
	cache := NewIconCache(0)
	cache.put("red", &Icon{Size: 32, Pix: solid(32, testRed)})
	return NewCompositor(s, cache)
}

func surfaceFor(s Settings, n int) *Surface {
	return NewSurface(PreferredSize(s, n))
}

func TestRenderEmptyDrawsBackground(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	dst := surfaceFor(s, 0)
	dst.Resize(30, 31)

	lay := c.Render(dst, Frame{})
	if len(lay.Slots) != 0 {
		t.Errorf("slots = %d, want 0", len(lay.Slots))
	}
	if got := dst.At(15, 15); got != testBlack {
		t.Errorf("centre = %#08x, want background", got)
	}
	if got := dst.At(0, 0); got != 0 {
		t.Errorf("corner = %#08x, want transparent", got)
	}
}

func TestRenderBackgroundGradient(t *testing.T) {
	s := renderSettings()
	s.Background = 0xFF646464
	c := newTestCompositor(s)
	dst := NewSurface(40, 40)
	c.Render(dst, Frame{})

	_, top, _, _ := UnpackARGB(dst.At(20, 0))
	_, mid, _, _ := UnpackARGB(dst.At(20, 20))
	_, bottom, _, _ := UnpackARGB(dst.At(20, 39))
	if !(top > mid && mid > bottom) {
		t.Errorf("gradient top/mid/bottom = %d/%d/%d, want decreasing", top, mid, bottom)
	}
	// yf=0: 100 * (1 + 0.08 + 0.25)
	if top != 133 {
		t.Errorf("top row red = %d, want 133", top)
	}
}

func TestRenderCornerAntialias(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	dst := NewSurface(40, 40)
	c.Render(dst, Frame{})

	// (1, 2) lies 0 < dist < 1 outside the corner arc of radius 6.
	a := dst.At(1, 2) >> 24
	if a == 0 || a == 255 {
		t.Errorf("edge alpha = %d, want partial", a)
	}
}

func TestRenderIconAndReflection(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	dst := surfaceFor(s, 1)

	lay := c.Render(dst, Frame{Items: []Item{{Name: "R", Icon: "red"}}, Scales: []float64{1}})
	x := int(lay.Slots[0].X)
	if got := dst.At(x+8, 4+8); got != testRed {
		t.Errorf("icon centre = %#08x, want red", got)
	}

	// First reflection row: alpha 60 red over opaque black.
	a, r, g, _ := UnpackARGB(dst.At(x+8, 4+16+2))
	if a != 255 || r < 50 || r > 70 || g != 0 {
		t.Errorf("reflection = a%d r%d g%d, want faint red", a, r, g)
	}
	if c.stats.icons != 1 || c.stats.reflections != 1 {
		t.Errorf("stats = %+v", c.stats)
	}
}

func TestRenderPlaceholderForMissingIcon(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	dst := surfaceFor(s, 2)

	c.Render(dst, Frame{Items: []Item{{Name: "none"}, {Name: "broken", Icon: "missing.png"}}})
	if c.stats.placeholders != 2 || c.stats.icons != 0 {
		t.Errorf("stats = %+v, want 2 placeholders", c.stats)
	}
	want := BlendOver(testBlack, placeholderColor(s.Accent))
	lay := ComputeLayout(MetricsFor(s, dst.Width()), []Item{{}, {}}, nil, nil, nil)
	for _, sl := range lay.Slots {
		if got := dst.At(int(sl.X)+8, 12); got != want {
			t.Errorf("placeholder %d centre = %#08x, want %#08x", sl.Index, got, want)
		}
	}
}

func TestRenderRunningIndicator(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	dst := surfaceFor(s, 1)

	lay := c.Render(dst, Frame{Items: []Item{{Name: "app"}}, Running: []bool{true}})
	cx := int(lay.Slots[0].X) + 8
	cy := dst.Height() - 5
	if got := dst.At(cx, cy); got != s.Accent {
		t.Errorf("indicator dot = %#08x, want accent %#08x", got, s.Accent)
	}
	if got := dst.At(cx+6, cy); got == s.Accent || got == testBlack {
		t.Errorf("indicator glow = %#08x, want blended accent", got)
	}
}

func TestIndicatorYWithOffset(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	if got := c.indicatorY(31); got != 26 {
		t.Errorf("no offset: y = %d, want 26", got)
	}
	s.VerticalOffset = 4
	c.SetSettings(s)
	if got := c.indicatorY(31); got != 22 {
		t.Errorf("offset 4: y = %d, want 22", got)
	}
	s.VerticalOffset = 20
	c.SetSettings(s)
	if got := c.indicatorY(31); got != 20 {
		t.Errorf("offset 20: y = %d, want clamp to icon bottom 20", got)
	}
}

func TestRenderGlowOnlyWhenMagnified(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	items := []Item{{Icon: "red"}, {Icon: "red"}}
	dst := surfaceFor(s, 2)

	c.Render(dst, Frame{Items: items, Scales: []float64{1.04, 1}})
	if c.stats.glows != 0 {
		t.Errorf("glows = %d at scale 1.04, want 0", c.stats.glows)
	}
	c.Render(dst, Frame{Items: items, Scales: []float64{1.5, 1.2}})
	if c.stats.glows != 2 {
		t.Errorf("glows = %d, want 2", c.stats.glows)
	}
}

func TestRenderMagnifiedIconRises(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	dst := surfaceFor(s, 1)
	c.Render(dst, Frame{Items: []Item{{Icon: "red"}}, Scales: []float64{1.5}})
	if len(c.draws) != 1 {
		t.Fatalf("draws = %d", len(c.draws))
	}
	d := c.draws[0]
	if d.size != 24 || d.y != minIconTop {
		t.Errorf("draw = size %d y %d, want 24 at y %d", d.size, d.y, minIconTop)
	}
}

func TestRenderDraggedIconFollowsCursor(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	items := []Item{{Icon: "red"}, {Name: "b"}, {Name: "c"}}
	dst := surfaceFor(s, 3)

	drag := &DragSession{Source: 0, Dragging: true, DropIndex: 2, CursorX: 5}
	lay := c.Render(dst, Frame{Items: items, Drag: drag})

	var gaps int
	for _, sl := range lay.Slots {
		if sl.Gap {
			gaps++
		}
	}
	if gaps != 1 {
		t.Errorf("gap slots = %d, want 1", gaps)
	}
	// Dragged icon drawn at x = max(5-8, 0) = 0, y = PadTop.
	if got := dst.At(2, 10); got != testRed {
		t.Errorf("dragged icon pixel = %#08x, want red", got)
	}
}

func TestRenderOverwritesBuffer(t *testing.T) {
	s := renderSettings()
	c := newTestCompositor(s)
	items := []Item{{Icon: "red"}, NewSeparator(), {Name: "x"}}
	dst := surfaceFor(s, 3)

	f := Frame{Items: items, Scales: []float64{1.3, 1, 1.1}, Running: []bool{true, false, true}}
	c.Render(dst, f)
	first := append([]uint32(nil), dst.Pix()...)
	dst.Fill(0xFFFFFFFF)
	c.Render(dst, f)
	for i, p := range dst.Pix() {
		if p != first[i] {
			t.Fatalf("pixel %d differs between identical frames: %#08x vs %#08x", i, p, first[i])
		}
	}
}
