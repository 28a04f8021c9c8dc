package dock

// Pixels are packed straight-alpha ARGB: A<<24 | R<<16 | G<<8 | B.

// PackARGB packs straight-alpha channels into a pixel.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a pixel into its straight-alpha channels.
func UnpackARGB(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// clampByte truncates v into [0, 255].
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Rect is a pixel rectangle, y down. The dock uses it for its on-screen
// bounds when deciding whether the cursor has left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is in r. The left and top edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	inX := x >= r.X && x < r.X+r.Width
	inY := y >= r.Y && y < r.Y+r.Height
	return inX && inY
}

// Insets holds per-edge padding in pixels.
type Insets struct {
	Top, Right, Bottom, Left int
}

// UniformInsets returns insets with every edge set to v.
func UniformInsets(v int) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() int { return in.Top + in.Bottom }
