package dock

import "math"

// Glass gradient parameters.
const (
	glassGradient     = 0.08 // brightening at the top edge, fading to 0 at the bottom
	glassHighlight    = 0.25 // extra brightening in the top band
	glassHighlightTop = 0.15 // fraction of the height covered by the highlight band
)

// drawBackground fills the surface with the rounded glass panel. Pixels
// outside the rounded corners are left untouched; the one-pixel band along
// each corner arc is anti-aliased.
func drawBackground(dst *Surface, bg uint32, radius int) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	baseA, baseR, baseG, baseB := UnpackARGB(bg)
	r := min(radius, w/2, h/2)
	pix := dst.Pix()

	for y := 0; y < h; y++ {
		yf := float64(y) / float64(h)
		grad := 1 + (1-yf)*glassGradient
		if yf < glassHighlightTop {
			grad += glassHighlight * (1 - yf/glassHighlightTop)
		}
		rgb := PackARGB(0,
			clampByte(float64(baseR)*grad),
			clampByte(float64(baseG)*grad),
			clampByte(float64(baseB)*grad),
		)
		row := pix[y*w : y*w+w]
		for x := range row {
			dist := cornerDistance(x, y, w, h, r)
			if dist >= 1 {
				continue
			}
			a := float64(baseA)
			if dist >= 0 {
				a *= 1 - dist
			}
			row[x] = uint32(a)<<24 | rgb
		}
	}
}

// cornerDistance returns how far (x, y) lies outside the rounded corner arc
// of radius r. Points away from the corners report -1.
func cornerDistance(x, y, w, h, r int) float64 {
	var dx, dy int
	switch {
	case x < r && y < r:
		dx, dy = r-x, r-y
	case x >= w-r && y < r:
		dx, dy = x-(w-r-1), r-y
	case x < r && y >= h-r:
		dx, dy = r-x, y-(h-r-1)
	case x >= w-r && y >= h-r:
		dx, dy = x-(w-r-1), y-(h-r-1)
	default:
		return -1
	}
	return math.Hypot(float64(dx), float64(dy)) - float64(r)
}
