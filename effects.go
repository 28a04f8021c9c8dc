package dock

import "math"

// Effect constants.
const (
	glowRadiusFactor   = 0.6 // magnification glow radius relative to icon size
	glowPeakAlpha      = 50
	glowScaleThreshold = 1.05

	indicatorGlowRadius = 8
	indicatorGlowPeak   = 80
	indicatorDotRadius  = 3
	indicatorInset      = 5 // distance of the dot centre from the surface bottom

	separatorLineWidth = 2
	separatorHeight    = 0.6
	separatorAlpha     = 128
	separatorEdgeFade  = 0.15

	dropLineWidth = 3
	dropAlpha     = 220
	dropEdgeFade  = 0.1

	placeholderAlpha = 0x80
)

// glowIntensity maps an icon scale to the magnification glow strength.
func glowIntensity(scale float64) float64 {
	return math.Min((scale-1)*2, 1)
}

// drawGlow blends a radial glow of the accent color centred on (cx, cy).
// Alpha falls off quadratically from peak at the centre to 0 at radius.
func drawGlow(dst *Surface, cx, cy, radius int, peak float64, accent uint32) {
	if radius <= 0 {
		return
	}
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > rr {
				continue
			}
			falloff := 1 - math.Sqrt(float64(d2))/float64(radius)
			a := falloff * falloff * peak
			if a < 1 {
				continue
			}
			dst.Blend(cx+dx, cy+dy, withAlpha(accent, clampByte(a)))
		}
	}
}

// fillCircle writes an opaque disc without blending.
func fillCircle(dst *Surface, cx, cy, radius int, p uint32) {
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				dst.Set(cx+dx, cy+dy, p)
			}
		}
	}
}

// drawRunningIndicator draws the glowing dot under a running item.
func drawRunningIndicator(dst *Surface, cx, cy int, accent uint32) {
	drawGlow(dst, cx, cy, indicatorGlowRadius, indicatorGlowPeak, accent)
	fillCircle(dst, cx, cy, indicatorDotRadius, withAlpha(accent, 0xFF))
}

// placeholderColor is the accent at half intensity and half opacity.
func placeholderColor(accent uint32) uint32 {
	_, r, g, b := UnpackARGB(accent)
	return PackARGB(placeholderAlpha, r/2, g/2, b/2)
}

// drawPlaceholder fills a rounded square for items without a usable icon.
func drawPlaceholder(dst *Surface, x, y, size int, accent uint32) {
	c := placeholderColor(accent)
	r := size / 6
	for iy := 0; iy < size; iy++ {
		for ix := 0; ix < size; ix++ {
			if insideRoundedSquare(ix, iy, size, r) {
				dst.Blend(x+ix, y+iy, c)
			}
		}
	}
}

// insideRoundedSquare reports whether (x, y) lies within a size x size square
// whose corners are rounded with radius r.
func insideRoundedSquare(x, y, size, r int) bool {
	var dx, dy int
	switch {
	case x < r && y < r:
		dx, dy = r-x, r-y
	case x >= size-r && y < r:
		dx, dy = x-(size-r-1), r-y
	case x < r && y >= size-r:
		dx, dy = r-x, y-(size-r-1)
	case x >= size-r && y >= size-r:
		dx, dy = x-(size-r-1), y-(size-r-1)
	default:
		return true
	}
	return dx*dx+dy*dy <= r*r
}

// drawFadedBar blends a vertical bar whose alpha ramps up over the top
// edgeFade fraction of its height and down over the bottom one.
func drawFadedBar(dst *Surface, x, y, width, height int, peak, edgeFade float64, accent uint32) {
	if height <= 0 {
		return
	}
	for dy := 0; dy < height; dy++ {
		p := float64(dy) / float64(height)
		fade := 1.0
		switch {
		case p < edgeFade:
			fade = p / edgeFade
		case p > 1-edgeFade:
			fade = (1 - p) / edgeFade
		}
		c := withAlpha(accent, clampByte(peak*fade))
		for dx := 0; dx < width; dx++ {
			dst.Blend(x+dx, y+dy, c)
		}
	}
}

// drawSeparator centres a thin line in a separator slot starting at x.
func drawSeparator(dst *Surface, x, top, iconSize int, accent uint32) {
	h := int(float64(iconSize) * separatorHeight)
	sx := x + iconSize/6 - separatorLineWidth/2
	drawFadedBar(dst, sx, top+(iconSize-h)/2, separatorLineWidth, h, separatorAlpha, separatorEdgeFade, accent)
}

// drawDropIndicator marks the insertion point of a drag.
func drawDropIndicator(dst *Surface, x, top, iconSize int, accent uint32) {
	drawFadedBar(dst, x, top, dropLineWidth, iconSize, dropAlpha, dropEdgeFade, accent)
}
