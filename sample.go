package dock

import "github.com/chewxy/math32"

// cubicHermite evaluates the Catmull-Rom spline through b and c at t in
// [0, 1], with a and d as the outer control points.
func cubicHermite(a, b, c, d, t float32) float32 {
	a0 := -a/2 + 3*b/2 - 3*c/2 + d/2
	a1 := a - 5*b/2 + 2*c - d/2
	a2 := -a/2 + c/2
	return ((a0*t+a1)*t+a2)*t + b
}

// BicubicSample samples a square ARGB buffer of edge length size at the
// fractional position (x, y). Each channel is interpolated independently over
// a 4x4 neighbourhood with edge clamping; results are clamped to [0, 255].
func BicubicSample(pix []uint32, size int, x, y float32) uint32 {
	if size <= 0 || len(pix) < size*size {
		return 0
	}
	x0 := int(math32.Floor(x))
	y0 := int(math32.Floor(y))
	fx := x - float32(x0)
	fy := y - float32(y0)

	var taps [4][4]uint32
	for j := 0; j < 4; j++ {
		py := clampInt(y0-1+j, 0, size-1)
		row := pix[py*size : py*size+size]
		for i := 0; i < 4; i++ {
			taps[j][i] = row[clampInt(x0-1+i, 0, size-1)]
		}
	}

	var out uint32
	for shift := 24; shift >= 0; shift -= 8 {
		var cols [4]float32
		for j := 0; j < 4; j++ {
			cols[j] = cubicHermite(
				channel(taps[j][0], shift),
				channel(taps[j][1], shift),
				channel(taps[j][2], shift),
				channel(taps[j][3], shift),
				fx,
			)
		}
		v := cubicHermite(cols[0], cols[1], cols[2], cols[3], fy)
		out |= uint32(roundByte(v)) << shift
	}
	return out
}

// ResampleBicubic scales a square buffer to dst x dst pixels.
func ResampleBicubic(pix []uint32, size, dst int) []uint32 {
	out := make([]uint32, dst*dst)
	if dst <= 0 || size <= 0 {
		return out
	}
	scale := float32(size) / float32(dst)
	for y := 0; y < dst; y++ {
		for x := 0; x < dst; x++ {
			out[y*dst+x] = BicubicSample(pix, size, float32(x)*scale, float32(y)*scale)
		}
	}
	return out
}

func channel(p uint32, shift int) float32 {
	return float32(p >> shift & 0xFF)
}

// roundByte rounds to the nearest integer in [0, 255].
func roundByte(v float32) uint8 {
	return clampByte(float64(v) + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
