package dock

import "image"

// Surface is a CPU pixel buffer of packed straight-alpha ARGB values, row
// major with no padding. The compositor overwrites it every frame.
type Surface struct {
	w, h int
	pix  []uint32
}

// NewSurface creates a transparent surface of the given size. Negative
// dimensions are treated as zero.
func NewSurface(w, h int) *Surface {
	w, h = max(w, 0), max(h, 0)
	return &Surface{w: w, h: h, pix: make([]uint32, w*h)}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.h }

// Pix returns the backing slice. Index with y*Width()+x.
func (s *Surface) Pix() []uint32 { return s.pix }

// Resize changes the surface dimensions, reusing the buffer when it is large
// enough. Contents are cleared.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	n := w * h
	if cap(s.pix) >= n {
		s.pix = s.pix[:n]
	} else {
		s.pix = make([]uint32, n)
	}
	s.w, s.h = w, h
	s.Clear()
}

// Clear fills the surface with transparent black.
func (s *Surface) Clear() {
	clear(s.pix)
}

// Fill sets every pixel to p.
func (s *Surface) Fill(p uint32) {
	for i := range s.pix {
		s.pix[i] = p
	}
}

// At returns the pixel at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	return s.pix[y*s.w+x]
}

// Set writes a pixel, ignoring out-of-range coordinates.
func (s *Surface) Set(x, y int, p uint32) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.pix[y*s.w+x] = p
}

// Blend composites p over the pixel at (x, y) using BlendOver.
func (s *Surface) Blend(x, y int, p uint32) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	i := y*s.w + x
	s.pix[i] = BlendOver(s.pix[i], p)
}

// NRGBA converts the surface to a straight-alpha image, suitable for PNG
// encoding.
func (s *Surface) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.w, s.h))
	for i, p := range s.pix {
		a, r, g, b := UnpackARGB(p)
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = a
	}
	return img
}

// WritePremultipliedRGBA fills dst (4*Width*Height bytes) with premultiplied
// RGBA, the layout GPU texture uploads expect. Short buffers are filled as
// far as they go.
func (s *Surface) WritePremultipliedRGBA(dst []byte) {
	for i, p := range s.pix {
		o := i * 4
		if o+3 >= len(dst) {
			return
		}
		a, r, g, b := UnpackARGB(p)
		dst[o] = premul(r, a)
		dst[o+1] = premul(g, a)
		dst[o+2] = premul(b, a)
		dst[o+3] = a
	}
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
