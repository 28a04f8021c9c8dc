package dock

// BlendOver composites straight-alpha src over dst with integer arithmetic.
// A fully transparent source leaves dst unchanged and a fully opaque source
// replaces it.
func BlendOver(dst, src uint32) uint32 {
	sa := src >> 24
	if sa == 0 {
		return dst
	}
	if sa == 255 {
		return src
	}

	da := dst >> 24
	inv := 255 - sa
	outA := sa + da*inv/255
	if outA == 0 {
		return 0
	}

	dw := da * inv / 255
	r := ((src>>16&0xFF)*sa + (dst>>16&0xFF)*dw) / outA
	g := ((src>>8&0xFF)*sa + (dst>>8&0xFF)*dw) / outA
	b := ((src&0xFF)*sa + (dst&0xFF)*dw) / outA
	return outA<<24 | min(r, 255)<<16 | min(g, 255)<<8 | min(b, 255)
}

// withAlpha replaces the alpha byte of an ARGB pixel.
func withAlpha(p uint32, a uint8) uint32 {
	return p&0x00FFFFFF | uint32(a)<<24
}
