package dock

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/bmp"
)

var (
	errNotICO      = errors.New("not an ico file")
	errICOEmpty    = errors.New("ico directory has no entries")
	errICOTruncate = errors.New("ico entry out of range")
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// icoEntry is one ICONDIRENTRY.
type icoEntry struct {
	width, height int
	bpp           int
	size, offset  uint32
}

// parseICODir reads the icon directory at the start of data.
func parseICODir(data []byte) ([]icoEntry, error) {
	if len(data) < 6 {
		return nil, errNotICO
	}
	le := binary.LittleEndian
	if le.Uint16(data[0:]) != 0 {
		return nil, errNotICO
	}
	if typ := le.Uint16(data[2:]); typ != 1 && typ != 2 {
		return nil, errNotICO
	}
	count := int(le.Uint16(data[4:]))
	if count == 0 {
		return nil, errICOEmpty
	}
	if len(data) < 6+16*count {
		return nil, errICOTruncate
	}
	entries := make([]icoEntry, count)
	for i := range entries {
		b := data[6+16*i:]
		w, h := int(b[0]), int(b[1])
		if w == 0 {
			w = 256
		}
		if h == 0 {
			h = 256
		}
		entries[i] = icoEntry{
			width:  w,
			height: h,
			bpp:    int(le.Uint16(b[6:])),
			size:   le.Uint32(b[8:]),
			offset: le.Uint32(b[12:]),
		}
	}
	return entries, nil
}

// largestICOEntry picks the entry with the most pixels, preferring deeper
// color on ties.
func largestICOEntry(entries []icoEntry) icoEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		area, bestArea := e.width*e.height, best.width*best.height
		if area > bestArea || (area == bestArea && e.bpp > best.bpp) {
			best = e
		}
	}
	return best
}

// decodeICO decodes the largest image in an ICO or CUR file.
func decodeICO(data []byte) (image.Image, error) {
	entries, err := parseICODir(data)
	if err != nil {
		return nil, err
	}
	e := largestICOEntry(entries)
	end := uint64(e.offset) + uint64(e.size)
	if e.size == 0 || end > uint64(len(data)) {
		return nil, errICOTruncate
	}
	payload := data[e.offset:end]
	if bytes.HasPrefix(payload, pngMagic) {
		img, err := png.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("ico png entry: %w", err)
		}
		return img, nil
	}
	return decodeDIB(payload)
}

// decodeDIB decodes a headerless bitmap as stored in ICO entries: the
// height field covers both the color bitmap and the trailing AND mask.
func decodeDIB(b []byte) (image.Image, error) {
	le := binary.LittleEndian
	if len(b) < 40 {
		return nil, fmt.Errorf("ico bitmap header: %w", errICOTruncate)
	}
	hdr := int(le.Uint32(b[0:]))
	w := int(int32(le.Uint32(b[4:])))
	h := int(int32(le.Uint32(b[8:]))) / 2
	bpp := int(le.Uint16(b[14:]))
	compression := le.Uint32(b[16:])
	if w <= 0 || h <= 0 || hdr < 40 || hdr > len(b) {
		return nil, fmt.Errorf("ico bitmap %dx%d: invalid header", w, h)
	}
	if compression != 0 && !(compression == 3 && bpp == 32) {
		return nil, fmt.Errorf("ico bitmap: unsupported compression %d", compression)
	}

	var paletteLen int
	if bpp <= 8 {
		colors := int(le.Uint32(b[32:]))
		if colors == 0 {
			colors = 1 << bpp
		}
		paletteLen = colors * 4
	}
	pixStart := hdr + paletteLen
	if compression == 3 && hdr == 40 {
		pixStart += 12 // channel masks follow the header
	}
	stride := ((w*bpp + 31) / 32) * 4
	maskStart := pixStart + stride*h
	if maskStart > len(b) {
		return nil, fmt.Errorf("ico bitmap pixels: %w", errICOTruncate)
	}

	var img *image.NRGBA
	switch bpp {
	case 32:
		img = image.NewNRGBA(image.Rect(0, 0, w, h))
		var anyAlpha bool
		for y := 0; y < h; y++ {
			row := b[pixStart+(h-1-y)*stride:]
			for x := 0; x < w; x++ {
				px := row[x*4:]
				o := img.PixOffset(x, y)
				img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = px[2], px[1], px[0], px[3]
				anyAlpha = anyAlpha || px[3] != 0
			}
		}
		if anyAlpha {
			return img, nil
		}
		opaque(img)
	case 24:
		img = image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := b[pixStart+(h-1-y)*stride:]
			for x := 0; x < w; x++ {
				px := row[x*3:]
				o := img.PixOffset(x, y)
				img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = px[2], px[1], px[0], 0xFF
			}
		}
	default:
		dec, err := bmp.Decode(bytes.NewReader(wrapDIB(b[:maskStart], h, pixStart)))
		if err != nil {
			return nil, fmt.Errorf("ico %d-bit bitmap: %w", bpp, err)
		}
		img = toNRGBA(dec)
	}
	applyANDMask(img, b[maskStart:])
	return img, nil
}

// wrapDIB prefixes a BITMAPFILEHEADER and rewrites the doubled height so the
// result is a standalone BMP file.
func wrapDIB(dib []byte, h, pixStart int) []byte {
	le := binary.LittleEndian
	out := make([]byte, 14+len(dib))
	out[0], out[1] = 'B', 'M'
	le.PutUint32(out[2:], uint32(len(out)))
	le.PutUint32(out[10:], uint32(14+pixStart))
	copy(out[14:], dib)
	le.PutUint32(out[14+8:], uint32(h))
	return out
}

// applyANDMask clears pixels whose mask bit is set. The mask is a bottom-up
// 1bpp bitmap; a missing or short mask leaves the image opaque.
func applyANDMask(img *image.NRGBA, mask []byte) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	stride := ((w + 31) / 32) * 4
	if len(mask) < stride*h {
		return
	}
	for y := 0; y < h; y++ {
		row := mask[(h-1-y)*stride:]
		for x := 0; x < w; x++ {
			if row[x/8]&(0x80>>(x%8)) != 0 {
				img.Pix[img.PixOffset(x, y)+3] = 0
			}
		}
	}
}

func opaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
}

// toNRGBA converts any image to a straight-alpha NRGBA copy anchored at the
// origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	bnd := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bnd.Dx(), bnd.Dy()))
	for y := 0; y < bnd.Dy(); y++ {
		for x := 0; x < bnd.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(bnd.Min.X+x, bnd.Min.Y+y)).(color.NRGBA)
			o := dst.PixOffset(x, y)
			dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3] = c.R, c.G, c.B, c.A
		}
	}
	return dst
}
