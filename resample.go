package dock

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF icons
	_ "image/jpeg" // register JPEG icons
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/jackmordaunt/icns/v2"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP icons
	_ "golang.org/x/image/tiff" // register TIFF icons
	_ "golang.org/x/image/webp" // register WebP icons
)

// Icon is a square straight-alpha ARGB pixel buffer.
type Icon struct {
	Size int
	Pix  []uint32
}

// decodeIconFile reads an icon from disk.
func decodeIconFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	img, err := decodeIconBytes(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// decodeIconBytes dispatches on the extension first and the sniffed content
// second. ICO directories that cannot be parsed fall through to the generic
// decoders.
func decodeIconBytes(data []byte, ext string) (image.Image, error) {
	kind, _ := filetype.Match(data)
	switch {
	case ext == ".ico" || ext == ".cur" || kind.Extension == "ico":
		if img, err := decodeICO(data); err == nil {
			return img, nil
		}
	case ext == ".icns" || bytes.HasPrefix(data, []byte("icns")):
		return icns.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if kind != filetype.Unknown {
			return nil, fmt.Errorf("%s content: %w", kind.Extension, err)
		}
		return nil, err
	}
	return img, nil
}

// resizeSquare scales src to size x size. Sources smaller than the target
// are upscaled with Catmull-Rom, larger ones decimated with Lanczos-3. The
// result is premultiplied.
func resizeSquare(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	if min(b.Dx(), b.Dy()) < size {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		return dst
	}
	return transform.Resize(src, size, size, transform.Lanczos)
}

// iconFromRGBA converts premultiplied pixels to a straight-alpha Icon.
func iconFromRGBA(img *image.RGBA, size int) *Icon {
	pix := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			o := img.PixOffset(x, y)
			r, g, b, a := img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				b = uint8(min(int(b)*255/int(a), 255))
			}
			pix[y*size+x] = PackARGB(a, r, g, b)
		}
	}
	return &Icon{Size: size, Pix: pix}
}

// sharpen applies a 3x3 unsharp mask to the RGB channels of interior pixels.
// Fully transparent pixels and the one-pixel border keep their values and
// alpha is never changed.
func sharpen(ic *Icon, strength float64) {
	n := ic.Size
	if strength <= 0 || n < 3 {
		return
	}
	// The convolution runs on the raw straight-alpha bytes.
	src := image.NewRGBA(image.Rect(0, 0, n, n))
	for i, p := range ic.Pix {
		a, r, g, b := UnpackARGB(p)
		o := i * 4
		src.Pix[o], src.Pix[o+1], src.Pix[o+2], src.Pix[o+3] = r, g, b, a
	}
	k := convolution.NewKernel(3, 3)
	s := strength
	k.Matrix = []float64{
		0, -s, 0,
		-s, 1 + 4*s, -s,
		0, -s, 0,
	}
	out := convolution.Convolve(src, k, &convolution.Options{KeepAlpha: true})

	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			i := y*n + x
			a := uint8(ic.Pix[i] >> 24)
			if a == 0 {
				continue
			}
			o := out.PixOffset(x, y)
			ic.Pix[i] = PackARGB(a, out.Pix[o], out.Pix[o+1], out.Pix[o+2])
		}
	}
}

// loadIcon decodes, resamples and sharpens the icon at path.
func loadIcon(path string, size int, strength float64) (*Icon, error) {
	if size <= 0 {
		return nil, fmt.Errorf("load icon %s: invalid resolution %d", path, size)
	}
	img, err := decodeIconFile(path)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("load icon %s: empty image", path)
	}
	ic := iconFromRGBA(resizeSquare(img, size), size)
	sharpen(ic, strength)
	return ic, nil
}
