package dock

import "testing"

func TestNewSurface(t *testing.T) {
	s := NewSurface(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if len(s.Pix()) != 12 {
		t.Errorf("len(Pix) = %d, want 12", len(s.Pix()))
	}
	if neg := NewSurface(-1, 5); neg.Width() != 0 || len(neg.Pix()) != 0 {
		t.Error("negative width should clamp to 0")
	}
}

func TestSurfaceSetAtBounds(t *testing.T) {
	s := NewSurface(2, 2)
	s.Set(1, 1, 0xFF112233)
	if got := s.At(1, 1); got != 0xFF112233 {
		t.Errorf("At(1,1) = %#08x", got)
	}
	s.Set(5, 5, 0xFFFFFFFF)
	s.Set(-1, 0, 0xFFFFFFFF)
	if got := s.At(5, 5); got != 0 {
		t.Errorf("At out of range = %#08x, want 0", got)
	}
}

func TestSurfaceResizeClears(t *testing.T) {
	s := NewSurface(4, 4)
	s.Fill(0xFFFFFFFF)
	s.Resize(2, 2)
	if s.Width() != 2 || len(s.Pix()) != 4 {
		t.Fatalf("after shrink: %dx%d len %d", s.Width(), s.Height(), len(s.Pix()))
	}
	for i, p := range s.Pix() {
		if p != 0 {
			t.Fatalf("pixel %d = %#08x after resize, want 0", i, p)
		}
	}
	s.Resize(8, 8)
	if len(s.Pix()) != 64 {
		t.Errorf("after grow len = %d, want 64", len(s.Pix()))
	}
}

func TestSurfaceNRGBA(t *testing.T) {
	s := NewSurface(1, 1)
	s.Set(0, 0, 0x80102030)
	img := s.NRGBA()
	want := []uint8{0x10, 0x20, 0x30, 0x80}
	for i, v := range want {
		if img.Pix[i] != v {
			t.Errorf("Pix[%d] = %#x, want %#x", i, img.Pix[i], v)
		}
	}
}

func TestSurfaceWritePremultiplied(t *testing.T) {
	s := NewSurface(2, 1)
	s.Set(0, 0, 0xFFFF0000)
	s.Set(1, 0, 0x80FFFFFF)
	buf := make([]byte, 8)
	s.WritePremultipliedRGBA(buf)
	if buf[0] != 255 || buf[1] != 0 || buf[3] != 255 {
		t.Errorf("opaque red = %v", buf[:4])
	}
	if buf[4] != 128 || buf[7] != 128 {
		t.Errorf("half white = %v, want 128s", buf[4:])
	}
}
