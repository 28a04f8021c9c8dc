package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontSize   = 13
	tooltipPad = 6
	// tooltipGap separates the tooltip from the dock's top edge.
	tooltipGap = 6
	// tooltipHeadroom is the window area kept above the dock for the tooltip
	// and the FPS overlay.
	tooltipHeadroom = 36
)

var (
	tooltipBg   = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xee}
	menuBg      = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xf4}
	menuHover   = color.NRGBA{R: 0x45, G: 0x47, B: 0x5a, A: 0xff}
	menuLine    = color.NRGBA{R: 0x58, G: 0x5b, B: 0x70, A: 0xff}
	textColor   = color.NRGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}
	fpsBg       = color.RGBA{0, 0, 0, 128}
	fpsInterval = 500 * time.Millisecond
)

// painter draws the window's text and flat shapes.
type painter struct {
	face  *text.GoTextFace
	lh    float64
	white *ebiten.Image
}

func newPainter() (*painter, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load tooltip font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: fontSize}
	m := face.Metrics()
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &painter{face: face, lh: m.HAscent + m.HDescent + m.HLineGap, white: white}, nil
}

func (p *painter) rect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(p.white, op)
}

func (p *painter) text(dst *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, s, p.face, op)
}

// tooltipRect returns the tooltip box for a label of size (tw, th), centred
// on anchorX with its bottom edge tooltipGap above bottom, kept inside the
// window.
func tooltipRect(tw, th, anchorX, bottom, windowW float64) (x, y, w, h float64) {
	w, h = tw+2*tooltipPad, th+2*tooltipPad
	x = anchorX - w/2
	x = max(min(x, windowW-w), 0)
	y = bottom - tooltipGap - h
	return x, y, w, h
}

// drawTooltip draws label centred on anchorX above bottom.
func (p *painter) drawTooltip(dst *ebiten.Image, label string, anchorX, bottom float64) {
	tw, th := text.Measure(label, p.face, p.lh)
	x, y, w, h := tooltipRect(tw, th, anchorX, bottom, float64(dst.Bounds().Dx()))
	p.rect(dst, x, y, w, h, tooltipBg)
	p.text(dst, label, x+tooltipPad, y+tooltipPad)
}

func (p *painter) drawMenu(dst *ebiten.Image, m *contextMenu) {
	w, h := m.size()
	p.rect(dst, m.x, m.y, w, h, menuBg)
	top := m.y + menuPad
	for i, e := range m.entries {
		eh := e.height()
		switch {
		case e.separator():
			p.rect(dst, m.x+menuPad, top+eh/2, w-2*menuPad, 1, menuLine)
		default:
			if i == m.hover {
				p.rect(dst, m.x+menuPad, top, w-2*menuPad, eh, menuHover)
			}
			p.text(dst, e.label, m.x+3*menuPad, top+(eh-p.lh)/2)
		}
		top += eh
	}
}

// fpsOverlay shows the current FPS and TPS, refreshed twice a second.
type fpsOverlay struct {
	img  *ebiten.Image
	last time.Time
}

func (o *fpsOverlay) update(now time.Time) {
	if o.img == nil {
		// Enough for "FPS: 60.0\nTPS: 60.0".
		o.img = ebiten.NewImage(100, 32)
	}
	if now.Sub(o.last) < fpsInterval {
		return
	}
	o.last = now
	o.img.Clear()
	o.img.Fill(fpsBg)
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	if o.img != nil {
		dst.DrawImage(o.img, nil)
	}
}
