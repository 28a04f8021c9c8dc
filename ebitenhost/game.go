// Package ebitenhost runs a dock in a borderless, transparent desktop window
// using Ebitengine. It loads and saves the configuration file, reloads it
// when it changes on disk, marks running items and launches clicked ones.
package ebitenhost

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/dock"
	"github.com/phanxgames/dock/config"
	"github.com/phanxgames/dock/running"
	"github.com/phanxgames/dock/watch"
)

// Options configures Run.
type Options struct {
	// ConfigPath is the configuration file. Empty means config.Locate's
	// default lookup.
	ConfigPath string
	// Title is the window title. Defaults to "dock".
	Title string
	// Debug logs per-frame timings at debug level.
	Debug bool
	// ShowFPS draws the FPS and TPS in the window's top-left corner.
	ShowFPS bool
	// Script, when set, drives the dock with a scripted test run and quits
	// when it finishes.
	Script *dock.TestRunner
}

// Run opens the dock window and drives it until ctx is cancelled, the user
// picks Quit, or the window is closed.
func Run(ctx context.Context, opts Options) error {
	path, err := config.Locate(opts.ConfigPath)
	if err != nil {
		return err
	}
	host := newPlatform(path)
	s, items, err := host.load()
	if err != nil {
		return err
	}
	d := dock.NewDock(s, items, host)
	d.SetDebugMode(opts.Debug)
	if opts.Script != nil {
		d.SetTestRunner(opts.Script)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	host.watcher = watch.New(path)
	go func() {
		if err := host.watcher.Run(ctx); err != nil && ctx.Err() == nil {
			dock.Logger().Warn("config watch stopped", "err", err)
		}
	}()
	poller := running.NewPoller(dock.RunningPollInterval)
	go poller.Run(ctx)

	g, err := newGame(ctx, d, host, poller, opts)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = "dock"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowSize(g.winW, g.winH)

	d.Start()
	defer d.Close()
	dock.Logger().Info("dock started", "config", path, "items", len(items))

	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
	if err != nil {
		return fmt.Errorf("run dock window: %w", err)
	}
	return nil
}

// game adapts a Dock to ebiten.Game. The window holds the dock surface at
// its bottom with headroom above for the tooltip and the context menu.
type game struct {
	ctx    context.Context
	dock   *dock.Dock
	host   *platform
	poller *running.Poller
	opts   Options

	paint *painter
	fps   fpsOverlay
	img   *ebiten.Image
	pix   []byte

	menu    *contextMenu
	buttons [3]bool
	held    [3]bool
	inside  bool

	screenW, screenH int
	winW, winH       int
	winX, winY       int
	offX, headroom   int
	tps              int
}

func newGame(ctx context.Context, d *dock.Dock, host *platform, poller *running.Poller, opts Options) (*game, error) {
	paint, err := newPainter()
	if err != nil {
		return nil, err
	}
	g := &game{ctx: ctx, dock: d, host: host, poller: poller, opts: opts, paint: paint}
	g.resizeWindow()
	return g, nil
}

var mouseButtons = [3]ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle}
var dockButtons = [3]dock.Button{dock.ButtonPrimary, dock.ButtonSecondary, dock.ButtonMiddle}

// buttonEdges compares two button samples and reports which buttons went
// down and which came up.
func buttonEdges(prev, cur [3]bool) (down, up [3]bool) {
	for i := range cur {
		down[i] = cur[i] && !prev[i]
		up[i] = !cur[i] && prev[i]
	}
	return down, up
}

// framesPerSecond converts a frame interval to an ebiten tick rate.
func framesPerSecond(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(math.Round(float64(time.Second)/float64(interval))), 1)
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	now := time.Now()

	g.syncScreen()
	g.drainBackground()
	g.processInput(now)
	if g.host.quit {
		return ebiten.Termination
	}

	g.dock.Tick(now)
	if g.opts.Script != nil && g.opts.Script.Done() {
		return ebiten.Termination
	}

	g.resizeWindow()
	if tps := framesPerSecond(g.dock.FrameInterval()); tps != g.tps {
		ebiten.SetTPS(tps)
		g.tps = tps
	}
	if g.opts.ShowFPS {
		g.fps.update(now)
	}
	return nil
}

// syncScreen follows the monitor size.
func (g *game) syncScreen() {
	m := ebiten.Monitor()
	if m == nil {
		return
	}
	w, h := m.Size()
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h
	g.dock.SetScreen(w, h)
	dock.Logger().Debug("screen size", "width", w, "height", h)
}

// drainBackground applies config reloads and running flags gathered by the
// background goroutines.
func (g *game) drainBackground() {
	select {
	case <-g.host.watcher.Changes():
		g.host.reload = true
	default:
	}
	if g.host.reload {
		g.host.reload = false
		g.host.saved()
		g.reload()
	}
	select {
	case set := <-g.poller.Updates():
		g.dock.SetRunning(set.Flags(g.dock.Items()))
	default:
	}
}

func (g *game) reload() {
	s, items, err := g.host.load()
	if err != nil {
		dock.Logger().Error("reload config", "path", g.host.path, "err", err)
		return
	}
	g.menu = nil
	g.dock.SetSettings(s)
	g.dock.SetItems(items)
	dock.Logger().Info("config reloaded", "path", g.host.path, "items", len(items))
}

func (g *game) processInput(now time.Time) {
	cx, cy := ebiten.CursorPosition()
	wx, wy := float64(cx), float64(cy)
	g.dock.PollCursor(float64(g.winX)+wx, float64(g.winY)+wy, now)

	var cur [3]bool
	for i, b := range mouseButtons {
		cur[i] = ebiten.IsMouseButtonPressed(b)
	}
	down, up := buttonEdges(g.buttons, cur)
	g.buttons = cur

	if g.menu != nil {
		g.menu.hover = g.menu.at(wx, wy)
		if down[0] || down[1] {
			if a, closed := g.menu.choose(wx, wy); closed {
				g.menu = nil
				g.dock.Apply(a)
			}
		}
		return
	}

	surf := g.dock.Surface()
	sx, sy := wx-float64(g.offX), wy-float64(g.headroom)
	in := sx >= 0 && sy >= 0 && sx < float64(surf.Width()) && sy < float64(surf.Height())
	switch {
	case in:
		g.dock.PointerMove(sx, sy, now)
		g.inside = true
	case g.inside:
		g.dock.PointerLeave(now)
		g.inside = false
	}

	for i, b := range dockButtons {
		if down[i] && in {
			g.held[i] = true
			g.dock.PointerDown(b, sx, sy, now)
		}
		if up[i] && g.held[i] {
			g.held[i] = false
			g.dock.PointerUp(b, sx, sy, now)
		}
	}

	if req := g.host.menuReq; req != nil {
		g.host.menuReq = nil
		g.menu = newContextMenu(menuEntries(*req, g.host.path))
		g.resizeWindow()
		g.menu.place(float64(g.offX)+req.X, float64(g.headroom), float64(g.winW))
	}
}

// resizeWindow sizes and positions the window around the dock surface.
func (g *game) resizeWindow() {
	surf := g.dock.Surface()
	headroom := tooltipHeadroom
	if g.menu != nil {
		_, h := g.menu.size()
		headroom = max(headroom, int(math.Ceil(h))+tooltipGap)
	}
	w := max(surf.Width(), menuWidth)
	h := surf.Height() + headroom
	if w != g.winW || h != g.winH {
		if g.menu != nil {
			g.menu.y += float64(headroom - g.headroom)
		}
		g.winW, g.winH = w, h
		ebiten.SetWindowSize(w, h)
	}
	g.headroom = headroom
	g.offX = (w - surf.Width()) / 2

	y, _ := g.dock.Position()
	x, wy := g.dock.DesiredX()-g.offX, int(math.Round(y))-headroom
	if x != g.winX || wy != g.winY {
		g.winX, g.winY = x, wy
		ebiten.SetWindowPosition(x, wy)
	}
}

// upload copies the dock surface into the ebiten image.
func (g *game) upload() {
	surf := g.dock.Surface()
	w, h := surf.Width(), surf.Height()
	if w == 0 || h == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.pix = make([]byte, 4*w*h)
	}
	surf.WritePremultipliedRGBA(g.pix)
	g.img.WritePixels(g.pix)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Clear()
	g.upload()
	if g.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(g.offX), float64(g.headroom))
		screen.DrawImage(g.img, op)
	}
	switch {
	case g.menu != nil:
		g.paint.drawMenu(screen, g.menu)
	case g.host.tip.visible:
		g.paint.drawTooltip(screen, g.host.tip.text, float64(g.host.tip.x-g.winX), float64(g.host.tip.y-g.winY))
	}
	if g.opts.ShowFPS {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.winW, g.winH
}
