package ebitenhost

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/phanxgames/dock"
	"github.com/phanxgames/dock/config"
	"github.com/phanxgames/dock/watch"
)

// tooltip is the label requested by the dock, anchored in screen pixels.
type tooltip struct {
	text    string
	x, y    int
	visible bool
}

// platform implements dock.Host for the desktop window. It owns the loaded
// configuration file and records the dock's requests for the game loop to
// act on.
type platform struct {
	path    string
	file    config.File
	watcher *watch.Watcher
	goos    string
	run     func(args []string) error

	tip     tooltip
	menuReq *dock.MenuRequest
	reload  bool
	quit    bool
	taskbar bool
}

func newPlatform(path string) *platform {
	return &platform{path: path, goos: runtime.GOOS, run: start, taskbar: true}
}

// load reads the configuration file and resolves it.
func (p *platform) load() (dock.Settings, []dock.Item, error) {
	f, err := config.Load(p.path)
	if err != nil {
		return dock.Settings{}, nil, err
	}
	p.file = f
	s, items := f.Resolve()
	return s, items, nil
}

// saved marks the file's current state as seen so the dock's own writes do
// not trigger a reload.
func (p *platform) saved() {
	if p.watcher != nil {
		p.watcher.Sync()
	}
}

func (p *platform) Launch(index int, it dock.Item) {
	args, err := launchArgs(p.goos, it)
	if err == nil {
		err = p.run(args)
	}
	if err != nil {
		dock.Logger().Error("launch failed", "index", index, "name", it.Name, "err", err)
	}
}

func (p *platform) ShowTooltip(text string, x, y int) {
	p.tip = tooltip{text: text, x: x, y: y, visible: true}
}

func (p *platform) HideTooltip() {
	p.tip.visible = false
}

// OpenContextMenu queues req for the window's own menu. The choice reaches
// the dock later through Dock.Apply.
func (p *platform) OpenContextMenu(req dock.MenuRequest) dock.Action {
	p.menuReq = &req
	return dock.Action{}
}

func (p *platform) PersistAndReload(items []dock.Item, s dock.Settings) {
	p.file.Update(items, s)
	if err := p.file.Save(p.path); err != nil {
		dock.Logger().Error("save config", "path", p.path, "err", err)
		return
	}
	p.saved()
	dock.Logger().Debug("config saved", "path", p.path, "items", len(items))
}

// SetTaskbarVisible records the request. Desktop taskbars have no portable
// control, so the request is only logged.
func (p *platform) SetTaskbarVisible(visible bool) {
	if p.taskbar == visible {
		return
	}
	p.taskbar = visible
	dock.Logger().Debug("taskbar visibility", "visible", visible, "os", p.goos)
}

func (p *platform) Perform(a dock.Action) {
	if err := p.perform(a); err != nil {
		dock.Logger().Error("action failed", "action", a.Kind, "err", err)
	}
}

func (p *platform) perform(a dock.Action) error {
	switch a.Kind {
	case dock.ActionOpenConfig:
		return p.run(openArgs(p.goos, p.path))
	case dock.ActionSaveConfigAs:
		if a.Path == "" {
			return fmt.Errorf("save config: no path")
		}
		if err := p.file.Save(a.Path); err != nil {
			return err
		}
		dock.Logger().Info("config saved", "path", a.Path)
	case dock.ActionLoadConfig:
		f, err := config.Load(a.Path)
		if err != nil {
			return err
		}
		if err := f.Save(p.path); err != nil {
			return err
		}
		p.reload = true
		dock.Logger().Info("config loaded", "from", a.Path)
	case dock.ActionResetAll:
		if err := config.WriteDefault(p.path); err != nil {
			return err
		}
		p.reload = true
		dock.Logger().Info("config reset", "path", p.path)
	case dock.ActionEmptyRecycleBin:
		return p.run(emptyTrashArgs(p.goos))
	case dock.ActionQuit:
		p.quit = true
	default:
		return fmt.Errorf("unexpected host action %s", a.Kind)
	}
	return nil
}

// backupPath returns the path "Save Config Backup" writes to: the config
// path with .backup before its extension.
func backupPath(path string) string {
	if path == "" {
		return ""
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".backup" + ext
}
