package ebitenhost

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/phanxgames/dock"
)

var errUnsupported = errors.New("not supported on this platform")

// openArgs returns the command that opens target with the desktop's default
// handler.
func openArgs(goos, target string) []string {
	switch goos {
	case "windows":
		return []string{"cmd", "/c", "start", "", target}
	case "darwin":
		return []string{"open", target}
	default:
		return []string{"xdg-open", target}
	}
}

// emptyTrashArgs returns the command that empties the recycle bin.
func emptyTrashArgs(goos string) []string {
	switch goos {
	case "windows":
		return []string{"powershell", "-NoProfile", "-Command", "Clear-RecycleBin -Force"}
	case "darwin":
		return []string{"osascript", "-e", `tell application "Finder" to empty trash`}
	default:
		return []string{"gio", "trash", "--empty"}
	}
}

// specialFolders maps special tags that name a folder to its path relative
// to the home directory.
var specialFolders = map[string]string{
	dock.SpecialFileExplorer: "",
	dock.SpecialThisPC:       "",
	dock.SpecialUserFolder:   "",
	dock.SpecialDocuments:    "Documents",
	dock.SpecialDownloads:    "Downloads",
}

// launchArgs returns the command line that launches it. Items with a path
// run directly with their arguments, except non-executable files, which go
// through the default handler. Special items map to a folder or a platform
// command.
func launchArgs(goos string, it dock.Item) ([]string, error) {
	if it.IsSpecial() {
		return specialArgs(goos, it.Special)
	}
	if it.Path == "" {
		return nil, fmt.Errorf("launch %q: no path", it.Name)
	}
	if executable(goos, it.Path) {
		return append([]string{it.Path}, it.Args...), nil
	}
	return openArgs(goos, it.Path), nil
}

func specialArgs(goos, tag string) ([]string, error) {
	if rel, ok := specialFolders[tag]; ok {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		return openArgs(goos, filepath.Join(home, rel)), nil
	}
	switch tag {
	case dock.SpecialRecycleBin:
		if goos == "windows" {
			return openArgs(goos, "shell:RecycleBinFolder"), nil
		}
		if goos != "darwin" {
			return openArgs(goos, "trash:///"), nil
		}
	case dock.SpecialSettings:
		if goos == "windows" {
			return openArgs(goos, "ms-settings:"), nil
		}
	case dock.SpecialControlPanel:
		if goos == "windows" {
			return []string{"control"}, nil
		}
	case dock.SpecialRunDialog:
		if goos == "windows" {
			return []string{"explorer", "shell:::{2559a1f3-21d7-11d4-bdaf-00c04f60b9f0}"}, nil
		}
	case dock.SpecialTaskView:
		if goos == "windows" {
			return []string{"explorer", "shell:::{3080F90E-D7AD-11D9-BD98-0000947B0257}"}, nil
		}
	}
	return nil, fmt.Errorf("special item %q: %w", tag, errUnsupported)
}

// executable reports whether path should be run rather than opened.
func executable(goos, path string) bool {
	if goos == "windows" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".exe", ".bat", ".cmd", ".com":
			return true
		}
		return false
	}
	fi, err := os.Stat(path)
	if err != nil {
		return filepath.Ext(path) == ""
	}
	return !fi.IsDir() && fi.Mode()&0o111 != 0
}

// start runs args detached from the dock.
func start(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
