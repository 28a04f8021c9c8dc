// Package config loads and saves the dock's configuration file.
//
// TOML is the primary format; files ending in .yaml or .yml are read and
// written as YAML with the same keys.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"github.com/phanxgames/dock"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up next to the executable and in
// the working directory.
const FileName = "config.toml"

// Fallback colours used when a configured colour does not parse.
const (
	fallbackBackground = 0x1e1e2e
	fallbackIndicator  = 0xcba6f7
)

// File is the on-disk configuration.
type File struct {
	Dock  DockSection `toml:"dock" yaml:"dock"`
	Items []ItemEntry `toml:"items" yaml:"items"`
}

// DockSection holds the [dock] table.
type DockSection struct {
	IconSize          int         `toml:"icon_size" yaml:"icon_size"`
	Spacing           ItemSpacing `toml:"spacing" yaml:"spacing"`
	Padding           Spacing     `toml:"padding" yaml:"padding"`
	VerticalOffset    int         `toml:"negative_vertical_offset" yaml:"negative_vertical_offset"`
	BackgroundColor   string      `toml:"background_color" yaml:"background_color"`
	BackgroundOpacity float64     `toml:"background_opacity" yaml:"background_opacity"`
	CornerRadius      int         `toml:"corner_radius" yaml:"corner_radius"`
	IndicatorColor    string      `toml:"indicator_color" yaml:"indicator_color"`
	AutoHide          bool        `toml:"auto_hide" yaml:"auto_hide"`
	AutoHideDelayMS   int         `toml:"auto_hide_delay_ms" yaml:"auto_hide_delay_ms"`
	AutoShowDelayMS   int         `toml:"auto_show_delay_ms" yaml:"auto_show_delay_ms"`
	Magnification     float64     `toml:"magnification" yaml:"magnification"`
	Locked            bool        `toml:"locked" yaml:"locked"`
	HideTaskbar       bool        `toml:"hide_windows_taskbar" yaml:"hide_windows_taskbar"`
	HideInFullscreen  bool        `toml:"hide_in_fullscreen" yaml:"hide_in_fullscreen"`
	HiddenSliver      int         `toml:"hidden_sliver" yaml:"hidden_sliver"`
}

// ItemEntry is one [[items]] table.
type ItemEntry struct {
	Name      string   `toml:"name" yaml:"name"`
	Path      string   `toml:"path,omitempty" yaml:"path,omitempty"`
	Icon      string   `toml:"icon,omitempty" yaml:"icon,omitempty"`
	Args      []string `toml:"args,omitempty" yaml:"args,omitempty"`
	Separator bool     `toml:"separator,omitempty" yaml:"separator,omitempty"`
	Special   string   `toml:"special,omitempty" yaml:"special,omitempty"`
}

// Default returns the values used for keys missing from a file.
func Default() File {
	return File{Dock: DockSection{
		IconSize:          dock.DefaultIconSize,
		Spacing:           ItemSpacing{dock.DefaultSpacing, dock.DefaultSpacing},
		Padding:           UniformSpacing(dock.DefaultPadding),
		BackgroundColor:   "#1e1e2e",
		BackgroundOpacity: 0.9,
		CornerRadius:      dock.DefaultCornerRadius,
		IndicatorColor:    "#cba6f7",
		AutoHide:          true,
		AutoHideDelayMS:   int(dock.DefaultHideDelay / time.Millisecond),
		Magnification:     dock.DefaultMagnification,
		HiddenSliver:      dock.DefaultHiddenSliver,
	}}
}

// isYAML reports whether path should be read and written as YAML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the file at path. Keys missing from the file keep their
// Default values.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data, isYAML(path))
	if err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a configuration from data as TOML, or as YAML when asYAML
// is set.
func Parse(data []byte, asYAML bool) (File, error) {
	f := Default()
	if asYAML {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, err
		}
		return f, nil
	}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		dock.Logger().Warn("unknown config keys", "keys", strings.Join(keys, ", "))
	}
	return f, nil
}

// Encode serializes f as TOML, or as YAML when asYAML is set.
func (f File) Encode(asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(f)
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes f to path, replacing the file.
func (f File) Save(path string) error {
	data, err := f.Encode(isYAML(path))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// WriteDefault writes the commented starter configuration to path,
// creating parent directories.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	body := Template
	if isYAML(path) {
		f, err := Parse([]byte(Template), false)
		if err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
		data, err := f.Encode(true)
		if err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
		body = string(data)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// Locate returns the configuration path to use. An explicit path wins, with
// a leading ~ expanded. Otherwise FileName next to the executable, then in
// the working directory. When neither exists the starter file is written
// next to the executable.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return homedir.Expand(explicit)
	}
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), FileName))
	}
	candidates = append(candidates, FileName)
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	path := candidates[0]
	if err := WriteDefault(path); err != nil {
		return "", err
	}
	dock.Logger().Info("wrote default config", "path", path)
	return path, nil
}

// Resolve converts the file into dock settings and items. Colours are parsed
// with their fallbacks, and a leading ~ in item and icon paths is expanded.
func (f File) Resolve() (dock.Settings, []dock.Item) {
	d := f.Dock
	s := dock.DefaultSettings()
	s.IconSize = d.IconSize
	s.Spacing = d.Spacing.X
	s.Padding = d.Padding.Insets()
	s.VerticalOffset = d.VerticalOffset
	s.CornerRadius = d.CornerRadius
	s.Background = ParseHexColor(d.BackgroundColor, d.BackgroundOpacity)
	s.Accent = ParseHexRGB(d.IndicatorColor)
	s.Magnification = d.Magnification
	s.AutoHide = d.AutoHide
	s.HideDelay = time.Duration(d.AutoHideDelayMS) * time.Millisecond
	s.ShowDelay = time.Duration(d.AutoShowDelayMS) * time.Millisecond
	s.Locked = d.Locked
	s.HideTaskbar = d.HideTaskbar
	s.HideInFullscreen = d.HideInFullscreen
	s.HiddenSliver = d.HiddenSliver

	items := make([]dock.Item, 0, len(f.Items))
	for _, e := range f.Items {
		items = append(items, e.Item())
	}
	return s.Validate(), items
}

// Item converts the entry to a dock item.
func (e ItemEntry) Item() dock.Item {
	if e.Separator || e.Name == "---" {
		return dock.NewSeparator()
	}
	return dock.Item{
		Name:    e.Name,
		Path:    expand(e.Path),
		Icon:    expand(e.Icon),
		Args:    append([]string(nil), e.Args...),
		Special: strings.ToLower(strings.TrimSpace(e.Special)),
	}
}

// EntryFor converts a dock item to a file entry.
func EntryFor(it dock.Item) ItemEntry {
	if it.IsSeparator() {
		return ItemEntry{Name: "---", Separator: true}
	}
	return ItemEntry{
		Name:    it.Name,
		Path:    it.Path,
		Icon:    it.Icon,
		Args:    append([]string(nil), it.Args...),
		Special: it.Special,
	}
}

// Update replaces the item list and the settings a dock can change at run
// time. Entries whose item is unchanged keep their original text, so paths
// written with ~ stay that way.
func (f *File) Update(items []dock.Item, s dock.Settings) {
	old := make(map[string]ItemEntry, len(f.Items))
	for _, e := range f.Items {
		old[itemKey(e.Item())] = e
	}
	entries := make([]ItemEntry, len(items))
	for i, it := range items {
		if e, ok := old[itemKey(it)]; ok {
			entries[i] = e
			continue
		}
		entries[i] = EntryFor(it)
	}
	f.Items = entries
	f.Dock.Apply(s)
}

// Apply copies s into the section. Colours are written as #rrggbb with the
// background alpha as the opacity.
func (d *DockSection) Apply(s dock.Settings) {
	d.IconSize = s.IconSize
	if d.Spacing.X != s.Spacing {
		d.Spacing = ItemSpacing{s.Spacing, s.Spacing}
	}
	d.Padding = SpacingFromInsets(s.Padding)
	d.VerticalOffset = s.VerticalOffset
	d.CornerRadius = s.CornerRadius
	if ParseHexColor(d.BackgroundColor, d.BackgroundOpacity) != s.Background {
		d.BackgroundColor = FormatHexRGB(s.Background)
		d.BackgroundOpacity = float64(s.Background>>24) / 255
	}
	if ParseHexRGB(d.IndicatorColor) != s.Accent {
		d.IndicatorColor = FormatHexRGB(s.Accent)
	}
	d.Magnification = s.Magnification
	d.AutoHide = s.AutoHide
	d.AutoHideDelayMS = int(s.HideDelay / time.Millisecond)
	d.AutoShowDelayMS = int(s.ShowDelay / time.Millisecond)
	d.Locked = s.Locked
	d.HideTaskbar = s.HideTaskbar
	d.HideInFullscreen = s.HideInFullscreen
	d.HiddenSliver = s.HiddenSliver
}

func itemKey(it dock.Item) string {
	if it.IsSeparator() {
		return "\x00sep"
	}
	return strings.Join(append([]string{it.Name, it.Path, it.Icon, it.Special}, it.Args...), "\x00")
}

func expand(p string) string {
	if p == "" {
		return p
	}
	out, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return out
}

// ParseHexColor parses "#rrggbb" into packed ARGB with opacity in [0, 1] as
// the alpha. Unparseable colours fall back to #1e1e2e.
func ParseHexColor(hex string, opacity float64) uint32 {
	rgb, ok := parseRGB(hex)
	if !ok {
		rgb = fallbackBackground
	}
	opacity = min(max(opacity, 0), 1)
	return uint32(opacity*255)<<24 | rgb
}

// ParseHexRGB parses "#rrggbb" into opaque packed ARGB. Unparseable colours
// fall back to #cba6f7.
func ParseHexRGB(hex string) uint32 {
	rgb, ok := parseRGB(hex)
	if !ok {
		rgb = fallbackIndicator
	}
	return 0xFF000000 | rgb
}

// FormatHexRGB formats the colour channels of packed ARGB as "#rrggbb".
func FormatHexRGB(argb uint32) string {
	return fmt.Sprintf("#%06x", argb&0xFFFFFF)
}

func parseRGB(hex string) (uint32, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0xFFFFFF {
		return 0, false
	}
	return uint32(v), true
}
