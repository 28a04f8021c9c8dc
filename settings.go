package dock

import "time"

// Settings holds resolved dock configuration. Colors are packed ARGB with any
// opacity already folded into the alpha channel.
type Settings struct {
	IconSize       int
	Spacing        int    // horizontal gap between items
	Padding        Insets // surface padding around the icon row
	VerticalOffset int    // positive values push the dock into the bottom edge
	CornerRadius   int
	Background     uint32
	Accent         uint32 // glow, running indicator and placeholder tint
	Magnification  float64

	AutoHide         bool
	HideDelay        time.Duration
	ShowDelay        time.Duration // zero shows immediately at the trigger edge
	HideInFullscreen bool
	HideTaskbar      bool
	Locked           bool

	// HiddenSliver is the strip height left on screen while hidden. Zero moves
	// the dock fully below the screen.
	HiddenSliver int

	DragThreshold     float64 // horizontal pixels before a press becomes a drag
	SharpenStrength   float64
	Oversample        int // icon decode resolution as a multiple of IconSize
	MinIconResolution int
	IconCacheSize     int // zero means unbounded
}

// Default values for Settings.
const (
	DefaultIconSize          = 48
	DefaultSpacing           = 8
	DefaultPadding           = 12
	DefaultCornerRadius      = 12
	DefaultBackground        = 0xE51E1E2E // #1e1e2e at 0.9 opacity
	DefaultAccent            = 0xFFCBA6F7
	DefaultMagnification     = 1.5
	DefaultHideDelay         = 400 * time.Millisecond
	DefaultHiddenSliver      = 5
	DefaultDragThreshold     = 5.0
	DefaultSharpenStrength   = 0.3
	DefaultOversample        = 6
	DefaultMinIconResolution = 384
	DefaultIconCacheSize     = 128
)

// DefaultSettings returns the settings used when no configuration is given.
func DefaultSettings() Settings {
	return Settings{
		IconSize:          DefaultIconSize,
		Spacing:           DefaultSpacing,
		Padding:           UniformInsets(DefaultPadding),
		CornerRadius:      DefaultCornerRadius,
		Background:        DefaultBackground,
		Accent:            DefaultAccent,
		Magnification:     DefaultMagnification,
		AutoHide:          true,
		HideDelay:         DefaultHideDelay,
		HiddenSliver:      DefaultHiddenSliver,
		DragThreshold:     DefaultDragThreshold,
		SharpenStrength:   DefaultSharpenStrength,
		Oversample:        DefaultOversample,
		MinIconResolution: DefaultMinIconResolution,
		IconCacheSize:     DefaultIconCacheSize,
	}
}

// Validate returns a copy with out-of-range values replaced by defaults.
func (s Settings) Validate() Settings {
	if s.IconSize <= 0 {
		s.IconSize = DefaultIconSize
	}
	if s.Spacing < 0 {
		s.Spacing = 0
	}
	s.Padding.Top = max(s.Padding.Top, 0)
	s.Padding.Right = max(s.Padding.Right, 0)
	s.Padding.Bottom = max(s.Padding.Bottom, 0)
	s.Padding.Left = max(s.Padding.Left, 0)
	if s.CornerRadius < 0 {
		s.CornerRadius = 0
	}
	if s.Magnification < 1 {
		s.Magnification = 1
	}
	if s.HideDelay < 0 {
		s.HideDelay = 0
	}
	if s.ShowDelay < 0 {
		s.ShowDelay = 0
	}
	if s.HiddenSliver < 0 {
		s.HiddenSliver = 0
	}
	if s.DragThreshold <= 0 {
		s.DragThreshold = DefaultDragThreshold
	}
	if s.SharpenStrength < 0 {
		s.SharpenStrength = 0
	}
	if s.Oversample <= 0 {
		s.Oversample = DefaultOversample
	}
	if s.MinIconResolution <= 0 {
		s.MinIconResolution = DefaultMinIconResolution
	}
	if s.IconCacheSize < 0 {
		s.IconCacheSize = 0
	}
	return s
}

// IconResolution is the square edge length icons are decoded at.
func (s Settings) IconResolution() int {
	return IconResolution(s.IconSize, s.Oversample, s.MinIconResolution)
}

// IconResolution returns max(iconSize*factor, floor).
func IconResolution(iconSize, factor, floor int) int {
	return max(iconSize*factor, floor)
}

// PreferredSize returns the surface size a host should allocate for n items.
// The width leaves room for magnified icons and the height leaves room for
// reflections.
func PreferredSize(s Settings, n int) (w, h int) {
	icon := s.IconSize
	if n > 0 {
		w = n*icon + (n-1)*s.Spacing + s.Padding.Horizontal() + int(float64(icon)*0.4)
	} else {
		w = s.Padding.Horizontal()
	}
	h = icon + s.Padding.Vertical() + int(float64(icon)*0.2) + 4
	return w, h
}
