package dock

import (
	"testing"
	"time"
)

func TestIconResolution(t *testing.T) {
	tests := []struct {
		icon, factor, floor, want int
	}{
		{48, 6, 384, 384},
		{64, 6, 384, 384},
		{80, 6, 384, 480},
		{16, 6, 384, 384},
	}
	for _, tt := range tests {
		if got := IconResolution(tt.icon, tt.factor, tt.floor); got != tt.want {
			t.Errorf("IconResolution(%d, %d, %d) = %d, want %d", tt.icon, tt.factor, tt.floor, got, tt.want)
		}
	}
}

func TestPreferredSize(t *testing.T) {
	s := DefaultSettings()
	s.IconSize = 48
	s.Spacing = 12
	s.Padding = Insets{Top: 12, Right: 0, Bottom: 12, Left: 0}

	w, h := PreferredSize(s, 5)
	// 5*48 + 4*12 + 0 + 19
	if w != 307 {
		t.Errorf("width = %d, want 307", w)
	}
	// 48 + 24 + 9 + 4
	if h != 85 {
		t.Errorf("height = %d, want 85", h)
	}

	s.Padding = Insets{Left: 10, Right: 10}
	if w, _ := PreferredSize(s, 0); w != 20 {
		t.Errorf("empty width = %d, want padding only (20)", w)
	}
}

func TestValidateClamps(t *testing.T) {
	s := Settings{
		IconSize:      -1,
		Spacing:       -3,
		Magnification: 0.5,
		HideDelay:     -time.Second,
		Padding:       Insets{Top: -1},
	}.Validate()

	if s.IconSize != DefaultIconSize {
		t.Errorf("IconSize = %d", s.IconSize)
	}
	if s.Spacing != 0 {
		t.Errorf("Spacing = %d", s.Spacing)
	}
	if s.Magnification != 1 {
		t.Errorf("Magnification = %v", s.Magnification)
	}
	if s.HideDelay != 0 {
		t.Errorf("HideDelay = %v", s.HideDelay)
	}
	if s.Padding.Top != 0 {
		t.Errorf("Padding.Top = %d", s.Padding.Top)
	}
	if s.DragThreshold != DefaultDragThreshold || s.Oversample != DefaultOversample {
		t.Error("zero fields should take defaults")
	}
}

func TestDefaultSettingsValid(t *testing.T) {
	d := DefaultSettings()
	if d.Validate() != d {
		t.Error("DefaultSettings should already be valid")
	}
}
