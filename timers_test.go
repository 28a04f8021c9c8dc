package dock

import (
	"testing"
	"time"
)

func TestAutoHideAfterLeave(t *testing.T) {
	d, h, log := testDock(3)
	d.PointerMove(center1, rowY, t0)
	d.PointerLeave(t0)

	d.Tick(t0.Add(100 * time.Millisecond))
	if !d.Visible() {
		t.Fatal("dock hid before the delay")
	}
	d.Tick(t0.Add(DefaultHideDelay))
	if d.Visible() {
		t.Fatal("dock should hide once the delay has passed")
	}
	if !hasEvent(log, EventHide) {
		t.Error("missing hide event")
	}
	if h.hides == 0 {
		t.Error("tooltip should be hidden")
	}

	tickFor(d, t0.Add(DefaultHideDelay), 2*time.Second)
	if y := d.DesiredY(); y != 1075 {
		t.Errorf("DesiredY = %d, want 1075", y)
	}
}

func TestPointerMoveCancelsHide(t *testing.T) {
	d, _, _ := testDock(3)
	d.PointerLeave(t0)
	d.PointerMove(center0, rowY, t0.Add(200*time.Millisecond))
	d.Tick(t0.Add(time.Second))
	if !d.Visible() {
		t.Error("re-entering should cancel the hide timer")
	}
}

func TestLeaveWithoutAutoHide(t *testing.T) {
	d, _, _ := testDock(3)
	s := d.Settings()
	s.AutoHide = false
	d.SetSettings(s)

	d.PointerLeave(t0)
	d.PollCursor(10, 10, t0)
	d.Tick(t0.Add(time.Second))
	if !d.Visible() {
		t.Error("dock without auto-hide should stay visible")
	}
}

func TestLeaveWhileHiddenDoesNotArm(t *testing.T) {
	d, _, _ := testDock(3)
	d.ForceHide()
	tickFor(d, t0, time.Second)
	d.PointerLeave(t0.Add(time.Second))
	if d.hideTimer.armed {
		t.Error("hide timer armed while the dock is away from its visible position")
	}
}

func TestPollCursorEdgeShows(t *testing.T) {
	d, _, log := testDock(3)
	d.ForceHide()
	log.Reset()

	d.PollCursor(100, 1077, t0)
	if d.Visible() {
		t.Fatal("cursor above the trigger strip should not show the dock")
	}
	d.PollCursor(100, 1078, t0)
	if !d.Visible() {
		t.Fatal("cursor at the bottom edge should show the dock")
	}
	if types := log.Types(); len(types) != 1 || types[0] != EventShow {
		t.Errorf("events = %v, want [show]", types)
	}
}

func TestPollCursorShowDelay(t *testing.T) {
	d, _, _ := testDock(3)
	s := d.Settings()
	s.ShowDelay = 250 * time.Millisecond
	d.SetSettings(s)
	d.ForceHide()

	d.PollCursor(100, 1079, t0)
	d.Tick(t0.Add(100 * time.Millisecond))
	if d.Visible() {
		t.Fatal("dock showed before the show delay")
	}
	d.PollCursor(100, 1079, t0.Add(200*time.Millisecond))
	d.Tick(t0.Add(250 * time.Millisecond))
	if !d.Visible() {
		t.Fatal("dock should show after the show delay")
	}

	// Leaving the edge before the delay cancels the show.
	d.ForceHide()
	t1 := t0.Add(time.Second)
	d.PollCursor(100, 1079, t1)
	d.PollCursor(100, 500, t1.Add(100*time.Millisecond))
	d.Tick(t1.Add(time.Second))
	if d.Visible() {
		t.Error("show timer should be cancelled when the cursor leaves the edge")
	}
}

func TestPollCursorArmsHide(t *testing.T) {
	d, _, _ := testDock(3)

	// Inside the dock's screen rectangle.
	d.PollCursor(900, 1000, t0)
	if d.hideTimer.armed {
		t.Fatal("cursor over the dock armed the hide timer")
	}

	d.PollCursor(10, 10, t0)
	if !d.hideTimer.armed {
		t.Fatal("cursor away from the dock should arm the hide timer")
	}
	d.PollCursor(20, 10, t0.Add(300*time.Millisecond))
	d.Tick(t0.Add(DefaultHideDelay))
	if d.Visible() {
		t.Error("hide timer should run from the first sample")
	}
}

func TestPollCursorRecoversMissedLeave(t *testing.T) {
	d, h, _ := testDock(3)
	d.PointerMove(center1, rowY, t0)
	if d.hover != 1 {
		t.Fatalf("hover = %d, want 1", d.hover)
	}

	// No PointerLeave arrives; only global samples far from the dock.
	now := t0
	for end := t0.Add(4 * time.Second); now.Before(end); now = now.Add(CursorPollInterval) {
		d.PollCursor(10, 10, now)
		d.Tick(now)
	}
	if d.ptr.inside {
		t.Error("pointer still marked inside")
	}
	if d.hover != -1 {
		t.Errorf("hover = %d, want -1", d.hover)
	}
	if h.hides == 0 {
		t.Error("tooltip was not hidden")
	}
	if d.Visible() {
		t.Error("dock stayed visible after the cursor left without a leave event")
	}
}

func TestPollCursorWithoutAutoHide(t *testing.T) {
	d, _, _ := testDock(3)
	s := d.Settings()
	s.AutoHide = false
	d.SetSettings(s)
	d.ForceHide()

	d.PollCursor(100, 1079, t0)
	d.PollCursor(10, 10, t0)
	if d.Visible() || d.showTimer.armed || d.hideTimer.armed {
		t.Error("PollCursor acted with auto-hide off")
	}
}

func TestPollCursorBeforeScreen(t *testing.T) {
	d := NewDock(testDockSettings(), testItems(2), nil)
	d.PollCursor(10, 10, t0)
	if d.hideTimer.armed || d.showTimer.armed {
		t.Error("polling without a screen size should do nothing")
	}
}

func TestFullscreen(t *testing.T) {
	d, _, _ := testDock(3)
	s := d.Settings()
	s.HideInFullscreen = true
	d.SetSettings(s)

	d.SetFullscreen(true)
	if d.Visible() {
		t.Fatal("entering fullscreen should hide the dock")
	}
	d.PollCursor(100, 1079, t0)
	if d.Visible() {
		t.Fatal("edge trigger should be ignored in fullscreen")
	}
	d.SetFullscreen(false)
	d.PollCursor(100, 1079, t0)
	if !d.Visible() {
		t.Error("edge trigger should work after fullscreen ends")
	}
}

func TestFullscreenIgnoredWhenDisabled(t *testing.T) {
	d, _, _ := testDock(3)
	d.SetFullscreen(true)
	if !d.Visible() {
		t.Error("fullscreen should not hide the dock unless HideInFullscreen is set")
	}
}

func TestForceHide(t *testing.T) {
	d, _, log := testDock(3)
	s := d.Settings()
	s.AutoHide = false
	d.SetSettings(s)
	d.PointerMove(center0, rowY, t0)
	d.PointerDown(ButtonPrimary, center0, rowY, t0)

	d.ForceHide()
	if d.Visible() {
		t.Error("ForceHide should hide regardless of auto-hide")
	}
	if phase, _ := d.Drag(); phase != DragIdle {
		t.Errorf("phase = %v, want idle", phase)
	}
	if !hasEvent(log, EventHide) {
		t.Error("missing hide event")
	}
}

func TestShowAt(t *testing.T) {
	tests := []struct {
		cursor float64
		want   int
	}{
		{10, 0},
		{1000, 1000 - 93},
		{1900, 1920 - 187},
	}
	for _, tt := range tests {
		d, _, _ := testDock(3)
		d.ForceHide()
		d.ShowAt(tt.cursor)
		if got := d.DesiredX(); got != tt.want {
			t.Errorf("ShowAt(%v): DesiredX = %d, want %d", tt.cursor, got, tt.want)
		}
		if !d.Visible() {
			t.Errorf("ShowAt(%v) should show the dock", tt.cursor)
		}
		d.Recenter()
		if got := d.DesiredX(); got != 866 {
			t.Errorf("Recenter: DesiredX = %d, want 866", got)
		}
	}
}

func TestTaskbar(t *testing.T) {
	h := &recordHost{}
	s := testDockSettings()
	s.HideTaskbar = true
	d := NewDock(s, testItems(2), h)

	d.Start()
	d.TaskbarTick(t0)
	d.TaskbarTick(t0.Add(500 * time.Millisecond))
	if len(h.taskbar) != 1 || h.taskbar[0] {
		t.Fatalf("taskbar = %v, want [false]", h.taskbar)
	}
	d.TaskbarTick(t0.Add(TaskbarInterval))
	if len(h.taskbar) != 2 || h.taskbar[1] {
		t.Fatalf("taskbar = %v, want [false false]", h.taskbar)
	}
	d.Close()
	if len(h.taskbar) != 3 || !h.taskbar[2] {
		t.Errorf("taskbar = %v, want restored", h.taskbar)
	}
	d.Close()
	if len(h.taskbar) != 3 {
		t.Errorf("second Close touched the taskbar: %v", h.taskbar)
	}
}

func TestTaskbarDisabled(t *testing.T) {
	h := &recordHost{}
	d := NewDock(testDockSettings(), testItems(2), h)
	d.Start()
	d.TaskbarTick(t0.Add(time.Hour))
	d.Close()
	if len(h.taskbar) != 0 {
		t.Errorf("taskbar = %v, want untouched", h.taskbar)
	}
}

func TestTimer(t *testing.T) {
	var tm timer
	if tm.elapsed(t0, 0) {
		t.Error("disarmed timer elapsed")
	}
	tm.arm(t0)
	tm.arm(t0.Add(time.Second))
	if !tm.elapsed(t0.Add(time.Second), time.Second) {
		t.Error("re-arming should keep the first start time")
	}
	tm.disarm()
	if tm.elapsed(t0.Add(time.Hour), 0) {
		t.Error("disarmed timer elapsed")
	}
}
