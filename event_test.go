package dock

import "testing"

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventHover, "hover"},
		{EventReorder, "reorder"},
		{EventHide, "hide"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestEventLog(t *testing.T) {
	var l EventLog
	l.EmitEvent(Event{Type: EventShow})
	l.EmitEvent(Event{Type: EventLaunch, Index: 2})
	if types := l.Types(); len(types) != 2 || types[0] != EventShow || types[1] != EventLaunch {
		t.Errorf("Types() = %v", types)
	}
	l.Reset()
	if len(l.Events) != 0 {
		t.Errorf("len after Reset = %d", len(l.Events))
	}
}

func TestEventsCarryTickTime(t *testing.T) {
	d, _, log := testDock(3)
	d.PointerMove(center0, rowY, t0)
	if len(log.Events) == 0 || !log.Events[0].Time.Equal(t0) {
		t.Errorf("events = %+v, want time %v", log.Events, t0)
	}
}

func TestNopHost(t *testing.T) {
	var h Host = NopHost{}
	if a := h.OpenContextMenu(MenuRequest{}); a.Kind != ActionNone {
		t.Errorf("NopHost menu = %v, want none", a.Kind)
	}
}
