package dock

import "time"

// EventType identifies a kind of dock event.
type EventType uint8

const (
	EventHover       EventType = iota // hovered item changed; Index is -1 when nothing is hovered
	EventLaunch                       // an item was clicked and launched
	EventDragStart                    // a press crossed the drag threshold
	EventDragCancel                   // a drag ended without reordering
	EventReorder                      // an item moved; From and To are pre-removal indices
	EventContextMenu                  // a context menu closed; Action holds the choice
	EventShow                         // the dock started showing
	EventHide                         // the dock started hiding
)

var eventNames = [...]string{
	EventHover:       "hover",
	EventLaunch:      "launch",
	EventDragStart:   "drag-start",
	EventDragCancel:  "drag-cancel",
	EventReorder:     "reorder",
	EventContextMenu: "context-menu",
	EventShow:        "show",
	EventHide:        "hide",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event carries one dock event to an EventSink.
type Event struct {
	Type     EventType
	Index    int
	From, To int
	X, Y     float64 // surface-local pointer position
	Action   ActionKind
	Time     time.Time
}

// EventSink receives dock events, for example to feed an ECS world.
type EventSink interface {
	EmitEvent(event Event)
}

// EventLog is an EventSink that records events in memory.
type EventLog struct {
	Events []Event
}

// EmitEvent appends event to the log.
func (l *EventLog) EmitEvent(event Event) {
	l.Events = append(l.Events, event)
}

// Types returns the recorded event types in order.
func (l *EventLog) Types() []EventType {
	out := make([]EventType, len(l.Events))
	for i, e := range l.Events {
		out[i] = e.Type
	}
	return out
}

// Reset discards recorded events.
func (l *EventLog) Reset() {
	l.Events = l.Events[:0]
}
