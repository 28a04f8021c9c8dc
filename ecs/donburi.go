package ecs

import (
	"github.com/phanxgames/dock"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DockEventType is the Donburi event type for dock events.
var DockEventType = events.NewEventType[dock.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on DockEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) dock.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event dock.Event) {
	DockEventType.Publish(s.world, event)
}
