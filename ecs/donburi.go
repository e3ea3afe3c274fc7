package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PageEventType is the Donburi event type for folio page events.
// Subscribe to this in your ECS systems to receive scroll, drag, trigger,
// resize and input mode events.
var PageEventType = events.NewEventType[folio.PageEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) folio.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event folio.PageEvent) {
	PageEventType.Publish(s.world, event)
}
