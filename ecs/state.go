package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
)

// PageState mirrors the latest page events onto an entity so systems can
// query it like any other component.
type PageState struct {
	Scroll   float64
	Width    float64
	Height   float64
	Mode     folio.InputMode
	Dragging bool
	// Revealed holds the sections whose reveal trigger is active.
	Revealed map[string]bool
}

// PageStateComponent is the component type holding PageState.
var PageStateComponent = donburi.NewComponentType[PageState]()

func (s *PageState) apply(e folio.PageEvent) {
	switch e.Type {
	case folio.EventScroll:
		s.Scroll = e.Scroll
	case folio.EventDragStart:
		s.Dragging = true
		s.Scroll = e.Scroll
	case folio.EventDragEnd:
		s.Dragging = false
		s.Scroll = e.Scroll
	case folio.EventResize:
		s.Width, s.Height = e.Width, e.Height
	case folio.EventInputModeChange:
		s.Mode = e.Mode
	case folio.EventTriggerEnter, folio.EventTriggerEnterBack:
		if s.Revealed == nil {
			s.Revealed = make(map[string]bool)
		}
		s.Revealed[e.Name] = true
	case folio.EventTriggerLeave, folio.EventTriggerLeaveBack:
		delete(s.Revealed, e.Name)
	}
}

// TrackPageState creates an entity carrying PageState and subscribes it to
// PageEventType. The state updates whenever the world's events are
// processed; it stops once the entity is removed.
func TrackPageState(world donburi.World) donburi.Entity {
	entity := world.Create(PageStateComponent)
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		if !w.Valid(entity) {
			return
		}
		PageStateComponent.Get(w.Entry(entity)).apply(e)
	})
	return entity
}

// OnPageEvent subscribes fn to page events of the given types only.
func OnPageEvent(world donburi.World, fn func(folio.PageEvent), types ...folio.EventType) {
	want := make(map[folio.EventType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	PageEventType.Subscribe(world, func(_ donburi.World, e folio.PageEvent) {
		if want[e.Type] {
			fn(e)
		}
	})
}
