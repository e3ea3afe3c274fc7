package ecs

import (
	"testing"

	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestTrackPageState(t *testing.T) {
	world := donburi.NewWorld()
	entity := TrackPageState(world)
	sink := NewDonburiSink(world)

	sink.EmitEvent(folio.PageEvent{Type: folio.EventResize, Width: 800, Height: 600})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventDragStart, Scroll: 0})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventScroll, Scroll: 400})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventTriggerEnter, Name: "about"})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventTriggerEnter, Name: "services"})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventTriggerLeave, Name: "services"})
	events.ProcessAllEvents(world)

	st := PageStateComponent.Get(world.Entry(entity))
	if st.Width != 800 || st.Height != 600 {
		t.Errorf("size = %vx%v", st.Width, st.Height)
	}
	if !st.Dragging || st.Scroll != 400 {
		t.Errorf("dragging = %v, scroll = %v", st.Dragging, st.Scroll)
	}
	if !st.Revealed["about"] || st.Revealed["services"] {
		t.Errorf("revealed = %v", st.Revealed)
	}

	sink.EmitEvent(folio.PageEvent{Type: folio.EventDragEnd, Scroll: 410})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventInputModeChange, Mode: folio.InputTouch})
	events.ProcessAllEvents(world)
	if st.Dragging || st.Scroll != 410 || st.Mode != folio.InputTouch {
		t.Errorf("state = %+v", *st)
	}
}

func TestTrackPageStateRemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	entity := TrackPageState(world)
	world.Remove(entity)

	NewDonburiSink(world).EmitEvent(folio.PageEvent{Type: folio.EventScroll, Scroll: 10})
	events.ProcessAllEvents(world)
}

func TestOnPageEventFilters(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var got []folio.EventType
	OnPageEvent(world, func(e folio.PageEvent) { got = append(got, e.Type) },
		folio.EventDragStart, folio.EventDragEnd)

	sink.EmitEvent(folio.PageEvent{Type: folio.EventScroll})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventDragStart})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventResize})
	sink.EmitEvent(folio.PageEvent{Type: folio.EventDragEnd})
	events.ProcessAllEvents(world)

	if len(got) != 2 || got[0] != folio.EventDragStart || got[1] != folio.EventDragEnd {
		t.Errorf("got %v", got)
	}
}

func TestTrackPageStateFromPage(t *testing.T) {
	world := donburi.NewWorld()
	entity := TrackPageState(world)

	cfg := folio.DefaultConfig()
	cfg.Seed = 3
	page, err := folio.NewPage(cfg)
	if err != nil {
		t.Fatal(err)
	}
	page.SetEventSink(NewDonburiSink(world))
	page.Layout(1024, 768)
	page.Document().SetScrollOffset(300)
	events.ProcessAllEvents(world)

	st := PageStateComponent.Get(world.Entry(entity))
	if st.Width != 1024 || st.Height != 768 || st.Scroll != 300 {
		t.Errorf("state = %+v", *st)
	}
}
