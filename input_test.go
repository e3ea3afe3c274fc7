package folio

import (
	"reflect"
	"testing"
)

func recordInput(in *Input) *[]string {
	var events []string
	in.OnPointerDown("rec", func(PointerContext) { events = append(events, "down") })
	in.OnPointerMove("rec", func(PointerContext) { events = append(events, "move") })
	in.OnPointerUp("rec", func(PointerContext) { events = append(events, "up") })
	return &events
}

func TestPointerStateMachine(t *testing.T) {
	in := NewInput(nil)
	var ctxs []PointerContext
	in.OnPointerDown("rec", func(c PointerContext) { ctxs = append(ctxs, c) })
	in.OnPointerMove("rec", func(c PointerContext) { ctxs = append(ctxs, c) })
	in.OnPointerUp("rec", func(c PointerContext) { ctxs = append(ctxs, c) })

	in.processPointer(10, 20, true, false)
	in.processPointer(15, 30, true, false)
	in.processPointer(15, 30, true, false) // no movement, no event
	in.processPointer(40, 30, false, false)

	if len(ctxs) != 3 {
		t.Fatalf("events = %d, want 3", len(ctxs))
	}
	down, move, up := ctxs[0], ctxs[1], ctxs[2]
	if down.X != 10 || down.Y != 20 || down.StartX != 10 || !down.Pressed {
		t.Errorf("down = %+v", down)
	}
	if move.DeltaX != 5 || move.DeltaY != 10 || move.StartY != 20 || !move.Pressed {
		t.Errorf("move = %+v", move)
	}
	if up.Pressed || up.X != 40 || up.DeltaX != 25 || up.StartX != 10 {
		t.Errorf("up = %+v", up)
	}
	if in.Pressed() || in.Position() != (Vec2{40, 30}) {
		t.Errorf("pressed = %v, position = %v", in.Pressed(), in.Position())
	}
}

func TestHoverMovesFireWithoutPress(t *testing.T) {
	in := NewInput(nil)
	var got PointerContext
	in.OnPointerMove("rec", func(c PointerContext) { got = c })
	in.processPointer(5, 5, false, false)
	if got.X != 5 || got.Pressed {
		t.Errorf("move = %+v", got)
	}
}

func TestRemovePointerHandler(t *testing.T) {
	in := NewInput(nil)
	n := 0
	h := in.OnPointerDown("count", func(PointerContext) { n++ })
	in.OnPointerDown("other", func(PointerContext) {})
	in.processPointer(0, 0, true, false)
	in.processPointer(0, 0, false, false)
	h.Remove()
	in.processPointer(0, 0, true, false)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if len(in.handlers.pointerDown) != 1 {
		t.Errorf("handlers = %d, want 1", len(in.handlers.pointerDown))
	}

	w := in.OnWheel("wheel", func(float64) { n++ })
	w.Remove()
	in.fireWheel(10)
	if n != 1 {
		t.Errorf("removed wheel handler ran")
	}
}

func TestPointerHandlerPanicIsolated(t *testing.T) {
	captureLog(t)
	in := NewInput(nil)
	in.OnPointerDown("broken", func(PointerContext) { panic("nope") })
	ran := false
	in.OnPointerDown("ok", func(PointerContext) { ran = true })
	in.processPointer(0, 0, true, false)
	if !ran {
		t.Error("healthy handler should still run")
	}
}

func TestHandlerRemovedDuringDispatch(t *testing.T) {
	in := NewInput(nil)
	var events []string
	var h CallbackHandle
	h = in.OnPointerDown("self", func(PointerContext) {
		events = append(events, "self")
		h.Remove()
	})
	in.OnPointerDown("next", func(PointerContext) { events = append(events, "next") })

	in.processPointer(0, 0, true, false)
	in.processPointer(0, 0, false, false)
	in.processPointer(0, 0, true, false)
	want := []string{"self", "next", "next"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}
