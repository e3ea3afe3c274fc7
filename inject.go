package folio

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticWheel
)

// syntheticEvent represents a single injected input event in screen
// coordinates.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	wheel   float64
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's Process call.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a move with the button up.
func (in *Input) InjectHover(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	in.InjectRelease(toX, toY)
}

// InjectWheel queues a vertical wheel delta in pixels, positive scrolling
// down.
func (in *Input) InjectWheel(dy float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticWheel, wheel: dy})
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjected pops one queued event and feeds it through the pointer
// state machine. It reports whether an event was consumed.
func (in *Input) processInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case syntheticWheel:
		in.fireWheel(evt.wheel)
	default:
		in.processPointer(evt.x, evt.y, evt.pressed, false)
	}
	return true
}
