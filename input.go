package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelStep converts one wheel notch into pixels.
const wheelStep = 100.0

// PointerContext carries pointer event data in screen coordinates.
type PointerContext struct {
	X, Y float64
	// StartX and StartY are where the current press began.
	StartX, StartY float64
	// DeltaX and DeltaY are the movement since the previous event.
	DeltaX, DeltaY float64
	// Pressed reports whether the button or touch is held.
	Pressed bool
	Touch   bool
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	touch  bool
}

// --- Handler registry ---

type pointerHandler struct {
	id   uint32
	name string
	fn   func(PointerContext)
}

type wheelHandler struct {
	id   uint32
	name string
	fn   func(dy float64)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	pointerMove []pointerHandler
	wheel       []wheelHandler
	nextID      uint32
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// Input turns mouse, touch, wheel and injected events into pointer
// callbacks. One Input serves one page.
type Input struct {
	handlers    handlerRegistry
	pointer     pointerState
	modes       *InputModeDetector
	injectQueue []syntheticEvent

	touchIDs    []ebiten.TouchID
	justTouched []ebiten.TouchID
	touchID     ebiten.TouchID
	touching    bool
	mouseX      int
	mouseY      int
}

// NewInput creates an Input reporting mode changes to modes, which may be nil.
func NewInput(modes *InputModeDetector) *Input {
	return &Input{modes: modes}
}

// OnPointerDown registers a callback for presses.
func (in *Input) OnPointerDown(name string, fn func(PointerContext)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.pointerDown = append(in.handlers.pointerDown, pointerHandler{id: id, name: name, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		in.handlers.pointerDown = removePointerHandler(in.handlers.pointerDown, id)
	}}
}

// OnPointerUp registers a callback for releases. Releases are reported
// wherever the pointer is.
func (in *Input) OnPointerUp(name string, fn func(PointerContext)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.pointerUp = append(in.handlers.pointerUp, pointerHandler{id: id, name: name, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		in.handlers.pointerUp = removePointerHandler(in.handlers.pointerUp, id)
	}}
}

// OnPointerMove registers a callback for movement, pressed or not.
func (in *Input) OnPointerMove(name string, fn func(PointerContext)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.pointerMove = append(in.handlers.pointerMove, pointerHandler{id: id, name: name, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		in.handlers.pointerMove = removePointerHandler(in.handlers.pointerMove, id)
	}}
}

// OnWheel registers a callback for vertical wheel deltas in pixels, positive
// scrolling down.
func (in *Input) OnWheel(name string, fn func(dy float64)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.wheel = append(in.handlers.wheel, wheelHandler{id: id, name: name, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		for i := range in.handlers.wheel {
			if in.handlers.wheel[i].id == id {
				in.handlers.wheel = append(in.handlers.wheel[:i], in.handlers.wheel[i+1:]...)
				return
			}
		}
	}}
}

// Position returns the last known pointer position.
func (in *Input) Position() Vec2 {
	return Vec2{in.pointer.lastX, in.pointer.lastY}
}

// Pressed reports whether the pointer is held.
func (in *Input) Pressed() bool {
	return in.pointer.down
}

// Process reads this frame's device state. An injected event, if queued,
// replaces real pointer input for the frame.
func (in *Input) Process() {
	if in.processInjected() {
		return
	}
	in.processTouch()
	if in.touching {
		tx, ty := ebiten.TouchPosition(in.touchID)
		in.processPointer(float64(tx), float64(ty), true, true)
	} else {
		in.processMouse()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		in.fireWheel(-dy * wheelStep)
	}
}

// processTouch tracks the first active touch and signals touch mode when a
// new one lands.
func (in *Input) processTouch() {
	in.justTouched = inpututil.AppendJustPressedTouchIDs(in.justTouched[:0])
	if len(in.justTouched) > 0 && in.modes != nil {
		in.modes.Signal(InputTouch)
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if in.touching {
		for _, id := range in.touchIDs {
			if id == in.touchID {
				return
			}
		}
		// The tracked touch lifted.
		in.touching = false
		in.processPointer(in.pointer.lastX, in.pointer.lastY, false, true)
		return
	}
	if len(in.touchIDs) > 0 {
		in.touching = true
		in.touchID = in.touchIDs[0]
	}
}

func (in *Input) processMouse() {
	mx, my := ebiten.CursorPosition()
	if (mx != in.mouseX || my != in.mouseY) && len(in.touchIDs) == 0 && in.modes != nil {
		in.modes.Signal(InputMouse)
	}
	in.mouseX, in.mouseY = mx, my
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(float64(mx), float64(my), pressed, false)
}

// processPointer runs the pointer state machine for a single pointer.
func (in *Input) processPointer(x, y float64, pressed, touch bool) {
	ps := &in.pointer
	ctx := PointerContext{X: x, Y: y, Pressed: pressed, Touch: touch}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.touch = touch
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ctx.StartX, ctx.StartY = x, y
		in.fire(in.handlers.pointerDown, ctx)
	case !pressed && ps.down:
		ctx.StartX, ctx.StartY = ps.startX, ps.startY
		ctx.DeltaX, ctx.DeltaY = x-ps.lastX, y-ps.lastY
		ps.down = false
		ps.lastX, ps.lastY = x, y
		in.fire(in.handlers.pointerUp, ctx)
	default:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ctx.StartX, ctx.StartY = ps.startX, ps.startY
		ctx.DeltaX, ctx.DeltaY = x-ps.lastX, y-ps.lastY
		ps.lastX, ps.lastY = x, y
		in.fire(in.handlers.pointerMove, ctx)
	}
}

// fire runs every handler in hs; a panicking handler does not stop the rest.
func (in *Input) fire(hs []pointerHandler, ctx PointerContext) {
	hs = append([]pointerHandler(nil), hs...)
	for _, h := range hs {
		guard(h.name, func() { h.fn(ctx) })
	}
}

func (in *Input) fireWheel(dy float64) {
	hs := append([]wheelHandler(nil), in.handlers.wheel...)
	for _, h := range hs {
		guard(h.name, func() { h.fn(dy) })
	}
}
