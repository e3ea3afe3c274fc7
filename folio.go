package folio

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default particle and cursor tint.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts c to a premultiplied color.RGBA for submission to ebiten.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for pointer positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bottom returns the Y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Range is a general-purpose min/max range used by the particle field config.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies inside [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// EventType identifies a kind of page event forwarded to an EventSink.
type EventType uint8

const (
	EventScroll         EventType = iota // document scroll offset changed
	EventDragStart                       // scrollbar thumb drag began
	EventDragEnd                         // scrollbar thumb drag ended
	EventTriggerEnter                    // trigger became active scrolling down
	EventTriggerLeave                    // trigger became inactive scrolling down
	EventTriggerEnterBack                // trigger became active scrolling up
	EventTriggerLeaveBack                // trigger became inactive scrolling up
	EventResize                          // viewport size changed
	EventInputModeChange                 // input mode switched between mouse and touch
)

var eventTypeNames = [...]string{
	"scroll", "dragstart", "dragend",
	"enter", "leave", "enterback", "leaveback",
	"resize", "inputmode",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// PageEvent carries page-level event data for the optional ECS bridge.
type PageEvent struct {
	Type    EventType
	Name    string // section name for trigger events
	Scroll  float64
	Width   float64
	Height  float64
	Mode    InputMode
	Pointer Vec2
}

// EventSink is the interface for optional ECS integration. When set on a
// Page, page events are forwarded to it.
type EventSink interface {
	EmitEvent(event PageEvent)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// finiteOr returns v, or fallback when v is NaN or infinite.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
