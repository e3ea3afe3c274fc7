package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Anchor pins a point on an element to a point on the viewport, both as
// fractions of their heights. Anchor{0, 0.95} reads "element top at 95% of
// the viewport".
type Anchor struct {
	Element  float64
	Viewport float64
}

// Common anchors.
var (
	AnchorTopBottom    = Anchor{0, 1}
	AnchorBottomTop    = Anchor{1, 0}
	AnchorCenterCenter = Anchor{0.5, 0.5}
)

// scrollFor returns the scroll offset at which the anchor lines up for an
// element box el in a viewport of height vh.
func (a Anchor) scrollFor(el Rect, vh float64) float64 {
	return el.Y + a.Element*el.Height - a.Viewport*vh
}

type triggerState uint8

const (
	triggerBefore triggerState = iota
	triggerActive
	triggerAfter
)

// ScrollTrigger watches the scroll offset against a window derived from an
// element's position and fires callbacks as the offset crosses it.
type ScrollTrigger struct {
	Name    string
	Element *Element
	Start   Anchor
	End     Anchor
	// EndOffset, when positive, places the end that many pixels past the
	// start instead of using End.
	EndOffset float64
	// Scrub, when positive, makes Progress trail the raw progress by about
	// that many seconds.
	Scrub float64

	OnEnter     func()
	OnLeave     func()
	OnEnterBack func()
	OnLeaveBack func()

	start, end float64
	state      triggerState
	raw        float64
	scrub      Follower
}

// Refresh recomputes the start and end offsets from the element's current
// bounds. Call it after every layout change.
func (t *ScrollTrigger) Refresh(viewportH float64) {
	if t.Element == nil {
		return
	}
	b := t.Element.Bounds
	t.start = t.Start.scrollFor(b, viewportH)
	if t.EndOffset > 0 {
		t.end = t.start + t.EndOffset
	} else {
		t.end = t.End.scrollFor(b, viewportH)
	}
	if t.end < t.start {
		t.end = t.start
	}
	t.scrub.Duration = t.Scrub
	t.scrub.Easing = ease.OutQuad
}

// Range returns the scroll offsets bounding the active window.
func (t *ScrollTrigger) Range() (start, end float64) {
	return t.start, t.end
}

// Update evaluates the trigger at scroll and advances scrub smoothing by dt
// seconds.
func (t *ScrollTrigger) Update(scroll, dt float64) {
	if t.Element == nil {
		return
	}
	next := triggerActive
	switch {
	case scroll < t.start:
		next = triggerBefore
	case scroll > t.end:
		next = triggerAfter
	}
	t.transition(next)

	if t.end > t.start {
		t.raw = clamp01((scroll - t.start) / (t.end - t.start))
	} else if scroll >= t.start {
		t.raw = 1
	} else {
		t.raw = 0
	}

	if t.Scrub > 0 {
		t.scrub.To(t.raw)
		t.scrub.Update(dt)
	} else {
		t.scrub.Set(t.raw)
	}
}

func (t *ScrollTrigger) transition(next triggerState) {
	prev := t.state
	if prev == next {
		return
	}
	t.state = next
	switch {
	case prev == triggerBefore && next == triggerActive:
		t.fire("enter", t.OnEnter)
	case prev == triggerActive && next == triggerAfter:
		t.fire("leave", t.OnLeave)
	case prev == triggerAfter && next == triggerActive:
		t.fire("enterback", t.OnEnterBack)
	case prev == triggerActive && next == triggerBefore:
		t.fire("leaveback", t.OnLeaveBack)
	case prev == triggerBefore && next == triggerAfter:
		t.fire("enter", t.OnEnter)
		t.fire("leave", t.OnLeave)
	case prev == triggerAfter && next == triggerBefore:
		t.fire("enterback", t.OnEnterBack)
		t.fire("leaveback", t.OnLeaveBack)
	}
}

func (t *ScrollTrigger) fire(kind string, fn func()) {
	if fn == nil {
		return
	}
	guard(t.Name+"."+kind, fn)
}

// Active reports whether the scroll offset is inside the window.
func (t *ScrollTrigger) Active() bool {
	return t.state == triggerActive
}

// RawProgress returns the unsmoothed progress through the window in [0, 1].
func (t *ScrollTrigger) RawProgress() float64 {
	return t.raw
}

// Progress returns the scrub-smoothed progress in [0, 1].
func (t *ScrollTrigger) Progress() float64 {
	return t.scrub.Value()
}

// Follower eases a value toward a moving target with gween. Each change of
// target restarts the tween from the current value.
type Follower struct {
	// Duration is the catch-up time in seconds. Zero snaps immediately.
	Duration float64
	// Easing defaults to ease.OutQuad.
	Easing ease.TweenFunc

	value  float64
	target float64
	tween  *gween.Tween
}

// Set jumps to v and stops any tween.
func (f *Follower) Set(v float64) {
	f.value, f.target = v, v
	f.tween = nil
}

// To retargets the follower at v.
func (f *Follower) To(v float64) {
	if v == f.target && (f.tween != nil || f.value == v) {
		return
	}
	f.target = v
	if f.Duration <= 0 {
		f.Set(v)
		return
	}
	fn := f.Easing
	if fn == nil {
		fn = ease.OutQuad
	}
	f.tween = gween.New(float32(f.value), float32(v), float32(f.Duration), fn)
}

// Update advances the tween by dt seconds.
func (f *Follower) Update(dt float64) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(float32(dt))
	f.value = float64(v)
	if done {
		f.value = f.target
		f.tween = nil
	}
}

// Value returns the current value.
func (f *Follower) Value() float64 {
	return f.value
}

// Settled reports whether the value has reached its target.
func (f *Follower) Settled() bool {
	return f.tween == nil
}
