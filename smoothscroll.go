package folio

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SmoothScrollConfig controls wheel smoothing.
type SmoothScrollConfig struct {
	// Enabled turns smoothing on. When off, wheel deltas scroll directly.
	Enabled bool
	// Duration is the glide time in seconds for one wheel impulse.
	Duration float64
	// WheelMultiplier scales wheel deltas into pixels.
	WheelMultiplier float64
	// Easing shapes the glide. Defaults to GlideEase.
	Easing ease.TweenFunc
}

// DefaultSmoothScrollConfig returns a 1.2 second exponential glide.
func DefaultSmoothScrollConfig() SmoothScrollConfig {
	return SmoothScrollConfig{
		Enabled:         true,
		Duration:        1.2,
		WheelMultiplier: 1,
		Easing:          GlideEase,
	}
}

// GlideEase is the exponential ease-out min(1, 1.001 - 2^(-10t)).
func GlideEase(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	p := 1.001 - math.Pow(2, -10*float64(t/d))
	return b + c*float32(math.Min(1, p))
}

// scrollTarget is the part of the document the scroller drives.
type scrollTarget interface {
	ScrollOffset() float64
	SetScrollOffset(y float64)
	MaxScroll() float64
}

// SmoothScroller eases the document toward a wheel-driven target offset.
// Any scroll it did not write itself, such as a scrollbar drag, cancels the
// glide and becomes the new resting point.
type SmoothScroller struct {
	doc    scrollTarget
	config SmoothScrollConfig
	tween  *gween.Tween
	target float64
	last   float64
}

// NewSmoothScroller binds a scroller to doc.
func NewSmoothScroller(doc scrollTarget, cfg SmoothScrollConfig) *SmoothScroller {
	if cfg.Easing == nil {
		cfg.Easing = GlideEase
	}
	s := &SmoothScroller{doc: doc, config: cfg}
	if doc != nil {
		s.target = doc.ScrollOffset()
		s.last = s.target
	}
	return s
}

// adopt abandons the glide if something else moved the document.
func (s *SmoothScroller) adopt() {
	cur := s.doc.ScrollOffset()
	if cur != s.last {
		s.tween = nil
		s.target = cur
		s.last = cur
	}
	if s.tween == nil {
		s.target = cur
	}
}

// Wheel adds a wheel delta (positive scrolls down) to the target.
func (s *SmoothScroller) Wheel(dy float64) {
	if s.doc == nil || dy == 0 {
		return
	}
	mult := s.config.WheelMultiplier
	if mult == 0 {
		mult = 1
	}
	if !s.config.Enabled || s.config.Duration <= 0 {
		s.doc.SetScrollOffset(s.doc.ScrollOffset() + dy*mult)
		s.last = s.doc.ScrollOffset()
		s.target = s.last
		return
	}
	s.adopt()
	s.ScrollTo(s.target + dy*mult)
}

// ScrollTo glides to y.
func (s *SmoothScroller) ScrollTo(y float64) {
	if s.doc == nil {
		return
	}
	s.adopt()
	s.target = clamp(y, 0, s.doc.MaxScroll())
	from := s.doc.ScrollOffset()
	if from == s.target {
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(from), float32(s.target), float32(s.config.Duration), s.config.Easing)
}

// Stop cancels any glide, leaving the document where it is.
func (s *SmoothScroller) Stop() {
	if s.doc == nil {
		return
	}
	s.tween = nil
	s.target = s.doc.ScrollOffset()
	s.last = s.target
}

// Update advances the glide by dt seconds.
func (s *SmoothScroller) Update(dt float64) {
	if s.doc == nil || s.tween == nil {
		return
	}
	if s.doc.ScrollOffset() != s.last {
		s.adopt()
		return
	}
	v, done := s.tween.Update(float32(dt))
	next := float64(v)
	if done {
		next = s.target
		s.tween = nil
	}
	s.doc.SetScrollOffset(next)
	s.last = s.doc.ScrollOffset()
}

// Animating reports whether a glide is in progress.
func (s *SmoothScroller) Animating() bool {
	return s.tween != nil
}

// Target returns the offset the glide is heading to.
func (s *SmoothScroller) Target() float64 {
	return s.target
}
