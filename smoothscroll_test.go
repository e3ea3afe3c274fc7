package folio

import "testing"

const frameDT = 1.0 / 60

func newScrollDoc() *Document {
	return NewDocument([]SectionSpec{{Name: "body", Height: 5000}}, 800, 500)
}

func runFrames(s *SmoothScroller, n int) {
	for i := 0; i < n; i++ {
		s.Update(frameDT)
	}
}

func TestGlideEase(t *testing.T) {
	if got := GlideEase(0, 0, 1, 1); !approx(float64(got), 0.001, 1e-6) {
		t.Errorf("start = %v, want 0.001", got)
	}
	if got := GlideEase(1, 0, 1, 1); got != 1 {
		t.Errorf("end = %v, want 1", got)
	}
	if got := GlideEase(0.5, 10, 100, 1); got <= 10 || got >= 110 {
		t.Errorf("middle = %v, want inside (10, 110)", got)
	}
	if got := GlideEase(0, 10, 100, 0); got != 110 {
		t.Errorf("zero duration = %v, want 110", got)
	}
}

func TestWheelDisabledScrollsDirectly(t *testing.T) {
	doc := newScrollDoc()
	cfg := DefaultSmoothScrollConfig()
	cfg.Enabled = false
	s := NewSmoothScroller(doc, cfg)

	s.Wheel(120)
	if doc.ScrollOffset() != 120 {
		t.Errorf("scroll = %v, want 120", doc.ScrollOffset())
	}
	if s.Animating() {
		t.Error("disabled scroller should not animate")
	}
}

func TestWheelGlidesToTarget(t *testing.T) {
	doc := newScrollDoc()
	s := NewSmoothScroller(doc, DefaultSmoothScrollConfig())

	s.Wheel(300)
	if doc.ScrollOffset() != 0 {
		t.Errorf("scroll jumped to %v", doc.ScrollOffset())
	}
	if !s.Animating() || s.Target() != 300 {
		t.Fatalf("animating = %v, target = %v", s.Animating(), s.Target())
	}

	prev := 0.0
	for i := 0; i < 120 && s.Animating(); i++ {
		s.Update(frameDT)
		if doc.ScrollOffset() < prev {
			t.Fatalf("frame %d: scroll went back from %v to %v", i, prev, doc.ScrollOffset())
		}
		prev = doc.ScrollOffset()
	}
	if s.Animating() {
		t.Fatal("glide did not finish within 2s")
	}
	if doc.ScrollOffset() != 300 {
		t.Errorf("scroll = %v, want 300", doc.ScrollOffset())
	}
}

func TestWheelAccumulatesAndClamps(t *testing.T) {
	doc := newScrollDoc()
	s := NewSmoothScroller(doc, DefaultSmoothScrollConfig())
	s.Wheel(100)
	s.Wheel(100)
	if s.Target() != 200 {
		t.Errorf("target = %v, want 200", s.Target())
	}
	s.Wheel(1e6)
	if s.Target() != doc.MaxScroll() {
		t.Errorf("target = %v, want %v", s.Target(), doc.MaxScroll())
	}
	s.Wheel(-1e7)
	if s.Target() != 0 {
		t.Errorf("target = %v, want 0", s.Target())
	}
}

func TestWheelMultiplier(t *testing.T) {
	doc := newScrollDoc()
	cfg := DefaultSmoothScrollConfig()
	cfg.WheelMultiplier = 2
	s := NewSmoothScroller(doc, cfg)
	s.Wheel(100)
	if s.Target() != 200 {
		t.Errorf("target = %v, want 200", s.Target())
	}
}

func TestExternalScrollCancelsGlide(t *testing.T) {
	doc := newScrollDoc()
	s := NewSmoothScroller(doc, DefaultSmoothScrollConfig())
	s.Wheel(1000)
	runFrames(s, 5)

	// A scrollbar drag or touch scroll writes the document directly.
	doc.SetScrollOffset(2000)
	s.Update(frameDT)
	if s.Animating() {
		t.Error("glide should stop after an external scroll")
	}
	if doc.ScrollOffset() != 2000 {
		t.Errorf("scroll = %v, want 2000", doc.ScrollOffset())
	}

	doc.SetScrollOffset(2500)
	s.Wheel(100)
	if s.Target() != 2600 {
		t.Errorf("target = %v, want 2600", s.Target())
	}
}

func TestStop(t *testing.T) {
	doc := newScrollDoc()
	s := NewSmoothScroller(doc, DefaultSmoothScrollConfig())
	s.Wheel(1000)
	runFrames(s, 10)
	at := doc.ScrollOffset()
	s.Stop()
	runFrames(s, 10)
	if doc.ScrollOffset() != at || s.Animating() || s.Target() != at {
		t.Errorf("scroll = %v target = %v, want both %v", doc.ScrollOffset(), s.Target(), at)
	}
}

func TestSmoothScrollerNilDocument(t *testing.T) {
	s := NewSmoothScroller(nil, DefaultSmoothScrollConfig())
	s.Wheel(100)
	s.ScrollTo(100)
	s.Update(frameDT)
	s.Stop()
	if s.Animating() {
		t.Error("nil document should never animate")
	}
}
