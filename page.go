package folio

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// sectionState holds the per-section triggers and fades.
type sectionState struct {
	section  *Section
	reveal   *ScrollTrigger
	pin      *ScrollTrigger
	parallax *ScrollTrigger
	fade     Follower
}

// Page is the top-level object: it owns the document, the particle
// backdrop, the scrollbar, smooth scrolling, scroll triggers and the custom
// cursor, and implements ebiten.Game.
type Page struct {
	config Config

	doc       *Document
	field     *ParticleField
	scrollbar *Scrollbar
	thumb     Element
	track     Element
	smooth    *SmoothScroller
	cursor    *Cursor
	input     *Input
	modes     *InputModeDetector
	sections  []*sectionState
	sink      EventSink

	width, height int
	backdrop      *ebiten.Image
	hoverThumb    bool
	touchScroll   bool

	debug     bool
	showFPS   bool
	fps       *fpsWidget
	lastStats debugStats

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewPage validates cfg and builds a page. The page has no size until the
// first Layout call.
func NewPage(cfg Config) (*Page, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	p := &Page{
		config:        cfg,
		doc:           NewDocument(cfg.Sections, 0, 0),
		field:         NewParticleField(cfg.Field, rng),
		cursor:        NewCursor(cfg.Cursor),
		modes:         NewInputModeDetector(cfg.InputMode),
		ScreenshotDir: "screenshots",
	}
	p.thumb = Element{Name: "scrollbar-thumb"}
	p.track = Element{Name: "scrollbar-track"}
	p.scrollbar = NewScrollbar(p.doc, &p.thumb, &p.track, cfg.Scrollbar)
	p.smooth = NewSmoothScroller(p.doc, cfg.Smooth)
	p.input = NewInput(p.modes)

	for _, s := range p.doc.Sections() {
		p.sections = append(p.sections, &sectionState{section: s})
	}

	p.doc.OnScroll("scrollbar", func(float64) { p.scrollbar.SyncThumbFromScroll() })
	p.doc.OnScroll("events", func(offset float64) {
		p.emit(PageEvent{Type: EventScroll, Scroll: offset})
	})

	p.input.OnPointerDown("scrollbar", p.pointerDown)
	p.input.OnPointerMove("scrollbar", p.pointerMove)
	p.input.OnPointerUp("scrollbar", p.pointerUp)
	p.input.OnWheel("smoothscroll", p.smooth.Wheel)

	p.modes.OnChange(p.applyInputMode)
	return p, nil
}

// Document returns the page's document.
func (p *Page) Document() *Document { return p.doc }

// Field returns the particle backdrop.
func (p *Page) Field() *ParticleField { return p.field }

// Scrollbar returns the page scrollbar.
func (p *Page) Scrollbar() *Scrollbar { return p.scrollbar }

// SmoothScroller returns the wheel smoother.
func (p *Page) SmoothScroller() *SmoothScroller { return p.smooth }

// Cursor returns the custom cursor.
func (p *Page) Cursor() *Cursor { return p.cursor }

// Input returns the page input, used to inject synthetic events.
func (p *Page) Input() *Input { return p.input }

// InputModes returns the page-wide input mode flag.
func (p *Page) InputModes() *InputModeDetector { return p.modes }

// SetEventSink sets the optional ECS bridge.
func (p *Page) SetEventSink(sink EventSink) { p.sink = sink }

// SetDebugMode enables per-frame timing stats on the log output.
func (p *Page) SetDebugMode(enabled bool) { p.debug = enabled }

// SetShowFPS toggles the FPS overlay.
func (p *Page) SetShowFPS(show bool) {
	p.showFPS = show
	if show && p.fps == nil {
		p.fps = newFPSWidget()
	}
}

func (p *Page) emit(e PageEvent) {
	if p.sink == nil {
		return
	}
	guard("eventsink", func() { p.sink.EmitEvent(e) })
}

// --- ebiten.Game ---

// Layout reports the logical screen size. A size change re-initializes
// everything that depends on the viewport before the next Update or Draw.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (p *Page) resize(w, h int) {
	p.width, p.height = w, h
	fw, fh := float64(w), float64(h)

	p.doc.Resize(fw, fh)
	p.field.Reset(fw, fh)
	if p.backdrop != nil {
		p.backdrop.Deallocate()
		p.backdrop = nil
	}

	bw := p.config.Scrollbar.Width
	p.track.Bounds = Rect{X: fw - bw, Y: 0, Width: bw, Height: fh}
	p.scrollbar.RecomputeThumbSize()
	p.scrollbar.SyncThumbFromScroll()

	p.refreshTriggers()
	p.emit(PageEvent{Type: EventResize, Width: fw, Height: fh})
}

// Update processes input and advances scrolling, triggers and the cursor.
// The particle simulation advances in Draw, once per displayed frame.
func (p *Page) Update() error {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	dt := 1.0 / float64(ebiten.TPS())

	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.input.Process()
	p.smooth.Update(dt)
	p.updateSections(dt)
	p.cursor.Update()

	if p.debug {
		p.lastStats.updateTime = time.Since(t0)
	}
	return nil
}

// Draw renders the backdrop, the page content, the scrollbar and the
// cursor.
func (p *Page) Draw(screen *ebiten.Image) {
	screen.Fill(p.config.Background.toRGBA())

	if p.backdrop == nil && p.width > 0 && p.height > 0 {
		p.backdrop = ebiten.NewImage(p.width, p.height)
	}
	if p.backdrop != nil {
		p.DrawBackdrop(NewImageSurface(p.backdrop))
		screen.DrawImage(p.backdrop, nil)
	}

	p.DrawContent(NewImageSurface(screen))

	if p.showFPS && p.fps != nil {
		p.fps.draw(screen)
	}
	p.flushScreenshots(screen)
	p.debugLog(p.lastStats)
}

// DrawBackdrop advances the particle field one frame and renders it onto s.
func (p *Page) DrawBackdrop(s Surface) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	p.field.AdvanceFrame()
	if p.debug {
		p.lastStats.advanceTime = time.Since(t0)
		t0 = time.Now()
	}
	links := p.field.RenderFrame(s)
	if p.debug {
		p.lastStats.renderTime = time.Since(t0)
		p.lastStats.particles = len(p.field.Particles())
		p.lastStats.links = links
		p.lastStats.scroll = p.doc.ScrollOffset()
		p.lastStats.maxScroll = p.doc.MaxScroll()
	}
}

// DrawContent renders the sections, scrollbar and cursor onto s.
func (p *Page) DrawContent(s Surface) {
	for _, st := range p.sections {
		p.drawSection(s, st)
	}
	p.scrollbar.Draw(s)
	p.cursor.Draw(s, p.hoverThumb)
}

// --- Pointer routing ---

func (p *Page) pointerDown(ctx PointerContext) {
	p.cursor.MoveTo(Vec2{ctx.X, ctx.Y})
	switch {
	case p.scrollbar.HitThumb(ctx.X, ctx.Y):
		p.smooth.Stop()
		p.scrollbar.BeginDrag(ctx.Y)
		p.emit(PageEvent{Type: EventDragStart, Scroll: p.doc.ScrollOffset(), Pointer: Vec2{ctx.X, ctx.Y}})
	case p.scrollbar.HitTrack(ctx.X, ctx.Y):
		p.smooth.Stop()
		p.scrollbar.PageToward(ctx.Y)
	case ctx.Touch:
		p.smooth.Stop()
		p.touchScroll = true
	}
}

func (p *Page) pointerMove(ctx PointerContext) {
	p.cursor.MoveTo(Vec2{ctx.X, ctx.Y})
	p.hoverThumb = p.scrollbar.Dragging() || p.scrollbar.HitThumb(ctx.X, ctx.Y)
	p.scrollbar.SetHover(p.hoverThumb)

	switch {
	case p.scrollbar.Dragging():
		p.scrollbar.DragMove(ctx.Y)
	case p.touchScroll && ctx.Pressed:
		p.doc.ScrollBy(-ctx.DeltaY)
		p.smooth.Stop()
	}
}

func (p *Page) pointerUp(ctx PointerContext) {
	p.touchScroll = false
	if p.scrollbar.EndDrag() {
		p.emit(PageEvent{Type: EventDragEnd, Scroll: p.doc.ScrollOffset(), Pointer: Vec2{ctx.X, ctx.Y}})
	}
}
