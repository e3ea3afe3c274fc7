package folio

// SectionSpec describes one block of page content.
type SectionSpec struct {
	Name   string
	Title  string
	Height float64
	Color  Color
	// Reveal fades the section in while it is inside the reveal window.
	Reveal bool
	// Parallax shifts the section backdrop while it crosses the viewport.
	Parallax bool
	// RowWidth, when positive, makes the section a horizontally scrolling
	// row of that width. The section is pinned while the row slides by.
	RowWidth float64
}

// Element is a box on the page. Section elements are in document space;
// scrollbar elements are in screen space.
type Element struct {
	Name   string
	Bounds Rect
	// Active mirrors the reveal "active" state.
	Active bool
}

// Section is a laid-out SectionSpec.
type Section struct {
	Spec    SectionSpec
	Element Element
	// PinSpacing is the extra scroll distance reserved after the section
	// while it is pinned.
	PinSpacing float64
}

// maxDispatchPasses bounds how many times a single scroll write can re-run
// the listener list when listeners themselves scroll the document.
const maxDispatchPasses = 8

type scrollListener struct {
	id   uint32
	name string
	fn   func(offset float64)
}

// Document is the virtual scrollable page: it lays sections out top to
// bottom, owns the scroll offset and answers layout queries.
type Document struct {
	sections  []*Section
	viewportW float64
	viewportH float64
	content   float64
	scroll    float64

	selectable bool
	pinning    bool

	listeners   []scrollListener
	nextID      uint32
	dispatching bool
	pending     bool
}

// NewDocument lays out specs for a viewport of w x h.
func NewDocument(specs []SectionSpec, w, h float64) *Document {
	d := &Document{selectable: true, pinning: true}
	for _, spec := range specs {
		d.sections = append(d.sections, &Section{
			Spec:    spec,
			Element: Element{Name: spec.Name},
		})
	}
	d.viewportW, d.viewportH = max(w, 0), max(h, 0)
	d.layout()
	return d
}

// layout stacks sections vertically and recomputes pin spacing and the
// content height for the current viewport.
func (d *Document) layout() {
	y := 0.0
	for _, s := range d.sections {
		s.Element.Bounds = Rect{X: 0, Y: y, Width: d.viewportW, Height: max(s.Spec.Height, 0)}
		s.PinSpacing = 0
		if d.pinning && s.Spec.RowWidth > 0 {
			s.PinSpacing = horizontalAmount(s.Spec.RowWidth, d.viewportW)
		}
		y += s.Element.Bounds.Height + s.PinSpacing
	}
	d.content = y
}

// horizontalAmount is how far a row of rowWidth travels inside a viewport of
// width vw, including a trailing buffer of a tenth of the viewport.
func horizontalAmount(rowWidth, vw float64) float64 {
	return max(rowWidth-vw+vw*0.1, 0)
}

// Resize re-lays out the page for a new viewport and re-clamps the scroll
// offset, notifying listeners if it moved.
func (d *Document) Resize(w, h float64) {
	d.viewportW, d.viewportH = max(w, 0), max(h, 0)
	d.layout()
	d.SetScrollOffset(d.scroll)
}

// SetPinning turns pin spacing for horizontal rows on or off and re-lays
// out the page.
func (d *Document) SetPinning(enabled bool) {
	if d.pinning == enabled {
		return
	}
	d.pinning = enabled
	d.Resize(d.viewportW, d.viewportH)
}

// Pinning reports whether horizontal rows reserve pin spacing.
func (d *Document) Pinning() bool { return d.pinning }

// ViewportWidth returns the visible width.
func (d *Document) ViewportWidth() float64 { return d.viewportW }

// ViewportHeight returns the visible height.
func (d *Document) ViewportHeight() float64 { return d.viewportH }

// ContentHeight returns the full scrollable extent. It is never smaller than
// the viewport.
func (d *Document) ContentHeight() float64 {
	return max(d.content, d.viewportH)
}

// MaxScroll returns the largest valid scroll offset.
func (d *Document) MaxScroll() float64 {
	return max(d.ContentHeight()-d.viewportH, 0)
}

// ScrollOffset returns the current scroll offset.
func (d *Document) ScrollOffset() float64 { return d.scroll }

// SetScrollOffset moves the page to y, clamped to [0, MaxScroll], and
// synchronously notifies scroll listeners. Writes made by a listener while
// listeners are running are applied immediately and trigger another pass
// once the current one finishes, never a nested dispatch.
func (d *Document) SetScrollOffset(y float64) {
	y = clamp(finiteOr(y, 0), 0, d.MaxScroll())
	if y == d.scroll {
		return
	}
	d.scroll = y
	d.pending = true
	if d.dispatching {
		return
	}

	d.dispatching = true
	defer func() { d.dispatching = false }()
	for pass := 0; d.pending && pass < maxDispatchPasses; pass++ {
		d.pending = false
		// Snapshot so listeners may add or remove handlers.
		ls := append([]scrollListener(nil), d.listeners...)
		for _, l := range ls {
			offset := d.scroll
			guard(l.name, func() { l.fn(offset) })
		}
	}
	d.pending = false
}

// ScrollBy moves the page by dy.
func (d *Document) ScrollBy(dy float64) {
	d.SetScrollOffset(d.scroll + dy)
}

// SetTextSelection enables or disables text selection on the page.
func (d *Document) SetTextSelection(enabled bool) { d.selectable = enabled }

// TextSelectable reports whether text selection is enabled.
func (d *Document) TextSelectable() bool { return d.selectable }

// Sections returns the laid-out sections. The returned slice MUST NOT be
// mutated.
func (d *Document) Sections() []*Section { return d.sections }

// Section finds a section by name, or nil.
func (d *Document) Section(name string) *Section {
	for _, s := range d.sections {
		if s.Spec.Name == name {
			return s
		}
	}
	return nil
}

// ScreenRect converts a document-space rect to screen space.
func (d *Document) ScreenRect(r Rect) Rect {
	r.Y -= d.scroll
	return r
}

// OnScroll registers fn to run after every scroll offset change. The name is
// used when reporting a recovered panic.
func (d *Document) OnScroll(name string, fn func(offset float64)) CallbackHandle {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, scrollListener{id: id, name: name, fn: fn})
	return CallbackHandle{id: id, remove: d.removeListener}
}

func (d *Document) removeListener(id uint32) {
	for i := range d.listeners {
		if d.listeners[i].id == id {
			copy(d.listeners[i:], d.listeners[i+1:])
			d.listeners[len(d.listeners)-1] = scrollListener{}
			d.listeners = d.listeners[:len(d.listeners)-1]
			return
		}
	}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the callback so it no longer fires. Removing twice or
// removing a zero handle is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}
