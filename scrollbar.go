package folio

// ScrollLayout is the live layout the scrollbar reads and drives.
type ScrollLayout interface {
	ScrollOffset() float64
	ContentHeight() float64
	ViewportHeight() float64
	SetScrollOffset(y float64)
	SetTextSelection(enabled bool)
}

// ScrollbarConfig controls the scrollbar's size and look.
type ScrollbarConfig struct {
	// MinThumbHeight is the floor for the computed thumb height.
	MinThumbHeight float64
	// Width is the track width in pixels.
	Width           float64
	TrackColor      Color
	ThumbColor      Color
	ThumbHoverColor Color
}

// DefaultScrollbarConfig returns a slim translucent scrollbar with a 30px
// minimum thumb.
func DefaultScrollbarConfig() ScrollbarConfig {
	return ScrollbarConfig{
		MinThumbHeight:  30,
		Width:           8,
		TrackColor:      Color{1, 1, 1, 0.04},
		ThumbColor:      Color{1, 1, 1, 0.25},
		ThumbHoverColor: Color{1, 1, 1, 0.5},
	}
}

// dragSession exists only between BeginDrag and EndDrag.
type dragSession struct {
	active           bool
	pointerStartY    float64
	thumbStartOffset float64
}

// Scrollbar keeps a thumb whose size and offset mirror the document scroll
// and maps thumb drags back onto the scroll offset.
//
// Thumb writes happen only in RecomputeThumbSize and SyncThumbFromScroll.
// DragMove only sets the scroll offset; the resulting scroll event is
// expected to call SyncThumbFromScroll.
type Scrollbar struct {
	layout ScrollLayout
	thumb  *Element
	track  *Element
	config ScrollbarConfig

	offset float64
	drag   dragSession
	hover  bool
}

// NewScrollbar binds a scrollbar to layout and its host elements. track may
// be nil, in which case the track spans the viewport height. A nil layout or
// thumb yields a scrollbar whose operations do nothing.
func NewScrollbar(layout ScrollLayout, thumb, track *Element, cfg ScrollbarConfig) *Scrollbar {
	return &Scrollbar{layout: layout, thumb: thumb, track: track, config: cfg}
}

func (sb *Scrollbar) missing() bool {
	return sb == nil || sb.layout == nil || sb.thumb == nil
}

// trackHeight returns the track element height, or the viewport height when
// the host has no sized track.
func (sb *Scrollbar) trackHeight() float64 {
	if sb.track != nil && sb.track.Bounds.Height > 0 {
		return sb.track.Bounds.Height
	}
	return sb.layout.ViewportHeight()
}

// metrics reads every scroll metric from the live layout.
func (sb *Scrollbar) metrics() (maxScroll, travel float64) {
	maxScroll = sb.layout.ContentHeight() - sb.layout.ViewportHeight()
	travel = max(sb.trackHeight()-sb.thumb.Bounds.Height, 0)
	return maxScroll, travel
}

// RecomputeThumbSize sets the thumb height to the viewport's share of the
// document, never below MinThumbHeight.
func (sb *Scrollbar) RecomputeThumbSize() {
	if sb.missing() {
		return
	}
	vh := sb.layout.ViewportHeight()
	dh := sb.layout.ContentHeight()
	h := sb.trackHeight()
	if dh > 0 {
		h = vh / dh * vh
	}
	h = max(sb.config.MinThumbHeight, finiteOr(h, 0))
	sb.thumb.Bounds.Height = h

	if sb.track != nil {
		sb.thumb.Bounds.X = sb.track.Bounds.X
		sb.thumb.Bounds.Width = sb.track.Bounds.Width
	}
}

// SyncThumbFromScroll places the thumb proportionally to the scroll offset.
// Without scrollable overflow the thumb rests at 0.
func (sb *Scrollbar) SyncThumbFromScroll() {
	if sb.missing() {
		return
	}
	maxScroll, travel := sb.metrics()
	offset := 0.0
	if maxScroll > 0 {
		offset = sb.layout.ScrollOffset() / maxScroll * travel
	}
	sb.setOffset(clamp(finiteOr(offset, 0), 0, travel))
}

func (sb *Scrollbar) setOffset(offset float64) {
	sb.offset = offset
	top := 0.0
	if sb.track != nil {
		top = sb.track.Bounds.Y
	}
	sb.thumb.Bounds.Y = top + offset
}

// BeginDrag starts a drag session at pointerY and disables text selection.
func (sb *Scrollbar) BeginDrag(pointerY float64) {
	if sb.missing() {
		return
	}
	sb.drag = dragSession{
		active:           true,
		pointerStartY:    pointerY,
		thumbStartOffset: sb.offset,
	}
	sb.layout.SetTextSelection(false)
}

// DragMove maps the pointer travel since BeginDrag to a scroll offset. It is
// a no-op when no drag is active.
func (sb *Scrollbar) DragMove(pointerY float64) {
	if sb.missing() || !sb.drag.active {
		return
	}
	maxScroll, travel := sb.metrics()
	delta := pointerY - sb.drag.pointerStartY
	next := clamp(sb.drag.thumbStartOffset+delta, 0, travel)

	ratio := 0.0
	if travel > 0 {
		ratio = next / travel
	}
	sb.layout.SetScrollOffset(ratio * max(maxScroll, 0))
}

// EndDrag clears the drag session and re-enables text selection. It reports
// whether a drag was active.
func (sb *Scrollbar) EndDrag() bool {
	if sb.missing() {
		return false
	}
	was := sb.drag.active
	sb.drag = dragSession{}
	sb.layout.SetTextSelection(true)
	return was
}

// Dragging reports whether a drag session is active.
func (sb *Scrollbar) Dragging() bool {
	return !sb.missing() && sb.drag.active
}

// ThumbOffset returns the thumb offset from the top of the track.
func (sb *Scrollbar) ThumbOffset() float64 {
	if sb.missing() {
		return 0
	}
	return sb.offset
}

// ThumbHeight returns the current thumb height.
func (sb *Scrollbar) ThumbHeight() float64 {
	if sb.missing() {
		return 0
	}
	return sb.thumb.Bounds.Height
}

// ThumbRect returns the thumb's screen rectangle.
func (sb *Scrollbar) ThumbRect() Rect {
	if sb.missing() {
		return Rect{}
	}
	return sb.thumb.Bounds
}

// HitThumb reports whether the screen point lies on the thumb.
func (sb *Scrollbar) HitThumb(x, y float64) bool {
	if sb.missing() {
		return false
	}
	return sb.thumb.Bounds.Contains(x, y)
}

// HitTrack reports whether the screen point lies on the track but not the
// thumb.
func (sb *Scrollbar) HitTrack(x, y float64) bool {
	if sb.missing() || sb.track == nil {
		return false
	}
	return sb.track.Bounds.Contains(x, y) && !sb.HitThumb(x, y)
}

// PageToward scrolls one viewport toward the screen y of a track click.
func (sb *Scrollbar) PageToward(y float64) {
	if sb.missing() {
		return
	}
	page := sb.layout.ViewportHeight()
	switch {
	case y < sb.thumb.Bounds.Y:
		sb.layout.SetScrollOffset(sb.layout.ScrollOffset() - page)
	case y > sb.thumb.Bounds.Bottom():
		sb.layout.SetScrollOffset(sb.layout.ScrollOffset() + page)
	}
}

// SetHover records whether the pointer is over the thumb.
func (sb *Scrollbar) SetHover(hover bool) {
	if sb == nil {
		return
	}
	sb.hover = hover
}

// Draw paints the track and thumb.
func (sb *Scrollbar) Draw(s Surface) {
	if sb.missing() {
		return
	}
	if sb.track != nil {
		s.FillRect(sb.track.Bounds, sb.config.TrackColor)
	}
	c := sb.config.ThumbColor
	if sb.hover || sb.drag.active {
		c = sb.config.ThumbHoverColor
	}
	s.FillRect(sb.thumb.Bounds, c)
}
