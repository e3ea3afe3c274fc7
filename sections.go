package folio

import "github.com/tanema/gween/ease"

const (
	revealDuration  = 0.8
	parallaxTravel  = 0.2 // fraction of section height
	rowCardWidth    = 360.0
	rowCardGap      = 40.0
	sectionPadding  = 48.0
	defaultScrubLag = 1.0
)

// Reveal window: element top at 95% of the viewport until its bottom passes
// 15%.
var (
	revealStart = Anchor{0, 0.95}
	revealEnd   = Anchor{1, 0.15}
)

// applyInputMode re-derives everything that depends on the input mode.
// Touch pages skip pinning and reveal triggers; reveal sections are shown
// outright and the cursor is hidden.
func (p *Page) applyInputMode(m InputMode) {
	p.cursor.SetInputMode(m)
	p.doc.SetPinning(m == InputMouse)
	p.buildTriggers(m)
	if p.width > 0 && p.height > 0 {
		p.scrollbar.RecomputeThumbSize()
		p.scrollbar.SyncThumbFromScroll()
	}
	p.emit(PageEvent{Type: EventInputModeChange, Mode: m})
}

// buildTriggers recreates the reveal, pin and parallax triggers.
func (p *Page) buildTriggers(m InputMode) {
	for _, st := range p.sections {
		sec := st.section
		spec := sec.Spec
		st.reveal, st.pin, st.parallax = nil, nil, nil

		st.fade.Duration = revealDuration
		st.fade.Easing = ease.OutCubic
		switch {
		case !spec.Reveal:
			st.fade.Set(1)
		case m == InputTouch:
			sec.Element.Active = true
			st.fade.Set(1)
		default:
			sec.Element.Active = false
			st.fade.Set(0)
			st.reveal = &ScrollTrigger{
				Name:        spec.Name,
				Element:     &sec.Element,
				Start:       revealStart,
				End:         revealEnd,
				OnEnter:     func() { p.setRevealed(st, true, EventTriggerEnter) },
				OnLeave:     func() { p.setRevealed(st, false, EventTriggerLeave) },
				OnEnterBack: func() { p.setRevealed(st, true, EventTriggerEnterBack) },
				OnLeaveBack: func() { p.setRevealed(st, false, EventTriggerLeaveBack) },
			}
		}

		if spec.RowWidth > 0 && m == InputMouse {
			st.pin = &ScrollTrigger{
				Name:    spec.Name + ".pin",
				Element: &sec.Element,
				Start:   AnchorCenterCenter,
				Scrub:   defaultScrubLag,
			}
		}
		if spec.Parallax {
			st.parallax = &ScrollTrigger{
				Name:    spec.Name + ".parallax",
				Element: &sec.Element,
				Start:   AnchorTopBottom,
				End:     AnchorBottomTop,
				Scrub:   defaultScrubLag,
			}
		}
	}
	p.refreshTriggers()
}

func (p *Page) setRevealed(st *sectionState, active bool, kind EventType) {
	st.section.Element.Active = active
	if active {
		st.fade.To(1)
	} else {
		st.fade.To(0)
	}
	p.emit(PageEvent{Type: kind, Name: st.section.Spec.Name, Scroll: p.doc.ScrollOffset()})
}

// refreshTriggers recomputes every trigger window from the current layout.
func (p *Page) refreshTriggers() {
	vh := p.doc.ViewportHeight()
	for _, st := range p.sections {
		if st.pin != nil {
			st.pin.EndOffset = st.section.PinSpacing
		}
		for _, t := range st.triggers() {
			t.Refresh(vh)
		}
	}
}

func (st *sectionState) triggers() []*ScrollTrigger {
	ts := make([]*ScrollTrigger, 0, 3)
	for _, t := range []*ScrollTrigger{st.reveal, st.pin, st.parallax} {
		if t != nil {
			ts = append(ts, t)
		}
	}
	return ts
}

// updateSections evaluates triggers against the current scroll offset and
// advances fades.
func (p *Page) updateSections(dt float64) {
	scroll := p.doc.ScrollOffset()
	for _, st := range p.sections {
		for _, t := range st.triggers() {
			t.Update(scroll, dt)
		}
		st.fade.Update(dt)
	}
}

// sectionScreenRect returns where a section is drawn. A pinned section
// holds its start position for the length of its pin window.
func (p *Page) sectionScreenRect(st *sectionState) Rect {
	r := st.section.Element.Bounds
	scroll := p.doc.ScrollOffset()
	if st.pin == nil {
		r.Y -= scroll
		return r
	}
	start, end := st.pin.Range()
	switch {
	case scroll < start:
		r.Y -= scroll
	case scroll > end:
		r.Y -= scroll - (end - start)
	default:
		r.Y -= start
	}
	return r
}

// rowOffset is the horizontal translation of a pinned row.
func (p *Page) rowOffset(st *sectionState) float64 {
	if st.pin == nil {
		return 0
	}
	return -st.pin.Progress() * st.section.PinSpacing
}

func (p *Page) drawSection(s Surface, st *sectionState) {
	r := p.sectionScreenRect(st)
	if r.Bottom() < 0 || r.Y > float64(p.height) {
		return
	}
	spec := st.section.Spec
	alpha := st.fade.Value()

	col := spec.Color
	col.A *= alpha
	s.FillRect(r, col)

	if st.parallax != nil {
		shift := st.parallax.Progress() * parallaxTravel * r.Height
		band := Rect{
			X:      r.X + r.Width*0.1,
			Y:      r.Y + r.Height*0.1 + shift,
			Width:  r.Width * 0.8,
			Height: r.Height * 0.6,
		}
		s.FillRect(band, spec.Color.WithAlpha(spec.Color.A*1.5*alpha))
	}

	if spec.RowWidth > 0 {
		offset := p.rowOffset(st)
		for x := sectionPadding; x+rowCardWidth <= spec.RowWidth; x += rowCardWidth + rowCardGap {
			card := Rect{X: r.X + x + offset, Y: r.Y + r.Height*0.2, Width: rowCardWidth, Height: r.Height * 0.6}
			if card.X+card.Width < 0 || card.X > r.Width {
				continue
			}
			s.FillRect(card, spec.Color.WithAlpha(spec.Color.A*2*alpha))
		}
	}

	if ts, ok := s.(TextSurface); ok && spec.Title != "" {
		ts.DrawText(spec.Title, r.X+sectionPadding, r.Y+sectionPadding, ColorWhite.WithAlpha(0.8*alpha))
	}
}
