package folio

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate and NewPage.
var ErrInvalidConfig = errors.New("folio: invalid config")

// Config collects every tunable of a Page.
type Config struct {
	Field     FieldConfig
	Scrollbar ScrollbarConfig
	Smooth    SmoothScrollConfig
	Cursor    CursorConfig
	Sections  []SectionSpec
	// Background is the color behind the particle backdrop.
	Background Color
	// InputMode is the mode assumed before any input arrives.
	InputMode InputMode
	// Seed seeds the particle RNG. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the portfolio page defaults.
func DefaultConfig() Config {
	return Config{
		Field:      DefaultFieldConfig(),
		Scrollbar:  DefaultScrollbarConfig(),
		Smooth:     DefaultSmoothScrollConfig(),
		Cursor:     DefaultCursorConfig(),
		Sections:   DefaultSections(),
		Background: Color{0.03, 0.03, 0.06, 1},
	}
}

// DefaultSections returns the portfolio layout: hero, about, a pinned
// horizontal experience row, two parallax project panels, services and
// contact.
func DefaultSections() []SectionSpec {
	return []SectionSpec{
		{Name: "hero", Title: "Ahmed Magdy", Height: 900, Color: Color{1, 1, 1, 0.02}},
		{Name: "about", Title: "About", Height: 700, Color: Color{0.4, 0.5, 1, 0.05}, Reveal: true},
		{Name: "experience", Title: "Experience", Height: 600, Color: Color{0.6, 0.4, 1, 0.05}, RowWidth: 2400},
		{Name: "project-1", Title: "Projects", Height: 800, Color: Color{0.2, 0.8, 0.9, 0.05}, Reveal: true, Parallax: true},
		{Name: "project-2", Height: 800, Color: Color{0.9, 0.5, 0.3, 0.05}, Reveal: true, Parallax: true},
		{Name: "services", Title: "Services", Height: 700, Color: Color{0.5, 0.9, 0.5, 0.05}, Reveal: true},
		{Name: "contact", Title: "Contact", Height: 600, Color: Color{1, 1, 1, 0.04}, Reveal: true},
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Field.Count < 0:
		return fmt.Errorf("%w: field count %d is negative", ErrInvalidConfig, c.Field.Count)
	case c.Field.Size.Min <= 0 || c.Field.Size.Max < c.Field.Size.Min:
		return fmt.Errorf("%w: particle size range %v", ErrInvalidConfig, c.Field.Size)
	case c.Field.Speed.Max < c.Field.Speed.Min:
		return fmt.Errorf("%w: particle speed range %v", ErrInvalidConfig, c.Field.Speed)
	case c.Field.Alpha.Min < 0 || c.Field.Alpha.Max > 1 || c.Field.Alpha.Max < c.Field.Alpha.Min:
		return fmt.Errorf("%w: particle alpha range %v", ErrInvalidConfig, c.Field.Alpha)
	case c.Field.LinkDistance < 0:
		return fmt.Errorf("%w: link distance %v is negative", ErrInvalidConfig, c.Field.LinkDistance)
	case c.Scrollbar.MinThumbHeight < 0:
		return fmt.Errorf("%w: min thumb height %v is negative", ErrInvalidConfig, c.Scrollbar.MinThumbHeight)
	case c.Scrollbar.Width <= 0:
		return fmt.Errorf("%w: scrollbar width %v", ErrInvalidConfig, c.Scrollbar.Width)
	case c.Smooth.Duration < 0:
		return fmt.Errorf("%w: smooth scroll duration %v is negative", ErrInvalidConfig, c.Smooth.Duration)
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.Name == "" {
			return fmt.Errorf("%w: section %d has no name", ErrInvalidConfig, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true
		if s.Height < 0 {
			return fmt.Errorf("%w: section %q height %v is negative", ErrInvalidConfig, s.Name, s.Height)
		}
	}
	return nil
}
