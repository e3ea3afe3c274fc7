package folio

// CursorConfig controls the custom cursor.
type CursorConfig struct {
	// FollowerLerp is the fraction of the remaining distance the follower
	// ring closes each frame.
	FollowerLerp float64
	// GlowLerp is the same fraction for the background glow.
	GlowLerp       float64
	DotRadius      float64
	FollowerRadius float64
	GlowRadius     float64
	Color          Color
	GlowColor      Color
}

// DefaultCursorConfig returns the portfolio cursor: a dot, a ring that lags
// behind it and a wide faint glow that lags further.
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		FollowerLerp:   0.15,
		GlowLerp:       0.05,
		DotRadius:      3,
		FollowerRadius: 14,
		GlowRadius:     160,
		Color:          ColorWhite,
		GlowColor:      Color{0.55, 0.45, 1, 0.06},
	}
}

// Cursor simulates the custom pointer. Positions are in screen space.
type Cursor struct {
	config   CursorConfig
	pointer  Vec2
	follower Vec2
	glow     Vec2
	hidden   bool
}

// NewCursor creates a cursor resting at the origin.
func NewCursor(cfg CursorConfig) *Cursor {
	return &Cursor{config: cfg}
}

// MoveTo places the dot at the pointer position.
func (c *Cursor) MoveTo(p Vec2) {
	c.pointer = p
}

// SetInputMode hides the cursor on touch input.
func (c *Cursor) SetInputMode(m InputMode) {
	c.hidden = m == InputTouch
}

// Update eases the follower and glow toward the dot. Called once per frame.
func (c *Cursor) Update() {
	if c.hidden {
		return
	}
	c.follower.X += (c.pointer.X - c.follower.X) * c.config.FollowerLerp
	c.follower.Y += (c.pointer.Y - c.follower.Y) * c.config.FollowerLerp
	c.glow.X += (c.pointer.X - c.glow.X) * c.config.GlowLerp
	c.glow.Y += (c.pointer.Y - c.glow.Y) * c.config.GlowLerp
}

// Dot returns the dot position.
func (c *Cursor) Dot() Vec2 { return c.pointer }

// Follower returns the lagging ring position.
func (c *Cursor) Follower() Vec2 { return c.follower }

// Glow returns the glow position.
func (c *Cursor) Glow() Vec2 { return c.glow }

// Hidden reports whether the cursor is suppressed.
func (c *Cursor) Hidden() bool { return c.hidden }

// Draw paints the glow, the follower ring and the dot.
func (c *Cursor) Draw(s Surface, hover bool) {
	if c.hidden {
		return
	}
	s.FillCircle(c.glow.X, c.glow.Y, c.config.GlowRadius, c.config.GlowColor)

	r := c.config.FollowerRadius
	if hover {
		r *= 1.8
	}
	col := c.config.Color
	s.FillCircle(c.follower.X, c.follower.Y, r, col.WithAlpha(0.15))
	s.FillCircle(c.pointer.X, c.pointer.Y, c.config.DotRadius, col)
}
