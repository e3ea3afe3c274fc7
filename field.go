package folio

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single point of the constellation backdrop.
type Particle struct {
	Pos   r2.Vec
	Vel   r2.Vec // pixels per frame
	Size  float64
	Alpha float64
}

// FieldConfig controls how the particle field is populated and drawn.
type FieldConfig struct {
	// Count is the number of particles created on every Initialize.
	Count int
	// Speed is the range of each velocity component in pixels per frame.
	Speed Range
	// Size is the range of particle radii.
	Size Range
	// Alpha is the range of particle opacities.
	Alpha Range
	// LinkDistance is the exclusive distance below which two particles are
	// joined by a line.
	LinkDistance float64
	// LinkAlpha is the opacity of connection lines.
	LinkAlpha float64
	// LinkWidth is the stroke width of connection lines.
	LinkWidth float64
	// Color tints particles and connections.
	Color Color
}

// DefaultFieldConfig returns the constellation defaults: 100 particles that
// drift slowly and link within 150 pixels.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:        100,
		Speed:        Range{-0.25, 0.25},
		Size:         Range{1, 3},
		Alpha:        Range{0.1, 0.6},
		LinkDistance: 150,
		LinkAlpha:    0.05,
		LinkWidth:    1,
		Color:        ColorWhite,
	}
}

// ParticleField owns the particle set and its bounds. It is not safe for
// concurrent use; the page drives it from the single frame loop.
type ParticleField struct {
	config    FieldConfig
	particles []Particle
	width     float64
	height    float64
	rng       *rand.Rand
}

// NewParticleField creates an empty field. Call Initialize before the first
// frame. A nil rng uses a randomly seeded PCG source.
func NewParticleField(cfg FieldConfig, rng *rand.Rand) *ParticleField {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ParticleField{config: cfg, rng: rng}
}

// Initialize replaces the whole particle set with count fresh particles
// scattered uniformly over [0, width] x [0, height].
func (f *ParticleField) Initialize(width, height float64, count int) {
	if count < 0 {
		count = 0
	}
	f.width = max(width, 0)
	f.height = max(height, 0)

	// Always a new slice so callers holding Particles() from the previous
	// set never see it mutate.
	f.particles = make([]Particle, count)
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos = r2.Vec{X: f.rng.Float64() * f.width, Y: f.rng.Float64() * f.height}
		p.Vel = r2.Vec{X: f.config.Speed.Random(f.rng), Y: f.config.Speed.Random(f.rng)}
		p.Size = f.config.Size.Random(f.rng)
		p.Alpha = f.config.Alpha.Random(f.rng)
	}
}

// Reset re-initializes the field with the configured count at new bounds.
func (f *ParticleField) Reset(width, height float64) {
	f.Initialize(width, height, f.config.Count)
}

// AdvanceFrame moves every particle by its velocity. A particle that crosses
// an edge has that axis's velocity negated and its position mirrored back
// across the edge, so positions stay inside the bounds on every frame.
func (f *ParticleField) AdvanceFrame() {
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos.X, p.Vel.X = bounce(p.Pos.X+p.Vel.X, p.Vel.X, f.width)
		p.Pos.Y, p.Vel.Y = bounce(p.Pos.Y+p.Vel.Y, p.Vel.Y, f.height)
	}
}

// bounce reflects x off the [0, limit] walls.
func bounce(x, v, limit float64) (float64, float64) {
	switch {
	case x < 0:
		return clamp(-x, 0, limit), -v
	case x > limit:
		return clamp(2*limit-x, 0, limit), -v
	}
	return x, v
}

// RenderFrame clears s, draws every particle and then a faint line between
// each pair closer than LinkDistance. It returns the number of lines drawn.
func (f *ParticleField) RenderFrame(s Surface) int {
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Size, f.config.Color.WithAlpha(p.Alpha))
	}

	linkColor := f.config.Color.WithAlpha(f.config.LinkAlpha)
	width := f.config.LinkWidth
	if width <= 0 {
		width = 1
	}
	links := 0
	f.Links(func(a, b int) {
		pa, pb := f.particles[a].Pos, f.particles[b].Pos
		s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, width, linkColor)
		links++
	})
	return links
}

// Links calls fn for every unordered pair (a < b) of particles whose distance
// is below LinkDistance. The pass is O(n²) over the particle count.
func (f *ParticleField) Links(fn func(a, b int)) {
	limit := f.config.LinkDistance * f.config.LinkDistance
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			if r2.Norm2(r2.Sub(f.particles[i].Pos, f.particles[j].Pos)) < limit {
				fn(i, j)
			}
		}
	}
}

// Tick advances the simulation one frame and renders it.
func (f *ParticleField) Tick(s Surface) int {
	f.AdvanceFrame()
	return f.RenderFrame(s)
}

// Particles returns the live particle slice. The returned slice MUST NOT be
// resized; it is replaced wholesale on the next Initialize.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// SetParticles replaces the particle set with ps without changing bounds.
// Used to seed deterministic layouts.
func (f *ParticleField) SetParticles(ps []Particle) {
	f.particles = ps
}

// Bounds returns the current field size.
func (f *ParticleField) Bounds() (width, height float64) {
	return f.width, f.height
}

// Config returns a pointer to the field's config for live tuning.
func (f *ParticleField) Config() *FieldConfig {
	return &f.config
}
