package systems

import (
	"math"
	"math/rand"
)

// ResetPolicy controls what happens to a particle that leaves its field's
// bound. The policy is fixed per field at construction; a single field never
// mixes policies.
type ResetPolicy int

const (
	// ResetBounce clamps the particle to the bound and reflects its
	// velocity with a 0.9 loss factor.
	ResetBounce ResetPolicy = iota

	// ResetRespawn re-samples the particle at a fresh position from the
	// field's original spawn distribution.
	ResetRespawn
)

// SpawnShape selects the spatial distribution particles are spawned from.
type SpawnShape int

const (
	// ShapeSphereShell spawns on a spherical shell with radius drawn from
	// the configured radius range.
	ShapeSphereShell SpawnShape = iota

	// ShapeSphereVolume spawns uniformly by radius within the configured
	// radius range.
	ShapeSphereVolume

	// ShapeBox spawns uniformly inside a box of the configured half extents.
	ShapeBox
)

// Range is an inclusive [Min, Max] interval sampled uniformly.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Vec3 is a simple 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Particle is one point in a field. Position and velocity are mutated in
// place every frame; BobOffset is a derived display offset so that a zero
// oscillation amplitude leaves the stored position untouched.
type Particle struct {
	Pos       Vec3
	Vel       Vec3
	Phase     float64 // per-particle oscillation phase so motion is not lockstep
	BobOffset float64 // current vertical oscillation term, display only
}

// FieldConfig describes one particle field.
type FieldConfig struct {
	Count int
	Shape SpawnShape

	// Radius bounds spawn distance for the sphere shapes.
	Radius Range
	// BoxExtents are half extents for ShapeBox.
	BoxExtents Vec3

	// Per-axis initial velocity ranges, units per second.
	VelX, VelY, VelZ Range

	// Sine oscillation applied as a display-only vertical offset.
	OscAmplitude float64
	OscFrequency float64

	Reset ResetPolicy

	// BoundRadius caps distance from origin. If zero, BoundAxisLimit caps
	// the absolute Y coordinate instead.
	BoundRadius    float64
	BoundAxisLimit float64

	// Seed for the field's private RNG. Zero picks an arbitrary seed; the
	// visuals are decorative and do not need reproducibility.
	Seed int64
}

// ParticleField owns a fixed-size set of particles updated under simple
// kinematic rules. Fields are fully independent of each other and hold no
// references between particles, so multiple fields can be updated in any
// order.
type ParticleField struct {
	cfg       FieldConfig
	particles []Particle
	rng       *rand.Rand
	elapsed   float64
}

// NewParticleField creates and populates a field from cfg.
func NewParticleField(cfg FieldConfig) *ParticleField {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	f := &ParticleField{
		cfg:       cfg,
		particles: make([]Particle, cfg.Count),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := range f.particles {
		f.respawn(&f.particles[i])
	}
	return f
}

// Particles exposes the live particle slice for rendering. Callers must not
// retain it across Update calls.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// Count returns the fixed particle count.
func (f *ParticleField) Count() int {
	return len(f.particles)
}

// Update advances every particle by dt seconds: integrate velocity,
// recompute the oscillation offset, then apply the field's reset policy to
// anything outside the bound.
func (f *ParticleField) Update(dt float64) {
	f.elapsed += dt
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		p.Pos.Z += p.Vel.Z * dt

		if f.cfg.OscAmplitude != 0 {
			p.BobOffset = math.Sin(f.elapsed*f.cfg.OscFrequency+p.Phase) * f.cfg.OscAmplitude
		} else {
			p.BobOffset = 0
		}

		f.enforceBound(p)
	}
}

func (f *ParticleField) enforceBound(p *Particle) {
	if f.cfg.BoundRadius > 0 {
		d := math.Sqrt(p.Pos.X*p.Pos.X + p.Pos.Y*p.Pos.Y + p.Pos.Z*p.Pos.Z)
		if d <= f.cfg.BoundRadius || d == 0 {
			return
		}
		switch f.cfg.Reset {
		case ResetBounce:
			scale := f.cfg.BoundRadius / d
			p.Pos.X *= scale
			p.Pos.Y *= scale
			p.Pos.Z *= scale
			p.Vel.X *= -0.9
			p.Vel.Y *= -0.9
			p.Vel.Z *= -0.9
		case ResetRespawn:
			f.respawn(p)
		}
		return
	}

	if f.cfg.BoundAxisLimit > 0 && math.Abs(p.Pos.Y) > f.cfg.BoundAxisLimit {
		switch f.cfg.Reset {
		case ResetBounce:
			if p.Pos.Y > 0 {
				p.Pos.Y = f.cfg.BoundAxisLimit
			} else {
				p.Pos.Y = -f.cfg.BoundAxisLimit
			}
			p.Vel.Y *= -0.9
		case ResetRespawn:
			f.respawn(p)
		}
	}
}

// respawn places p at a fresh position from the spawn distribution and
// re-rolls its velocity and phase.
func (f *ParticleField) respawn(p *Particle) {
	switch f.cfg.Shape {
	case ShapeBox:
		p.Pos = Vec3{
			X: (f.rng.Float64()*2 - 1) * f.cfg.BoxExtents.X,
			Y: (f.rng.Float64()*2 - 1) * f.cfg.BoxExtents.Y,
			Z: (f.rng.Float64()*2 - 1) * f.cfg.BoxExtents.Z,
		}
	default:
		r := f.cfg.Radius.sample(f.rng)
		if f.cfg.Shape == ShapeSphereVolume {
			r = f.cfg.Radius.Min + math.Cbrt(f.rng.Float64())*(f.cfg.Radius.Max-f.cfg.Radius.Min)
		}
		// Uniform direction on the unit sphere.
		theta := f.rng.Float64() * 2 * math.Pi
		cosPhi := f.rng.Float64()*2 - 1
		sinPhi := math.Sqrt(1 - cosPhi*cosPhi)
		p.Pos = Vec3{
			X: r * sinPhi * math.Cos(theta),
			Y: r * cosPhi,
			Z: r * sinPhi * math.Sin(theta),
		}
	}
	p.Vel = Vec3{
		X: f.cfg.VelX.sample(f.rng),
		Y: f.cfg.VelY.sample(f.rng),
		Z: f.cfg.VelZ.sample(f.rng),
	}
	p.Phase = f.rng.Float64() * 2 * math.Pi
	p.BobOffset = 0
}
