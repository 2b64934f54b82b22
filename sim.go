package elastica

import "math"

// Sim is the complete simulation state for one springy cubic Bézier curve:
// four control points (two fixed endpoints, two spring-driven interior
// points), the pointer snapshot, the particle pool, and the physics tuning.
//
// A Sim is single-threaded by design. Pointer and parameter methods mutate
// state synchronously between ticks; the external frame pacer calls Tick once
// per display frame (nominally 60 Hz) and then reads the query methods for
// drawing. Nothing blocks and nothing is shared across goroutines.
type Sim struct {
	width, height float64

	rest [4]Vec2 // rest pose, recomputed on Resize
	pts  [4]Vec2 // current control points; pts[0] and pts[3] never move
	vel  [2]Vec2 // velocities of pts[1] and pts[2]

	params      Params
	particlesOn bool

	pointer   pointerState
	particles particleSystem
	tween     *ParamTween
}

// Rest pose as fractions of the surface dimensions: endpoints sit low at the
// sides, the interior points high, giving the idle curve a gentle arch.
var (
	restFracX = [4]float64{0.15, 0.35, 0.65, 0.85}
	restFracY = [4]float64{0.6, 0.2, 0.2, 0.6}
)

// tangentTs are the fixed parameters TangentSamples evaluates at.
var tangentTs = [5]float64{0.1, 0.3, 0.5, 0.7, 0.9}

// TangentSample pairs a curve parameter with the unnormalized tangent there.
// A zero Tangent means the curve is degenerate at T; normalize only after
// checking the length.
type TangentSample struct {
	T       float64
	Tangent Vec2
}

// New creates a Sim for a surface of the given dimensions, with the curve at
// rest pose, default physics (stiffness 0.05, damping 0.90, influence 0.5),
// and particles enabled.
func New(width, height float64) *Sim {
	s := &Sim{
		width:       width,
		height:      height,
		params:      Params{Stiffness: 0.05, Damping: 0.90, Influence: 0.5, Enabled: true},
		particlesOn: true,
		particles:   newParticleSystem(0),
	}
	s.pointer.grabbed = -1
	s.computeRestPose()
	s.pts = s.rest
	return s
}

// Tick advances the simulation by one step. The order is fixed: parameter
// tween, spring integration for both movable points (with boundary clamping
// and motion bursts), then particle advance and pruning.
func (s *Sim) Tick() {
	if s.tween != nil {
		s.tween.update(tickDT)
		if s.tween.Done {
			s.tween = nil
		}
	}

	if s.params.Enabled {
		for m := 0; m < 2; m++ {
			s.stepPoint(m)
			if s.particlesOn && s.pointer.grabbed != m &&
				math.Hypot(s.vel[m].X, s.vel[m].Y) > motionBurstSpeed {
				s.particles.spawn(s.pts[m+1], motionBurstCount)
			}
		}
	}

	s.particles.update()
}

// Resize adapts the simulation to new surface dimensions. The rest pose is
// recomputed and the endpoints re-seated. The movable points snap back to
// rest with zero velocity unless one is under manual control, in which case
// both are left alone — the held point belongs to the pointer.
func (s *Sim) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.computeRestPose()
	s.pts[0] = s.rest[0]
	s.pts[3] = s.rest[3]
	if s.pointer.grabbed < 0 {
		s.pts[1] = s.rest[1]
		s.pts[2] = s.rest[2]
		s.vel[0] = Vec2{}
		s.vel[1] = Vec2{}
	}
}

// Reset restores the movable points to rest pose, zeroes their velocities,
// releases any manual control, and clears all particles. With burst true a
// celebratory burst is spawned at each movable point (if particles are on).
func (s *Sim) Reset(burst bool) {
	s.pointer.grabbed = -1
	s.pts[1] = s.rest[1]
	s.pts[2] = s.rest[2]
	s.vel[0] = Vec2{}
	s.vel[1] = Vec2{}
	s.particles.clear()
	if burst && s.particlesOn {
		s.particles.spawn(s.pts[1], actionBurstCount/2)
		s.particles.spawn(s.pts[2], actionBurstCount/2)
	}
}

// ApplyPreset atomically sets stiffness, damping, and influence to the named
// preset's values, cancelling any transition in flight. Returns false for an
// unknown preset name, leaving the parameters untouched.
func (s *Sim) ApplyPreset(p Preset) bool {
	cfg, ok := presetTable[p]
	if !ok {
		return false
	}
	s.tween = nil
	s.params.Stiffness = cfg.Stiffness
	s.params.Damping = cfg.Damping
	s.params.Influence = cfg.Influence
	if s.particlesOn {
		s.particles.spawn(CubicPoint(0.5, s.pts[0], s.pts[1], s.pts[2], s.pts[3]), actionBurstCount)
	}
	return true
}

// --- Parameter setters ------------------------------------------------------
//
// Range validation is the UI's job; the integrator follows whatever finite
// values it is handed.

// SetStiffness sets the spring constant.
func (s *Sim) SetStiffness(v float64) { s.params.Stiffness = v }

// SetDamping sets the per-tick velocity retention factor.
func (s *Sim) SetDamping(v float64) { s.params.Damping = v }

// SetInfluence sets the pointer influence multiplier.
func (s *Sim) SetInfluence(v float64) { s.params.Influence = v }

// SetEnabled turns spring integration on or off. While off, points hold
// still (a grabbed point still follows the pointer).
func (s *Sim) SetEnabled(on bool) { s.params.Enabled = on }

// SetParticlesEnabled turns particle spawning on or off. Particles already
// alive continue to live out.
func (s *Sim) SetParticlesEnabled(on bool) { s.particlesOn = on }

// ParticlesEnabled reports whether new particles may spawn.
func (s *Sim) ParticlesEnabled() bool { return s.particlesOn }

// Params returns the current physics parameters.
func (s *Sim) Params() Params { return s.params }

// --- Queries ----------------------------------------------------------------

// Size returns the current surface dimensions.
func (s *Sim) Size() (width, height float64) {
	return s.width, s.height
}

// Bounds returns the rectangle movable points are clamped into: the surface
// inset by the boundary margin on every side.
func (s *Sim) Bounds() Rect {
	return Rect{
		X:      boundsMargin,
		Y:      boundsMargin,
		Width:  s.width - 2*boundsMargin,
		Height: s.height - 2*boundsMargin,
	}
}

// ControlPoints returns the current positions of all four control points,
// in curve order P0..P3.
func (s *Sim) ControlPoints() [4]Vec2 { return s.pts }

// RestPose returns the rest-pose positions of all four control points.
func (s *Sim) RestPose() [4]Vec2 { return s.rest }

// CurvePoints fills dst with 101 sampled curve points (t stepped by 0.01)
// and returns the filled slice. Pass the previous frame's slice back in to
// avoid reallocation.
func (s *Sim) CurvePoints(dst []Vec2) []Vec2 {
	return SampleCurve(dst, defaultCurveSteps, s.pts[0], s.pts[1], s.pts[2], s.pts[3])
}

// TangentSamples returns the curve tangents at the five fixed parameters
// 0.1, 0.3, 0.5, 0.7, 0.9.
func (s *Sim) TangentSamples() [5]TangentSample {
	var out [5]TangentSample
	for i, t := range tangentTs {
		out[i] = TangentSample{
			T:       t,
			Tangent: CubicTangent(t, s.pts[0], s.pts[1], s.pts[2], s.pts[3]),
		}
	}
	return out
}

// Particles copies the alive particles into dst and returns the filled
// slice. Pass the previous frame's slice back in to avoid reallocation.
func (s *Sim) Particles(dst []Particle) []Particle {
	return s.particles.snapshot(dst)
}

// ParticleCount returns the number of alive particles.
func (s *Sim) ParticleCount() int { return s.particles.alive }

func (s *Sim) computeRestPose() {
	for i := 0; i < 4; i++ {
		s.rest[i] = Vec2{
			X: s.width * restFracX[i],
			Y: s.height * restFracY[i],
		}
	}
}
