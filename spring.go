package elastica

// Params holds the spring-damper tuning shared by both movable control
// points. The simulation reads these every tick and never writes them except
// through the setters, ApplyPreset, and an active ParamTween.
//
// Values outside the typical ranges are not rejected; the integrator follows
// the raw formula and extreme values simply produce unstable motion.
type Params struct {
	// Stiffness is the spring constant pulling a point toward its target.
	// Typical range [0.01, 0.20].
	Stiffness float64
	// Damping is the fraction of velocity retained each tick, applied before
	// the new force is added. Typical range [0.70, 0.99].
	Damping float64
	// Influence scales how strongly the pointer's offset from the surface
	// center displaces the spring targets. Typical range [0.1, 2.0].
	Influence float64
	// Enabled gates velocity integration. When false, Tick leaves the movable
	// points where they are (a grabbed point still follows the pointer).
	Enabled bool
}

// Preset names a canned stiffness/damping/influence configuration.
type Preset string

const (
	PresetBouncy   Preset = "bouncy"   // loose spring, lively overshoot
	PresetStiff    Preset = "stiff"    // tight spring, barely reacts to the pointer
	PresetFluid    Preset = "fluid"    // soft spring with wide pointer reach
	PresetMagnetic Preset = "magnetic" // strongly pointer-attracted
	PresetHeavy    Preset = "heavy"    // slow, overdamped
	PresetLight    Preset = "light"    // almost weightless, huge pointer reach
)

var presetTable = map[Preset]Params{
	PresetBouncy:   {Stiffness: 0.02, Damping: 0.85, Influence: 0.8},
	PresetStiff:    {Stiffness: 0.10, Damping: 0.95, Influence: 0.3},
	PresetFluid:    {Stiffness: 0.03, Damping: 0.90, Influence: 1.2},
	PresetMagnetic: {Stiffness: 0.05, Damping: 0.92, Influence: 1.5},
	PresetHeavy:    {Stiffness: 0.08, Damping: 0.98, Influence: 0.4},
	PresetLight:    {Stiffness: 0.01, Damping: 0.80, Influence: 2.0},
}

// Presets returns all preset names in a stable display order.
func Presets() []Preset {
	return []Preset{
		PresetBouncy, PresetStiff, PresetFluid,
		PresetMagnetic, PresetHeavy, PresetLight,
	}
}

// PresetParams returns the parameter triple for the named preset. The Enabled
// field of the returned Params is always false; presets never touch it.
func PresetParams(p Preset) (Params, bool) {
	cfg, ok := presetTable[p]
	return cfg, ok
}

const (
	// boundsMargin is the padding inside the surface edges that movable
	// points may not cross.
	boundsMargin = 30.0
	// bounceDamping is the velocity multiplier applied on the clamped axis
	// when a point hits a boundary (inelastic bounce).
	bounceDamping = -0.3
	// influenceScale converts Params.Influence into a positional gain.
	influenceScale = 0.01
	// pointerLead is how much of the pointer's velocity is added to the
	// spring target, making fast motion pull the curve ahead of the cursor.
	pointerLead = 0.5
)

// springTarget returns the equilibrium position for movable point m
// (0 for P1, 1 for P2): the rest-pose position offset by the pointer's
// displacement from the surface center and by the pointer's velocity.
// P2's horizontal offset is mirrored so pointer motion opens and closes the
// curve instead of shearing it sideways.
func (s *Sim) springTarget(m int) Vec2 {
	rest := s.rest[m+1]
	if !s.pointer.engaged {
		return rest
	}
	gain := s.params.Influence * influenceScale
	dx := (s.pointer.pos.X - s.width/2) * gain
	dy := (s.pointer.pos.Y - s.height/2) * gain
	if m == 1 {
		dx = -dx
	}
	return Vec2{
		X: rest.X + dx + s.pointer.vel.X*pointerLead,
		Y: rest.Y + dy + s.pointer.vel.Y*pointerLead,
	}
}

// stepPoint advances movable point m by one tick: Hooke force toward the
// spring target, damped Euler velocity update, position update, then the
// boundary clamp. The damping multiply happens before the force is added;
// swapping that order changes the numerical feel of every preset.
func (s *Sim) stepPoint(m int) {
	i := m + 1
	if s.pointer.grabbed == m {
		// Externally driven while grabbed; the pointer owns the position.
		s.vel[m] = Vec2{}
		return
	}

	target := s.springTarget(m)
	fx := -s.params.Stiffness * (s.pts[i].X - target.X)
	fy := -s.params.Stiffness * (s.pts[i].Y - target.Y)

	s.vel[m].X = s.vel[m].X*s.params.Damping + fx
	s.vel[m].Y = s.vel[m].Y*s.params.Damping + fy

	s.pts[i].X += s.vel[m].X
	s.pts[i].Y += s.vel[m].Y

	clampToBounds(&s.pts[i], &s.vel[m], s.width, s.height)
}

// clampToBounds keeps pos inside the surface rectangle inset by boundsMargin,
// attenuating and reflecting velocity on each axis that hits an edge. The
// axes are handled independently. Idempotent: re-applying to an already
// clamped position changes nothing.
func clampToBounds(pos, vel *Vec2, width, height float64) {
	if pos.X < boundsMargin {
		pos.X = boundsMargin
		vel.X *= bounceDamping
	} else if pos.X > width-boundsMargin {
		pos.X = width - boundsMargin
		vel.X *= bounceDamping
	}

	if pos.Y < boundsMargin {
		pos.Y = boundsMargin
		vel.Y *= bounceDamping
	} else if pos.Y > height-boundsMargin {
		pos.Y = height - boundsMargin
		vel.Y *= bounceDamping
	}
}
