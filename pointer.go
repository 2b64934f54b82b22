package elastica

import "math"

// pointerState is the latest pointer snapshot. Handlers mutate it
// synchronously between ticks; Tick reads whatever is current.
type pointerState struct {
	pos     Vec2
	prev    Vec2
	vel     Vec2 // surface units per event, derived from pos - prev
	engaged bool // pointer is over the surface
	grabbed int  // movable point index (0 or 1) under manual control, or -1
}

// Spawn-policy constants. The particle system itself has no opinion on when
// to spawn; these thresholds belong to the simulation.
const (
	// grabRadius is how close the pointer must be to a movable point on
	// press to take manual control of it.
	grabRadius = 24.0
	// pointerTrailSpeed is the pointer speed above which motion sheds a
	// small trail of pointerTrailCount particles.
	pointerTrailSpeed = 8.0
	pointerTrailCount = 3
	// grabBurstCount is the burst spawned when a point is grabbed.
	grabBurstCount = 12
	// motionBurstSpeed is the movable-point speed above which the point
	// sheds motionBurstCount particles per tick.
	motionBurstSpeed = 3.0
	motionBurstCount = 1
	// actionBurstCount is the fixed burst for reset and preset changes.
	actionBurstCount = 16
)

// OnPointerMove records a new pointer position in surface-local coordinates
// (already adjusted for device pixel density by the caller). A grabbed point
// follows the pointer directly. Fast motion leaves a particle trail.
func (s *Sim) OnPointerMove(x, y float64) {
	if s.pointer.engaged {
		s.pointer.prev = s.pointer.pos
	} else {
		// First contact after a leave: a stale prev would read as a huge
		// velocity spike, so re-anchor it.
		s.pointer.prev = Vec2{X: x, Y: y}
		s.pointer.engaged = true
	}
	s.pointer.pos = Vec2{X: x, Y: y}
	s.pointer.vel = Vec2{
		X: s.pointer.pos.X - s.pointer.prev.X,
		Y: s.pointer.pos.Y - s.pointer.prev.Y,
	}

	if m := s.pointer.grabbed; m >= 0 {
		s.pts[m+1] = s.pointer.pos
	}

	if s.particlesOn && math.Hypot(s.pointer.vel.X, s.pointer.vel.Y) > pointerTrailSpeed {
		s.particles.spawn(s.pointer.pos, pointerTrailCount)
	}
}

// OnPointerDown engages manual control of the nearest movable point within
// grabRadius, if any. The grabbed point snaps to the pointer and its velocity
// is zeroed for as long as it is held.
func (s *Sim) OnPointerDown(x, y float64) {
	s.pointer.pos = Vec2{X: x, Y: y}
	s.pointer.prev = s.pointer.pos
	s.pointer.vel = Vec2{}
	s.pointer.engaged = true

	grab := -1
	best := grabRadius * grabRadius
	for m := 0; m < 2; m++ {
		dx := x - s.pts[m+1].X
		dy := y - s.pts[m+1].Y
		if d := dx*dx + dy*dy; d <= best {
			best = d
			grab = m
		}
	}
	if grab < 0 {
		return
	}

	s.pointer.grabbed = grab
	s.vel[grab] = Vec2{}
	s.pts[grab+1] = s.pointer.pos
	if s.particlesOn {
		s.particles.spawn(s.pointer.pos, grabBurstCount)
	}
}

// OnPointerUp releases manual control. The released point re-enters spring
// integration from wherever the pointer left it, with zero velocity.
func (s *Sim) OnPointerUp() {
	s.pointer.grabbed = -1
}

// OnPointerLeave releases manual control and disengages the pointer entirely;
// the spring targets collapse back to the rest pose.
func (s *Sim) OnPointerLeave() {
	s.pointer.grabbed = -1
	s.pointer.engaged = false
	s.pointer.vel = Vec2{}
}

// Grabbed returns the index of the movable point under manual control
// (0 for P1, 1 for P2), or -1 if neither is held.
func (s *Sim) Grabbed() int {
	return s.pointer.grabbed
}
