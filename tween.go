package elastica

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tickDT is the nominal duration of one simulation tick in seconds. Tween
// durations are expressed in seconds and advanced by this amount per tick.
const tickDT float32 = 1.0 / 60.0

// ParamTween eases stiffness, damping, and influence toward a preset's
// values over a duration instead of snapping. Created by
// [Sim.TransitionPreset] and advanced automatically by [Sim.Tick]; an
// ApplyPreset call cancels it.
type ParamTween struct {
	tweens [3]*gween.Tween
	fields [3]*float64
	Done   bool
}

// TransitionPreset starts easing the physics parameters toward the named
// preset over the given duration in seconds, replacing any transition already
// in flight. fn may be nil, which selects ease.OutQuad. Returns false for an
// unknown preset name.
func (s *Sim) TransitionPreset(p Preset, duration float32, fn ease.TweenFunc) bool {
	cfg, ok := presetTable[p]
	if !ok {
		return false
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	if duration <= 0 {
		// Degenerate duration: behave like ApplyPreset.
		return s.ApplyPreset(p)
	}

	t := &ParamTween{}
	t.tweens[0] = gween.New(float32(s.params.Stiffness), float32(cfg.Stiffness), duration, fn)
	t.tweens[1] = gween.New(float32(s.params.Damping), float32(cfg.Damping), duration, fn)
	t.tweens[2] = gween.New(float32(s.params.Influence), float32(cfg.Influence), duration, fn)
	t.fields[0] = &s.params.Stiffness
	t.fields[1] = &s.params.Damping
	t.fields[2] = &s.params.Influence
	s.tween = t

	if s.particlesOn {
		s.particles.spawn(CubicPoint(0.5, s.pts[0], s.pts[1], s.pts[2], s.pts[3]), actionBurstCount)
	}
	return true
}

// Transitioning reports whether a preset transition is in flight.
func (s *Sim) Transitioning() bool {
	return s.tween != nil && !s.tween.Done
}

// update advances all three tweens by dt seconds and writes the eased values
// into the bound parameter fields.
func (t *ParamTween) update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i := range t.tweens {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}
