package elastica

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionPresetEasesToTarget(t *testing.T) {
	s := New(800, 600)
	start := s.Params()

	if !s.TransitionPreset(PresetHeavy, 0.5, ease.Linear) {
		t.Fatal("TransitionPreset(heavy) = false")
	}
	if !s.Transitioning() {
		t.Fatal("Transitioning() = false right after start")
	}

	// Halfway through a linear transition the parameters sit between start
	// and target.
	for i := 0; i < 15; i++ {
		s.Tick()
	}
	mid := s.Params()
	if mid.Stiffness <= math.Min(start.Stiffness, 0.08) || mid.Stiffness >= math.Max(start.Stiffness, 0.08) {
		t.Errorf("mid stiffness = %v, want strictly between %v and 0.08", mid.Stiffness, start.Stiffness)
	}

	// Run well past the duration; the tween finishes and detaches.
	for i := 0; i < 60; i++ {
		s.Tick()
	}
	if s.Transitioning() {
		t.Error("still transitioning after duration elapsed")
	}
	got := s.Params()
	if math.Abs(got.Stiffness-0.08) > 1e-6 || math.Abs(got.Damping-0.98) > 1e-6 || math.Abs(got.Influence-0.4) > 1e-6 {
		t.Errorf("final params = {%v %v %v}, want heavy {0.08 0.98 0.4}",
			got.Stiffness, got.Damping, got.Influence)
	}
}

func TestTransitionPresetUnknown(t *testing.T) {
	s := New(800, 600)
	if s.TransitionPreset("wobbly", 1, nil) {
		t.Error("unknown preset accepted")
	}
	if s.Transitioning() {
		t.Error("transition started for unknown preset")
	}
}

func TestTransitionZeroDurationSnaps(t *testing.T) {
	s := New(800, 600)
	if !s.TransitionPreset(PresetStiff, 0, nil) {
		t.Fatal("zero-duration transition rejected")
	}
	p := s.Params()
	if p.Stiffness != 0.10 || p.Damping != 0.95 || p.Influence != 0.3 {
		t.Errorf("params = {%v %v %v}, want exact stiff values", p.Stiffness, p.Damping, p.Influence)
	}
	if s.Transitioning() {
		t.Error("zero-duration transition left a tween in flight")
	}
}

func TestApplyPresetCancelsTransition(t *testing.T) {
	s := New(800, 600)
	s.TransitionPreset(PresetLight, 5, nil)
	if !s.Transitioning() {
		t.Fatal("transition not started")
	}

	s.ApplyPreset(PresetStiff)
	if s.Transitioning() {
		t.Error("ApplyPreset left the transition running")
	}
	if got := s.Params().Stiffness; got != 0.10 {
		t.Errorf("stiffness = %v, want exact 0.10", got)
	}

	// Ticking must not resurrect the cancelled tween.
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if got := s.Params().Stiffness; got != 0.10 {
		t.Errorf("stiffness drifted to %v after cancelled transition", got)
	}
}
