package elastica

import (
	"math"
	"testing"
)

var testCtrl = [4]Vec2{
	{X: 100, Y: 400},
	{X: 250, Y: 100},
	{X: 550, Y: 100},
	{X: 700, Y: 400},
}

func TestCubicPointEndpoints(t *testing.T) {
	p0, p1, p2, p3 := testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3]

	if got := CubicPoint(0, p0, p1, p2, p3); got != p0 {
		t.Errorf("CubicPoint(0) = %v, want %v", got, p0)
	}
	if got := CubicPoint(1, p0, p1, p2, p3); got != p3 {
		t.Errorf("CubicPoint(1) = %v, want %v", got, p3)
	}
}

func TestCubicPointMidpointSymmetric(t *testing.T) {
	// testCtrl is mirror-symmetric about x=400, so B(0.5) must sit on the axis.
	got := CubicPoint(0.5, testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3])
	if math.Abs(got.X-400) > 1e-9 {
		t.Errorf("B(0.5).X = %v, want 400", got.X)
	}
}

func TestCubicPointAffineInvariance(t *testing.T) {
	shift := Vec2{X: -137.5, Y: 42.25}
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		base := CubicPoint(tt, testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3])
		moved := CubicPoint(tt,
			Vec2{testCtrl[0].X + shift.X, testCtrl[0].Y + shift.Y},
			Vec2{testCtrl[1].X + shift.X, testCtrl[1].Y + shift.Y},
			Vec2{testCtrl[2].X + shift.X, testCtrl[2].Y + shift.Y},
			Vec2{testCtrl[3].X + shift.X, testCtrl[3].Y + shift.Y})
		if math.Abs(moved.X-base.X-shift.X) > 1e-9 || math.Abs(moved.Y-base.Y-shift.Y) > 1e-9 {
			t.Errorf("t=%v: translated eval %v, want %v + %v", tt, moved, base, shift)
		}
	}
}

func TestCubicTangentMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	p0, p1, p2, p3 := testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3]

	for _, tt := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		want := CubicTangent(tt, p0, p1, p2, p3)
		lo := CubicPoint(tt-h, p0, p1, p2, p3)
		hi := CubicPoint(tt+h, p0, p1, p2, p3)
		fdX := (hi.X - lo.X) / (2 * h)
		fdY := (hi.Y - lo.Y) / (2 * h)
		if math.Abs(want.X-fdX) > 1e-3 || math.Abs(want.Y-fdY) > 1e-3 {
			t.Errorf("t=%v: tangent %v, finite difference (%v, %v)", tt, want, fdX, fdY)
		}
	}
}

func TestCubicTangentDegenerate(t *testing.T) {
	// All four control points coincident: the tangent is zero everywhere and
	// must come back as the zero vector, not NaN or a failure.
	p := Vec2{X: 50, Y: 50}
	for _, tt := range []float64{0, 0.5, 1} {
		got := CubicTangent(tt, p, p, p, p)
		if got != (Vec2{}) {
			t.Errorf("t=%v: degenerate tangent = %v, want zero vector", tt, got)
		}
	}
}

func TestSampleCurve(t *testing.T) {
	pts := SampleCurve(nil, 100, testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3])
	if len(pts) != 101 {
		t.Fatalf("len = %d, want 101", len(pts))
	}
	if pts[0] != testCtrl[0] {
		t.Errorf("first sample = %v, want P0 %v", pts[0], testCtrl[0])
	}
	if pts[100] != testCtrl[3] {
		t.Errorf("last sample = %v, want P3 %v", pts[100], testCtrl[3])
	}
}

func TestSampleCurveReusesBuffer(t *testing.T) {
	buf := make([]Vec2, 0, 256)
	out := SampleCurve(buf, 100, testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3])
	if &out[:1][0] != &buf[:1][0] {
		t.Error("SampleCurve reallocated despite sufficient capacity")
	}

	// Undersized buffer grows.
	small := make([]Vec2, 0, 4)
	out = SampleCurve(small, 10, testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3])
	if len(out) != 11 {
		t.Errorf("len = %d, want 11", len(out))
	}
}

func TestSampleCurveDefaultSteps(t *testing.T) {
	pts := SampleCurve(nil, 0, testCtrl[0], testCtrl[1], testCtrl[2], testCtrl[3])
	if len(pts) != defaultCurveSteps+1 {
		t.Errorf("len = %d, want %d", len(pts), defaultCurveSteps+1)
	}
}
