package elastica

// CubicPoint evaluates a cubic Bézier curve at parameter t:
//
//	B(t) = (1−t)³·p0 + 3(1−t)²t·p1 + 3(1−t)t²·p2 + t³·p3
//
// Pure and deterministic. The formula is valid for any real t; callers
// sampling the visible curve restrict t to [0, 1].
func CubicPoint(t float64, p0, p1, p2, p3 Vec2) Vec2 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return Vec2{
		X: u2*u*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t2*t*p3.X,
		Y: u2*u*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t2*t*p3.Y,
	}
}

// CubicTangent evaluates the derivative of a cubic Bézier curve at t:
//
//	B'(t) = 3(1−t)²(p1−p0) + 6(1−t)t(p2−p1) + 3t²(p3−p2)
//
// The result is not normalized. When adjacent control points coincide the
// tangent can be the zero vector; it is returned unmodified and callers must
// skip normalization in that case.
func CubicTangent(t float64, p0, p1, p2, p3 Vec2) Vec2 {
	u := 1 - t
	a := 3 * u * u
	b := 6 * u * t
	c := 3 * t * t
	return Vec2{
		X: a*(p1.X-p0.X) + b*(p2.X-p1.X) + c*(p3.X-p2.X),
		Y: a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y) + c*(p3.Y-p2.Y),
	}
}

// SampleCurve fills dst with steps+1 points along the curve, t stepped
// uniformly over [0, 1], and returns the filled slice. dst is grown to a
// high-water mark and reused across calls, so a frame loop sampling every
// tick settles into zero allocations.
func SampleCurve(dst []Vec2, steps int, p0, p1, p2, p3 Vec2) []Vec2 {
	if steps <= 0 {
		steps = defaultCurveSteps
	}
	n := steps + 1
	if cap(dst) < n {
		dst = make([]Vec2, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		t := float64(i) / float64(steps)
		dst[i] = CubicPoint(t, p0, p1, p2, p3)
	}
	return dst
}

// defaultCurveSteps yields the t = 0.01 sampling step used by the renderer.
const defaultCurveSteps = 100
