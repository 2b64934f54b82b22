package elastica

import "math/rand/v2"

// Vec2 is a 2D vector used for positions, offsets, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied;
// premultiplication is the renderer's concern.
type Color struct {
	R, G, B, A float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the particle system for spawn attribute distributions.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// palette is the fixed set of colors particles are tinted with.
var palette = [4]Color{
	{R: 1.00, G: 0.42, B: 0.42, A: 1}, // coral
	{R: 0.31, G: 0.80, B: 0.77, A: 1}, // teal
	{R: 1.00, G: 0.90, B: 0.43, A: 1}, // gold
	{R: 0.66, G: 0.55, B: 1.00, A: 1}, // violet
}
