// Package physics wraps the Chipmunk2D port (github.com/jakecoffman/cp) behind
// the small world/body contract the simulation needs: fixed-step advance,
// blueprint-driven body creation, category filtering and begin-contact
// callbacks.
//
// All lengths are meters. Map data and rendering work in pixels and convert
// with PixelsPerMeter.
package physics

import "math"

// PixelsPerMeter is the default pixel density of the world.
const PixelsPerMeter = 100.0

// ToMeters converts a pixel length to meters.
func ToMeters(px float64) float64 {
	return px / PixelsPerMeter
}

// ToPixels converts a length in meters to pixels.
func ToPixels(m float64) float64 {
	return m * PixelsPerMeter
}

// Vec is a 2D vector in world space (y up).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Pixels converts a vector in meters to pixels.
func (v Vec) Pixels() Vec {
	return v.Scale(PixelsPerMeter)
}

// Meters converts a vector in pixels to meters.
func (v Vec) Meters() Vec {
	return v.Scale(1 / PixelsPerMeter)
}

// Near reports whether v and o differ by at most eps on each axis.
func (v Vec) Near(o Vec, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
