// Package gltest renders a static ruled grid through a programmable
// vertex/geometry/fragment pipeline. It holds the backend-independent parts:
// geometry, configuration, input handling and the frame loop.
package gltest

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Gray returns an opaque gray of the given intensity.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// Valid reports whether every component lies in [0, 1].
func (c Color) Valid() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 || math32.IsNaN(v) {
			return false
		}
	}
	return true
}

// Vertex mirrors one entry of the interleaved vertex stream.
// Memory layout matches the attribute pointers set up by the backend.
type Vertex struct {
	Pos   [3]float32 // Position (x, y, z)
	Color [3]float32 // RGB
}
