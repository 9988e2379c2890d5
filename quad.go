package gltest

// Segment is a line segment between two points.
type Segment struct {
	A, B Vec2
}

// Dir returns the unit direction from A to B, or the zero vector when the
// segment is degenerate.
func (s Segment) Dir() Vec2 {
	return s.B.Sub(s.A).Normalize()
}

// Quad returns the four triangle-strip corners the geometry stage emits for
// this segment: left and right of A, then left and right of B, offset by
// halfWidth along the segment normals.
func (s Segment) Quad(halfWidth float32) [4]Vec2 {
	m := s.Dir()
	nl := Vec2{X: m.Y, Y: -m.X}.Mul(halfWidth)
	nr := Vec2{X: -m.Y, Y: m.X}.Mul(halfWidth)
	return [4]Vec2{
		nl.Add(s.A),
		nr.Add(s.A),
		nl.Add(s.B),
		nr.Add(s.B),
	}
}
