package gltest

import (
	"fmt"
)

// Grid layout constants. Every size used for allocation, upload and drawing
// derives from these.
const (
	LinesPerAxis       = 81
	Axes               = 2
	EndpointsPerLine   = 2
	PositionComponents = 3
	ColorComponents    = 3
	FloatsPerVertex    = PositionComponents + ColorComponents

	SegmentCount = LinesPerAxis * Axes
	VertexCount  = SegmentCount * EndpointsPerLine
	FloatCount   = VertexCount * FloatsPerVertex

	SizeofFloat32 = 4
	VertexStride  = FloatsPerVertex * SizeofFloat32 // bytes between vertices
	ColorOffset   = PositionComponents * SizeofFloat32
	ByteSize      = FloatCount * SizeofFloat32

	// gridHalfSteps is the index of the line through the origin.
	gridHalfSteps = (LinesPerAxis - 1) / 2
)

// LineColor is the color of every grid vertex.
var LineColor = Gray(0.5)

// LineCoord returns the coordinate of line i, running from +1 at i=0 to -1
// at i=LinesPerAxis-1.
func LineCoord(i int) float32 {
	return (float32(gridHalfSteps) - float32(i)) / gridHalfSteps
}

// Grid is the host-side copy of the grid vertex stream: all horizontal
// segments first, then all vertical segments, two endpoints each.
type Grid struct {
	data []float32
}

// NewGrid allocates and fills the grid vertex stream.
func NewGrid() *Grid {
	g := &Grid{data: make([]float32, FloatCount)}
	g.fill()
	return g
}

func (g *Grid) fill() {
	w := vertexWriter{buf: g.data}
	c := [3]float32{LineColor.R, LineColor.G, LineColor.B}

	for i := 0; i < LinesPerAxis; i++ {
		y := LineCoord(i)
		w.put([3]float32{-1, y, 0}, c)
		w.put([3]float32{1, y, 0}, c)
	}
	for i := 0; i < LinesPerAxis; i++ {
		x := LineCoord(i)
		w.put([3]float32{x, -1, 0}, c)
		w.put([3]float32{x, 1, 0}, c)
	}
}

// Floats returns the interleaved position+color stream.
func (g *Grid) Floats() []float32 {
	return g.data
}

// Len returns the number of vertices in the stream.
func (g *Grid) Len() int {
	return len(g.data) / FloatsPerVertex
}

// ByteSize returns the size of the stream in bytes as uploaded to the GPU.
func (g *Grid) ByteSize() int {
	return len(g.data) * SizeofFloat32
}

// Vertex returns vertex i of the stream.
func (g *Grid) Vertex(i int) Vertex {
	off := i * FloatsPerVertex
	var v Vertex
	copy(v.Pos[:], g.data[off:off+PositionComponents])
	copy(v.Color[:], g.data[off+PositionComponents:off+FloatsPerVertex])
	return v
}

// Segment returns line segment i. Indices below LinesPerAxis are horizontal
// lines, the rest vertical.
func (g *Grid) Segment(i int) Segment {
	a, b := g.Vertex(i*EndpointsPerLine), g.Vertex(i*EndpointsPerLine+1)
	return Segment{
		A: Vec2{X: a.Pos[0], Y: a.Pos[1]},
		B: Vec2{X: b.Pos[0], Y: b.Pos[1]},
	}
}

// Validate checks the stream against the layout constants.
func (g *Grid) Validate() error {
	if len(g.data) != FloatCount {
		return fmt.Errorf("%w: have %d floats, want %d", ErrBufferSize, len(g.data), FloatCount)
	}
	return nil
}

// vertexWriter appends vertices to a pre-sized buffer. Writing past the end
// panics.
type vertexWriter struct {
	buf []float32
	n   int
}

func (w *vertexWriter) put(pos, color [3]float32) {
	dst := w.buf[w.n : w.n+FloatsPerVertex]
	copy(dst, pos[:])
	copy(dst[PositionComponents:], color[:])
	w.n += FloatsPerVertex
}
