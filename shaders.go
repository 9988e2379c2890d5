package gltest

import (
	_ "embed"
)

//go:embed shaders/grid.vert
var gridVertexSource string

//go:embed shaders/grid.geom
var gridGeometrySource string

//go:embed shaders/grid.frag
var gridFragmentSource string

// LineWidthUniform is the geometry stage uniform holding the line half-width.
const LineWidthUniform = "line_width"

// ShaderSources holds the GLSL text of the three pipeline stages.
type ShaderSources struct {
	Vertex   string
	Geometry string
	Fragment string
}

// DefaultShaders returns the grid pipeline: a pass-through vertex stage, a
// geometry stage expanding each line into a quad (see Segment.Quad) and a
// fragment stage emitting the interpolated color.
func DefaultShaders() ShaderSources {
	return ShaderSources{
		Vertex:   gridVertexSource,
		Geometry: gridGeometrySource,
		Fragment: gridFragmentSource,
	}
}

// Source returns the text for a stage. StageProgram has no source.
func (s ShaderSources) Source(stage Stage) string {
	switch stage {
	case StageVertex:
		return s.Vertex
	case StageGeometry:
		return s.Geometry
	case StageFragment:
		return s.Fragment
	}
	return ""
}
