// Package opengl provides the GLFW and OpenGL 3.3 core backend for gltest.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/gltest"
)

// Renderer draws the grid. It implements gltest.Scene.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	lineWidthLoc int32
	lineWidth    float32
	clearColor   gltest.Color
	vertexCount  int32
}

// NewRenderer builds the shader pipeline and uploads grid to GPU memory.
// A context must be current.
func NewRenderer(cfg gltest.Config, grid *gltest.Grid) (*Renderer, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		lineWidth:   cfg.LineWidth,
		clearColor:  cfg.ClearColor,
		vertexCount: int32(grid.Len()),
	}

	var err error
	r.shader, err = createShaderProgram(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	r.lineWidthLoc = gl.GetUniformLocation(r.shader, gl.Str(gltest.LineWidthUniform+"\x00"))

	// Bind the VAO first so it records the buffer and attribute layout.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, grid.ByteSize(), gl.Ptr(grid.Floats()), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, gltest.PositionComponents, gl.FLOAT, false, gltest.VertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute
	gl.VertexAttribPointerWithOffset(1, gltest.ColorComponents, gl.FLOAT, false, gltest.VertexStride, gltest.ColorOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gltest.Logger().Debug("grid uploaded",
		"vertices", r.vertexCount,
		"bytes", grid.ByteSize(),
	)

	return r, nil
}

// Render clears the framebuffer and draws the grid lines.
func (r *Renderer) Render() {
	c := r.clearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shader)
	gl.Uniform1f(r.lineWidthLoc, r.lineWidth)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.LINES, 0, r.vertexCount)
}

// Release deletes the vertex array, the buffer and the program.
func (r *Renderer) Release() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}
