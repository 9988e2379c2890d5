/*
Package gltest renders a static ruled grid with a three-stage GPU pipeline
and reports the frame rate in the window title.

# Overview

The grid is 81 horizontal and 81 vertical lines spanning normalized device
coordinates from -1 to +1. Each line is uploaded as a thin two-vertex
segment; the geometry stage widens it into a quad of half-width line_width.

The package itself holds no graphics calls. Geometry generation,
configuration, input handling and the frame loop are written against the
Surface, Scene and InputSource interfaces, which backend/opengl implements
with GLFW and OpenGL 3.3 core.

# Quick Start

	runtime.LockOSThread()

	cfg := gltest.DefaultConfig()
	win, err := opengl.NewWindow(cfg)
	if err != nil {
	    // window or loader failure
	}
	r, err := opengl.NewRenderer(cfg, gltest.NewGrid())
	if err != nil {
	    // only with ShaderErrorsFatal
	}
	gltest.NewHarness(cfg, win, r, opengl.NewGLFWInputAdapter(win.Window)).Run()

# Frame Loop

Each iteration records a start time, samples input, renders, swaps buffers,
polls window events, then sets the title to

	OpenGL Test | fps=<1000 / elapsed ms, three decimals>

Holding Escape raises the close flag; the loop exits after the current
iteration, releases the scene and terminates the window system.

# Shader Diagnostics

Compile and link failures are written to Config.Diagnostics as

	ERROR::SHADER::<VERTEX|GEOMETRY|FRAGMENT>::COMPILATION_FAILED
	<info log>

or

	ERROR::SHADER::PROGRAM::LINKING_FAILED
	<info log>

Under ShaderErrorsContinue (the default) setup carries on with the broken
pipeline; under ShaderErrorsFatal the renderer constructor returns the
*ShaderError.
*/
package gltest
