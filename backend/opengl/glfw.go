package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gltest"
)

// Window is a GLFW window whose OpenGL 3.3 core context is current on the
// calling thread. It implements gltest.Surface.
type Window struct {
	*glfw.Window
}

// NewWindow initializes GLFW, creates the window, makes its context current
// and loads the OpenGL function pointers. The caller must have locked the
// OS thread.
func NewWindow(cfg gltest.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gltest.Logger().Info("window created",
		"width", cfg.Width,
		"height", cfg.Height,
		"gl_version", gl.GoStr(gl.GetString(gl.VERSION)),
		"gl_renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)

	return &Window{Window: window}, nil
}

// PollEvents processes pending window and input events without blocking.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Terminate destroys the window and releases GLFW.
func (w *Window) Terminate() {
	glfw.Terminate()
}

// framebufferSizeCallback keeps the viewport matched to the framebuffer,
// which on high-DPI displays is larger than the window size.
func framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWInputAdapter samples GLFW key state into a gltest.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gltest.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	return &GLFWInputAdapter{
		window: window,
		input:  gltest.NewInputState(),
	}
}

// Update polls the keys gltest knows about.
// Call this once at the start of each frame.
func (a *GLFWInputAdapter) Update() *gltest.InputState {
	a.input.Reset()
	for key, glfwKey := range keyMap {
		a.input.SetKey(key, a.window.GetKey(glfwKey) == glfw.Press)
	}
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gltest.InputState {
	return a.input
}

// keyMap maps gltest keys to GLFW keys.
var keyMap = map[gltest.Key]glfw.Key{
	gltest.KeyEscape: glfw.KeyEscape,
}
