package gltest

import "time"

// Surface is a window with a current graphics context.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	PollEvents()
	SetTitle(string)
	// Terminate releases the window and the context. No graphics call may
	// follow it.
	Terminate()
}

// Scene draws into the current context.
type Scene interface {
	// Render clears the framebuffer and issues the frame's draw calls.
	Render()
	// Release frees the scene's GPU objects.
	Release()
}

// InputSource samples input once per frame.
type InputSource interface {
	Update() *InputState
}

// Harness drives the frame loop. It has a single active state, left when
// the surface's close flag is observed between iterations.
type Harness struct {
	surface Surface
	scene   Scene
	input   InputSource

	titlePrefix string
	now         func() time.Time

	frames int
	last   FrameTime
}

// NewHarness creates a harness over an already initialized surface and scene.
func NewHarness(cfg Config, surface Surface, scene Scene, input InputSource) *Harness {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Harness{
		surface:     surface,
		scene:       scene,
		input:       input,
		titlePrefix: cfg.TitlePrefix,
		now:         now,
	}
}

// Run loops until the close flag is set, then tears down the scene and the
// surface, in that order. An iteration in progress always completes.
func (h *Harness) Run() {
	for !h.surface.ShouldClose() {
		h.Step()
	}

	h.scene.Release()
	h.surface.Terminate()

	Logger().Info("shutdown", "frames", h.frames, "last_frame", h.last.Elapsed())
}

// Step runs one loop iteration.
func (h *Harness) Step() {
	ft := FrameTime{Start: h.now()}

	ProcessInput(h.input.Update(), h.surface)

	h.scene.Render()
	h.surface.SwapBuffers()
	h.surface.PollEvents()

	ft.End = h.now()
	h.surface.SetTitle(FrameTitle(h.titlePrefix, ft.FPS()))

	h.frames++
	h.last = ft
}

// Frames returns the number of completed iterations.
func (h *Harness) Frames() int {
	return h.frames
}

// LastFrame returns the timestamps of the most recent iteration.
func (h *Harness) LastFrame() FrameTime {
	return h.last
}
