package gltest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gltest"
)

// recorder collects calls from the fakes in order.
type recorder struct {
	events []string
}

func (r *recorder) add(e string) { r.events = append(r.events, e) }

type fakeSurface struct {
	rec        *recorder
	close      bool
	titles     []string
	terminated bool
}

func (s *fakeSurface) ShouldClose() bool     { return s.close }
func (s *fakeSurface) SetShouldClose(v bool) { s.close = v }
func (s *fakeSurface) SwapBuffers()          { s.rec.add("swap") }
func (s *fakeSurface) PollEvents()           { s.rec.add("poll") }
func (s *fakeSurface) SetTitle(t string) {
	s.rec.add("title")
	s.titles = append(s.titles, t)
}
func (s *fakeSurface) Terminate() {
	s.rec.add("terminate")
	s.terminated = true
}

// fakeScene fails the test if it is used after the surface is terminated.
type fakeScene struct {
	t       *testing.T
	rec     *recorder
	surface *fakeSurface
}

func (s *fakeScene) Render() {
	assert.False(s.t, s.surface.terminated, "render after terminate")
	s.rec.add("render")
}

func (s *fakeScene) Release() {
	assert.False(s.t, s.surface.terminated, "release after terminate")
	s.rec.add("release")
}

// fakeInput presses Escape from frame pressAt onward (zero-based).
type fakeInput struct {
	rec     *recorder
	state   *gltest.InputState
	frame   int
	pressAt int
}

func (in *fakeInput) Update() *gltest.InputState {
	in.rec.add("input")
	in.state.Reset()
	in.state.SetKey(gltest.KeyEscape, in.pressAt >= 0 && in.frame >= in.pressAt)
	in.frame++
	return in.state
}

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

type harnessFixture struct {
	rec     *recorder
	surface *fakeSurface
	scene   *fakeScene
	input   *fakeInput
	h       *gltest.Harness
}

func newFixture(t *testing.T, pressAt int, opts ...gltest.Option) *harnessFixture {
	rec := &recorder{}
	surface := &fakeSurface{rec: rec}
	f := &harnessFixture{
		rec:     rec,
		surface: surface,
		scene:   &fakeScene{t: t, rec: rec, surface: surface},
		input:   &fakeInput{rec: rec, state: gltest.NewInputState(), pressAt: pressAt},
	}
	cfg := gltest.NewConfig(append([]gltest.Option{gltest.WithClock(stepClock(16 * time.Millisecond))}, opts...)...)
	f.h = gltest.NewHarness(cfg, f.surface, f.scene, f.input)
	return f
}

func TestHarnessStepOrder(t *testing.T) {
	f := newFixture(t, -1)
	f.h.Step()

	assert.Equal(t, []string{"input", "render", "swap", "poll", "title"}, f.rec.events)
	assert.Equal(t, 1, f.h.Frames())
	assert.Equal(t, 16*time.Millisecond, f.h.LastFrame().Elapsed())
}

func TestHarnessTitleAfterFirstFrame(t *testing.T) {
	f := newFixture(t, -1)
	f.h.Step()

	require.Len(t, f.surface.titles, 1)
	assert.Regexp(t, `^OpenGL Test \| fps=\d+\.\d{3}$`, f.surface.titles[0])
	assert.Equal(t, "OpenGL Test | fps=62.500", f.surface.titles[0])
}

func TestHarnessTitlePrefixOption(t *testing.T) {
	f := newFixture(t, -1, gltest.WithTitlePrefix("Grid"))
	f.h.Step()

	require.Len(t, f.surface.titles, 1)
	assert.Equal(t, "Grid | fps=62.500", f.surface.titles[0])
}

func TestHarnessEscapeExitsWithinOneIteration(t *testing.T) {
	f := newFixture(t, 2)
	f.h.Run()

	// Frames 0 and 1 run normally; frame 2 sees Escape and completes.
	assert.Equal(t, 3, f.h.Frames())
	assert.True(t, f.surface.close)

	n := len(f.rec.events)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, []string{"release", "terminate"}, f.rec.events[n-2:])
}

func TestHarnessClosedBeforeStart(t *testing.T) {
	f := newFixture(t, -1)
	f.surface.close = true
	f.h.Run()

	assert.Zero(t, f.h.Frames())
	assert.Equal(t, []string{"release", "terminate"}, f.rec.events)
}

func TestHarnessExternalClose(t *testing.T) {
	f := newFixture(t, -1)
	f.h.Step()
	f.surface.close = true
	f.h.Run()

	assert.Equal(t, 1, f.h.Frames())
	assert.Equal(t, "terminate", f.rec.events[len(f.rec.events)-1])
}
