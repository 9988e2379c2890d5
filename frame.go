package gltest

import (
	"fmt"
	"time"
)

// DefaultTitlePrefix precedes the frame rate in the window title.
const DefaultTitlePrefix = "OpenGL Test"

// FrameTime holds the timestamps of a single loop iteration.
type FrameTime struct {
	Start, End time.Time
}

// Elapsed returns the duration of the iteration.
func (f FrameTime) Elapsed() time.Duration {
	return f.End.Sub(f.Start)
}

// FPS returns the instantaneous frame rate, 1000 / elapsed milliseconds.
// A zero-length frame yields +Inf.
func (f FrameTime) FPS() float32 {
	ms := float32(1e-6 * float64(f.Elapsed().Nanoseconds()))
	return 1000 / ms
}

// FrameTitle formats the window title for a frame rate.
func FrameTitle(prefix string, fps float32) string {
	return fmt.Sprintf("%s | fps=%.3f", prefix, fps)
}
