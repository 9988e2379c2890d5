// Command gltest opens a window and draws a ruled grid through a vertex,
// geometry and fragment shader pipeline, showing the frame rate in the title.
// Press Escape or close the window to quit.
//
// Usage:
//
//	go run ./cmd/gltest/                      # stock settings
//	go run ./cmd/gltest/ -config gltest.toml  # optional overrides
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/gltest"
	"github.com/go-theft-auto/gltest/backend/opengl"
)

// exitFailure is the status for window, loader and fatal shader failures.
const exitFailure = -1

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

func run() error {
	configPath := flag.String("config", "", "optional TOML configuration file")
	flag.Parse()

	var opts []gltest.Option
	level := slog.LevelInfo
	if *configPath != "" {
		fc, err := gltest.LoadConfigFile(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if opts, err = fc.Options(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if level, err = fc.Level(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	gltest.SetLogLevel(level)
	gltest.SetLogger(gltest.NewTextLogger(os.Stderr))

	cfg := gltest.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}

	renderer, err := opengl.NewRenderer(cfg, gltest.NewGrid())
	if err != nil {
		win.Terminate()
		return fmt.Errorf("renderer: %w", err)
	}

	h := gltest.NewHarness(cfg, win, renderer, opengl.NewGLFWInputAdapter(win.Window))
	h.Run()

	return nil
}
