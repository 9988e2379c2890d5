package gltest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ShaderErrorPolicy decides what happens when a shader stage fails to
// compile or the program fails to link.
type ShaderErrorPolicy int

const (
	// ShaderErrorsContinue prints the diagnostic and carries on with the
	// broken pipeline. Rendering is undefined, usually blank.
	ShaderErrorsContinue ShaderErrorPolicy = iota
	// ShaderErrorsFatal prints the diagnostic and aborts setup.
	ShaderErrorsFatal
)

func (p ShaderErrorPolicy) String() string {
	switch p {
	case ShaderErrorsContinue:
		return "continue"
	case ShaderErrorsFatal:
		return "fatal"
	default:
		return fmt.Sprintf("ShaderErrorPolicy(%d)", int(p))
	}
}

// ParseShaderErrorPolicy parses "continue" or "fatal".
func ParseShaderErrorPolicy(s string) (ShaderErrorPolicy, error) {
	switch s {
	case "continue":
		return ShaderErrorsContinue, nil
	case "fatal":
		return ShaderErrorsFatal, nil
	}
	return 0, fmt.Errorf("unknown shader error policy %q", s)
}

// Config holds everything the harness and its backend need at setup.
type Config struct {
	Width, Height int
	Title         string // initial window title, replaced after the first frame
	TitlePrefix   string // precedes the frame rate in the per-frame title
	LineWidth     float32
	ClearColor    Color
	Shaders       ShaderSources
	ShaderErrors  ShaderErrorPolicy
	Diagnostics   io.Writer // receives shader diagnostics verbatim
	Clock         func() time.Time
}

// DefaultConfig returns the stock configuration: a 1920x1080 window, a
// light-gray background and hairline grid lines.
func DefaultConfig() Config {
	return Config{
		Width:        1920,
		Height:       1080,
		Title:        "GLTest",
		TitlePrefix:  DefaultTitlePrefix,
		LineWidth:    0.001,
		ClearColor:   Gray(0.9),
		Shaders:      DefaultShaders(),
		ShaderErrors: ShaderErrorsContinue,
		Diagnostics:  os.Stdout,
		Clock:        time.Now,
	}
}

// Option configures a Config.
type Option func(*Config)

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTitle sets the initial window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithTitlePrefix sets the text preceding the frame rate.
func WithTitlePrefix(prefix string) Option {
	return func(c *Config) { c.TitlePrefix = prefix }
}

// WithLineWidth sets the half-width of the expanded lines in NDC units.
func WithLineWidth(w float32) Option {
	return func(c *Config) { c.LineWidth = w }
}

// WithClearColor sets the background color.
func WithClearColor(col Color) Option {
	return func(c *Config) { c.ClearColor = col }
}

// WithShaders replaces the pipeline sources.
func WithShaders(s ShaderSources) Option {
	return func(c *Config) { c.Shaders = s }
}

// WithShaderErrorPolicy sets how compile and link failures are handled.
func WithShaderErrorPolicy(p ShaderErrorPolicy) Option {
	return func(c *Config) { c.ShaderErrors = p }
}

// WithDiagnostics redirects shader diagnostics.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Config) { c.Diagnostics = w }
}

// WithClock replaces the frame clock.
func WithClock(now func() time.Time) Option {
	return func(c *Config) { c.Clock = now }
}

// Validate reports configuration values the backend cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("line width %v must not be negative", c.LineWidth))
	}
	if !c.ClearColor.Valid() {
		errs = append(errs, fmt.Errorf("clear color %v out of range", c.ClearColor))
	}
	if c.ShaderErrors != ShaderErrorsContinue && c.ShaderErrors != ShaderErrorsFatal {
		errs = append(errs, fmt.Errorf("invalid %v", c.ShaderErrors))
	}
	return errors.Join(errs...)
}

// ReportShaderError prints the diagnostic for err and applies the configured
// policy. It returns err when setup must stop, nil otherwise.
func (c Config) ReportShaderError(err *ShaderError) error {
	if c.Diagnostics != nil {
		fmt.Fprintln(c.Diagnostics, err.Error())
	}
	Logger().Warn("shader failure", "stage", err.Stage, "policy", c.ShaderErrors)
	if c.ShaderErrors == ShaderErrorsFatal {
		return err
	}
	return nil
}
