package gltest_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gltest"
)

func TestDefaultConfig(t *testing.T) {
	c := gltest.DefaultConfig()

	assert.Equal(t, 1920, c.Width)
	assert.Equal(t, 1080, c.Height)
	assert.Equal(t, "GLTest", c.Title)
	assert.Equal(t, "OpenGL Test", c.TitlePrefix)
	assert.Equal(t, float32(0.001), c.LineWidth)
	assert.Equal(t, gltest.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}, c.ClearColor)
	assert.Equal(t, gltest.ShaderErrorsContinue, c.ShaderErrors)
	assert.NotNil(t, c.Clock)
	assert.NotNil(t, c.Diagnostics)
	assert.NoError(t, c.Validate())
}

func TestNewConfigOptions(t *testing.T) {
	var diag bytes.Buffer
	c := gltest.NewConfig(
		gltest.WithSize(640, 480),
		gltest.WithTitle("t"),
		gltest.WithLineWidth(0.01),
		gltest.WithClearColor(gltest.Gray(0)),
		gltest.WithShaderErrorPolicy(gltest.ShaderErrorsFatal),
		gltest.WithDiagnostics(&diag),
	)

	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, "t", c.Title)
	assert.Equal(t, float32(0.01), c.LineWidth)
	assert.Equal(t, gltest.Color{A: 1}, c.ClearColor)
	assert.Equal(t, gltest.ShaderErrorsFatal, c.ShaderErrors)
	assert.Same(t, &diag, c.Diagnostics)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		opt  gltest.Option
		msg  string
	}{
		{"zero size", gltest.WithSize(0, 100), "must be positive"},
		{"negative line", gltest.WithLineWidth(-1), "must not be negative"},
		{"bad color", gltest.WithClearColor(gltest.Color{R: 2}), "out of range"},
		{"bad policy", gltest.WithShaderErrorPolicy(7), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gltest.NewConfig(tt.opt).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseShaderErrorPolicy(t *testing.T) {
	p, err := gltest.ParseShaderErrorPolicy("fatal")
	require.NoError(t, err)
	assert.Equal(t, gltest.ShaderErrorsFatal, p)
	assert.Equal(t, "fatal", p.String())

	p, err = gltest.ParseShaderErrorPolicy("continue")
	require.NoError(t, err)
	assert.Equal(t, gltest.ShaderErrorsContinue, p)

	_, err = gltest.ParseShaderErrorPolicy("abort")
	assert.Error(t, err)
}

func TestReportShaderErrorContinue(t *testing.T) {
	var diag bytes.Buffer
	c := gltest.NewConfig(gltest.WithDiagnostics(&diag))

	err := c.ReportShaderError(&gltest.ShaderError{
		Stage: gltest.StageGeometry,
		Log:   "0:3(1): error: syntax error",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ERROR::SHADER::GEOMETRY::COMPILATION_FAILED\n0:3(1): error: syntax error\n", diag.String())
}

func TestReportShaderErrorFatal(t *testing.T) {
	var diag bytes.Buffer
	c := gltest.NewConfig(
		gltest.WithDiagnostics(&diag),
		gltest.WithShaderErrorPolicy(gltest.ShaderErrorsFatal),
	)

	err := c.ReportShaderError(&gltest.ShaderError{Stage: gltest.StageProgram, Log: "link"})
	require.Error(t, err)

	var serr *gltest.ShaderError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, gltest.StageProgram, serr.Stage)
	assert.True(t, strings.HasPrefix(diag.String(), "ERROR::SHADER::PROGRAM::LINKING_FAILED\n"))
}

func TestReportShaderErrorNilWriter(t *testing.T) {
	c := gltest.NewConfig(gltest.WithDiagnostics(nil))
	assert.NotPanics(t, func() {
		_ = c.ReportShaderError(&gltest.ShaderError{Stage: gltest.StageVertex})
	})
}
