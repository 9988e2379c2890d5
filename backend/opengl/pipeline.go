package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/gltest"
)

var pipelineStages = []struct {
	stage gltest.Stage
	kind  uint32
}{
	{gltest.StageVertex, gl.VERTEX_SHADER},
	{gltest.StageGeometry, gl.GEOMETRY_SHADER},
	{gltest.StageFragment, gl.FRAGMENT_SHADER},
}

// createShaderProgram compiles the three stages and links them. Failures are
// reported through cfg; under ShaderErrorsContinue the returned program may
// be unusable.
func createShaderProgram(cfg gltest.Config) (uint32, error) {
	shaders := make([]uint32, 0, len(pipelineStages))
	release := func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}

	for _, ps := range pipelineStages {
		shader, serr := compileShader(ps.kind, ps.stage, cfg.Shaders.Source(ps.stage))
		shaders = append(shaders, shader)
		if serr != nil {
			if err := cfg.ReportShaderError(serr); err != nil {
				release()
				return 0, err
			}
		}
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var log [gltest.MaxInfoLog]byte
		gl.GetProgramInfoLog(program, gltest.MaxInfoLog, nil, &log[0])
		serr := &gltest.ShaderError{Stage: gltest.StageProgram, Log: gltest.InfoLogString(log[:])}
		if err := cfg.ReportShaderError(serr); err != nil {
			release()
			gl.DeleteProgram(program)
			return 0, err
		}
	}

	// Linked into the program; the stage objects are no longer needed.
	release()

	gltest.Logger().Debug("shader program built", "program", program, "stages", len(shaders))
	return program, nil
}

func compileShader(kind uint32, stage gltest.Stage, source string) (uint32, *gltest.ShaderError) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var log [gltest.MaxInfoLog]byte
		gl.GetShaderInfoLog(shader, gltest.MaxInfoLog, nil, &log[0])
		return shader, &gltest.ShaderError{Stage: stage, Log: gltest.InfoLogString(log[:])}
	}
	return shader, nil
}
