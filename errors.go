package gltest

import (
	"bytes"
	"errors"
)

// MaxInfoLog is the size of the buffer shader and program info logs are
// read into, terminator included.
const MaxInfoLog = 512

// ErrBufferSize is returned when a vertex stream does not match the grid
// layout constants.
var ErrBufferSize = errors.New("gltest: vertex buffer size mismatch")

// Stage identifies a pipeline stage in diagnostics.
type Stage int

const (
	StageVertex Stage = iota
	StageGeometry
	StageFragment
	StageProgram // link step
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageGeometry:
		return "GEOMETRY"
	case StageFragment:
		return "FRAGMENT"
	case StageProgram:
		return "PROGRAM"
	default:
		return "UNKNOWN"
	}
}

// ShaderError is a failed compile or link. Its message is the diagnostic
// printed for the failure.
type ShaderError struct {
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageProgram {
		return "ERROR::SHADER::PROGRAM::LINKING_FAILED\n" + e.Log
	}
	return "ERROR::SHADER::" + e.Stage.String() + "::COMPILATION_FAILED\n" + e.Log
}

// InfoLogString converts a NUL-terminated info log buffer to a string,
// keeping at most MaxInfoLog-1 characters.
func InfoLogString(buf []byte) string {
	if len(buf) >= MaxInfoLog {
		buf = buf[:MaxInfoLog-1]
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
