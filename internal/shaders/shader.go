package shaders

import (
	"errors"
	"fmt"

	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/rs/zerolog"
)

var (
	ErrCompilationFailed = errors.New("ERROR::SHADER::COMPILATION_FAILED")
	ErrLinkFailed        = errors.New("ERROR::PROGRAM::LINKING_FAILED")
)

// Program is a linked shader program with its uniform locations resolved.
type Program struct {
	ID         uint32
	Model      int32
	View       int32
	Projection int32
}

func stageName(stage uint32) string {
	switch stage {
	case opengl.VertexShader:
		return "vertex"
	case opengl.FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", stage)
	}
}

// Compile always returns the shader handle, even when compilation fails, so
// the caller can still hand it to Link.
func Compile(g opengl.GL, source string, stage uint32) (uint32, error) {
	shader := g.CreateShader(stage)
	if !g.CompileShader(shader, source) {
		return shader, fmt.Errorf("%w: %s shader: %s", ErrCompilationFailed, stageName(stage), g.ShaderInfoLog(shader))
	}
	return shader, nil
}

// Link deletes both stage handles whether or not linking succeeds.
func Link(g opengl.GL, vertexShader, fragmentShader uint32) (*Program, error) {
	id := g.CreateProgram()
	g.AttachShader(id, vertexShader)
	g.AttachShader(id, fragmentShader)
	linked := g.LinkProgram(id)

	g.DeleteShader(vertexShader)
	g.DeleteShader(fragmentShader)

	program := &Program{
		ID:         id,
		Model:      g.UniformLocation(id, "model"),
		View:       g.UniformLocation(id, "view"),
		Projection: g.UniformLocation(id, "projection"),
	}

	if !linked {
		return program, fmt.Errorf("%w: %s", ErrLinkFailed, g.ProgramInfoLog(id))
	}
	return program, nil
}

// Build never fails: a broken program is logged and returned as is, and
// drawing with it just produces nothing on screen.
func Build(g opengl.GL, vertexSource, fragmentSource string, log zerolog.Logger) *Program {
	vertexShader, err := Compile(g, vertexSource, opengl.VertexShader)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compile vertex shader")
	}
	fragmentShader, err := Compile(g, fragmentSource, opengl.FragmentShader)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compile fragment shader")
	}

	program, err := Link(g, vertexShader, fragmentShader)
	if err != nil {
		log.Error().Err(err).Msg("Failed to link program")
	}
	return program
}

func BuildLine(g opengl.GL, log zerolog.Logger) *Program {
	return Build(g, LineVertex, LineFragment, log)
}
