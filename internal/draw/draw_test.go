package draw

import (
	"bytes"
	"testing"

	"github.com/ThatOtherAndrew/Driftline/internal/camera"
	"github.com/ThatOtherAndrew/Driftline/internal/models"
	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/ThatOtherAndrew/Driftline/internal/opengl/opengltest"
	"github.com/ThatOtherAndrew/Driftline/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	closeAfterPolls int
	resetOnPoll     int
	polls           int
	swaps           int
	closed          bool
	reset           bool
	clock           float64
	step            float64
}

func (s *fakeSurface) ShouldClose() bool { return s.closed }

func (s *fakeSurface) PollEvents() {
	s.polls++
	if s.polls == s.resetOnPoll {
		s.reset = true
	}
	if s.polls >= s.closeAfterPolls {
		s.closed = true
	}
}

func (s *fakeSurface) SwapBuffers() { s.swaps++ }

func (s *fakeSurface) Time() float64 {
	s.clock += s.step
	return s.clock
}

func (s *fakeSurface) ResetRequested() bool {
	r := s.reset
	s.reset = false
	return r
}

func newApp(t *testing.T, fake *opengltest.Fake, log zerolog.Logger) (*App, *models.App) {
	t.Helper()

	program := shaders.BuildLine(fake, log)
	app := &models.App{
		Line:       models.NewLine(),
		Projection: camera.Default().Projection(),
	}
	app.Vao, app.Vbo = fake.NewVertexArray(app.Line[:])
	return New(fake, app, program, log), app
}

func TestDrawSingleFrame(t *testing.T) {
	fake := opengltest.New()
	drawer, app := newApp(t, fake, zerolog.Nop())

	drawer.Draw(0.5)

	assert.Equal(t, models.Vertex{32, 0, 1}, app.Line[0])
	assert.Equal(t, models.Vertex{132.5, 100.5, 1}, app.Line[1])
	assert.Equal(t, 0.5, app.LastFrame)
	assert.Equal(t, 1, app.Frames)

	assert.Equal(t, []uint32{opengl.ColorBufferBit | opengl.DepthBufferBit}, fake.Clears)
	assert.Equal(t, [][4]float32{{0.2, 0.3, 0.3, 1.0}}, fake.ClearColors)
	assert.Equal(t, drawer.program.ID, fake.Used[len(fake.Used)-1])
	assert.Equal(t, []float32{3.3, 3.3}, fake.LineWidths)
	assert.Equal(t, app.Projection, fake.Uniforms[2])
	assert.Equal(t, camera.Default().View(), fake.Uniforms[1])

	require.Len(t, fake.Draws, 2)
	for i, d := range fake.Draws {
		assert.Equal(t, uint32(gl.LINES), d.Mode)
		assert.Equal(t, int32(0), d.First)
		assert.Equal(t, int32(2), d.Count)
		assert.Equal(t, mgl32.Translate3D(app.Line[i].X(), app.Line[i].Y(), app.Line[i].Z()), d.Model)
	}
	assert.Equal(t, []uint32{app.Vao, 0}, fake.Bound[len(fake.Bound)-2:])
}

func TestRunStopsAfterCurrentFrame(t *testing.T) {
	fake := opengltest.New()
	drawer, app := newApp(t, fake, zerolog.Nop())
	surface := &fakeSurface{closeAfterPolls: 3, step: 0.016}

	frames := drawer.Run(surface)

	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, surface.swaps)
	assert.Len(t, fake.Draws, 6)
	assert.Equal(t, 3, fake.Uploads[2], "projection is uploaded every frame")
	assert.Equal(t, 3, fake.Uploads[1])
	assert.Equal(t, 6, fake.Uploads[0])
	assert.InDelta(t, 64*0.048, app.Line[0].X(), 1e-3)
}

func TestRunDoesNothingWhenAlreadyClosed(t *testing.T) {
	fake := opengltest.New()
	drawer, _ := newApp(t, fake, zerolog.Nop())
	surface := &fakeSurface{closed: true}

	assert.Zero(t, drawer.Run(surface))
	assert.Zero(t, surface.swaps)
	assert.Empty(t, fake.Draws)
}

func TestRunResetsToFloor(t *testing.T) {
	fake := opengltest.New()
	drawer, app := newApp(t, fake, zerolog.Nop())
	surface := &fakeSurface{closeAfterPolls: 2, resetOnPoll: 2, step: 0}

	drawer.Run(surface)

	assert.Equal(t, models.FloorLine(), app.Line)
}

func TestGLErrorsAreLoggedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	fake := opengltest.New()
	drawer, app := newApp(t, fake, zerolog.New(&buf))
	fake.Errors = []uint32{gl.INVALID_VALUE}

	drawer.Draw(0.1)
	drawer.Draw(0.2)

	assert.Equal(t, 2, app.Frames)
	assert.Len(t, fake.Draws, 4)
	assert.Contains(t, buf.String(), "GL_INVALID_VALUE")
}

func TestDrawWithBrokenProgram(t *testing.T) {
	fake := opengltest.New()
	fake.FailCompile[opengl.FragmentShader] = true
	drawer, app := newApp(t, fake, zerolog.Nop())

	assert.NotPanics(t, func() { drawer.Draw(1) })
	assert.Equal(t, models.Vertex{64, 0, 1}, app.Line[0])
}
