package draw

import (
	"github.com/ThatOtherAndrew/Driftline/internal/camera"
	"github.com/ThatOtherAndrew/Driftline/internal/config"
	"github.com/ThatOtherAndrew/Driftline/internal/models"
	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/ThatOtherAndrew/Driftline/internal/shaders"
	"github.com/ThatOtherAndrew/Driftline/internal/update"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Surface is the window side of the loop.
type Surface interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
	Time() float64
	ResetRequested() bool
}

type App struct {
	gl      opengl.GL
	app     *models.App
	program *shaders.Program
	camera  camera.Camera
	log     zerolog.Logger
	closed  bool
}

func New(g opengl.GL, app *models.App, program *shaders.Program, log zerolog.Logger) *App {
	return &App{
		gl:      g,
		app:     app,
		program: program,
		camera:  camera.Default(),
		log:     log,
	}
}

// Run draws frames until the surface asks to close. A close request raised
// while a frame is in flight takes effect once that frame is swapped.
func (a *App) Run(s Surface) int {
	for !s.ShouldClose() {
		s.PollEvents()
		if s.ResetRequested() {
			a.app.Line = models.FloorLine()
			a.log.Debug().Msg("Line reset to floor")
		}
		a.Draw(s.Time())
		s.SwapBuffers()
	}
	return a.app.Frames
}

func (a *App) Draw(now float64) {
	dt := float32(now - a.app.LastFrame)
	a.app.LastFrame = now

	c := config.ClearColor
	a.gl.ClearColor(c[0], c[1], c[2], c[3])
	a.gl.Clear(opengl.ColorBufferBit | opengl.DepthBufferBit)

	a.gl.UseProgram(a.program.ID)
	a.gl.UniformMatrix4(a.program.Projection, a.app.Projection)
	a.gl.UniformMatrix4(a.program.View, a.camera.View())

	a.gl.BindVertexArray(a.app.Vao)
	step := update.New(a.app)
	for i := range a.app.Line {
		v := step.UpdateVertex(i, dt)
		a.drawLine(v)
	}
	a.gl.BindVertexArray(0)

	a.app.Frames++
}

func (a *App) drawLine(at models.Vertex) {
	model := mgl32.Ident4().
		Mul4(mgl32.Translate3D(at.X(), at.Y(), at.Z())).
		Mul4(mgl32.Scale3D(1, 1, 1))
	a.gl.UniformMatrix4(a.program.Model, model)

	a.gl.LineWidth(config.LineWidth)
	a.gl.DrawArrays(opengl.Lines, 0, 2)
	opengl.CheckError(a.gl, a.log)
}
