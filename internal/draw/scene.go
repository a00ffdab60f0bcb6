package draw

import (
	"github.com/ThatOtherAndrew/Driftline/internal/camera"
	"github.com/ThatOtherAndrew/Driftline/internal/models"
	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/ThatOtherAndrew/Driftline/internal/shaders"
	"github.com/rs/zerolog"
)

// Setup creates every GPU resource the loop needs. They live until Close.
func Setup(g opengl.GL, log zerolog.Logger) *App {
	g.Enable(opengl.DepthTest)

	cam := camera.Default()
	app := &models.App{
		Line:       models.NewLine(),
		Projection: cam.Projection(),
	}
	app.Vao, app.Vbo = g.NewVertexArray(app.Line[:])

	program := shaders.BuildLine(g, log)

	log.Debug().
		Float32("zFar", cam.FarPlane()).
		Interface("line", app.Line).
		Msg("Scene ready")

	return New(g, app, program, log)
}

func (a *App) Resize(width, height int) {
	a.gl.Viewport(int32(width), int32(height))
}

// Close releases the program and vertex array. Later calls do nothing.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.gl.DeleteProgram(a.program.ID)
	a.gl.DeleteVertexArray(a.app.Vao, a.app.Vbo)
}
