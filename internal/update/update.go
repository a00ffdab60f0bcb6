package update

import (
	"github.com/ThatOtherAndrew/Driftline/internal/config"
	"github.com/ThatOtherAndrew/Driftline/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

func Movement(dt float32) mgl32.Vec3 {
	return mgl32.Vec3{config.Speed * dt, 0, 0}
}

// Wrap resets a coordinate to 0 once it passes the upper screen bound.
// Negative coordinates are left alone.
func Wrap(v models.Vertex) models.Vertex {
	if v.X() > config.ScreenWidth {
		v[0] = 0
	}
	if v.Y() > config.ScreenHeight {
		v[1] = 0
	}
	return v
}

func Advance(v models.Vertex, dt float32) models.Vertex {
	return Wrap(v.Add(Movement(dt)))
}

func (a *App) UpdateVertex(i int, dt float32) models.Vertex {
	a.app.Line[i] = Advance(a.app.Line[i], dt)
	return a.app.Line[i]
}

func (a *App) UpdateLine(dt float32) {
	for i := range a.app.Line {
		a.UpdateVertex(i, dt)
	}
}
