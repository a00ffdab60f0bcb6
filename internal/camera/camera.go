package camera

import (
	"math"

	"github.com/ThatOtherAndrew/Driftline/internal/config"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	front = mgl32.Vec3{0, 0, -1}
	up    = mgl32.Vec3{0, 1, 0}
)

// Camera looks straight down -z at the screen-sized plane z=0, placed so the
// plane exactly fills the horizontal field of view.
type Camera struct {
	Width  float32
	Height float32
	FOV    float32
}

func Default() Camera {
	return Camera{
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
		FOV:    config.FOV,
	}
}

func (c Camera) EyeDistance() float32 {
	return (c.Width / 2) / float32(math.Tan(float64(c.FOV/2)))
}

func (c Camera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{c.Width / 2, c.Height / 2, c.EyeDistance()}
}

func (c Camera) View() mgl32.Mat4 {
	eye := c.Eye()
	return mgl32.LookAtV(eye, eye.Add(front), up)
}

func (c Camera) FarPlane() float32 {
	return c.EyeDistance() + config.FarMargin
}

func (c Camera) Aspect() float32 {
	return c.Width / c.Height
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.Aspect(), config.NearPlane, c.FarPlane())
}
