package config

import "math"

const (
	ScreenWidth  = 1024
	ScreenHeight = 800
	Title        = "Driftline"

	// FOV is the vertical field of view in radians (90°).
	FOV float32 = math.Pi / 2

	NearPlane float32 = 0.1
	// FarMargin is added past the eye distance so the z=0 plane is never clipped.
	FarMargin float32 = 10

	LineFloor float32 = 60
	LineWidth float32 = 3.3

	// Speed is the horizontal drift in units per second.
	Speed float32 = 64

	GLMajor = 4
	GLMinor = 1
)

var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}
