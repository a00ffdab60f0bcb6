package models

import (
	"github.com/ThatOtherAndrew/Driftline/internal/config"
	"github.com/go-gl/mathgl/mgl32"
)

type Vertex = mgl32.Vec3

// Line is a single segment; its endpoints are ordered.
type Line [2]Vertex

func NewLine() Line {
	return Line{
		{0, 0, 1},
		{100.5, 100.5, 1},
	}
}

func FloorLine() Line {
	var line Line
	for i := range line {
		if i%2 == 0 {
			line[i] = Vertex{0, 0, config.LineFloor}
		} else {
			line[i] = Vertex{350, 350, config.LineFloor}
		}
	}
	return line
}

type App struct {
	Line       Line
	Vao        uint32
	Vbo        uint32
	Projection mgl32.Mat4
	LastFrame  float64
	Frames     int
}
