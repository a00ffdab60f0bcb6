package shaders

import _ "embed"

//go:embed line.vert.glsl
var LineVertex string

//go:embed line.frag.glsl
var LineFragment string
