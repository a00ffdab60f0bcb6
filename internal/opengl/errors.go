package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog"
)

// maxErrors bounds the drain loop; a lost context can report errors forever.
const maxErrors = 16

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

func ErrorName(code uint32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", code)
}

// CheckError logs every pending error code and returns how many were seen.
func CheckError(g GL, log zerolog.Logger) int {
	n := 0
	for ; n < maxErrors; n++ {
		code := g.GetError()
		if code == NoError {
			break
		}
		log.Error().
			Uint32("code", code).
			Str("name", ErrorName(code)).
			Msg("OpenGL error")
	}
	return n
}
