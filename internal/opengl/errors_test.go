package opengl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/ThatOtherAndrew/Driftline/internal/opengl/opengltest"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCheckErrorNoError(t *testing.T) {
	var buf bytes.Buffer
	fake := opengltest.New()

	n := opengl.CheckError(fake, zerolog.New(&buf))

	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestCheckErrorLogsEveryCode(t *testing.T) {
	var buf bytes.Buffer
	fake := opengltest.New()
	fake.Errors = []uint32{gl.INVALID_OPERATION, gl.INVALID_OPERATION, gl.INVALID_VALUE}

	n := opengl.CheckError(fake, zerolog.New(&buf))

	assert.Equal(t, 3, n)
	assert.Equal(t, 2, strings.Count(buf.String(), "GL_INVALID_OPERATION"))
	assert.Contains(t, buf.String(), "GL_INVALID_VALUE")
	assert.Empty(t, fake.Errors)
}

func TestCheckErrorIsBounded(t *testing.T) {
	fake := opengltest.New()
	for range 100 {
		fake.Errors = append(fake.Errors, gl.OUT_OF_MEMORY)
	}

	n := opengl.CheckError(fake, zerolog.Nop())

	assert.Equal(t, 16, n)
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", opengl.ErrorName(gl.INVALID_ENUM))
	assert.Equal(t, "0x1234", opengl.ErrorName(0x1234))
}
