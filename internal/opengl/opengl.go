package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertexShader   = gl.VERTEX_SHADER
	FragmentShader = gl.FRAGMENT_SHADER

	ColorBufferBit = gl.COLOR_BUFFER_BIT
	DepthBufferBit = gl.DEPTH_BUFFER_BIT
	DepthTest      = gl.DEPTH_TEST

	Lines   = gl.LINES
	NoError = gl.NO_ERROR
)

// GL is the subset of OpenGL the renderer needs.
type GL interface {
	CreateShader(stage uint32) uint32
	CompileShader(shader uint32, source string) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)

	NewVertexArray(vertices []mgl32.Vec3) (vao, vbo uint32)
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao, vbo uint32)

	Viewport(width, height int32)
	Enable(capability uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	LineWidth(width float32)
	DrawArrays(mode uint32, first, count int32)
	GetError() uint32
}

var _ GL = Native{}

// Load resolves the OpenGL function pointers for the current context.
func Load() error {
	return gl.Init()
}

func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

type Native struct{}

func (Native) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

func (Native) CompileShader(shader uint32, source string) bool {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Native) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logMsg := make([]byte, logLength)
	gl.GetShaderInfoLog(shader, logLength, nil, &logMsg[0])
	return strings.TrimSpace(strings.TrimRight(string(logMsg), "\x00"))
}

func (Native) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Native) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Native) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Native) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Native) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logMsg := make([]byte, logLength)
	gl.GetProgramInfoLog(program, logLength, nil, &logMsg[0])
	return strings.TrimSpace(strings.TrimRight(string(logMsg), "\x00"))
}

func (Native) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Native) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Native) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Native) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// NewVertexArray uploads positions into a static buffer bound to attribute 0.
func (Native) NewVertexArray(vertices []mgl32.Vec3) (uint32, uint32) {
	data := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		data = append(data, v.X(), v.Y(), v.Z())
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return vao, vbo
}

func (Native) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Native) DeleteVertexArray(vao, vbo uint32) {
	gl.DeleteVertexArrays(1, &vao)
	gl.DeleteBuffers(1, &vbo)
}

func (Native) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (Native) Enable(capability uint32) {
	gl.Enable(capability)
}

func (Native) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Native) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Native) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (Native) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Native) GetError() uint32 {
	return gl.GetError()
}
