// Package opengltest provides an in-memory GL for tests that run without a
// display or driver.
package opengltest

import (
	"strings"

	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/go-gl/mathgl/mgl32"
)

var _ opengl.GL = (*Fake)(nil)

type Draw struct {
	Mode  uint32
	First int32
	Count int32
	Model mgl32.Mat4
}

type Fake struct {
	// FailCompile makes every shader of the given stage fail to compile.
	FailCompile map[uint32]bool
	FailLink    bool
	// Errors is returned by GetError one code at a time.
	Errors      []uint32

	Shaders        map[uint32]uint32
	DeletedShaders []uint32
	Attached       map[uint32][]uint32
	Locations      map[string]int32
	Uniforms       map[int32]mgl32.Mat4
	Uploads        map[int32]int
	Used           []uint32
	Bound          []uint32
	Draws          []Draw
	Clears         []uint32
	ClearColors    [][4]float32
	Enabled        []uint32
	LineWidths     []float32
	ViewportSize   [2]int32
	VertexArrays   map[uint32][]mgl32.Vec3
	DeletedArrays  []uint32
	DeletedProgram []uint32

	compiled map[uint32]bool
	next     uint32
}

func New() *Fake {
	return &Fake{
		FailCompile: map[uint32]bool{},
		Shaders:     map[uint32]uint32{},
		Attached:    map[uint32][]uint32{},
		Locations: map[string]int32{
			"model":      0,
			"view":       1,
			"projection": 2,
		},
		Uniforms:     map[int32]mgl32.Mat4{},
		Uploads:      map[int32]int{},
		VertexArrays: map[uint32][]mgl32.Vec3{},
		compiled:     map[uint32]bool{},
	}
}

func (f *Fake) id() uint32 {
	f.next++
	return f.next
}

func (f *Fake) CreateShader(stage uint32) uint32 {
	id := f.id()
	f.Shaders[id] = stage
	return id
}

// CompileShader accepts any source that starts with a #version directive.
func (f *Fake) CompileShader(shader uint32, source string) bool {
	ok := strings.HasPrefix(strings.TrimSpace(source), "#version") && !f.FailCompile[f.Shaders[shader]]
	f.compiled[shader] = ok
	return ok
}

func (f *Fake) ShaderInfoLog(shader uint32) string {
	if f.compiled[shader] {
		return ""
	}
	return "0:1(1): error: syntax error"
}

func (f *Fake) DeleteShader(shader uint32) {
	f.DeletedShaders = append(f.DeletedShaders, shader)
}

func (f *Fake) CreateProgram() uint32 {
	return f.id()
}

func (f *Fake) AttachShader(program, shader uint32) {
	f.Attached[program] = append(f.Attached[program], shader)
}

func (f *Fake) LinkProgram(program uint32) bool {
	if f.FailLink {
		return false
	}
	for _, shader := range f.Attached[program] {
		if !f.compiled[shader] {
			return false
		}
	}
	return true
}

func (f *Fake) ProgramInfoLog(program uint32) string {
	if f.LinkProgram(program) {
		return ""
	}
	return "error: linking with uncompiled/unspecialized shader"
}

func (f *Fake) DeleteProgram(program uint32) {
	f.DeletedProgram = append(f.DeletedProgram, program)
}

func (f *Fake) UseProgram(program uint32) {
	f.Used = append(f.Used, program)
}

func (f *Fake) UniformLocation(program uint32, name string) int32 {
	if loc, ok := f.Locations[name]; ok {
		return loc
	}
	return -1
}

func (f *Fake) UniformMatrix4(location int32, m mgl32.Mat4) {
	f.Uniforms[location] = m
	f.Uploads[location]++
}

func (f *Fake) NewVertexArray(vertices []mgl32.Vec3) (uint32, uint32) {
	vao, vbo := f.id(), f.id()
	f.VertexArrays[vao] = append([]mgl32.Vec3(nil), vertices...)
	return vao, vbo
}

func (f *Fake) BindVertexArray(vao uint32) {
	f.Bound = append(f.Bound, vao)
}

func (f *Fake) DeleteVertexArray(vao, vbo uint32) {
	f.DeletedArrays = append(f.DeletedArrays, vao, vbo)
}

func (f *Fake) Viewport(width, height int32) {
	f.ViewportSize = [2]int32{width, height}
}

func (f *Fake) Enable(capability uint32) {
	f.Enabled = append(f.Enabled, capability)
}

func (f *Fake) ClearColor(r, g, b, a float32) {
	f.ClearColors = append(f.ClearColors, [4]float32{r, g, b, a})
}

func (f *Fake) Clear(mask uint32) {
	f.Clears = append(f.Clears, mask)
}

func (f *Fake) LineWidth(width float32) {
	f.LineWidths = append(f.LineWidths, width)
}

func (f *Fake) DrawArrays(mode uint32, first, count int32) {
	f.Draws = append(f.Draws, Draw{
		Mode:  mode,
		First: first,
		Count: count,
		Model: f.Uniforms[f.Locations["model"]],
	})
}

func (f *Fake) GetError() uint32 {
	if len(f.Errors) == 0 {
		return opengl.NoError
	}
	code := f.Errors[0]
	f.Errors = f.Errors[1:]
	return code
}
