package window

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

type signal int

const (
	signalNone signal = iota
	signalClose
	signalReset
)

func signalFor(key glfw.Key, action glfw.Action) signal {
	if action != glfw.Press {
		return signalNone
	}
	switch key {
	case glfw.KeyEscape:
		return signalClose
	case glfw.KeyR:
		return signalReset
	default:
		return signalNone
	}
}

type Window struct {
	handle   *glfw.Window
	reset    bool
	onResize func(width, height int)
}

// New initialises glfw and opens a window with a current OpenGL core context.
// It must be called from the locked main thread.
func New(width, height int, title string, major, minor int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &Error{"failed to initialise glfw", err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	handle, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &Error{"failed to create window", err}
	}
	handle.MakeContextCurrent()

	w := &Window{handle: handle}
	handle.SetKeyCallback(w.keyCallback)
	handle.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch signalFor(key, action) {
	case signalClose:
		win.SetShouldClose(true)
	case signalReset:
		w.reset = true
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// OnResize registers fn for framebuffer size changes.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) FramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

// Time is seconds since glfw was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) ResetRequested() bool {
	r := w.reset
	w.reset = false
	return r
}

func (w *Window) Destroy() {
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	glfw.Terminate()
}
