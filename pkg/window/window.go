package window

import (
	"fmt"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowError struct {
	msg string
	err error
}

func (e *WindowError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *WindowError) Unwrap() error {
	return e.err
}

// Window is a GLFW window with a 4.1 core context. Every method must be called from the
// thread that created it.
type Window struct {
	win *glfw.Window

	lastX, lastY float64
	dragging     bool
	dragDX       float32
	dragDY       float32
	scroll       float32

	onKey    func(key glfw.Key, mods glfw.ModifierKey)
	onResize func(width, height int)
}

// New must be called from the main goroutine with its OS thread locked, as cmd does in
// init.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &WindowError{"failed to initialise GLFW", err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowError{"failed to create window", err}
	}

	w := &Window{win: win}
	w.lastX, w.lastY = win.GetCursorPos()

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		w.dragging = action == glfw.Press
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.dragging {
			fw, fh := w.Size()
			w.dragDX += float32((x - w.lastX) / float64(max(fw, 1)))
			w.dragDY += float32((y - w.lastY) / float64(max(fh, 1)))
		}
		w.lastX, w.lastY = x, y
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.scroll += float32(yoff)
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release || w.onKey == nil {
			return
		}
		w.onKey(key, mods)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	return w, nil
}

// OnKey registers the handler for key presses and repeats.
func (w *Window) OnKey(fn func(key glfw.Key, mods glfw.ModifierKey)) {
	w.onKey = fn
}

// OnResize registers the handler for framebuffer size changes.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) MakeContextCurrent() {
	w.win.MakeContextCurrent()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Size is the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// PixelRatio is framebuffer pixels per screen coordinate.
func (w *Window) PixelRatio() float32 {
	fw, _ := w.win.GetFramebufferSize()
	sw, _ := w.win.GetSize()
	if sw <= 0 || fw <= 0 {
		return 1
	}
	return float32(fw) / float32(sw)
}

// Input snapshots the pointer for one frame. Drag deltas and scroll accumulate between
// calls and are reset by it.
func (w *Window) Input() models.Input {
	sw, sh := w.Size()
	in := models.Input{
		PointerX: float32(w.lastX/float64(max(sw, 1)))*2 - 1,
		PointerY: -(float32(w.lastY/float64(max(sh, 1)))*2 - 1),
		DragDX:   w.dragDX,
		DragDY:   w.dragDY,
		Scroll:   w.scroll,
	}
	w.dragDX, w.dragDY, w.scroll = 0, 0, 0
	return in
}

func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
