package renderer

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.1/glfw"

	"github.com/lmarchetti/raytracer/log"
	"github.com/lmarchetti/raytracer/scene"
)

var windowLogger = log.New("window")

// Window presents successive rendered frames in a desktop window and feeds
// keyboard/mouse input back into the scene's camera, driving a worker-pool
// Renderer rather than a GPU device.
type Window struct {
	win *glfw.Window

	pressed   map[glfw.Key]bool
	mouse     scene.MouseButtons
	lastX     float64
	lastY     float64
	haveMouse bool

	pendingDX float32
	pendingDY float32
}

// NewWindow creates a GLFW window of the given size and installs the input
// callbacks applyInput relies on. Must be called from the main goroutine.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("renderer: initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: creating window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("renderer: initializing gl: %w", err)
	}

	w := &Window{
		win:     win,
		pressed: make(map[glfw.Key]bool),
	}
	win.SetKeyCallback(w.onKeyEvent)
	win.SetMouseButtonCallback(w.onMouseEvent)
	win.SetCursorPosCallback(w.onCursorPosEvent)

	windowLogger.Debugf("opened %dx%d window %q", width, height, title)
	return w, nil
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

// ShouldClose reports whether the user asked to close the window
// (Escape or the window's close button).
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Run drives the render/present/input loop until the window is closed.
func (w *Window) Run(r Renderer, s *scene.Scene) error {
	last := time.Now()
	for !w.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		glfw.PollEvents()
		w.applyInput(s, dt)

		if _, err := r.RenderFrame(s); err != nil {
			return fmt.Errorf("renderer: rendering frame: %w", err)
		}
		w.present(r.Framebuffer())

		w.win.SwapBuffers()
	}
	return nil
}

// applyInput translates currently-held keys and the last mouse delta into
// camera movement, matching Camera.HandleKeys/HandleMouse's contract.
func (w *Window) applyInput(s *scene.Scene, dt float32) {
	if s.Camera == nil {
		return
	}

	var forward, strafe, vertical float32
	if w.pressed[glfw.KeyW] {
		forward++
	}
	if w.pressed[glfw.KeyS] {
		forward--
	}
	if w.pressed[glfw.KeyD] {
		strafe++
	}
	if w.pressed[glfw.KeyA] {
		strafe--
	}
	if w.pressed[glfw.KeySpace] {
		vertical++
	}

	var fovDelta float32
	if w.pressed[glfw.KeyUp] {
		fovDelta++
	}
	if w.pressed[glfw.KeyDown] {
		fovDelta--
	}

	shiftHeld := w.pressed[glfw.KeyLeftShift] || w.pressed[glfw.KeyRightShift]
	s.Camera.HandleKeys(forward, strafe, vertical, shiftHeld, fovDelta, dt)

	if w.pendingDX != 0 || w.pendingDY != 0 {
		s.Camera.HandleMouse(w.mouse, w.pendingDX, w.pendingDY, dt)
		w.pendingDX, w.pendingDY = 0, 0
	}
}

// present uploads the framebuffer to the window via the fixed-function
// glDrawPixels path; there is no GPU-owned renderbuffer to blit from since
// every pixel is shaded on the CPU.
func (w *Window) present(fb *Framebuffer) {
	gl.DrawPixels(int32(fb.Width), int32(fb.Height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&fb.Pixels[0]))
}

func (w *Window) onKeyEvent(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.pressed[key] = true
	case glfw.Release:
		w.pressed[key] = false
	}

	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}
}

func (w *Window) onMouseEvent(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action == glfw.Press
	switch button {
	case glfw.MouseButtonLeft:
		w.mouse.Left = pressed
	case glfw.MouseButtonRight:
		w.mouse.Right = pressed
	}
	if !pressed {
		w.haveMouse = false
	}
}

func (w *Window) onCursorPosEvent(win *glfw.Window, x, y float64) {
	if !w.mouse.Left && !w.mouse.Right {
		w.haveMouse = false
		return
	}

	if !w.haveMouse {
		w.lastX, w.lastY = x, y
		w.haveMouse = true
		return
	}

	w.pendingDX += float32(x - w.lastX)
	w.pendingDY += float32(y - w.lastY)
	w.lastX, w.lastY = x, y
}
