package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	grace "github.com/eunyuson/GRACE-sub000"
)

// GLFWInputAdapter feeds GLFW window events into a grace.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *grace.InputState
}

// NewGLFWInputAdapter installs callbacks on the window and returns the
// adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  grace.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update resets per-frame edges and refreshes polled state. Call at the
// start of each frame, after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *grace.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *grace.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	uiKey := glfwKeyToUIKey(key)
	if uiKey == grace.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(uiKey, true)
	case glfw.Release:
		a.input.SetKey(uiKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	uiButton := glfwMouseButtonToUI(button)
	if uiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(uiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(uiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToUIKey maps the keys the gallery client reacts to.
func glfwKeyToUIKey(key glfw.Key) grace.Key {
	switch key {
	case glfw.KeyTab:
		return grace.KeyTab
	case glfw.KeyLeft:
		return grace.KeyLeft
	case glfw.KeyRight:
		return grace.KeyRight
	case glfw.KeyUp:
		return grace.KeyUp
	case glfw.KeyDown:
		return grace.KeyDown
	case glfw.KeyHome:
		return grace.KeyHome
	case glfw.KeyEnd:
		return grace.KeyEnd
	case glfw.KeyDelete:
		return grace.KeyDelete
	case glfw.KeyBackspace:
		return grace.KeyBackspace
	case glfw.KeySpace:
		return grace.KeySpace
	case glfw.KeyEnter:
		return grace.KeyEnter
	case glfw.KeyEscape:
		return grace.KeyEscape
	case glfw.KeyY:
		return grace.KeyY
	case glfw.KeyZ:
		return grace.KeyZ
	default:
		return grace.KeyNone
	}
}

// glfwMouseButtonToUI maps GLFW mouse buttons.
func glfwMouseButtonToUI(button glfw.MouseButton) grace.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return grace.MouseButtonLeft
	case glfw.MouseButtonRight:
		return grace.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return grace.MouseButtonMiddle
	default:
		return -1
	}
}
