package lamproom

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyF4
	KeyF11
	KeyF12
	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeyKPPlus
	KeyKPMinus
	KeyShift
	KeyControl
	KeyLeftAlt
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	keyCount
)

type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRepeat
	KeyRelease
)

type KeyEvent struct {
	Key    int
	Action KeyAction
	Alt    bool
}

// LookMotion is a cursor offset in pixels from the window centre while dragging.
type LookMotion struct {
	X, Y float32
}

type InputModule struct{}

// Input collects the events of one frame. Callbacks fill it during
// glfw.PollEvents; it is reset at the start of every frame.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	KeyEvents   []KeyEvent
	LookMotions []LookMotion

	MouseX, MouseY float64
	// Dragging is true while a mouse button is held; motion then turns the camera.
	Dragging   bool
	skipMotion bool

	WindowWidth, WindowHeight int
}

// Key records a key transition as if it came from the window.
func (input *Input) Key(key int, action KeyAction, alt bool) {
	if key < 0 || key >= keyCount {
		return
	}
	switch action {
	case KeyPress:
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	case KeyRelease:
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
	input.KeyEvents = append(input.KeyEvents, KeyEvent{Key: key, Action: action, Alt: alt})
}

// BeginDrag starts mouse-look. The first motion after it is dropped because
// it reflects the cursor jump to the centre.
func (input *Input) BeginDrag() {
	input.Dragging = true
	input.skipMotion = true
}

func (input *Input) EndDrag() {
	input.Dragging = false
	input.skipMotion = false
}

// Motion records a cursor position and reports whether it produced a look
// offset, in which case the cursor belongs back at the centre.
func (input *Input) Motion(x, y float64) bool {
	input.MouseX, input.MouseY = x, y
	if !input.Dragging {
		return false
	}
	if input.skipMotion {
		input.skipMotion = false
		return false
	}

	dx := float32(x - float64(input.WindowWidth)/2)
	dy := float32(y - float64(input.WindowHeight)/2)
	if dx == 0 && dy == 0 {
		return false
	}
	input.LookMotions = append(input.LookMotions, LookMotion{X: dx, Y: dy})
	return true
}

func (input *Input) beginFrame() {
	input.JustPressed = [keyCount]bool{}
	input.JustReleased = [keyCount]bool{}
	input.KeyEvents = input.KeyEvents[:0]
	input.LookMotions = input.LookMotions[:0]
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	ws, ok := Resource[WindowState](app)
	if !ok {
		cmd.Fail(errors.New("input: no window; install PlatformWindowModule first"))
		return
	}

	input := &Input{}
	input.WindowWidth, input.WindowHeight = ws.WindowWidth, ws.WindowHeight
	cmd.AddResources(input)

	crosshair := glfw.CreateStandardCursor(glfw.CrosshairCursor)
	cmd.OnCleanup(crosshair.Destroy)
	registerInputCallbacks(ws, input, crosshair)

	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(windowControlSystem).
			InStage(PreUpdate),
	)
}

func registerInputCallbacks(s *WindowState, input *Input, crosshair *glfw.Cursor) {
	win := s.windowGlfw

	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k, ok := glfwToKey[key]
		if !ok {
			return
		}
		var a KeyAction
		switch action {
		case glfw.Press:
			a = KeyPress
		case glfw.Repeat:
			a = KeyRepeat
		default:
			a = KeyRelease
		}
		input.Key(k, a, mods&glfw.ModAlt != 0)
	})

	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := glfwToMouse[button]
		if !ok {
			return
		}
		if action == glfw.Press {
			input.Key(btn, KeyPress, false)
			input.BeginDrag()
			w.SetCursor(crosshair)
			w.SetCursorPos(float64(input.WindowWidth)/2, float64(input.WindowHeight)/2)
			return
		}
		input.Key(btn, KeyRelease, false)
		input.EndDrag()
		w.SetCursor(nil)
	})

	win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if input.Motion(x, y) {
			w.SetCursorPos(float64(input.WindowWidth)/2, float64(input.WindowHeight)/2)
		}
	})
}

func inputSystem(s *WindowState, input *Input) {
	input.beginFrame()
	input.WindowWidth, input.WindowHeight = s.WindowWidth, s.WindowHeight

	glfw.PollEvents()
}

// windowControlSystem handles quit and fullscreen.
func windowControlSystem(s *WindowState, input *Input, cmd *Commands) {
	if s.ShouldClose() {
		cmd.Exit()
		return
	}
	for _, ev := range input.KeyEvents {
		if ev.Action != KeyPress {
			continue
		}
		switch {
		case ev.Key == KeyEscape, ev.Key == KeyF4 && ev.Alt:
			cmd.Exit()
		case ev.Key == KeyF11:
			s.ToggleFullscreen()
		}
	}
}

var glfwToMouse = map[glfw.MouseButton]int{
	glfw.MouseButtonLeft:   MouseButtonLeft,
	glfw.MouseButtonRight:  MouseButtonRight,
	glfw.MouseButtonMiddle: MouseButtonMiddle,
}

var glfwToKey = map[glfw.Key]int{
	glfw.KeyA:           KeyA,
	glfw.KeyB:           KeyB,
	glfw.KeyC:           KeyC,
	glfw.KeyD:           KeyD,
	glfw.KeyE:           KeyE,
	glfw.KeyF:           KeyF,
	glfw.KeyG:           KeyG,
	glfw.KeyH:           KeyH,
	glfw.KeyI:           KeyI,
	glfw.KeyJ:           KeyJ,
	glfw.KeyK:           KeyK,
	glfw.KeyL:           KeyL,
	glfw.KeyM:           KeyM,
	glfw.KeyN:           KeyN,
	glfw.KeyO:           KeyO,
	glfw.KeyP:           KeyP,
	glfw.KeyQ:           KeyQ,
	glfw.KeyR:           KeyR,
	glfw.KeyS:           KeyS,
	glfw.KeyT:           KeyT,
	glfw.KeyU:           KeyU,
	glfw.KeyV:           KeyV,
	glfw.KeyW:           KeyW,
	glfw.KeyX:           KeyX,
	glfw.KeyY:           KeyY,
	glfw.KeyZ:           KeyZ,
	glfw.Key0:           Key0,
	glfw.Key1:           Key1,
	glfw.Key2:           Key2,
	glfw.Key3:           Key3,
	glfw.Key4:           Key4,
	glfw.Key5:           Key5,
	glfw.Key6:           Key6,
	glfw.Key7:           Key7,
	glfw.Key8:           Key8,
	glfw.Key9:           Key9,
	glfw.KeySpace:       KeySpace,
	glfw.KeyEnter:       KeyEnter,
	glfw.KeyEscape:      KeyEscape,
	glfw.KeyTab:         KeyTab,
	glfw.KeyRight:       KeyRight,
	glfw.KeyLeft:        KeyLeft,
	glfw.KeyDown:        KeyDown,
	glfw.KeyUp:          KeyUp,
	glfw.KeyPageUp:      KeyPageUp,
	glfw.KeyPageDown:    KeyPageDown,
	glfw.KeyF4:          KeyF4,
	glfw.KeyF11:         KeyF11,
	glfw.KeyF12:         KeyF12,
	glfw.KeyMinus:       KeyMinus,
	glfw.KeyEqual:       KeyEqual,
	glfw.KeyComma:       KeyComma,
	glfw.KeyPeriod:      KeyPeriod,
	glfw.KeyKPAdd:       KeyKPPlus,
	glfw.KeyKPSubtract:  KeyKPMinus,
	glfw.KeyLeftShift:   KeyShift,
	glfw.KeyLeftControl: KeyControl,
	glfw.KeyLeftAlt:     KeyLeftAlt,
}
