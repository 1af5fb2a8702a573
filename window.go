package lamproom

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the GLFW window with its current OpenGL 4.1 core context.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string

	FramebufferWidth  int
	FramebufferHeight int
	// Resized is set when the framebuffer size changed; the render module clears it.
	Resized bool

	fullscreen bool
	windowed   [4]int // x, y, width, height before going fullscreen
}

func createWindowState(cfg WindowConfig, vsync bool) (*WindowState, error) {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create %dx%d: %w", cfg.Width, cfg.Height, err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	s := &WindowState{
		windowGlfw:   win,
		WindowWidth:  cfg.Width,
		WindowHeight: cfg.Height,
		windowTitle:  cfg.Title,
		Resized:      true,
	}
	s.FramebufferWidth, s.FramebufferHeight = win.GetFramebufferSize()

	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		s.FramebufferWidth, s.FramebufferHeight = width, height
		s.Resized = true
	})
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		s.WindowWidth, s.WindowHeight = width, height
	})
	return s, nil
}

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

func (s *WindowState) SwapBuffers() {
	s.windowGlfw.SwapBuffers()
}

func (s *WindowState) Fullscreen() bool {
	return s.fullscreen
}

// ToggleFullscreen switches between the primary monitor and the previous windowed placement.
func (s *WindowState) ToggleFullscreen() {
	win := s.windowGlfw
	if s.fullscreen {
		w := s.windowed
		win.SetMonitor(nil, w[0], w[1], w[2], w[3], 0)
		s.fullscreen = false
		return
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	x, y := win.GetPos()
	s.windowed = [4]int{x, y, s.WindowWidth, s.WindowHeight}
	win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	s.fullscreen = true
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}
