package lamproom

import (
	"reflect"
)

// PlatformWindowModule ensures a single shared GLFW window (WindowState) is created
// and made available as a resource for the renderer and input modules.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Window WindowConfig
	VSync  bool
}

// NewPlatformWindow creates the window module from resolved config.
func NewPlatformWindow(cfg Config) PlatformWindowModule {
	window := cfg.Window
	if window.Width <= 0 {
		window.Width = DefaultWidth
	}
	if window.Height <= 0 {
		window.Height = DefaultHeight
	}
	if window.Title == "" {
		window.Title = DefaultTitle
	}
	return PlatformWindowModule{
		Window: window,
		VSync:  cfg.VSyncEnabled(),
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if app.hasResource(reflect.TypeFor[WindowState]()) {
		return
	}

	ws, err := createWindowState(m.Window, m.VSync)
	if err != nil {
		cmd.Fail(err)
		return
	}
	cmd.AddResources(ws)
	cmd.OnCleanup(ws.destroy)

	cmd.Logger().Infof("window %dx%d %q, framebuffer %dx%d",
		ws.WindowWidth, ws.WindowHeight, ws.windowTitle, ws.FramebufferWidth, ws.FramebufferHeight)
}
