package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/lamproom"
)

func init() {
	// GLFW and OpenGL must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	assetDir := flag.String("assets", "", "Directory holding models and textures (default: models)")
	width := flag.Int("width", 0, "Window width (default: 800)")
	height := flag.Int("height", 0, "Window height (default: 600)")
	debug := flag.Bool("debug", false, "Log lamp and preset changes")
	audio := flag.Bool("audio", false, "Play a click when a lamp is switched")
	shots := flag.String("shots", "", "Directory for F12 screenshots (default: .)")

	flag.Parse()

	cfg, err := lamproom.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(lamproom.Flags{
		AssetDir:      *assetDir,
		Width:         *width,
		Height:        *height,
		Debug:         *debug,
		Audio:         *audio,
		ScreenshotDir: *shots,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := lamproom.NewAppBuilder().
		UseModule(
			lamproom.LoggingModule{Debug: cfg.Debug},
			lamproom.NewPlatformWindow(cfg),
			lamproom.TimeModule{},
			lamproom.InputModule{},
			lamproom.AssetServerModule{Root: cfg.AssetDir},
			lamproom.SceneModule{Def: lamproom.LampRoom()},
			lamproom.RenderModule{},
			lamproom.CameraModule{},
			lamproom.LampsModule{},
			lamproom.AudioModule{Enabled: cfg.Audio},
			lamproom.ScreenshotModule{Dir: cfg.ScreenshotDir, Scale: cfg.ScreenshotScale},
		).
		Build()

	if err := app.Run(); err != nil {
		app.Logger().Errorf("%v", err)
		os.Exit(1)
	}
}
