package lamproom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  *bool  `json:"vsync,omitempty"`
}

// Config holds the window, asset and optional feature settings.
type Config struct {
	Window WindowConfig `json:"window"`

	AssetDir string `json:"asset_dir"`
	Debug    bool   `json:"debug"`
	Audio    bool   `json:"audio"`

	ScreenshotDir   string  `json:"screenshot_dir"`
	ScreenshotScale float64 `json:"screenshot_scale"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir      string
	Width         int
	Height        int
	Debug         bool
	Audio         bool
	ScreenshotDir string
}

const (
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultTitle         = "lamproom"
	DefaultAssetDir      = "models"
	DefaultScreenshotDir = "."
)

// LoadConfig reads a JSON config file. An empty path yields the zero Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies non-zero flags over the file values, then fills defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.Width > 0 {
		c.Window.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Window.Height = flags.Height
	}
	if flags.Debug {
		c.Debug = true
	}
	if flags.Audio {
		c.Audio = true
	}
	if flags.ScreenshotDir != "" {
		c.ScreenshotDir = flags.ScreenshotDir
	}

	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.VSync == nil {
		vsync := true
		c.Window.VSync = &vsync
	}
	if c.AssetDir == "" {
		c.AssetDir = DefaultAssetDir
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
	if c.ScreenshotScale == 0 {
		c.ScreenshotScale = 1
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height))
	}
	if c.ScreenshotScale < 0 {
		errs = append(errs, fmt.Errorf("screenshot scale %v is negative", c.ScreenshotScale))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c Config) VSyncEnabled() bool {
	return c.Window.VSync == nil || *c.Window.VSync
}
