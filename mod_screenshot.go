package lamproom

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gekko3d/lamproom/rt/opengl"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// ScreenshotModule saves the back buffer as WebP when F12 is pressed.
// Failures are logged and the frame goes on.
type ScreenshotModule struct {
	Dir   string
	Scale float64
}

type screenshotSettings struct {
	Dir   string
	Scale float64
}

func (mod ScreenshotModule) Install(app *App, cmd *Commands) {
	dir := mod.Dir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	cmd.AddResources(&screenshotSettings{Dir: dir, Scale: mod.Scale})
	app.UseSystem(
		System(screenshotSystem).
			InStage(PostRender),
	)
}

func screenshotSystem(input *Input, r *opengl.Renderer, settings *screenshotSettings, cmd *Commands) {
	for _, ev := range input.KeyEvents {
		if ev.Key != KeyF12 || ev.Action != KeyPress {
			continue
		}
		path, err := SaveScreenshot(r.ReadPixels(), settings.Dir, settings.Scale, time.Now())
		if err != nil {
			cmd.Logger().Errorf("%v", err)
			return
		}
		cmd.Logger().Infof("screenshot: %s", path)
		return
	}
}

// SaveScreenshot writes a bottom-up framebuffer image to
// dir/lamproom-<timestamp>.webp, scaled by scale, and returns the path.
func SaveScreenshot(pixels *image.RGBA, dir string, scale float64, at time.Time) (string, error) {
	img := image.NewRGBA(pixels.Bounds())
	copy(img.Pix, pixels.Pix)
	flipVertical(img)

	var out image.Image = img
	if scale > 0 && scale != 1 {
		out = scaleImage(img, scale)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("lamproom-%s.webp", at.Format("20060102-150405.000")))

	f, err := createScreenshotFile(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	if err := nativewebp.Encode(f, out, nil); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("screenshot: close %s: %w", path, err)
	}
	return path, nil
}

var createScreenshotFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func scaleImage(img *image.RGBA, scale float64) *image.RGBA {
	b := img.Bounds()
	w := max(int(float64(b.Dx())*scale+0.5), 1)
	h := max(int(float64(b.Dy())*scale+0.5), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
