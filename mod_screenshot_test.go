package lamproom

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

// bottomUpFrame is a 4x2 framebuffer: the bottom row (row 0) green, the top row red.
func bottomUpFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{0, 255, 0, 255})
		img.SetRGBA(x, 1, color.RGBA{255, 0, 0, 255})
	}
	return img
}

func decodeWebP(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := webp.Decode(f)
	require.NoError(t, err)
	return img
}

func TestSaveScreenshot_WritesUprightWebP(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2026, 10, 19, 12, 30, 5, 0, time.UTC)
	frame := bottomUpFrame()

	path, err := SaveScreenshot(frame, dir, 1, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lamproom-20261019-123005.000.webp"), path)

	img := decodeWebP(t, path)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	r, g, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r, "top of the file is the top of the frame")
	assert.Zero(t, g)

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, frame.RGBAAt(0, 0), "the frame is not modified")
}

func TestSaveScreenshot_Scales(t *testing.T) {
	path, err := SaveScreenshot(bottomUpFrame(), t.TempDir(), 0.5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), decodeWebP(t, path).Bounds())
}

func TestSaveScreenshot_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := SaveScreenshot(bottomUpFrame(), filepath.Join(file, "sub"), 1, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screenshot:")
}

type failingCloser struct {
	bytes.Buffer
}

func (failingCloser) Close() error { return errors.New("disk full") }

func TestSaveScreenshot_ReportsCloseError(t *testing.T) {
	create := createScreenshotFile
	t.Cleanup(func() { createScreenshotFile = create })
	var written *failingCloser
	createScreenshotFile = func(string) (io.WriteCloser, error) {
		written = &failingCloser{}
		return written, nil
	}

	_, err := SaveScreenshot(bottomUpFrame(), t.TempDir(), 1, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screenshot: close")
	assert.Contains(t, err.Error(), "disk full")
	assert.NotZero(t, written.Len(), "the image was encoded before closing")
}
