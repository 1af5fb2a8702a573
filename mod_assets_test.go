package lamproom

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/lamproom/rt/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadObj = `o seat
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
o back
v 0 0 1
v 1 0 1
v 0 1 1
f 5 6 7
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writePNG writes a 1x2 image: red on top, blue below.
func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestAssetServer_LoadModelOneMeshPerGroup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chair.obj", quadObj)
	server := NewAssetServer(dir)

	id, err := server.LoadModel("chair.obj")
	require.NoError(t, err)

	model, ok := server.Model(id)
	require.True(t, ok)
	assert.Equal(t, "chair.obj", model.Name)
	require.Len(t, model.Meshes, 2)
	assert.Equal(t, "seat", model.Meshes[0].Name)
	assert.Equal(t, 6, len(model.Meshes[0].Indices))
	assert.Equal(t, "back", model.Meshes[1].Name)
	assert.Equal(t, 3, model.Meshes[1].VertexCount())
}

func TestAssetServer_LoadsEachPathOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chair.obj", quadObj)
	server := NewAssetServer(dir)

	first, err := server.LoadModel("chair.obj")
	require.NoError(t, err)
	second, err := server.LoadModel(filepath.Join(dir, "chair.obj"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	models, _ := server.TakePending()
	assert.Equal(t, []AssetId{first}, models)
}

func TestAssetServer_LoadModelErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.obj", "v 0 0 0\n")
	writeFile(t, dir, "broken.obj", "v 0 0 0\nf 1 2 3\n")
	server := NewAssetServer(dir)

	_, err := server.LoadModel("missing.obj")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "asset: load model")

	_, err = server.LoadModel("empty.obj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no faces")

	_, err = server.LoadModel("broken.obj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestAssetServer_LoadTextureFlipsRows(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "albedo.png")
	server := NewAssetServer(dir)

	id, err := server.LoadTexture("albedo.png")
	require.NoError(t, err)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 1, 2), tex.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, tex.RGBAAt(0, 0), "row 0 is the bottom row")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, tex.RGBAAt(0, 1))
}

func TestAssetServer_LoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.png", "not an image")
	server := NewAssetServer(dir)

	_, err := server.LoadTexture("nope.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asset: load texture")

	_, err = server.LoadTexture("notes.png")
	require.ErrorIs(t, err, image.ErrFormat)
}

func TestAssetServer_TakePendingClears(t *testing.T) {
	server := NewAssetServer("")
	server.AddModel("b", &core.Model{})
	server.AddModel("a", &core.Model{})
	tex := server.CreateTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)))

	models, textures := server.TakePending()
	assert.Equal(t, []AssetId{"a", "b"}, models)
	assert.Equal(t, []AssetId{tex}, textures)

	models, textures = server.TakePending()
	assert.Empty(t, models)
	assert.Empty(t, textures)
}

func TestAssetServerModule_RegistersBuiltinModels(t *testing.T) {
	app := NewApp().UseModules(AssetServerModule{Root: "models"})

	server, ok := Resource[AssetServer](app)
	require.True(t, ok)
	assert.Equal(t, "models", server.Root)

	pyramid, ok := server.Model(core.PyramidModelId)
	require.True(t, ok)
	assert.Len(t, pyramid.Meshes, 1)

	teapot, ok := server.Model(core.TeapotModelId)
	require.True(t, ok)
	assert.Len(t, teapot.Meshes, 1)
}

func TestFlipVertical_OddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{uint8(y), 0, 0, 255})
	}
	flipVertical(img)
	for y := 0; y < 3; y++ {
		assert.Equal(t, uint8(2-y), img.RGBAAt(0, y).R)
	}
}
