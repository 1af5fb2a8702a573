package lamproom

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/gekko3d/lamproom/rt/core"
	"github.com/gekko3d/lamproom/rt/wavefront"

	_ "github.com/ftrvxmtrx/tga"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type AssetId = core.AssetId

// AssetServer holds CPU-side models and textures by id. Paths are resolved
// against Root and each path is loaded once.
type AssetServer struct {
	Root string

	models   map[AssetId]*core.Model
	textures map[AssetId]*image.RGBA
	byPath   map[string]AssetId

	// ids loaded since the renderer last took them
	pendingModels   []AssetId
	pendingTextures []AssetId
}

type AssetServerModule struct {
	Root string
}

func NewAssetServer(root string) *AssetServer {
	return &AssetServer{
		Root:     root,
		models:   make(map[AssetId]*core.Model),
		textures: make(map[AssetId]*image.RGBA),
		byPath:   make(map[string]AssetId),
	}
}

func (m AssetServerModule) Install(app *App, cmd *Commands) {
	server := NewAssetServer(m.Root)
	server.AddModel(core.PyramidModelId, core.PyramidModel())
	server.AddModel(core.TeapotModelId, core.TeapotModel())
	cmd.AddResources(server)
}

func (server *AssetServer) resolve(path string) string {
	if filepath.IsAbs(path) || server.Root == "" {
		return path
	}
	return filepath.Join(server.Root, path)
}

// LoadModel parses an OBJ file into one mesh per group.
func (server *AssetServer) LoadModel(path string) (AssetId, error) {
	full := server.resolve(path)
	if id, ok := server.byPath[full]; ok {
		return id, nil
	}

	obj, err := wavefront.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("asset: load model %s: %w", full, err)
	}
	if len(obj.Groups) == 0 {
		return "", fmt.Errorf("asset: load model %s: no faces", full)
	}

	model := &core.Model{Name: filepath.Base(path)}
	for _, g := range obj.Groups {
		model.Meshes = append(model.Meshes, core.Mesh{
			Name:      g.Name,
			Positions: g.Positions,
			Normals:   g.Normals,
			UVs:       g.UVs,
			Indices:   g.Indices,
		})
	}

	id := makeAssetId()
	server.AddModel(id, model)
	server.byPath[full] = id
	return id, nil
}

// LoadTexture decodes a PNG, JPEG, TGA or WebP file into bottom-up RGBA.
func (server *AssetServer) LoadTexture(path string) (AssetId, error) {
	full := server.resolve(path)
	if id, ok := server.byPath[full]; ok {
		return id, nil
	}

	raw, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("asset: load texture %s: %w", full, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("asset: decode texture %s: %w", full, err)
	}

	id := server.CreateTexture(toTextureRGBA(img))
	server.byPath[full] = id
	return id, nil
}

func (server *AssetServer) AddModel(id AssetId, model *core.Model) {
	server.models[id] = model
	server.pendingModels = append(server.pendingModels, id)
}

// CreateTexture registers an image already in bottom-up row order.
func (server *AssetServer) CreateTexture(img *image.RGBA) AssetId {
	id := makeAssetId()
	server.textures[id] = img
	server.pendingTextures = append(server.pendingTextures, id)
	return id
}

func (server *AssetServer) Model(id AssetId) (*core.Model, bool) {
	m, ok := server.models[id]
	return m, ok
}

func (server *AssetServer) Texture(id AssetId) (*image.RGBA, bool) {
	t, ok := server.textures[id]
	return t, ok
}

// TakePending returns the ids loaded since the last call, sorted.
func (server *AssetServer) TakePending() (models, textures []AssetId) {
	models, textures = server.pendingModels, server.pendingTextures
	server.pendingModels, server.pendingTextures = nil, nil
	slices.Sort(models)
	slices.Sort(textures)
	return models, textures
}

// toTextureRGBA converts img to RGBA with row 0 at the bottom, the order GL expects.
func toTextureRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	flipVertical(dst)
	return dst
}

func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Bounds().Dx()*4)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+len(row)]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+len(row)]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
