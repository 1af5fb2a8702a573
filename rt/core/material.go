package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AssetId identifies a loaded model or texture.
type AssetId string

// Builtin asset ids. They never collide with generated ids.
const (
	WhiteTexture      AssetId = "builtin:texture/white"
	BlackTexture      AssetId = "builtin:texture/black"
	GrayTexture       AssetId = "builtin:texture/gray"
	FlatNormalTexture AssetId = "builtin:texture/flat-normal"

	PyramidModelId AssetId = "builtin:model/pyramid"
	TeapotModelId  AssetId = "builtin:model/teapot"
)

// PlaceholderTextures are the 1x1 RGBA textures every renderer creates at startup.
var PlaceholderTextures = map[AssetId][4]uint8{
	WhiteTexture:      {255, 255, 255, 255},
	BlackTexture:      {0, 0, 0, 0},
	GrayTexture:       {127, 127, 127, 255},
	FlatNormalTexture: {128, 128, 255, 255},
}

const (
	DiffuseTextureUnit = 0
	NormalTextureUnit  = 1
)

type Material struct {
	Ambient        mgl32.Vec3
	Diffuse        mgl32.Vec3
	Shininess      float32
	Emissive       mgl32.Vec3
	DiffuseTexture AssetId // empty means WhiteTexture
	NormalTexture  AssetId // empty means FlatNormalTexture
}

func DefaultMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{1, 1, 1},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Shininess: 10,
	}
}

// Apply uploads the material and binds its textures.
func (m Material) Apply(r Renderer) {
	r.SetVec3("material.ambient", m.Ambient)
	r.SetVec3("material.diffuse", m.Diffuse)
	r.SetFloat("material.shininess", m.Shininess)
	r.SetVec3("material.emissive", m.Emissive)

	diffuse := m.DiffuseTexture
	if diffuse == "" {
		diffuse = WhiteTexture
	}
	normal := m.NormalTexture
	if normal == "" {
		normal = FlatNormalTexture
	}

	r.BindTexture(DiffuseTextureUnit, diffuse)
	r.SetInt("material.diffuseTexture", DiffuseTextureUnit)
	r.BindTexture(NormalTextureUnit, normal)
	r.SetInt("material.normalTexture", NormalTextureUnit)
}
