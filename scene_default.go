package lamproom

import (
	"github.com/gekko3d/lamproom/rt/core"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef defines the initial state of a scene. Model and texture fields are
// paths relative to the asset directory, or builtin asset ids.
type SceneDef struct {
	Lamps       []core.LampDef
	Palette     core.Palette
	Presets     []core.LightPreset
	Directional core.DirectionalLight
	Objects     []ObjectPlacement

	// Preload lists models loaded at startup but not placed.
	Preload []string
}

// ObjectPlacement places one model in the scene.
type ObjectPlacement struct {
	Name     string
	Model    string
	Position mgl32.Vec3
	Rotation core.Rotation
	Scale    float32
	Mesh     core.MeshSelector
	Material MaterialDef
	// EmitsLamp ties the emissive colour to a lamp index; -1 or nil means none.
	EmitsLamp *int
}

type MaterialDef struct {
	Ambient        mgl32.Vec3
	Diffuse        mgl32.Vec3
	Shininess      float32
	DiffuseTexture string
	NormalTexture  string
}

func lampIndex(i int) *int { return &i }

var (
	chairMaterial = MaterialDef{
		Ambient:        mgl32.Vec3{1, 1, 1},
		Diffuse:        mgl32.Vec3{1, 1, 1},
		Shininess:      10,
		DiffuseTexture: "chair_albedo.jpg",
		NormalTexture:  "chair_normal.png",
	}
	tableMaterial = MaterialDef{
		Ambient:        mgl32.Vec3{1, 1, 1},
		Diffuse:        mgl32.Vec3{1, 1, 1},
		Shininess:      10,
		DiffuseTexture: "table_albedo.jpg",
		NormalTexture:  "table_normal.png",
	}
	lampMaterial = MaterialDef{
		Ambient:   mgl32.Vec3{0.8, 0.8, 0.2},
		Diffuse:   mgl32.Vec3{0.4, 0.4, 0.2},
		Shininess: 1,
	}
	// bulbs are lit only by their emissive term
	bulbMaterial = MaterialDef{Shininess: 10}
	vaseMaterial = MaterialDef{
		Ambient:   mgl32.Vec3{0, 1, 0},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.6},
		Shininess: 50,
	}
	dinoMaterial = MaterialDef{
		Ambient:   mgl32.Vec3{1, 1, 0},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.6},
		Shininess: 50,
	}
	teapotMaterial = MaterialDef{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.8},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.6},
		Shininess: 50,
	}
	pyramidMaterial = MaterialDef{
		Ambient:   mgl32.Vec3{1, 0, 0},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.6},
		Shininess: 50,
	}
)

// LampRoom is the furnished room: four chairs around a table, two desk lamps
// with bulbs, a vase, a spinning dinosaur and teapot, and a pyramid.
func LampRoom() SceneDef {
	const (
		furnitureScale = 0.004
		lampScale      = 0.025
		bulbScale      = 0.25
		spin           = 200 // degrees per second
	)

	return SceneDef{
		Lamps: []core.LampDef{
			{
				Position: mgl32.Vec3{-2.57, 4.05, 5}, On: true, Duration: 1, ColorIndex: 0,
				Intensity: 1, SpecularPower: 500, Radius: 1.3, Cutoff: 0.005,
			},
			{
				Position: mgl32.Vec3{0.365, 4.05, 6}, On: true, Duration: 1, ColorIndex: 1,
				Intensity: 1, SpecularPower: 500, Radius: 1.3, Cutoff: 0.005,
			},
		},
		Palette:     core.DefaultPalette,
		Presets:     core.DefaultPresets,
		Directional: core.DefaultDirectionalLight(),
		Objects: []ObjectPlacement{
			{Name: "chair 1", Model: "table.obj", Position: mgl32.Vec3{0, 0, 5.5}, Rotation: core.Yaw(180), Scale: furnitureScale, Mesh: core.OnlyMesh(0), Material: chairMaterial},
			{Name: "chair 2", Model: "table.obj", Position: mgl32.Vec3{0.5, 0, 5}, Rotation: core.Yaw(90), Scale: furnitureScale, Mesh: core.OnlyMesh(0), Material: chairMaterial},
			{Name: "chair 3", Model: "table.obj", Position: mgl32.Vec3{0, 0, 4.5}, Rotation: core.Yaw(0), Scale: furnitureScale, Mesh: core.OnlyMesh(0), Material: chairMaterial},
			{Name: "chair 4", Model: "table.obj", Position: mgl32.Vec3{-0.5, 0, 5}, Rotation: core.Yaw(270), Scale: furnitureScale, Mesh: core.OnlyMesh(0), Material: chairMaterial},
			{Name: "table", Model: "table.obj", Position: mgl32.Vec3{0, 0, 5}, Rotation: core.Yaw(0), Scale: furnitureScale, Mesh: core.OnlyMesh(1), Material: tableMaterial},

			{Name: "lamp 1", Model: "lamp.obj", Position: mgl32.Vec3{-2, 3.045, 4}, Rotation: core.Yaw(60), Scale: lampScale, Material: lampMaterial},
			{Name: "bulb 1", Model: "Lightbulb.obj", Position: mgl32.Vec3{-2.57, 4.05, 5}, Rotation: core.EulerYZX(0, 60, 155), Scale: bulbScale, Material: bulbMaterial, EmitsLamp: lampIndex(0)},
			{Name: "lamp 2", Model: "lamp.obj", Position: mgl32.Vec3{1.5, 3.045, 6}, Rotation: core.Yaw(0), Scale: lampScale, Material: lampMaterial},
			{Name: "bulb 2", Model: "Lightbulb.obj", Position: mgl32.Vec3{0.365, 4.05, 6}, Rotation: core.AxisAngle(155, mgl32.Vec3{0, 0, 1}), Scale: bulbScale, Material: bulbMaterial, EmitsLamp: lampIndex(1)},

			{Name: "vase", Model: "vase.obj", Position: mgl32.Vec3{0, 3, 5}, Rotation: core.Yaw(0), Scale: 0.1, Material: vaseMaterial},
			{Name: "dinosaur", Model: "Dinosaur_V02.obj", Position: mgl32.Vec3{-0.5, 3.735, 4}, Rotation: core.Spinning(spin), Scale: 0.005, Material: dinoMaterial},
			{Name: "teapot", Model: string(core.TeapotModelId), Position: mgl32.Vec3{1.2, 3.3, 5.15}, Rotation: core.Spinning(-spin), Scale: 0.4, Material: teapotMaterial},
			{Name: "pyramid", Model: string(core.PyramidModelId), Position: mgl32.Vec3{-0.5, 3.735, 4}, Rotation: core.Spinning(spin), Scale: -0.1, Material: pyramidMaterial},
		},
		Preload: []string{"LivingRoom.obj"},
	}
}
