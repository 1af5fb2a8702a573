package lamproom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gekko3d/lamproom/rt/core"
)

// SceneModule loads a SceneDef at startup and advances its state every frame.
// Any asset that fails to load aborts startup.
type SceneModule struct {
	Def SceneDef
}

func (mod SceneModule) Install(app *App, cmd *Commands) {
	assets, ok := Resource[AssetServer](app)
	if !ok {
		cmd.Fail(errors.New("scene: no asset server; install AssetServerModule first"))
		return
	}

	scene, state, err := LoadScene(assets, mod.Def)
	if err != nil {
		cmd.Fail(err)
		return
	}
	cmd.AddResources(scene, state)
	cmd.Logger().Infof("scene: %d objects, %d lamps", len(scene.Objects), len(state.Lamps))

	app.UseSystem(
		System(advanceSceneSystem).
			InStage(PostUpdate),
	)
}

// LoadScene loads every model and texture the definition names and builds
// the drawable scene with its initial state.
func LoadScene(assets *AssetServer, def SceneDef) (*core.Scene, *core.SceneState, error) {
	for _, path := range def.Preload {
		if _, err := assets.LoadModel(path); err != nil {
			return nil, nil, fmt.Errorf("scene: %w", err)
		}
	}

	scene := &core.Scene{Directional: def.Directional}
	for _, placement := range def.Objects {
		obj, err := resolvePlacement(assets, placement)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: %s: %w", placement.Name, err)
		}
		scene.Objects = append(scene.Objects, obj)
	}

	lamps := make([]*core.LampLight, 0, len(def.Lamps))
	for _, lampDef := range def.Lamps {
		lamps = append(lamps, core.NewLampLight(lampDef, def.Palette))
	}

	state := core.NewSceneState(core.DefaultCamera(), lamps)
	if def.Presets != nil {
		state.Presets = def.Presets
	}
	state.DirectionalOn = def.Directional.On

	// First evaluation with the active preset.
	for _, lamp := range lamps {
		lamp.Advance(0, state.Preset())
	}
	return scene, state, nil
}

func resolvePlacement(assets *AssetServer, p ObjectPlacement) (core.ObjectDef, error) {
	model, err := resolveModel(assets, p.Model)
	if err != nil {
		return core.ObjectDef{}, err
	}

	material := core.Material{
		Ambient:   p.Material.Ambient,
		Diffuse:   p.Material.Diffuse,
		Shininess: p.Material.Shininess,
	}
	if material.DiffuseTexture, err = resolveTexture(assets, p.Material.DiffuseTexture); err != nil {
		return core.ObjectDef{}, err
	}
	if material.NormalTexture, err = resolveTexture(assets, p.Material.NormalTexture); err != nil {
		return core.ObjectDef{}, err
	}

	obj := core.ObjectDef{
		Name:     p.Name,
		Model:    model,
		Position: p.Position,
		Rotation: p.Rotation,
		Scale:    p.Scale,
		Mesh:     p.Mesh,
		Material: material,
	}
	if p.EmitsLamp != nil && *p.EmitsLamp >= 0 {
		obj.Emission = &core.Emission{Lamp: *p.EmitsLamp}
	}
	return obj, nil
}

func isBuiltin(ref string) bool {
	return strings.HasPrefix(ref, "builtin:")
}

func resolveModel(assets *AssetServer, ref string) (AssetId, error) {
	if isBuiltin(ref) {
		if _, ok := assets.Model(AssetId(ref)); !ok {
			return "", fmt.Errorf("unknown builtin model %s", ref)
		}
		return AssetId(ref), nil
	}
	return assets.LoadModel(ref)
}

// resolveTexture returns "" for an empty reference so the material falls
// back to its placeholder.
func resolveTexture(assets *AssetServer, ref string) (AssetId, error) {
	if ref == "" {
		return "", nil
	}
	if isBuiltin(ref) {
		if _, ok := core.PlaceholderTextures[AssetId(ref)]; !ok {
			return "", fmt.Errorf("unknown builtin texture %s", ref)
		}
		return AssetId(ref), nil
	}
	return assets.LoadTexture(ref)
}

func advanceSceneSystem(t *Time, state *core.SceneState) {
	state.Advance(t.Seconds())
}
