package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is the part of the graphics context the composer drives.
// Uniforms are addressed by name and apply to the next draw.
type Renderer interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, m mgl32.Mat4)
	BindTexture(unit uint32, texture AssetId)
	MeshCount(model AssetId) int
	DrawMesh(model AssetId, mesh int, modelView mgl32.Mat4)
}

// Scene is the fixed content drawn every frame. Objects are drawn in order.
type Scene struct {
	Directional DirectionalLight
	Objects     []ObjectDef
}

// Draw issues one frame: view matrix, lights, then every object with its
// material set immediately before its draw.
func (s *Scene) Draw(state *SceneState, r Renderer) {
	r.SetMat4("matrixView", state.Camera.View)

	directional := s.Directional
	directional.On = state.DirectionalOn
	directional.Apply(r)

	for i, lamp := range state.Lamps {
		lamp.Light.Apply(r, i)
	}

	for i := range s.Objects {
		drawObject(&s.Objects[i], state, r)
	}
}

func drawObject(obj *ObjectDef, state *SceneState, r Renderer) {
	material := obj.Material
	if obj.Emission != nil && obj.Emission.Lamp >= 0 && obj.Emission.Lamp < len(state.Lamps) {
		light := state.Lamps[obj.Emission.Lamp].Light
		material.Emissive = light.Diffuse.Mul(max(light.DiffuseStrength, MinEmissionStrength))
	}
	material.Apply(r)

	modelView := state.Camera.View.Mul4(obj.ModelMatrix(state.Elapsed))

	if obj.Mesh.Only {
		r.DrawMesh(obj.Model, obj.Mesh.Index, modelView)
		return
	}
	for i := 0; i < r.MeshCount(obj.Model); i++ {
		r.DrawMesh(obj.Model, i, modelView)
	}
}
