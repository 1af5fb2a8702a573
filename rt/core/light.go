package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is the shader-side representation of a lamp.
type PointLight struct {
	On              bool
	Position        mgl32.Vec3
	Ambient         mgl32.Vec3
	Diffuse         mgl32.Vec3
	DiffuseStrength float32
	Specular        mgl32.Vec3
	SpecularPower   float32
	Radius          float32 // falloff distance
	Cutoff          float32 // attenuation below which the light is ignored
}

// Apply uploads the light into lightPoint[index].
func (l PointLight) Apply(r Renderer, index int) {
	name := fmt.Sprintf("lightPoint[%d].", index)
	r.SetInt(name+"on", boolToInt(l.On))
	r.SetVec3(name+"ambient", l.Ambient)
	r.SetVec3(name+"position", l.Position)
	r.SetVec3(name+"diffuse", l.Diffuse)
	r.SetFloat(name+"diffuseStrength", l.DiffuseStrength)
	r.SetVec3(name+"specular", l.Specular)
	r.SetFloat(name+"specularPower", l.SpecularPower)
	r.SetFloat(name+"radius", l.Radius)
	r.SetFloat(name+"cutoff", l.Cutoff)
}

type DirectionalLight struct {
	On              bool
	Direction       mgl32.Vec3
	Ambient         mgl32.Vec3
	Diffuse         mgl32.Vec3
	DiffuseStrength float32
	Specular        mgl32.Vec3
	SpecularPower   float32
}

// DefaultDirectionalLight is the dim white fill light shining from above and behind the camera.
func DefaultDirectionalLight() DirectionalLight {
	return DirectionalLight{
		On:              true,
		Direction:       mgl32.Vec3{0, 2, 1}.Normalize(),
		Diffuse:         mgl32.Vec3{1, 1, 1},
		DiffuseStrength: 0.2,
		Specular:        mgl32.Vec3{0.7, 0.7, 0.7},
		SpecularPower:   800,
	}
}

func (l DirectionalLight) Apply(r Renderer) {
	r.SetInt("lightDirectional.on", boolToInt(l.On))
	r.SetVec3("lightDirectional.ambient", l.Ambient)
	r.SetVec3("lightDirectional.direction", l.Direction)
	r.SetVec3("lightDirectional.diffuse", l.Diffuse)
	r.SetFloat("lightDirectional.diffuseStrength", l.DiffuseStrength)
	r.SetVec3("lightDirectional.specular", l.Specular)
	r.SetFloat("lightDirectional.specularPower", l.SpecularPower)
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
