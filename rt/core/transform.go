package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type RotationKind int

const (
	RotateAxis RotationKind = iota
	RotateEuler
)

// Rotation is either an axis-angle (optionally spinning over time) or an
// Euler triple in degrees applied in y, z, x order.
type Rotation struct {
	Kind  RotationKind
	Angle float32    // degrees
	Axis  mgl32.Vec3 // zero means +Y
	Spin  float32    // degrees per second added to Angle
	Euler mgl32.Vec3
}

func AxisAngle(degrees float32, axis mgl32.Vec3) Rotation {
	return Rotation{Kind: RotateAxis, Angle: degrees, Axis: axis}
}

// Yaw rotates about +Y.
func Yaw(degrees float32) Rotation {
	return Rotation{Kind: RotateAxis, Angle: degrees}
}

// Spinning rotates about +Y continuously.
func Spinning(degreesPerSecond float32) Rotation {
	return Rotation{Kind: RotateAxis, Spin: degreesPerSecond}
}

func EulerYZX(x, y, z float32) Rotation {
	return Rotation{Kind: RotateEuler, Euler: mgl32.Vec3{x, y, z}}
}

// Matrix returns the rotation at elapsed seconds since start.
func (r Rotation) Matrix(elapsed float32) mgl32.Mat4 {
	if r.Kind == RotateEuler {
		return mgl32.HomogRotate3DY(mgl32.DegToRad(r.Euler.Y())).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(r.Euler.Z()))).
			Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(r.Euler.X())))
	}

	axis := r.Axis
	if axis.Len() == 0 {
		axis = mgl32.Vec3{0, 1, 0}
	} else {
		axis = axis.Normalize()
	}

	angle := r.Angle
	if r.Spin != 0 {
		angle += float32(math.Mod(float64(r.Spin)*float64(elapsed), 360))
	}
	return mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis)
}

// MeshSelector picks which meshes of a model an object draws.
// The zero value draws all of them.
type MeshSelector struct {
	Only  bool
	Index int
}

var AllMeshes = MeshSelector{}

func OnlyMesh(index int) MeshSelector {
	return MeshSelector{Only: true, Index: index}
}

// Emission ties an object's emissive colour to a lamp's current output.
type Emission struct {
	Lamp int
}

// MinEmissionStrength keeps a switched-off bulb faintly visible.
const MinEmissionStrength = 0.1

// ObjectDef is one drawable placement in the scene.
type ObjectDef struct {
	Name     string
	Model    AssetId
	Position mgl32.Vec3
	Rotation Rotation
	Scale    float32 // uniform; 0 means 1, negative mirrors
	Mesh     MeshSelector
	Material Material
	Emission *Emission
}

// ModelMatrix is T(position) R S(scale).
func (o ObjectDef) ModelMatrix(elapsed float32) mgl32.Mat4 {
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}
	return mgl32.Translate3D(o.Position.Elem()).
		Mul4(o.Rotation.Matrix(elapsed)).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
