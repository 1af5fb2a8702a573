package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MaxMoveSpeed     = 0.15
	MinMoveSpeed     = 0.01
	MoveAcceleration = 1.05

	// LookSensitivity is degrees of rotation per pixel of mouse offset.
	LookSensitivity = 0.25
)

type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Camera is a first-person camera kept as an accumulated view matrix.
// Movement is applied in the camera's untilted frame so forward stays level
// while looking up or down.
type Camera struct {
	View mgl32.Mat4
	Tilt float32    // degrees about the camera X axis
	Move mgl32.Vec3 // per-frame translation in camera space
}

func NewCamera(tilt float32, eye, centre, up mgl32.Vec3) *Camera {
	return &Camera{
		View: mgl32.HomogRotate3DX(mgl32.DegToRad(tilt)).Mul4(mgl32.LookAtV(eye, centre, up)),
		Tilt: tilt,
	}
}

// DefaultCamera stands at eye height in front of the table, looking slightly down.
func DefaultCamera() *Camera {
	return NewCamera(15, mgl32.Vec3{0, 5, 10}, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0})
}

// Push accelerates along dir. Every axis stays within [-MaxMoveSpeed, MaxMoveSpeed].
func (c *Camera) Push(dir MoveDirection) {
	switch dir {
	case MoveForward:
		c.Move[2] = max(c.Move[2]*MoveAcceleration, MinMoveSpeed)
	case MoveBackward:
		c.Move[2] = min(c.Move[2]*MoveAcceleration, -MinMoveSpeed)
	case MoveLeft:
		c.Move[0] = max(c.Move[0]*MoveAcceleration, MinMoveSpeed)
	case MoveRight:
		c.Move[0] = min(c.Move[0]*MoveAcceleration, -MinMoveSpeed)
	case MoveUp:
		c.Move[1] = max(c.Move[1]*MoveAcceleration, MinMoveSpeed)
	case MoveDown:
		c.Move[1] = min(c.Move[1]*MoveAcceleration, -MinMoveSpeed)
	}

	for i := range c.Move {
		c.Move[i] = mgl32.Clamp(c.Move[i], -MaxMoveSpeed, MaxMoveSpeed)
	}
}

// Release stops movement on the axis of dir.
func (c *Camera) Release(dir MoveDirection) {
	c.Move[axisOf(dir)] = 0
}

func axisOf(dir MoveDirection) int {
	switch dir {
	case MoveLeft, MoveRight:
		return 0
	case MoveUp, MoveDown:
		return 1
	default:
		return 2
	}
}

// Integrate applies one frame of movement: View = Rx(tilt) T(move) Rx(-tilt) View.
func (c *Camera) Integrate() {
	tilt := mgl32.DegToRad(c.Tilt)
	m := mgl32.HomogRotate3DX(tilt).
		Mul4(mgl32.Translate3D(c.Move.Elem())).
		Mul4(mgl32.HomogRotate3DX(-tilt))
	c.View = m.Mul4(c.View)
}

// Look turns the camera by a mouse offset in pixels from the window centre.
// Pan happens about the untilted vertical axis so the horizon stays level.
func (c *Camera) Look(offsetX, offsetY float32) {
	deltaPan := LookSensitivity * offsetX
	deltaTilt := LookSensitivity * offsetY

	c.Tilt += deltaTilt
	tilt := mgl32.DegToRad(c.Tilt)

	m := mgl32.HomogRotate3DX(tilt).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(deltaPan))).
		Mul4(mgl32.HomogRotate3DX(-tilt)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(deltaTilt)))
	c.View = m.Mul4(c.View)
}

const (
	FieldOfView = 60.0 // degrees, vertical
	NearPlane   = 0.02
	FarPlane    = 1000.0
)

// Projection is the perspective matrix for a framebuffer. A zero height is treated as 1.
func Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), float32(width)/float32(height), NearPlane, FarPlane)
}
