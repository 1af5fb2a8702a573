package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertMat4(t *testing.T, expected, actual mgl32.Mat4) {
	t.Helper()
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], 1e-4, "element %d", i) {
			t.Logf("expected\n%v\ngot\n%v", expected, actual)
			return
		}
	}
}

func TestCamera_PushAcceleratesFromMinimum(t *testing.T) {
	cam := &Camera{View: mgl32.Ident4()}

	cam.Push(MoveForward)
	assert.InDelta(t, 0.01, cam.Move.Z(), 1e-7)

	cam.Push(MoveForward)
	assert.InDelta(t, 0.0105, cam.Move.Z(), 1e-7)

	cam.Push(MoveBackward)
	assert.InDelta(t, -0.01, cam.Move.Z(), 1e-7)
}

func TestCamera_SpeedNeverExceedsLimit(t *testing.T) {
	cam := &Camera{View: mgl32.Ident4()}
	dirs := []MoveDirection{MoveForward, MoveBackward, MoveLeft, MoveRight, MoveUp, MoveDown}

	for _, dir := range dirs {
		for i := 0; i < 500; i++ {
			cam.Push(dir)
			for axis := 0; axis < 3; axis++ {
				assert.LessOrEqual(t, cam.Move[axis], float32(MaxMoveSpeed))
				assert.GreaterOrEqual(t, cam.Move[axis], float32(-MaxMoveSpeed))
			}
		}
	}

	assert.Equal(t, float32(-MaxMoveSpeed), cam.Move.Y())
}

func TestCamera_ReleaseStopsAxis(t *testing.T) {
	cam := &Camera{View: mgl32.Ident4()}
	cam.Push(MoveLeft)
	cam.Push(MoveUp)
	cam.Push(MoveForward)

	cam.Release(MoveRight)

	assert.Equal(t, float32(0), cam.Move.X())
	assert.NotZero(t, cam.Move.Y())
	assert.NotZero(t, cam.Move.Z())
}

func TestCamera_IntegrateTranslatesView(t *testing.T) {
	cam := &Camera{View: mgl32.Ident4(), Move: mgl32.Vec3{0, 0, 0.1}}

	cam.Integrate()
	cam.Integrate()

	assertMat4(t, mgl32.Translate3D(0, 0, 0.2), cam.View)
}

func TestCamera_IntegrateMovesLevelWhenTilted(t *testing.T) {
	cam := DefaultCamera()
	eyeBefore := cam.View.Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	cam.Move = mgl32.Vec3{0, 0, 0.1}
	cam.Integrate()

	eyeAfter := cam.View.Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, eyeBefore.Y(), eyeAfter.Y(), 1e-4)
	assert.InDelta(t, eyeBefore.Z()-0.1, eyeAfter.Z(), 1e-4)
}

func TestCamera_DefaultViewPlacesEyeAtOrigin(t *testing.T) {
	cam := DefaultCamera()

	eye := cam.View.Mul4x1(mgl32.Vec4{0, 5, 10, 1})

	assert.InDelta(t, 0, eye.X(), 1e-4)
	assert.InDelta(t, 0, eye.Y(), 1e-4)
	assert.InDelta(t, 0, eye.Z(), 1e-4)
	assert.Equal(t, float32(15), cam.Tilt)
}

func TestCamera_LookPans(t *testing.T) {
	cam := &Camera{View: mgl32.Ident4()}

	cam.Look(4, 0)

	assertMat4(t, mgl32.HomogRotate3DY(mgl32.DegToRad(1)), cam.View)
	assert.Equal(t, float32(0), cam.Tilt)
}

func TestCamera_LookTilts(t *testing.T) {
	cam := &Camera{View: mgl32.Ident4()}

	cam.Look(0, 8)

	assert.Equal(t, float32(2), cam.Tilt)
	assertMat4(t, mgl32.HomogRotate3DX(mgl32.DegToRad(2)), cam.View)
}

func TestProjection_GuardsZeroHeight(t *testing.T) {
	p := Projection(800, 0)

	assertMat4(t, mgl32.Perspective(mgl32.DegToRad(60), 800, 0.02, 1000), p)
	assertMat4(t, mgl32.Perspective(mgl32.DegToRad(60), 4.0/3.0, 0.02, 1000), Projection(800, 600))
}
