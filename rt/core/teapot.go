package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// teapotGrid is the number of segments per patch edge.
const teapotGrid = 14

// Newell's teapot in its own frame (z up, spout along +x). The first six
// patches cover one quadrant of the rim, body, lid and bottom and are mirrored
// four ways; the handle and spout are mirrored across y = 0.
var teapotPatches = [10][16]int{
	// rim
	{102, 103, 104, 105, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	// body
	{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27},
	{24, 25, 26, 27, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40},
	// lid
	{96, 96, 96, 96, 97, 98, 99, 100, 101, 101, 101, 101, 0, 1, 2, 3},
	{0, 1, 2, 3, 106, 107, 108, 109, 110, 111, 112, 113, 114, 115, 116, 117},
	// bottom
	{118, 118, 118, 118, 124, 122, 119, 121, 123, 126, 125, 120, 40, 39, 38, 37},
	// handle
	{41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56},
	{53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 28, 65, 66, 67},
	// spout
	{68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81, 82, 83},
	{80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95},
}

const teapotQuadrantPatches = 6

var teapotPoints = [127]mgl32.Vec3{
	{0.2, 0, 2.7}, {0.2, -0.112, 2.7}, {0.112, -0.2, 2.7}, {0, -0.2, 2.7},
	{1.3375, 0, 2.53125}, {1.3375, -0.749, 2.53125}, {0.749, -1.3375, 2.53125}, {0, -1.3375, 2.53125},
	{1.4375, 0, 2.53125}, {1.4375, -0.805, 2.53125}, {0.805, -1.4375, 2.53125}, {0, -1.4375, 2.53125},
	{1.5, 0, 2.4}, {1.5, -0.84, 2.4}, {0.84, -1.5, 2.4}, {0, -1.5, 2.4},
	{1.75, 0, 1.875}, {1.75, -0.98, 1.875}, {0.98, -1.75, 1.875}, {0, -1.75, 1.875},
	{2, 0, 1.35}, {2, -1.12, 1.35}, {1.12, -2, 1.35}, {0, -2, 1.35},
	{2, 0, 0.9}, {2, -1.12, 0.9}, {1.12, -2, 0.9}, {0, -2, 0.9},
	{-2, 0, 0.9},
	{2, 0, 0.45}, {2, -1.12, 0.45}, {1.12, -2, 0.45}, {0, -2, 0.45},
	{1.5, 0, 0.225}, {1.5, -0.84, 0.225}, {0.84, -1.5, 0.225}, {0, -1.5, 0.225},
	{1.5, 0, 0.15}, {1.5, -0.84, 0.15}, {0.84, -1.5, 0.15}, {0, -1.5, 0.15},
	{-1.6, 0, 2.025}, {-1.6, -0.3, 2.025}, {-1.5, -0.3, 2.25}, {-1.5, 0, 2.25},
	{-2.3, 0, 2.025}, {-2.3, -0.3, 2.025}, {-2.5, -0.3, 2.25}, {-2.5, 0, 2.25},
	{-2.7, 0, 2.025}, {-2.7, -0.3, 2.025}, {-3, -0.3, 2.25}, {-3, 0, 2.25},
	{-2.7, 0, 1.8}, {-2.7, -0.3, 1.8}, {-3, -0.3, 1.8}, {-3, 0, 1.8},
	{-2.7, 0, 1.575}, {-2.7, -0.3, 1.575}, {-3, -0.3, 1.35}, {-3, 0, 1.35},
	{-2.5, 0, 1.125}, {-2.5, -0.3, 1.125}, {-2.65, -0.3, 0.9375}, {-2.65, 0, 0.9375},
	{-2, -0.3, 0.9}, {-1.9, -0.3, 0.6}, {-1.9, 0, 0.6},
	{1.7, 0, 1.425}, {1.7, -0.66, 1.425}, {1.7, -0.66, 0.6}, {1.7, 0, 0.6},
	{2.6, 0, 1.425}, {2.6, -0.66, 1.425}, {3.1, -0.66, 0.825}, {3.1, 0, 0.825},
	{2.3, 0, 2.1}, {2.3, -0.25, 2.1}, {2.4, -0.25, 2.025}, {2.4, 0, 2.025},
	{2.7, 0, 2.4}, {2.7, -0.25, 2.4}, {3.3, -0.25, 2.4}, {3.3, 0, 2.4},
	{2.8, 0, 2.475}, {2.8, -0.25, 2.475}, {3.525, -0.25, 2.49375}, {3.525, 0, 2.49375},
	{2.9, 0, 2.475}, {2.9, -0.15, 2.475}, {3.45, -0.15, 2.5125}, {3.45, 0, 2.5125},
	{2.8, 0, 2.4}, {2.8, -0.15, 2.4}, {3.2, -0.15, 2.4}, {3.2, 0, 2.4},
	{0, 0, 3.15}, {0.8, 0, 3.15}, {0.8, -0.45, 3.15}, {0.45, -0.8, 3.15},
	{0, -0.8, 3.15}, {0, 0, 2.85},
	{1.4, 0, 2.4}, {1.4, -0.784, 2.4}, {0.784, -1.4, 2.4}, {0, -1.4, 2.4},
	{0.4, 0, 2.55}, {0.4, -0.224, 2.55}, {0.224, -0.4, 2.55}, {0, -0.4, 2.55},
	{1.3, 0, 2.55}, {1.3, -0.728, 2.55}, {0.728, -1.3, 2.55}, {0, -1.3, 2.55},
	{1.3, 0, 2.4}, {1.3, -0.728, 2.4}, {0.728, -1.3, 2.4}, {0, -1.3, 2.4},
	{0, 0, 0}, {1.425, -0.798, 0}, {1.5, 0, 0.075}, {1.425, 0, 0},
	{0.798, -1.425, 0}, {0, -1.5, 0.075}, {0, -1.425, 0}, {1.5, -0.84, 0.075},
	{0.84, -1.5, 0.075},
}

type bezierPatch [4][4]mgl32.Vec3

// TeapotModel is the Newell teapot tessellated from its 32 bicubic patches,
// sized like a unit GLUT teapot: y runs from -0.75 to 0.825 and the spout
// points along +x.
func TeapotModel() *Model {
	mesh := Mesh{Name: "teapot"}
	for i, indices := range teapotPatches {
		var p bezierPatch
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				p[j][k] = teapotPoints[indices[j*4+k]]
			}
		}
		tessellatePatch(&mesh, p)
		// column order is reversed for single reflections to keep the winding
		tessellatePatch(&mesh, p.mirrored(1, -1, true))
		if i < teapotQuadrantPatches {
			tessellatePatch(&mesh, p.mirrored(-1, 1, true))
			tessellatePatch(&mesh, p.mirrored(-1, -1, false))
		}
	}
	return &Model{Name: "teapot", Meshes: []Mesh{mesh}}
}

func (p bezierPatch) mirrored(sx, sy float32, reverse bool) bezierPatch {
	var out bezierPatch
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			src := p[j][k]
			if reverse {
				src = p[j][3-k]
			}
			out[j][k] = mgl32.Vec3{src[0] * sx, src[1] * sy, src[2]}
		}
	}
	return out
}

func tessellatePatch(mesh *Mesh, p bezierPatch) {
	base := uint32(mesh.VertexCount())
	for a := 0; a <= teapotGrid; a++ {
		u := float32(a) / teapotGrid
		for b := 0; b <= teapotGrid; b++ {
			v := float32(b) / teapotGrid
			pos, normal := p.eval(u, v)
			pos, normal = teapotToModel(pos).Mul(0.5), teapotToModel(normal)
			mesh.Positions = append(mesh.Positions, pos[0], pos[1], pos[2])
			mesh.Normals = append(mesh.Normals, normal[0], normal[1], normal[2])
			mesh.UVs = append(mesh.UVs, v, u)
		}
	}

	const row = teapotGrid + 1
	for a := uint32(0); a < teapotGrid; a++ {
		for b := uint32(0); b < teapotGrid; b++ {
			i0 := base + a*row + b
			i1 := i0 + row
			mesh.Indices = append(mesh.Indices, i0, i1, i1+1, i0, i1+1, i0+1)
		}
	}
}

// teapotToModel turns the z-up teapot frame into y-up model space and drops
// the base to y = -0.75 once scaled by one half.
func teapotToModel(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{p[0], p[2], -p[1]}
}

// eval returns the point at (u, v) and its outward unit normal. At collapsed
// rows the normal is taken just inside the patch.
func (p bezierPatch) eval(u, v float32) (mgl32.Vec3, mgl32.Vec3) {
	pos, du, dv := p.evalDerivs(u, v)
	n := dv.Cross(du)
	if n.Len() < 1e-6 {
		const nudge = 1e-3
		nu := u + nudge
		if u > 0.5 {
			nu = u - nudge
		}
		_, du, dv = p.evalDerivs(nu, v)
		n = dv.Cross(du)
	}
	pos[2] -= 1.5
	return pos, n.Normalize()
}

func (p bezierPatch) evalDerivs(u, v float32) (pos, du, dv mgl32.Vec3) {
	bu, dbu := bernstein(u)
	bv, dbv := bernstein(v)
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			pos = pos.Add(p[j][k].Mul(bu[j] * bv[k]))
			du = du.Add(p[j][k].Mul(dbu[j] * bv[k]))
			dv = dv.Add(p[j][k].Mul(bu[j] * dbv[k]))
		}
	}
	return pos, du, dv
}

// bernstein returns the cubic basis and its derivative at t.
func bernstein(t float32) ([4]float32, [4]float32) {
	s := 1 - t
	return [4]float32{s * s * s, 3 * t * s * s, 3 * t * t * s, t * t * t},
		[4]float32{-3 * s * s, 3*s*s - 6*t*s, 6*t*s - 3*t*t, 3 * t * t}
}
