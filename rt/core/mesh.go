package core

// Mesh is CPU-side indexed triangle geometry. Normals and UVs are optional;
// when present they have one entry per position.
type Mesh struct {
	Name      string
	Positions []float32 // xyz
	Normals   []float32 // xyz
	UVs       []float32 // uv
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Model is a named list of meshes. For OBJ files there is one mesh per group.
type Model struct {
	Name   string
	Meshes []Mesh
}

// PyramidModel is a square pyramid of base 8 and height 7 with flat faces.
func PyramidModel() *Model {
	positions := []float32{
		-4, 0, -4, 4, 0, -4, 0, 7, 0,
		-4, 0, 4, 4, 0, 4, 0, 7, 0,
		-4, 0, -4, -4, 0, 4, 0, 7, 0,
		4, 0, -4, 4, 0, 4, 0, 7, 0,
		-4, 0, -4, -4, 0, 4, 4, 0, -4, 4, 0, 4,
	}
	normals := []float32{
		0, 4, -7, 0, 4, -7, 0, 4, -7,
		0, 4, 7, 0, 4, 7, 0, 4, 7,
		-7, 4, 0, -7, 4, 0, -7, 4, 0,
		7, 4, 0, 7, 4, 0, 7, 4, 0,
		0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0,
	}
	indices := []uint32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
		12, 13, 14,
		13, 14, 15,
	}

	return &Model{
		Name: "pyramid",
		Meshes: []Mesh{{
			Name:      "pyramid",
			Positions: positions,
			Normals:   normals,
			Indices:   indices,
		}},
	}
}
