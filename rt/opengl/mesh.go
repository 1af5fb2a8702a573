package opengl

import (
	"github.com/gekko3d/lamproom/rt/core"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
)

type gpuMesh struct {
	vao        uint32
	buffers    [4]uint32 // positions, normals, uvs, indices
	indexCount int32
}

func uploadMesh(mesh *core.Mesh) gpuMesh {
	var m gpuMesh
	vertices := mesh.VertexCount()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.buffers)), &m.buffers[0])

	attribute(m.buffers[0], attribPosition, 3, padded(mesh.Positions, vertices*3))
	attribute(m.buffers[1], attribNormal, 3, padded(mesh.Normals, vertices*3))
	attribute(m.buffers[2], attribTexCoord, 2, padded(mesh.UVs, vertices*2))

	m.indexCount = int32(len(mesh.Indices))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.buffers[3])
	if m.indexCount > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m
}

func attribute(buffer uint32, index uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, 0, nil)
}

// padded returns data or, when it does not cover every vertex, a zero-filled copy.
func padded(data []float32, n int) []float32 {
	if len(data) >= n {
		return data
	}
	out := make([]float32, n)
	copy(out, data)
	return out
}

func (m *gpuMesh) draw() {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) release() {
	gl.DeleteBuffers(int32(len(m.buffers)), &m.buffers[0])
	gl.DeleteVertexArrays(1, &m.vao)
}
