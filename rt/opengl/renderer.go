// Package opengl draws core scenes with an OpenGL 4.1 core context.
// All methods must be called on the thread that owns the context.
package opengl

import (
	"fmt"
	"image"

	"github.com/gekko3d/lamproom/rt/core"
	"github.com/gekko3d/lamproom/rt/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var DefaultClearColor = mgl32.Vec3{0.18, 0.25, 0.22}

type Renderer struct {
	program  uint32
	uniforms map[string]int32

	textures map[core.AssetId]uint32
	models   map[core.AssetId][]gpuMesh

	width, height int
	projection    mgl32.Mat4

	ClearColor mgl32.Vec3
}

// New loads GL function pointers, compiles the scene program and creates
// the placeholder textures. A GL context must be current.
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: init: %w", err)
	}

	prog, err := newProgram(shaders.BasicVertex, shaders.BasicFragment)
	if err != nil {
		return nil, fmt.Errorf("opengl: scene program: %w", err)
	}

	r := &Renderer{
		program:    prog,
		uniforms:   make(map[string]int32),
		textures:   make(map[core.AssetId]uint32),
		models:     make(map[core.AssetId][]gpuMesh),
		projection: mgl32.Ident4(),
		ClearColor: DefaultClearColor,
	}

	for id, rgba := range core.PlaceholderTextures {
		r.textures[id] = uploadTexture(solidTexture(rgba))
	}

	gl.Enable(gl.DEPTH_TEST)
	return r, nil
}

// Version is the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (r *Renderer) UploadModel(id core.AssetId, model *core.Model) {
	if old, ok := r.models[id]; ok {
		for i := range old {
			old[i].release()
		}
	}
	meshes := make([]gpuMesh, len(model.Meshes))
	for i := range model.Meshes {
		meshes[i] = uploadMesh(&model.Meshes[i])
	}
	r.models[id] = meshes
}

func (r *Renderer) UploadTexture(id core.AssetId, img *image.RGBA) {
	if old, ok := r.textures[id]; ok {
		gl.DeleteTextures(1, &old)
	}
	r.textures[id] = uploadTexture(img)
}

// Resize sets the viewport and projection for a framebuffer of width x height pixels.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection = core.Projection(width, height)
}

func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// BeginFrame clears the framebuffer and binds the scene program.
func (r *Renderer) BeginFrame() {
	gl.ClearColor(r.ClearColor.X(), r.ClearColor.Y(), r.ClearColor.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	r.SetMat4("matrixProjection", r.projection)
}

func (r *Renderer) SetInt(name string, v int32) {
	gl.Uniform1i(r.uniform(name), v)
}

func (r *Renderer) SetFloat(name string, v float32) {
	gl.Uniform1f(r.uniform(name), v)
}

func (r *Renderer) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(r.uniform(name), v[0], v[1], v[2])
}

func (r *Renderer) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.uniform(name), 1, false, &m[0])
}

// BindTexture binds texture to unit. Unknown ids bind the white placeholder.
func (r *Renderer) BindTexture(unit uint32, texture core.AssetId) {
	tex, ok := r.textures[texture]
	if !ok {
		tex = r.textures[core.WhiteTexture]
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (r *Renderer) MeshCount(model core.AssetId) int {
	return len(r.models[model])
}

func (r *Renderer) DrawMesh(model core.AssetId, mesh int, modelView mgl32.Mat4) {
	meshes := r.models[model]
	if mesh < 0 || mesh >= len(meshes) {
		return
	}
	r.SetMat4("matrixModelView", modelView)
	meshes[mesh].draw()
}

// ReadPixels returns the back buffer. Row 0 is the bottom row.
func (r *Renderer) ReadPixels() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.width == 0 || r.height == 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return img
}

func (r *Renderer) Release() {
	for id, meshes := range r.models {
		for i := range meshes {
			meshes[i].release()
		}
		delete(r.models, id)
	}
	for id, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
		delete(r.textures, id)
	}
	gl.DeleteProgram(r.program)
}
